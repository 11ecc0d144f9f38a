package handler

// Route pattern constants for chi router registration.
const (
	RouteRoot      = "/"
	RouteParamID   = "/{id}"
	RouteParamSlug = "/{slug}"
	RouteSuffixNew = "/new"

	RouteLogin  = "/login"
	RouteLogout = "/logout"

	redirectAdmin        = "/admin"
	redirectLogin        = "/login"
	redirectSettings     = "/admin/settings"
	redirectSections     = "/admin/sections"
	redirectStyleVars    = "/admin/style-variables"
	redirectThemes       = "/admin/themes"
	redirectUsers        = "/admin/users"
	redirectTestimonials = "/admin/testimonials"
	redirectNews         = "/admin/news"
	redirectPrograms     = "/admin/programs"
	redirectStaff        = "/admin/staff"
	redirectPartners     = "/admin/partners"
	redirectGallery      = "/admin/gallery"
	redirectPpdb         = "/admin/ppdb"
)

// User role constants - must match model.Role* values.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)
