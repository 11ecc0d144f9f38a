// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/settings"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/theme"
)

const homeNewsCount = 3

// FrontendHandler serves the public site.
type FrontendHandler struct {
	queries   *store.Queries
	renderer  *render.Renderer
	cache     *cache.Manager
	projector *theme.Projector
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager, projector *theme.Projector) *FrontendHandler {
	return &FrontendHandler{
		queries:   store.New(db),
		renderer:  renderer,
		cache:     cacheManager,
		projector: projector,
	}
}

// Home renders the landing page from the "beranda" settings document
// plus the active content rows.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	if h.serveCachedRoute(w, r) {
		return
	}
	ctx := r.Context()

	home, err := settings.Get(ctx, h.queries, model.PageBeranda, settings.DefaultHomeSettings())
	if err != nil {
		logAndInternalError(w, "failed to load home settings", "error", err)
		return
	}

	programs, err := h.queries.ListActivePrograms(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list programs", "error", err)
		return
	}
	partners, err := h.queries.ListActivePartners(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list partners", "error", err)
		return
	}
	testimonials, err := h.queries.ListActiveTestimonials(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list testimonials", "error", err)
		return
	}
	news, err := h.queries.ListPublishedNews(ctx, store.ListPublishedNewsParams{
		Limit:  homeNewsCount,
		Offset: 0,
	})
	if err != nil {
		logAndInternalError(w, "failed to list news", "error", err)
		return
	}

	sections, err := h.queries.ListVisibleSectionsByPath(ctx, "/")
	if err != nil {
		logAndInternalError(w, "failed to list page sections", "error", err)
		return
	}

	h.renderCacheable(w, r, "public/home", render.TemplateData{
		Title: home.Hero.Title,
		Data: map[string]any{
			"Settings":     home,
			"Programs":     programs,
			"Partners":     partners,
			"Testimonials": testimonials,
			"News":         news,
			"Sections":     buildSectionViews(sections),
		},
	})
}

// About renders the about page.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	if h.serveCachedRoute(w, r) {
		return
	}
	ctx := r.Context()

	about, err := settings.Get(ctx, h.queries, model.PageTentangKami, settings.DefaultAboutSettings())
	if err != nil {
		logAndInternalError(w, "failed to load about settings", "error", err)
		return
	}

	var staff []store.Staff
	if about.ShowStaff {
		if staff, err = h.queries.ListActiveStaff(ctx); err != nil {
			logAndInternalError(w, "failed to list staff", "error", err)
			return
		}
	}

	h.renderCacheable(w, r, "public/about", render.TemplateData{
		Title: about.Title,
		Data: map[string]any{
			"Settings": about,
			"Staff":    staff,
		},
	})
}

// NewsList renders the paginated news listing.
func (h *FrontendHandler) NewsList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	layout, err := settings.Get(ctx, h.queries, model.PageBeritaLayout, settings.DefaultNewsLayoutSettings())
	if err != nil {
		logAndInternalError(w, "failed to load news layout settings", "error", err)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	total, err := h.queries.CountPublishedNews(ctx)
	if err != nil {
		logAndInternalError(w, "failed to count news", "error", err)
		return
	}

	articles, err := h.queries.ListPublishedNews(ctx, store.ListPublishedNewsParams{
		Limit:  int64(layout.PageSize),
		Offset: int64(page-1) * int64(layout.PageSize),
	})
	if err != nil {
		logAndInternalError(w, "failed to list news", "error", err)
		return
	}

	totalPages := int((total + int64(layout.PageSize) - 1) / int64(layout.PageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	if err := h.renderer.Render(w, r, "public/news_list", render.TemplateData{
		Title:    layout.Title,
		Branding: h.projector.Branding(ctx),
		Data: map[string]any{
			"Settings":   layout,
			"Articles":   articles,
			"Page":       page,
			"TotalPages": totalPages,
		},
	}); err != nil {
		logAndInternalError(w, "rendering news list", "error", err)
	}
}

// NewsDetail renders one published article by slug.
func (h *FrontendHandler) NewsDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := h.queries.GetPublishedNewsBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		logAndInternalError(w, "failed to load article", "error", err, "slug", slug)
		return
	}

	h.renderCacheable(w, r, "public/news_detail", render.TemplateData{
		Title: article.Title,
		Data:  map[string]any{"Article": article},
	})
}

// Programs renders the program overview page.
func (h *FrontendHandler) Programs(w http.ResponseWriter, r *http.Request) {
	if h.serveCachedRoute(w, r) {
		return
	}

	programs, err := h.queries.ListActivePrograms(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list programs", "error", err)
		return
	}

	h.renderCacheable(w, r, "public/programs", render.TemplateData{
		Title: "Program Keahlian",
		Data:  map[string]any{"Programs": programs},
	})
}

// Gallery renders the public photo gallery.
func (h *FrontendHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	if h.serveCachedRoute(w, r) {
		return
	}

	items, err := h.queries.ListGalleryItems(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list gallery items", "error", err)
		return
	}

	h.renderCacheable(w, r, "public/gallery", render.TemplateData{
		Title: "Galeri",
		Data:  map[string]any{"Items": items},
	})
}

// Contact renders the contact page from the "kontak" settings document.
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if h.serveCachedRoute(w, r) {
		return
	}

	contact, err := settings.Get(r.Context(), h.queries, model.PageKontak, settings.DefaultContactSettings())
	if err != nil {
		logAndInternalError(w, "failed to load contact settings", "error", err)
		return
	}

	h.renderCacheable(w, r, "public/contact", render.TemplateData{
		Title: contact.Title,
		Data:  map[string]any{"Settings": contact},
	})
}

// ThemeCSS serves the projected stylesheet, cached until the next theme or
// style variable write.
func (h *FrontendHandler) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")

	if css, err := h.cache.GetThemeCSS(r.Context()); err == nil {
		_, _ = w.Write(css)
		return
	}

	css := []byte(h.projector.CSS(r.Context()))
	if err := h.cache.SetThemeCSS(r.Context(), css); err != nil {
		slog.Warn("failed to cache theme css", "error", err)
	}
	_, _ = w.Write(css)
}

// NotFound renders the public 404 page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := h.renderer.Render(w, r, "public/notfound", render.TemplateData{
		Title:    "Halaman Tidak Ditemukan",
		Branding: h.projector.Branding(r.Context()),
	}); err != nil {
		slog.Error("rendering 404 page", "error", err)
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}

// serveCachedRoute writes the cached response for this path if one exists.
// Only flash-free GET requests are served from cache.
func (h *FrontendHandler) serveCachedRoute(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet || h.renderer.HasFlash(r) {
		return false
	}
	html, err := h.cache.GetRoute(r.Context(), r.URL.Path)
	if err != nil {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
	return true
}

// renderCacheable renders the page and stores the result in the route
// cache when the response carries no flash message.
func (h *FrontendHandler) renderCacheable(w http.ResponseWriter, r *http.Request, name string, data render.TemplateData) {
	data.Branding = h.projector.Branding(r.Context())

	cacheable := r.Method == http.MethodGet && !h.renderer.HasFlash(r)
	buf, err := h.renderer.RenderToBuffer(r, name, data)
	if err != nil {
		logAndInternalError(w, "rendering page", "error", err, "template", name)
		return
	}

	if cacheable {
		if err := h.cache.SetRoute(r.Context(), r.URL.Path, buf.Bytes()); err != nil {
			slog.Warn("failed to cache route", "error", err, "path", r.URL.Path)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
