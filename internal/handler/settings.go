// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/settings"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

// SettingsHandler manages the per-page settings documents.
type SettingsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	cache    *cache.Manager
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager) *SettingsHandler {
	return &SettingsHandler{
		queries:  store.New(db),
		renderer: renderer,
		cache:    cacheManager,
	}
}

// Index lists the pages that have an editable settings document.
func (h *SettingsHandler) Index(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/settings_index", render.TemplateData{
		Title: "Pengaturan Halaman",
		Data:  map[string]any{"Pages": model.KnownPages},
	}); err != nil {
		logAndInternalError(w, "rendering settings index", "error", err)
	}
}

// EditForm renders the settings form for one page. The form shows the
// merged view (stored document over defaults) plus the raw stored JSON.
func (h *SettingsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	pageName := chi.URLParam(r, "page")
	if !model.IsKnownPage(pageName) {
		flashError(w, r, h.renderer, redirectSettings, "Halaman tidak dikenal")
		return
	}

	raw, err := settings.Raw(r.Context(), h.queries, pageName)
	if err != nil {
		logAndInternalError(w, "failed to load settings document", "error", err, "page", pageName)
		return
	}

	data := map[string]any{
		"PageName": pageName,
		"Raw":      string(raw),
	}

	switch pageName {
	case model.PageBeranda:
		s, err := settings.Get(r.Context(), h.queries, pageName, settings.DefaultHomeSettings())
		if err != nil {
			logAndInternalError(w, "failed to merge settings", "error", err, "page", pageName)
			return
		}
		data["Home"] = s
	case model.PageTentangKami:
		s, err := settings.Get(r.Context(), h.queries, pageName, settings.DefaultAboutSettings())
		if err != nil {
			logAndInternalError(w, "failed to merge settings", "error", err, "page", pageName)
			return
		}
		data["About"] = s
	case model.PageBeritaLayout:
		s, err := settings.Get(r.Context(), h.queries, pageName, settings.DefaultNewsLayoutSettings())
		if err != nil {
			logAndInternalError(w, "failed to merge settings", "error", err, "page", pageName)
			return
		}
		data["NewsLayout"] = s
	case model.PageKontak:
		s, err := settings.Get(r.Context(), h.queries, pageName, settings.DefaultContactSettings())
		if err != nil {
			logAndInternalError(w, "failed to merge settings", "error", err, "page", pageName)
			return
		}
		data["Contact"] = s
	}

	if err := h.renderer.Render(w, r, "admin/settings_edit", render.TemplateData{
		Title: "Pengaturan: " + pageName,
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "rendering settings form", "error", err)
	}
}

// Update handles the typed settings form submission for one page.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	pageName := chi.URLParam(r, "page")
	if !model.IsKnownPage(pageName) {
		flashError(w, r, h.renderer, redirectSettings, "Halaman tidak dikenal")
		return
	}
	editURL := redirectSettings + "/" + pageName

	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	var doc any
	switch pageName {
	case model.PageBeranda:
		doc = parseHomeSettingsForm(r)
	case model.PageTentangKami:
		doc = parseAboutSettingsForm(r)
	case model.PageBeritaLayout:
		doc = parseNewsLayoutSettingsForm(r)
	case model.PageKontak:
		doc = parseContactSettingsForm(r)
	}

	if v, ok := doc.(settings.Validator); ok {
		if err := v.Validate(); err != nil {
			flashError(w, r, h.renderer, editURL, "Dokumen tidak valid: "+err.Error())
			return
		}
	}

	if err := settings.Update(r.Context(), h.queries, pageName, doc); err != nil {
		slog.Error("failed to save settings", "error", err, "page", pageName)
		flashError(w, r, h.renderer, editURL, "Gagal menyimpan pengaturan")
		return
	}

	h.cache.InvalidateSettings(r.Context(), pageName)
	slog.Info("page settings updated", "page", pageName, "user_id", userIDFromRequest(r), "category", "settings")
	flashSuccess(w, r, h.renderer, editURL, "Pengaturan disimpan")
}

// UpdateRaw replaces a page's stored document with the submitted JSON text.
// The document must be a JSON object; anything else is rejected before the
// row is touched.
func (h *SettingsHandler) UpdateRaw(w http.ResponseWriter, r *http.Request) {
	pageName := chi.URLParam(r, "page")
	if !model.IsKnownPage(pageName) {
		flashError(w, r, h.renderer, redirectSettings, "Halaman tidak dikenal")
		return
	}
	editURL := redirectSettings + "/" + pageName

	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	doc := strings.TrimSpace(r.FormValue("document"))
	if doc == "" {
		doc = "{}"
	}

	if err := settings.UpdateRaw(r.Context(), h.queries, pageName, []byte(doc)); err != nil {
		flashError(w, r, h.renderer, editURL, "Dokumen JSON tidak valid: "+err.Error())
		return
	}

	h.cache.InvalidateSettings(r.Context(), pageName)
	slog.Info("page settings document replaced", "page", pageName, "user_id", userIDFromRequest(r), "category", "settings")
	flashSuccess(w, r, h.renderer, editURL, "Dokumen disimpan")
}

func parseHomeSettingsForm(r *http.Request) settings.HomeSettings {
	s := settings.HomeSettings{
		Hero: settings.HeroSection{
			Title:          r.FormValue("hero_title"),
			Subtitle:       r.FormValue("hero_subtitle"),
			CTAText:        r.FormValue("hero_cta_text"),
			CTALink:        r.FormValue("hero_cta_link"),
			ImageURLs:      splitLines(r.FormValue("hero_image_urls")),
			SliderDuration: atoiDefault(r.FormValue("hero_slider_duration"), 5000),
			OverlayOpacity: atofDefault(r.FormValue("hero_overlay_opacity"), 0.4),
		},
		Programs:     parseSectionHeading(r, "programs"),
		Partners:     parseSectionHeading(r, "partners"),
		Testimonials: parseSectionHeading(r, "testimonials"),
		News:         parseSectionHeading(r, "news"),
	}

	icons := r.Form["feature_icon"]
	titles := r.Form["feature_title"]
	texts := r.Form["feature_text"]
	for i := range icons {
		if i >= len(titles) || i >= len(texts) {
			break
		}
		if titles[i] == "" {
			continue
		}
		s.Features = append(s.Features, settings.FeatureItem{
			Icon:  icons[i],
			Title: titles[i],
			Text:  texts[i],
		})
	}
	return s
}

func parseSectionHeading(r *http.Request, prefix string) settings.SectionHeading {
	return settings.SectionHeading{
		Title:    r.FormValue(prefix + "_title"),
		Subtitle: r.FormValue(prefix + "_subtitle"),
		Visible:  r.FormValue(prefix+"_visible") == "on",
	}
}

func parseAboutSettingsForm(r *http.Request) settings.AboutSettings {
	return settings.AboutSettings{
		Title:      r.FormValue("title"),
		Intro:      r.FormValue("intro"),
		Vision:     r.FormValue("vision"),
		Mission:    r.FormValue("mission"),
		History:    r.FormValue("history"),
		ImageURL:   r.FormValue("image_url"),
		ShowStaff:  r.FormValue("show_staff") == "on",
		StaffTitle: r.FormValue("staff_title"),
	}
}

func parseNewsLayoutSettingsForm(r *http.Request) settings.NewsLayoutSettings {
	return settings.NewsLayoutSettings{
		Title:        r.FormValue("title"),
		Subtitle:     r.FormValue("subtitle"),
		PageSize:     atoiDefault(r.FormValue("page_size"), 9),
		ShowExcerpts: r.FormValue("show_excerpts") == "on",
		ShowCovers:   r.FormValue("show_covers") == "on",
	}
}

func parseContactSettingsForm(r *http.Request) settings.ContactSettings {
	return settings.ContactSettings{
		Title:     r.FormValue("title"),
		Address:   r.FormValue("address"),
		Phone:     r.FormValue("phone"),
		Email:     r.FormValue("email"),
		MapsEmbed: r.FormValue("maps_embed"),
		Facebook:  r.FormValue("facebook"),
		Instagram: r.FormValue("instagram"),
		YouTube:   r.FormValue("youtube"),
	}
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func atofDefault(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}
