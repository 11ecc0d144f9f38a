// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/theme"
)

// ThemesHandler manages themes and theme activation.
type ThemesHandler struct {
	queries   *store.Queries
	renderer  *render.Renderer
	cache     *cache.Manager
	projector *theme.Projector
}

// NewThemesHandler creates a new ThemesHandler.
func NewThemesHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager, projector *theme.Projector) *ThemesHandler {
	return &ThemesHandler{
		queries:   store.New(db),
		renderer:  renderer,
		cache:     cacheManager,
		projector: projector,
	}
}

// List renders all themes.
func (h *ThemesHandler) List(w http.ResponseWriter, r *http.Request) {
	themes, err := h.queries.ListThemes(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list themes", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/themes_list", render.TemplateData{
		Title: "Tema",
		Data:  map[string]any{"Themes": themes},
	}); err != nil {
		logAndInternalError(w, "rendering themes list", "error", err)
	}
}

// NewForm renders the create-theme form.
func (h *ThemesHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/themes_form", render.TemplateData{
		Title: "Tema Baru",
		Data: map[string]any{
			"Theme": store.Theme{Colors: "{}", Fonts: "{}"},
			"IsNew": true,
		},
	}); err != nil {
		logAndInternalError(w, "rendering theme form", "error", err)
	}
}

// Create handles the create-theme form submission.
func (h *ThemesHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectThemes) {
		return
	}

	in, err := parseThemeForm(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectThemes+RouteSuffixNew, err.Error())
		return
	}

	themeRow, err := h.queries.CreateTheme(r.Context(), store.CreateThemeParams{
		Name:       in.name,
		Colors:     in.colors,
		Fonts:      in.fonts,
		FaviconUrl: in.faviconURL,
		LogoUrl:    in.logoURL,
		LogoAlt:    in.logoAlt,
		IsActive:   false,
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		slog.Error("failed to create theme", "error", err)
		flashError(w, r, h.renderer, redirectThemes, "Gagal membuat tema")
		return
	}

	slog.Info("theme created", "theme_id", themeRow.ID, "name", themeRow.Name,
		"user_id", userIDFromRequest(r), "category", "settings")
	flashSuccess(w, r, h.renderer, redirectThemes, "Tema dibuat")
}

// EditForm renders the edit form for one theme.
func (h *ThemesHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectThemes, "ID tidak valid")
		return
	}

	themeRow, ok := requireEntityWithRedirect(w, r, h.renderer, redirectThemes, "theme", id,
		func(id int64) (store.Theme, error) { return h.queries.GetThemeByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/themes_form", render.TemplateData{
		Title: "Ubah Tema",
		Data:  map[string]any{"Theme": themeRow, "IsNew": false},
	}); err != nil {
		logAndInternalError(w, "rendering theme form", "error", err)
	}
}

// Update handles the edit-theme form submission.
func (h *ThemesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectThemes, "ID tidak valid")
		return
	}
	editURL := fmt.Sprintf("%s/%d", redirectThemes, id)

	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	in, err := parseThemeForm(r)
	if err != nil {
		flashError(w, r, h.renderer, editURL, err.Error())
		return
	}

	themeRow, err := h.queries.UpdateTheme(r.Context(), store.UpdateThemeParams{
		Name:       in.name,
		Colors:     in.colors,
		Fonts:      in.fonts,
		FaviconUrl: in.faviconURL,
		LogoUrl:    in.logoURL,
		LogoAlt:    in.logoAlt,
		UpdatedAt:  time.Now(),
		ID:         id,
	})
	if err != nil {
		slog.Error("failed to update theme", "error", err, "theme_id", id)
		flashError(w, r, h.renderer, editURL, "Gagal menyimpan tema")
		return
	}

	// Edits to the active theme change the published stylesheet
	if themeRow.IsActive {
		h.invalidateThemeOutputs(r)
	}
	slog.Info("theme updated", "theme_id", themeRow.ID, "user_id", userIDFromRequest(r), "category", "settings")
	flashSuccess(w, r, h.renderer, redirectThemes, "Tema disimpan")
}

// Activate marks one theme active and deactivates the rest.
func (h *ThemesHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectThemes, "ID tidak valid")
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, redirectThemes, "theme", id,
		func(id int64) (store.Theme, error) { return h.queries.GetThemeByID(r.Context(), id) }); !ok {
		return
	}

	if err := h.queries.DeactivateAllThemes(r.Context()); err != nil {
		slog.Error("failed to deactivate themes", "error", err)
		flashError(w, r, h.renderer, redirectThemes, "Gagal mengaktifkan tema")
		return
	}
	if err := h.queries.ActivateTheme(r.Context(), store.ActivateThemeParams{
		UpdatedAt: time.Now(),
		ID:        id,
	}); err != nil {
		slog.Error("failed to activate theme", "error", err, "theme_id", id)
		flashError(w, r, h.renderer, redirectThemes, "Gagal mengaktifkan tema")
		return
	}

	h.invalidateThemeOutputs(r)
	slog.Info("theme activated", "theme_id", id, "user_id", userIDFromRequest(r), "category", "settings")
	flashSuccess(w, r, h.renderer, redirectThemes, "Tema diaktifkan")
}

func (h *ThemesHandler) invalidateThemeOutputs(r *http.Request) {
	h.cache.InvalidateThemeCSS(r.Context())
	h.projector.InvalidateBranding()
}

type themeFormInput struct {
	name       string
	colors     string
	fonts      string
	faviconURL string
	logoURL    string
	logoAlt    string
}

func parseThemeForm(r *http.Request) (themeFormInput, error) {
	in := themeFormInput{
		name:       strings.TrimSpace(r.FormValue("name")),
		faviconURL: strings.TrimSpace(r.FormValue("favicon_url")),
		logoURL:    strings.TrimSpace(r.FormValue("logo_url")),
		logoAlt:    strings.TrimSpace(r.FormValue("logo_alt")),
	}
	if in.name == "" {
		return in, fmt.Errorf("nama tema wajib diisi")
	}

	var err error
	if in.colors, err = normalizeJSONObject(r.FormValue("colors")); err != nil {
		return in, fmt.Errorf("colors bukan objek JSON yang valid: %v", err)
	}
	if in.fonts, err = normalizeJSONObject(r.FormValue("fonts")); err != nil {
		return in, fmt.Errorf("fonts bukan objek JSON yang valid: %v", err)
	}
	return in, nil
}
