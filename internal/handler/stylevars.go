// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/util"
)

// StyleVarsHandler manages the CSS custom property overrides.
type StyleVarsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	cache    *cache.Manager
}

// NewStyleVarsHandler creates a new StyleVarsHandler.
func NewStyleVarsHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager) *StyleVarsHandler {
	return &StyleVarsHandler{
		queries:  store.New(db),
		renderer: renderer,
		cache:    cacheManager,
	}
}

// List renders the style variables table with an inline upsert form.
func (h *StyleVarsHandler) List(w http.ResponseWriter, r *http.Request) {
	variables, err := h.queries.ListStyleVariables(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list style variables", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/stylevars_list", render.TemplateData{
		Title: "Variabel Gaya",
		Data:  map[string]any{"Variables": variables},
	}); err != nil {
		logAndInternalError(w, "rendering style variables", "error", err)
	}
}

// Upsert creates or replaces one style variable keyed by its CSS name.
func (h *StyleVarsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectStyleVars) {
		return
	}

	key := strings.TrimSpace(r.FormValue("key"))
	value := strings.TrimSpace(r.FormValue("value"))

	if !util.IsValidCSSVariableName(key) {
		flashError(w, r, h.renderer, redirectStyleVars, "Nama variabel harus diawali \"--\" dan hanya berisi huruf, angka, atau tanda hubung")
		return
	}
	if value == "" {
		flashError(w, r, h.renderer, redirectStyleVars, "Nilai variabel wajib diisi")
		return
	}

	variable, err := h.queries.UpsertStyleVariable(r.Context(), store.UpsertStyleVariableParams{
		Key:         key,
		Value:       value,
		Category:    strings.TrimSpace(r.FormValue("category")),
		Description: strings.TrimSpace(r.FormValue("description")),
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		slog.Error("failed to upsert style variable", "error", err, "key", key)
		flashError(w, r, h.renderer, redirectStyleVars, "Gagal menyimpan variabel")
		return
	}

	h.cache.InvalidateThemeCSS(r.Context())
	slog.Info("style variable saved", "key", variable.Key, "user_id", userIDFromRequest(r), "category", "settings")
	flashSuccess(w, r, h.renderer, redirectStyleVars, "Variabel disimpan")
}

// Delete removes a style variable.
func (h *StyleVarsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectStyleVars, "ID tidak valid")
		return
	}

	if err := h.queries.DeleteStyleVariable(r.Context(), id); err != nil {
		slog.Error("failed to delete style variable", "error", err, "variable_id", id)
		flashError(w, r, h.renderer, redirectStyleVars, "Gagal menghapus variabel")
		return
	}

	h.cache.InvalidateThemeCSS(r.Context())
	slog.Info("style variable deleted", "variable_id", id, "user_id", userIDFromRequest(r), "category", "settings")
	flashSuccess(w, r, h.renderer, redirectStyleVars, "Variabel dihapus")
}
