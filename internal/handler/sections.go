// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

// SectionsHandler is the page builder: CRUD over page sections, each of
// which carries three JSON blobs (content, styles, animation settings).
type SectionsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	cache    *cache.Manager
}

// NewSectionsHandler creates a new SectionsHandler.
func NewSectionsHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager) *SectionsHandler {
	return &SectionsHandler{
		queries:  store.New(db),
		renderer: renderer,
		cache:    cacheManager,
	}
}

// List renders all sections grouped by page path.
func (h *SectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	sections, err := h.queries.ListPageSections(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list page sections", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/sections_list", render.TemplateData{
		Title: "Bagian Halaman",
		Data:  map[string]any{"Sections": sections},
	}); err != nil {
		logAndInternalError(w, "rendering sections list", "error", err)
	}
}

// NewForm renders the create-section form.
func (h *SectionsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/sections_form", render.TemplateData{
		Title: "Bagian Baru",
		Data: map[string]any{
			"Section": store.PageSection{
				IsVisible:         true,
				Content:           "{}",
				Styles:            "{}",
				AnimationSettings: "{}",
			},
			"IsNew": true,
		},
	}); err != nil {
		logAndInternalError(w, "rendering section form", "error", err)
	}
}

// Create handles the create-section form submission.
func (h *SectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectSections) {
		return
	}

	in, err := parseSectionForm(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectSections+RouteSuffixNew, err.Error())
		return
	}

	now := time.Now()
	section, err := h.queries.CreatePageSection(r.Context(), store.CreatePageSectionParams{
		PagePath:          in.pagePath,
		Name:              in.name,
		OrderPosition:     in.orderPosition,
		IsVisible:         in.isVisible,
		Content:           in.content,
		Styles:            in.styles,
		AnimationSettings: in.animation,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		slog.Error("failed to create page section", "error", err)
		flashError(w, r, h.renderer, redirectSections, "Gagal membuat bagian")
		return
	}

	h.cache.InvalidateRoute(r.Context(), section.PagePath)
	slog.Info("page section created", "section_id", section.ID, "page_path", section.PagePath,
		"user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectSections, "Bagian dibuat")
}

// EditForm renders the edit form for one section.
func (h *SectionsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectSections, "ID tidak valid")
		return
	}

	section, ok := requireEntityWithRedirect(w, r, h.renderer, redirectSections, "section", id,
		func(id int64) (store.PageSection, error) { return h.queries.GetPageSection(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/sections_form", render.TemplateData{
		Title: "Ubah Bagian",
		Data:  map[string]any{"Section": section, "IsNew": false},
	}); err != nil {
		logAndInternalError(w, "rendering section form", "error", err)
	}
}

// Update handles the edit form submission. The three JSON blobs are
// parsed together before anything is written: if any one of them fails,
// the stored row keeps all three previous values.
func (h *SectionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectSections, "ID tidak valid")
		return
	}
	editURL := fmt.Sprintf("%s/%d", redirectSections, id)

	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	existing, ok := requireEntityWithRedirect(w, r, h.renderer, redirectSections, "section", id,
		func(id int64) (store.PageSection, error) { return h.queries.GetPageSection(r.Context(), id) })
	if !ok {
		return
	}

	in, err := parseSectionForm(r)
	if err != nil {
		flashError(w, r, h.renderer, editURL, err.Error())
		return
	}

	section, err := h.queries.UpdatePageSection(r.Context(), store.UpdatePageSectionParams{
		PagePath:          in.pagePath,
		Name:              in.name,
		OrderPosition:     in.orderPosition,
		IsVisible:         in.isVisible,
		Content:           in.content,
		Styles:            in.styles,
		AnimationSettings: in.animation,
		UpdatedAt:         time.Now(),
		ID:                id,
	})
	if err != nil {
		slog.Error("failed to update page section", "error", err, "section_id", id)
		flashError(w, r, h.renderer, editURL, "Gagal menyimpan bagian")
		return
	}

	h.cache.InvalidateRoute(r.Context(), existing.PagePath)
	if section.PagePath != existing.PagePath {
		h.cache.InvalidateRoute(r.Context(), section.PagePath)
	}
	slog.Info("page section updated", "section_id", section.ID, "page_path", section.PagePath,
		"user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectSections, "Bagian disimpan")
}

// Delete removes a section.
func (h *SectionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectSections, "ID tidak valid")
		return
	}

	section, ok := requireEntityWithRedirect(w, r, h.renderer, redirectSections, "section", id,
		func(id int64) (store.PageSection, error) { return h.queries.GetPageSection(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.DeletePageSection(r.Context(), id); err != nil {
		slog.Error("failed to delete page section", "error", err, "section_id", id)
		flashError(w, r, h.renderer, redirectSections, "Gagal menghapus bagian")
		return
	}

	h.cache.InvalidateRoute(r.Context(), section.PagePath)
	slog.Info("page section deleted", "section_id", id, "page_path", section.PagePath,
		"user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectSections, "Bagian dihapus")
}

type sectionFormInput struct {
	pagePath      string
	name          string
	orderPosition int64
	isVisible     bool
	content       string
	styles        string
	animation     string
}

// parseSectionForm validates the whole submission before anything is
// persisted. Every blob must parse as a JSON object; the first failure
// aborts the save.
func parseSectionForm(r *http.Request) (sectionFormInput, error) {
	in := sectionFormInput{
		pagePath:      strings.TrimSpace(r.FormValue("page_path")),
		name:          strings.TrimSpace(r.FormValue("name")),
		orderPosition: int64(atoiDefault(r.FormValue("order_position"), 0)),
		isVisible:     r.FormValue("is_visible") == "on",
	}

	if in.pagePath == "" || !strings.HasPrefix(in.pagePath, "/") {
		return in, fmt.Errorf("page path harus diawali dengan \"/\"")
	}
	if in.name == "" {
		return in, fmt.Errorf("nama bagian wajib diisi")
	}

	var err error
	if in.content, err = normalizeJSONObject(r.FormValue("content")); err != nil {
		return in, fmt.Errorf("content bukan objek JSON yang valid: %v", err)
	}
	if in.styles, err = normalizeJSONObject(r.FormValue("styles")); err != nil {
		return in, fmt.Errorf("styles bukan objek JSON yang valid: %v", err)
	}
	if in.animation, err = normalizeJSONObject(r.FormValue("animation_settings")); err != nil {
		return in, fmt.Errorf("animation settings bukan objek JSON yang valid: %v", err)
	}
	return in, nil
}

// normalizeJSONObject parses s as a JSON object and returns its compact
// form. Empty input normalizes to "{}".
func normalizeJSONObject(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "{}", nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return "", err
	}
	compact, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(compact), nil
}
