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
)

// StaffHandler manages teacher and staff profiles.
type StaffHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	cache    *cache.Manager
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager) *StaffHandler {
	return &StaffHandler{
		queries:  store.New(db),
		renderer: renderer,
		cache:    cacheManager,
	}
}

// List renders all staff rows.
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	staff, err := h.queries.ListStaff(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list staff", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/staff_list", render.TemplateData{
		Title: "Tenaga Pendidik",
		Data:  map[string]any{"Staff": staff},
	}); err != nil {
		logAndInternalError(w, "rendering staff list", "error", err)
	}
}

// NewForm renders the create-staff form.
func (h *StaffHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/staff_form", render.TemplateData{
		Title: "Profil Baru",
		Data:  map[string]any{"Member": store.Staff{IsActive: true}, "IsNew": true},
	}); err != nil {
		logAndInternalError(w, "rendering staff form", "error", err)
	}
}

// Create handles the create-staff form submission.
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectStaff) {
		return
	}

	in, err := parseStaffForm(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectStaff+RouteSuffixNew, err.Error())
		return
	}

	now := time.Now()
	member, err := h.queries.CreateStaff(r.Context(), store.CreateStaffParams{
		Name:      in.name,
		Subject:   in.subject,
		PhotoUrl:  in.photoURL,
		Bio:       in.bio,
		SortOrder: in.sortOrder,
		IsActive:  in.isActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.Error("failed to create staff", "error", err)
		flashError(w, r, h.renderer, redirectStaff, "Gagal membuat profil")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/tentang-kami")
	slog.Info("staff created", "staff_id", member.ID, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectStaff, "Profil dibuat")
}

// EditForm renders the edit form for one staff member.
func (h *StaffHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectStaff, "ID tidak valid")
		return
	}

	member, ok := requireEntityWithRedirect(w, r, h.renderer, redirectStaff, "staff", id,
		func(id int64) (store.Staff, error) { return h.queries.GetStaff(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/staff_form", render.TemplateData{
		Title: "Ubah Profil",
		Data:  map[string]any{"Member": member, "IsNew": false},
	}); err != nil {
		logAndInternalError(w, "rendering staff form", "error", err)
	}
}

// Update handles the edit-staff form submission.
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectStaff, "ID tidak valid")
		return
	}
	editURL := fmt.Sprintf("%s/%d", redirectStaff, id)

	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	in, err := parseStaffForm(r)
	if err != nil {
		flashError(w, r, h.renderer, editURL, err.Error())
		return
	}

	member, err := h.queries.UpdateStaff(r.Context(), store.UpdateStaffParams{
		Name:      in.name,
		Subject:   in.subject,
		PhotoUrl:  in.photoURL,
		Bio:       in.bio,
		SortOrder: in.sortOrder,
		IsActive:  in.isActive,
		UpdatedAt: time.Now(),
		ID:        id,
	})
	if err != nil {
		slog.Error("failed to update staff", "error", err, "staff_id", id)
		flashError(w, r, h.renderer, editURL, "Gagal menyimpan profil")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/tentang-kami")
	slog.Info("staff updated", "staff_id", member.ID, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectStaff, "Profil disimpan")
}

// Delete removes a staff member.
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectStaff, "ID tidak valid")
		return
	}

	if err := h.queries.DeleteStaff(r.Context(), id); err != nil {
		slog.Error("failed to delete staff", "error", err, "staff_id", id)
		flashError(w, r, h.renderer, redirectStaff, "Gagal menghapus profil")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/tentang-kami")
	slog.Info("staff deleted", "staff_id", id, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectStaff, "Profil dihapus")
}

type staffFormInput struct {
	name      string
	subject   string
	photoURL  string
	bio       string
	sortOrder int64
	isActive  bool
}

func parseStaffForm(r *http.Request) (staffFormInput, error) {
	in := staffFormInput{
		name:      strings.TrimSpace(r.FormValue("name")),
		subject:   strings.TrimSpace(r.FormValue("subject")),
		photoURL:  strings.TrimSpace(r.FormValue("photo_url")),
		bio:       strings.TrimSpace(r.FormValue("bio")),
		sortOrder: int64(atoiDefault(r.FormValue("sort_order"), 0)),
		isActive:  r.FormValue("is_active") == "on",
	}
	if in.name == "" {
		return in, fmt.Errorf("nama wajib diisi")
	}
	return in, nil
}
