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
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/util"
)

// ProgramsHandler manages vocational program records.
type ProgramsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	cache    *cache.Manager
}

// NewProgramsHandler creates a new ProgramsHandler.
func NewProgramsHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager) *ProgramsHandler {
	return &ProgramsHandler{
		queries:  store.New(db),
		renderer: renderer,
		cache:    cacheManager,
	}
}

// List renders all programs.
func (h *ProgramsHandler) List(w http.ResponseWriter, r *http.Request) {
	programs, err := h.queries.ListPrograms(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list programs", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/programs_list", render.TemplateData{
		Title: "Program Keahlian",
		Data:  map[string]any{"Programs": programs},
	}); err != nil {
		logAndInternalError(w, "rendering programs list", "error", err)
	}
}

// NewForm renders the create-program form.
func (h *ProgramsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/programs_form", render.TemplateData{
		Title: "Program Baru",
		Data: map[string]any{
			"Program": store.Program{IsActive: true},
			"Icons":   model.ProgramIcons,
			"IsNew":   true,
		},
	}); err != nil {
		logAndInternalError(w, "rendering program form", "error", err)
	}
}

// Create handles the create-program form submission.
func (h *ProgramsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectPrograms) {
		return
	}

	in, err := parseProgramForm(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPrograms+RouteSuffixNew, err.Error())
		return
	}

	now := time.Now()
	program, err := h.queries.CreateProgram(r.Context(), store.CreateProgramParams{
		Name:        in.name,
		Slug:        in.slug,
		Icon:        in.icon,
		Description: in.description,
		SortOrder:   in.sortOrder,
		IsActive:    in.isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		slog.Error("failed to create program", "error", err)
		flashError(w, r, h.renderer, redirectPrograms, "Gagal membuat program")
		return
	}

	h.invalidateProgramRoutes(r)
	slog.Info("program created", "program_id", program.ID, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectPrograms, "Program dibuat")
}

// EditForm renders the edit form for one program.
func (h *ProgramsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPrograms, "ID tidak valid")
		return
	}

	program, ok := requireEntityWithRedirect(w, r, h.renderer, redirectPrograms, "program", id,
		func(id int64) (store.Program, error) { return h.queries.GetProgram(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/programs_form", render.TemplateData{
		Title: "Ubah Program",
		Data: map[string]any{
			"Program": program,
			"Icons":   model.ProgramIcons,
			"IsNew":   false,
		},
	}); err != nil {
		logAndInternalError(w, "rendering program form", "error", err)
	}
}

// Update handles the edit-program form submission.
func (h *ProgramsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPrograms, "ID tidak valid")
		return
	}
	editURL := fmt.Sprintf("%s/%d", redirectPrograms, id)

	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	in, err := parseProgramForm(r)
	if err != nil {
		flashError(w, r, h.renderer, editURL, err.Error())
		return
	}

	program, err := h.queries.UpdateProgram(r.Context(), store.UpdateProgramParams{
		Name:        in.name,
		Slug:        in.slug,
		Icon:        in.icon,
		Description: in.description,
		SortOrder:   in.sortOrder,
		IsActive:    in.isActive,
		UpdatedAt:   time.Now(),
		ID:          id,
	})
	if err != nil {
		slog.Error("failed to update program", "error", err, "program_id", id)
		flashError(w, r, h.renderer, editURL, "Gagal menyimpan program")
		return
	}

	h.invalidateProgramRoutes(r)
	slog.Info("program updated", "program_id", program.ID, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectPrograms, "Program disimpan")
}

// Delete removes a program.
func (h *ProgramsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPrograms, "ID tidak valid")
		return
	}

	if err := h.queries.DeleteProgram(r.Context(), id); err != nil {
		slog.Error("failed to delete program", "error", err, "program_id", id)
		flashError(w, r, h.renderer, redirectPrograms, "Gagal menghapus program")
		return
	}

	h.invalidateProgramRoutes(r)
	slog.Info("program deleted", "program_id", id, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectPrograms, "Program dihapus")
}

func (h *ProgramsHandler) invalidateProgramRoutes(r *http.Request) {
	h.cache.InvalidateRoute(r.Context(), "/program")
	h.cache.InvalidateRoute(r.Context(), "/")
}

type programFormInput struct {
	name        string
	slug        string
	icon        string
	description string
	sortOrder   int64
	isActive    bool
}

func parseProgramForm(r *http.Request) (programFormInput, error) {
	in := programFormInput{
		name:        strings.TrimSpace(r.FormValue("name")),
		slug:        strings.TrimSpace(r.FormValue("slug")),
		icon:        r.FormValue("icon"),
		description: strings.TrimSpace(r.FormValue("description")),
		sortOrder:   int64(atoiDefault(r.FormValue("sort_order"), 0)),
		isActive:    r.FormValue("is_active") == "on",
	}

	if in.name == "" {
		return in, fmt.Errorf("nama program wajib diisi")
	}
	if in.slug == "" {
		in.slug = util.Slugify(in.name)
	} else if !util.IsValidSlug(in.slug) {
		return in, fmt.Errorf("slug hanya boleh berisi huruf kecil, angka, dan tanda hubung")
	}
	if in.icon != "" && !model.IsValidProgramIcon(in.icon) {
		return in, fmt.Errorf("ikon %q tidak terdaftar", in.icon)
	}
	return in, nil
}
