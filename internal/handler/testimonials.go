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

// TestimonialsHandler manages alumni and parent testimonials.
type TestimonialsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	cache    *cache.Manager
}

// NewTestimonialsHandler creates a new TestimonialsHandler.
func NewTestimonialsHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager) *TestimonialsHandler {
	return &TestimonialsHandler{
		queries:  store.New(db),
		renderer: renderer,
		cache:    cacheManager,
	}
}

// List renders all testimonials.
func (h *TestimonialsHandler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.queries.ListTestimonials(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list testimonials", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/testimonials_list", render.TemplateData{
		Title: "Testimoni",
		Data:  map[string]any{"Testimonials": testimonials},
	}); err != nil {
		logAndInternalError(w, "rendering testimonials list", "error", err)
	}
}

// NewForm renders the create-testimonial form.
func (h *TestimonialsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/testimonials_form", render.TemplateData{
		Title: "Testimoni Baru",
		Data:  map[string]any{"Testimonial": store.Testimonial{IsActive: true}, "IsNew": true},
	}); err != nil {
		logAndInternalError(w, "rendering testimonial form", "error", err)
	}
}

// Create handles the create-testimonial form submission.
func (h *TestimonialsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectTestimonials) {
		return
	}

	in, err := parseTestimonialForm(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectTestimonials+RouteSuffixNew, err.Error())
		return
	}

	now := time.Now()
	testimonial, err := h.queries.CreateTestimonial(r.Context(), store.CreateTestimonialParams{
		Author:    in.author,
		Role:      in.role,
		Quote:     in.quote,
		PhotoUrl:  in.photoURL,
		SortOrder: in.sortOrder,
		IsActive:  in.isActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.Error("failed to create testimonial", "error", err)
		flashError(w, r, h.renderer, redirectTestimonials, "Gagal membuat testimoni")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/")
	slog.Info("testimonial created", "testimonial_id", testimonial.ID,
		"user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectTestimonials, "Testimoni dibuat")
}

// EditForm renders the edit form for one testimonial.
func (h *TestimonialsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectTestimonials, "ID tidak valid")
		return
	}

	testimonial, ok := requireEntityWithRedirect(w, r, h.renderer, redirectTestimonials, "testimonial", id,
		func(id int64) (store.Testimonial, error) { return h.queries.GetTestimonial(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/testimonials_form", render.TemplateData{
		Title: "Ubah Testimoni",
		Data:  map[string]any{"Testimonial": testimonial, "IsNew": false},
	}); err != nil {
		logAndInternalError(w, "rendering testimonial form", "error", err)
	}
}

// Update handles the edit-testimonial form submission.
func (h *TestimonialsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectTestimonials, "ID tidak valid")
		return
	}
	editURL := fmt.Sprintf("%s/%d", redirectTestimonials, id)

	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	in, err := parseTestimonialForm(r)
	if err != nil {
		flashError(w, r, h.renderer, editURL, err.Error())
		return
	}

	testimonial, err := h.queries.UpdateTestimonial(r.Context(), store.UpdateTestimonialParams{
		Author:    in.author,
		Role:      in.role,
		Quote:     in.quote,
		PhotoUrl:  in.photoURL,
		SortOrder: in.sortOrder,
		IsActive:  in.isActive,
		UpdatedAt: time.Now(),
		ID:        id,
	})
	if err != nil {
		slog.Error("failed to update testimonial", "error", err, "testimonial_id", id)
		flashError(w, r, h.renderer, editURL, "Gagal menyimpan testimoni")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/")
	slog.Info("testimonial updated", "testimonial_id", testimonial.ID,
		"user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectTestimonials, "Testimoni disimpan")
}

// Delete removes a testimonial.
func (h *TestimonialsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectTestimonials, "ID tidak valid")
		return
	}

	if err := h.queries.DeleteTestimonial(r.Context(), id); err != nil {
		slog.Error("failed to delete testimonial", "error", err, "testimonial_id", id)
		flashError(w, r, h.renderer, redirectTestimonials, "Gagal menghapus testimoni")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/")
	slog.Info("testimonial deleted", "testimonial_id", id, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectTestimonials, "Testimoni dihapus")
}

type testimonialFormInput struct {
	author    string
	role      string
	quote     string
	photoURL  string
	sortOrder int64
	isActive  bool
}

func parseTestimonialForm(r *http.Request) (testimonialFormInput, error) {
	in := testimonialFormInput{
		author:    strings.TrimSpace(r.FormValue("author")),
		role:      strings.TrimSpace(r.FormValue("role")),
		quote:     strings.TrimSpace(r.FormValue("quote")),
		photoURL:  strings.TrimSpace(r.FormValue("photo_url")),
		sortOrder: int64(atoiDefault(r.FormValue("sort_order"), 0)),
		isActive:  r.FormValue("is_active") == "on",
	}
	if in.author == "" {
		return in, fmt.Errorf("nama penulis wajib diisi")
	}
	if in.quote == "" {
		return in, fmt.Errorf("kutipan wajib diisi")
	}
	return in, nil
}
