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

// PartnersHandler manages industry partner records.
type PartnersHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	cache    *cache.Manager
}

// NewPartnersHandler creates a new PartnersHandler.
func NewPartnersHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager) *PartnersHandler {
	return &PartnersHandler{
		queries:  store.New(db),
		renderer: renderer,
		cache:    cacheManager,
	}
}

// List renders all partners.
func (h *PartnersHandler) List(w http.ResponseWriter, r *http.Request) {
	partners, err := h.queries.ListPartners(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list partners", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/partners_list", render.TemplateData{
		Title: "Mitra Industri",
		Data:  map[string]any{"Partners": partners},
	}); err != nil {
		logAndInternalError(w, "rendering partners list", "error", err)
	}
}

// NewForm renders the create-partner form.
func (h *PartnersHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/partners_form", render.TemplateData{
		Title: "Mitra Baru",
		Data:  map[string]any{"Partner": store.Partner{IsActive: true}, "IsNew": true},
	}); err != nil {
		logAndInternalError(w, "rendering partner form", "error", err)
	}
}

// Create handles the create-partner form submission.
func (h *PartnersHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectPartners) {
		return
	}

	in, err := parsePartnerForm(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPartners+RouteSuffixNew, err.Error())
		return
	}

	now := time.Now()
	partner, err := h.queries.CreatePartner(r.Context(), store.CreatePartnerParams{
		Name:       in.name,
		LogoUrl:    in.logoURL,
		WebsiteUrl: in.websiteURL,
		SortOrder:  in.sortOrder,
		IsActive:   in.isActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		slog.Error("failed to create partner", "error", err)
		flashError(w, r, h.renderer, redirectPartners, "Gagal membuat mitra")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/")
	slog.Info("partner created", "partner_id", partner.ID, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectPartners, "Mitra dibuat")
}

// EditForm renders the edit form for one partner.
func (h *PartnersHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPartners, "ID tidak valid")
		return
	}

	partner, ok := requireEntityWithRedirect(w, r, h.renderer, redirectPartners, "partner", id,
		func(id int64) (store.Partner, error) { return h.queries.GetPartner(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/partners_form", render.TemplateData{
		Title: "Ubah Mitra",
		Data:  map[string]any{"Partner": partner, "IsNew": false},
	}); err != nil {
		logAndInternalError(w, "rendering partner form", "error", err)
	}
}

// Update handles the edit-partner form submission.
func (h *PartnersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPartners, "ID tidak valid")
		return
	}
	editURL := fmt.Sprintf("%s/%d", redirectPartners, id)

	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	in, err := parsePartnerForm(r)
	if err != nil {
		flashError(w, r, h.renderer, editURL, err.Error())
		return
	}

	partner, err := h.queries.UpdatePartner(r.Context(), store.UpdatePartnerParams{
		Name:       in.name,
		LogoUrl:    in.logoURL,
		WebsiteUrl: in.websiteURL,
		SortOrder:  in.sortOrder,
		IsActive:   in.isActive,
		UpdatedAt:  time.Now(),
		ID:         id,
	})
	if err != nil {
		slog.Error("failed to update partner", "error", err, "partner_id", id)
		flashError(w, r, h.renderer, editURL, "Gagal menyimpan mitra")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/")
	slog.Info("partner updated", "partner_id", partner.ID, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectPartners, "Mitra disimpan")
}

// Delete removes a partner.
func (h *PartnersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPartners, "ID tidak valid")
		return
	}

	if err := h.queries.DeletePartner(r.Context(), id); err != nil {
		slog.Error("failed to delete partner", "error", err, "partner_id", id)
		flashError(w, r, h.renderer, redirectPartners, "Gagal menghapus mitra")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/")
	slog.Info("partner deleted", "partner_id", id, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectPartners, "Mitra dihapus")
}

type partnerFormInput struct {
	name       string
	logoURL    string
	websiteURL string
	sortOrder  int64
	isActive   bool
}

func parsePartnerForm(r *http.Request) (partnerFormInput, error) {
	in := partnerFormInput{
		name:       strings.TrimSpace(r.FormValue("name")),
		logoURL:    strings.TrimSpace(r.FormValue("logo_url")),
		websiteURL: strings.TrimSpace(r.FormValue("website_url")),
		sortOrder:  int64(atoiDefault(r.FormValue("sort_order"), 0)),
		isActive:   r.FormValue("is_active") == "on",
	}
	if in.name == "" {
		return in, fmt.Errorf("nama mitra wajib diisi")
	}
	return in, nil
}
