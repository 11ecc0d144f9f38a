// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

const eventsPerPage = 50

// AdminHandler serves the dashboard and the event log screen.
type AdminHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	cache    *cache.Manager
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager) *AdminHandler {
	return &AdminHandler{
		queries:  store.New(db),
		renderer: renderer,
		cache:    cacheManager,
	}
}

// Dashboard renders the admin dashboard with content counts.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	newsCount, _ := h.queries.CountNews(ctx)
	ppdbCount, _ := h.queries.CountPpdbSubmissions(ctx)
	userCount, _ := h.queries.CountUsers(ctx)
	eventCount, _ := h.queries.CountEvents(ctx)

	pending, err := h.queries.ListPpdbSubmissionsByStatus(ctx, model.PPDBStatusNew)
	if err != nil {
		logAndInternalError(w, "failed to list pending submissions", "error", err)
		return
	}
	if len(pending) > 5 {
		pending = pending[:5]
	}

	data := map[string]any{
		"NewsCount":    newsCount,
		"PpdbCount":    ppdbCount,
		"UserCount":    userCount,
		"EventCount":   eventCount,
		"PendingPpdb":  pending,
		"PendingCount": len(pending),
	}
	if stats, ok := h.cache.Stats(); ok {
		data["CacheStats"] = stats
	}

	if err := h.renderer.Render(w, r, "admin/dashboard", render.TemplateData{
		Title: "Dasbor",
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "rendering dashboard", "error", err)
	}
}

// Events renders the event log with pagination.
func (h *AdminHandler) Events(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	total, err := h.queries.CountEvents(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to count events", "error", err)
		return
	}

	events, err := h.queries.ListEvents(r.Context(), store.ListEventsParams{
		Limit:  eventsPerPage,
		Offset: int64(page-1) * eventsPerPage,
	})
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	totalPages := int((total + eventsPerPage - 1) / eventsPerPage)
	if totalPages < 1 {
		totalPages = 1
	}

	if err := h.renderer.Render(w, r, "admin/events", render.TemplateData{
		Title: "Log Kejadian",
		Data: map[string]any{
			"Events":     events,
			"Page":       page,
			"TotalPages": totalPages,
			"Total":      total,
		},
	}); err != nil {
		logAndInternalError(w, "rendering event log", "error", err)
	}
}

// ClearCache flushes every cache namespace. Admin only.
func (h *AdminHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.cache.Clear(r.Context()); err != nil {
		flashError(w, r, h.renderer, redirectAdmin, "Gagal membersihkan cache")
		return
	}
	flashSuccess(w, r, h.renderer, redirectAdmin, "Cache dibersihkan")
}
