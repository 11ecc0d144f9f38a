// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/settings"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

const maxSettingsDocumentBytes = 256 << 10

// APIHandler serves the JSON API under /api/v1.
type APIHandler struct {
	queries *store.Queries
	cache   *cache.Manager
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(db *sql.DB, cacheManager *cache.Manager) *APIHandler {
	return &APIHandler{
		queries: store.New(db),
		cache:   cacheManager,
	}
}

// GetSettings returns a page's stored settings document. An absent
// document is returned as an empty object.
func (a *APIHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	pageName := chi.URLParam(r, "page")
	if !model.IsKnownPage(pageName) {
		writeJSONError(w, http.StatusNotFound, "unknown settings page")
		return
	}

	if doc, err := a.cache.GetSettings(r.Context(), pageName); err == nil {
		writeRawJSON(w, http.StatusOK, doc)
		return
	}

	doc, err := settings.Raw(r.Context(), a.queries, pageName)
	if err != nil {
		slog.Error("failed to load settings document", "error", err, "page", pageName)
		writeJSONError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	if err := a.cache.SetSettings(r.Context(), pageName, doc); err != nil {
		slog.Warn("failed to cache settings document", "error", err, "page", pageName)
	}
	writeRawJSON(w, http.StatusOK, doc)
}

// PutSettings replaces a page's stored document wholesale with the
// request body. The body must be a JSON object.
func (a *APIHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	pageName := chi.URLParam(r, "page")
	if !model.IsKnownPage(pageName) {
		writeJSONError(w, http.StatusNotFound, "unknown settings page")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSettingsDocumentBytes+1))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) > maxSettingsDocumentBytes {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "settings document too large")
		return
	}

	if err := settings.UpdateRaw(r.Context(), a.queries, pageName, body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "document must be a JSON object: "+err.Error())
		return
	}

	a.cache.InvalidateSettings(r.Context(), pageName)
	slog.Info("settings document replaced via api", "page", pageName,
		"user_id", userIDFromRequest(r), "category", "settings")
	writeJSONSuccess(w, map[string]any{"page": pageName})
}

type partnerResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
	SortOrder  int64  `json:"sort_order"`
}

// ListPartners returns the active partners in display order.
func (a *APIHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := a.queries.ListActivePartners(r.Context())
	if err != nil {
		slog.Error("failed to list partners", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to list partners")
		return
	}

	out := make([]partnerResponse, 0, len(partners))
	for _, p := range partners {
		out = append(out, partnerResponse{
			ID:         p.ID,
			Name:       p.Name,
			LogoURL:    p.LogoUrl,
			WebsiteURL: p.WebsiteUrl,
			SortOrder:  p.SortOrder,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"partners": out})
}

type newsResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	CoverURL    string    `json:"cover_url"`
	PublishedAt time.Time `json:"published_at"`
}

// ListNews returns the latest published articles.
func (a *APIHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	articles, err := a.queries.ListPublishedNews(r.Context(), store.ListPublishedNewsParams{
		Limit:  20,
		Offset: 0,
	})
	if err != nil {
		slog.Error("failed to list news", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to list news")
		return
	}

	out := make([]newsResponse, 0, len(articles))
	for _, n := range articles {
		item := newsResponse{
			ID:       n.ID,
			Title:    n.Title,
			Slug:     n.Slug,
			Excerpt:  n.Excerpt,
			CoverURL: n.CoverUrl,
		}
		if n.PublishedAt.Valid {
			item.PublishedAt = n.PublishedAt.Time
		}
		out = append(out, item)
	}
	writeJSON(w, http.StatusOK, map[string]any{"news": out})
}
