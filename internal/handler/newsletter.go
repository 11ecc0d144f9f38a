// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

// NewsletterHandler handles public subscriptions and the admin subscriber list.
type NewsletterHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(db *sql.DB, renderer *render.Renderer) *NewsletterHandler {
	return &NewsletterHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// Subscribe handles the public footer subscription form. Re-subscribing an
// existing address reactivates it.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	redirect := r.FormValue("redirect")
	if redirect == "" || !strings.HasPrefix(redirect, "/") {
		redirect = "/"
	}

	if !parseFormOrRedirect(w, r, h.renderer, redirect) {
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	if _, err := mail.ParseAddress(email); err != nil {
		flashError(w, r, h.renderer, redirect, "Alamat email tidak valid")
		return
	}

	if _, err := h.queries.CreateSubscriber(r.Context(), store.CreateSubscriberParams{
		Email:     email,
		CreatedAt: time.Now(),
	}); err != nil {
		slog.Error("failed to save subscriber", "error", err)
		flashError(w, r, h.renderer, redirect, "Pendaftaran gagal, silakan coba lagi")
		return
	}

	flashSuccess(w, r, h.renderer, redirect, "Terima kasih, Anda telah berlangganan")
}

// List renders the admin subscriber list.
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.queries.ListSubscribers(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list subscribers", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/newsletter_list", render.TemplateData{
		Title: "Pelanggan Buletin",
		Data:  map[string]any{"Subscribers": subscribers},
	}); err != nil {
		logAndInternalError(w, "rendering subscriber list", "error", err)
	}
}

// Delete removes a subscriber.
func (h *NewsletterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, "/admin/newsletter", "ID tidak valid")
		return
	}

	if err := h.queries.DeleteSubscriber(r.Context(), id); err != nil {
		slog.Error("failed to delete subscriber", "error", err, "subscriber_id", id)
		flashError(w, r, h.renderer, "/admin/newsletter", "Gagal menghapus pelanggan")
		return
	}

	flashSuccess(w, r, h.renderer, "/admin/newsletter", "Pelanggan dihapus")
}
