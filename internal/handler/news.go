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
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/markdown"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/middleware"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/util"
)

// NewsHandler manages news articles in the admin area.
type NewsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	cache    *cache.Manager
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager) *NewsHandler {
	return &NewsHandler{
		queries:  store.New(db),
		renderer: renderer,
		cache:    cacheManager,
	}
}

// List renders all articles, drafts included.
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.queries.ListNews(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list news", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/news_list", render.TemplateData{
		Title: "Berita",
		Data:  map[string]any{"Articles": articles},
	}); err != nil {
		logAndInternalError(w, "rendering news list", "error", err)
	}
}

// NewForm renders the create-article form.
func (h *NewsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/news_form", render.TemplateData{
		Title: "Berita Baru",
		Data:  map[string]any{"Article": store.News{Status: model.NewsStatusDraft}, "IsNew": true},
	}); err != nil {
		logAndInternalError(w, "rendering news form", "error", err)
	}
}

// Create handles the create-article form submission.
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectNews) {
		return
	}

	in, err := parseNewsForm(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectNews+RouteSuffixNew, err.Error())
		return
	}

	now := time.Now()
	var publishedAt sql.NullTime
	if in.status == model.NewsStatusPublished {
		publishedAt = sql.NullTime{Time: now, Valid: true}
	}

	var authorID sql.NullInt64
	if user := middleware.GetUser(r); user != nil {
		authorID = sql.NullInt64{Int64: user.ID, Valid: true}
	}

	article, err := h.queries.CreateNews(r.Context(), store.CreateNewsParams{
		Title:       in.title,
		Slug:        in.slug,
		Excerpt:     in.excerpt,
		Body:        in.body,
		BodyHtml:    in.bodyHTML,
		CoverUrl:    in.coverURL,
		Status:      in.status,
		PublishedAt: publishedAt,
		ScheduledAt: in.scheduledAt,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		slog.Error("failed to create news", "error", err)
		flashError(w, r, h.renderer, redirectNews, "Gagal membuat berita (slug mungkin sudah dipakai)")
		return
	}

	h.invalidateNewsRoutes(r)
	slog.Info("news created", "news_id", article.ID, "slug", article.Slug,
		"user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectNews, "Berita dibuat")
}

// EditForm renders the edit form for one article.
func (h *NewsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectNews, "ID tidak valid")
		return
	}

	article, ok := requireEntityWithRedirect(w, r, h.renderer, redirectNews, "news", id,
		func(id int64) (store.News, error) { return h.queries.GetNewsByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/news_form", render.TemplateData{
		Title: "Ubah Berita",
		Data:  map[string]any{"Article": article, "IsNew": false},
	}); err != nil {
		logAndInternalError(w, "rendering news form", "error", err)
	}
}

// Update handles the edit-article form submission.
func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectNews, "ID tidak valid")
		return
	}
	editURL := fmt.Sprintf("%s/%d", redirectNews, id)

	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	existing, ok := requireEntityWithRedirect(w, r, h.renderer, redirectNews, "news", id,
		func(id int64) (store.News, error) { return h.queries.GetNewsByID(r.Context(), id) })
	if !ok {
		return
	}

	in, err := parseNewsForm(r)
	if err != nil {
		flashError(w, r, h.renderer, editURL, err.Error())
		return
	}

	publishedAt := existing.PublishedAt
	if in.status == model.NewsStatusPublished && !publishedAt.Valid {
		publishedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	article, err := h.queries.UpdateNews(r.Context(), store.UpdateNewsParams{
		Title:       in.title,
		Slug:        in.slug,
		Excerpt:     in.excerpt,
		Body:        in.body,
		BodyHtml:    in.bodyHTML,
		CoverUrl:    in.coverURL,
		Status:      in.status,
		PublishedAt: publishedAt,
		ScheduledAt: in.scheduledAt,
		UpdatedAt:   time.Now(),
		ID:          id,
	})
	if err != nil {
		slog.Error("failed to update news", "error", err, "news_id", id)
		flashError(w, r, h.renderer, editURL, "Gagal menyimpan berita")
		return
	}

	h.invalidateNewsRoutes(r)
	h.cache.InvalidateRoute(r.Context(), "/berita/"+existing.Slug)
	if article.Slug != existing.Slug {
		h.cache.InvalidateRoute(r.Context(), "/berita/"+article.Slug)
	}
	slog.Info("news updated", "news_id", article.ID, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectNews, "Berita disimpan")
}

// Delete removes an article.
func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectNews, "ID tidak valid")
		return
	}

	article, ok := requireEntityWithRedirect(w, r, h.renderer, redirectNews, "news", id,
		func(id int64) (store.News, error) { return h.queries.GetNewsByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.DeleteNews(r.Context(), id); err != nil {
		slog.Error("failed to delete news", "error", err, "news_id", id)
		flashError(w, r, h.renderer, redirectNews, "Gagal menghapus berita")
		return
	}

	h.invalidateNewsRoutes(r)
	h.cache.InvalidateRoute(r.Context(), "/berita/"+article.Slug)
	slog.Info("news deleted", "news_id", id, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectNews, "Berita dihapus")
}

// invalidateNewsRoutes drops the cached listing page and the home page,
// which shows the latest articles.
func (h *NewsHandler) invalidateNewsRoutes(r *http.Request) {
	h.cache.InvalidateRoute(r.Context(), "/berita")
	h.cache.InvalidateRoute(r.Context(), "/")
}

type newsFormInput struct {
	title       string
	slug        string
	excerpt     string
	body        string
	bodyHTML    string
	coverURL    string
	status      string
	scheduledAt sql.NullTime
}

func parseNewsForm(r *http.Request) (newsFormInput, error) {
	in := newsFormInput{
		title:    strings.TrimSpace(r.FormValue("title")),
		slug:     strings.TrimSpace(r.FormValue("slug")),
		excerpt:  strings.TrimSpace(r.FormValue("excerpt")),
		body:     r.FormValue("body"),
		coverURL: strings.TrimSpace(r.FormValue("cover_url")),
		status:   r.FormValue("status"),
	}

	if in.title == "" {
		return in, fmt.Errorf("judul wajib diisi")
	}
	if in.slug == "" {
		in.slug = util.Slugify(in.title)
	} else if !util.IsValidSlug(in.slug) {
		return in, fmt.Errorf("slug hanya boleh berisi huruf kecil, angka, dan tanda hubung")
	}
	if in.status != model.NewsStatusDraft && in.status != model.NewsStatusPublished {
		return in, fmt.Errorf("status tidak dikenal")
	}

	if raw := strings.TrimSpace(r.FormValue("scheduled_at")); raw != "" {
		t, err := time.ParseInLocation("2006-01-02T15:04", raw, time.Local)
		if err != nil {
			return in, fmt.Errorf("format jadwal terbit tidak valid")
		}
		in.scheduledAt = sql.NullTime{Time: t, Valid: true}
	}

	html, err := markdown.Render(in.body)
	if err != nil {
		return in, fmt.Errorf("gagal memproses markdown: %v", err)
	}
	in.bodyHTML = html
	return in, nil
}
