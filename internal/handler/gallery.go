// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/upload"
)

const (
	thumbMaxWidth  = 480
	thumbMaxHeight = 360
)

// GalleryHandler manages the photo gallery, including image uploads.
type GalleryHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	cache    *cache.Manager
	uploader *upload.Uploader
}

// NewGalleryHandler creates a new GalleryHandler. The uploader may be nil
// when object storage is not configured; uploads are then rejected with a
// flash message instead of failing at PUT time.
func NewGalleryHandler(db *sql.DB, renderer *render.Renderer, cacheManager *cache.Manager, uploader *upload.Uploader) *GalleryHandler {
	return &GalleryHandler{
		queries:  store.New(db),
		renderer: renderer,
		cache:    cacheManager,
		uploader: uploader,
	}
}

// List renders the gallery management screen.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListGalleryItems(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list gallery items", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/gallery_list", render.TemplateData{
		Title: "Galeri",
		Data: map[string]any{
			"Items":          items,
			"UploadsEnabled": h.uploader != nil,
		},
	}); err != nil {
		logAndInternalError(w, "rendering gallery list", "error", err)
	}
}

// Upload handles a multipart image upload: validates it, stores the full
// image and a generated thumbnail, then records the gallery row.
func (h *GalleryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		flashError(w, r, h.renderer, redirectGallery, "Penyimpanan objek belum dikonfigurasi")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		flashError(w, r, h.renderer, redirectGallery, "Form upload tidak valid")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		flashError(w, r, h.renderer, redirectGallery, "Berkas gambar wajib dipilih")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logAndInternalError(w, "failed to read upload", "error", err)
		return
	}

	contentType := header.Header.Get("Content-Type")
	in := upload.Input{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	}
	if err := h.uploader.Validate(in); err != nil {
		flashError(w, r, h.renderer, redirectGallery, err.Error())
		return
	}

	imageURL, err := h.uploader.Upload(r.Context(), in)
	if err != nil {
		slog.Error("failed to store gallery image", "error", err, "filename", header.Filename, "category", "upload")
		flashError(w, r, h.renderer, redirectGallery, "Gagal mengunggah gambar")
		return
	}

	// Thumbnail failure falls back to the full image
	thumbURL := imageURL
	if thumb, err := upload.Thumbnail(bytes.NewReader(data), thumbMaxWidth, thumbMaxHeight); err != nil {
		slog.Warn("thumbnail generation failed", "error", err, "filename", header.Filename, "category", "upload")
	} else {
		url, err := h.uploader.Upload(r.Context(), upload.Input{
			Filename:    "thumb-" + header.Filename,
			ContentType: "image/jpeg",
			Size:        int64(len(thumb)),
			Body:        bytes.NewReader(thumb),
		})
		if err != nil {
			slog.Warn("failed to store thumbnail", "error", err, "category", "upload")
		} else {
			thumbURL = url
		}
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = header.Filename
	}

	item, err := h.queries.CreateGalleryItem(r.Context(), store.CreateGalleryItemParams{
		Title:     title,
		ImageUrl:  imageURL,
		ThumbUrl:  thumbURL,
		SortOrder: int64(atoiDefault(r.FormValue("sort_order"), 0)),
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to create gallery item", "error", err)
		flashError(w, r, h.renderer, redirectGallery, "Gagal menyimpan item galeri")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/galeri")
	slog.Info("gallery item uploaded", "item_id", item.ID, "user_id", userIDFromRequest(r), "category", "upload")
	flashSuccess(w, r, h.renderer, redirectGallery, "Gambar diunggah")
}

// Update changes a gallery item's title and sort order.
func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectGallery, "ID tidak valid")
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, redirectGallery) {
		return
	}

	existing, ok := requireEntityWithRedirect(w, r, h.renderer, redirectGallery, "gallery item", id,
		func(id int64) (store.GalleryItem, error) { return h.queries.GetGalleryItem(r.Context(), id) })
	if !ok {
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = existing.Title
	}

	if _, err := h.queries.UpdateGalleryItem(r.Context(), store.UpdateGalleryItemParams{
		Title:     title,
		ImageUrl:  existing.ImageUrl,
		ThumbUrl:  existing.ThumbUrl,
		SortOrder: int64(atoiDefault(r.FormValue("sort_order"), int(existing.SortOrder))),
		ID:        id,
	}); err != nil {
		slog.Error("failed to update gallery item", "error", err, "item_id", id)
		flashError(w, r, h.renderer, redirectGallery, "Gagal menyimpan item galeri")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/galeri")
	flashSuccess(w, r, h.renderer, redirectGallery, "Item galeri disimpan")
}

// Delete removes a gallery item. The stored objects are left in place;
// object storage cleanup is a manual operation.
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectGallery, "ID tidak valid")
		return
	}

	if err := h.queries.DeleteGalleryItem(r.Context(), id); err != nil {
		slog.Error("failed to delete gallery item", "error", err, "item_id", id)
		flashError(w, r, h.renderer, redirectGallery, "Gagal menghapus item galeri")
		return
	}

	h.cache.InvalidateRoute(r.Context(), "/galeri")
	slog.Info("gallery item deleted", "item_id", id, "user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectGallery, "Item galeri dihapus")
}
