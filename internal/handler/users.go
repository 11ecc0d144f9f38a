// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/auth"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

const minPasswordLength = 8

// UsersHandler manages staff accounts. Admin only.
type UsersHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(db *sql.DB, renderer *render.Renderer) *UsersHandler {
	return &UsersHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// List renders all accounts.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.queries.ListUsers(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list users", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/users_list", render.TemplateData{
		Title: "Pengguna",
		Data:  map[string]any{"Users": users},
	}); err != nil {
		logAndInternalError(w, "rendering users list", "error", err)
	}
}

// NewForm renders the create-account form.
func (h *UsersHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "admin/users_form", render.TemplateData{
		Title: "Pengguna Baru",
		Data: map[string]any{
			"User":  store.User{Role: RoleEditor},
			"Roles": []string{RoleAdmin, RoleEditor, RoleViewer},
			"IsNew": true,
		},
	}); err != nil {
		logAndInternalError(w, "rendering user form", "error", err)
	}
}

// Create handles the create-account form submission.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectUsers) {
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	name := strings.TrimSpace(r.FormValue("name"))
	role := r.FormValue("role")
	password := r.FormValue("password")

	if _, err := mail.ParseAddress(email); err != nil {
		flashError(w, r, h.renderer, redirectUsers+RouteSuffixNew, "Alamat email tidak valid")
		return
	}
	if name == "" {
		flashError(w, r, h.renderer, redirectUsers+RouteSuffixNew, "Nama wajib diisi")
		return
	}
	if model.RoleLevel(role) == 0 {
		flashError(w, r, h.renderer, redirectUsers+RouteSuffixNew, "Peran tidak dikenal")
		return
	}
	if len(password) < minPasswordLength {
		flashError(w, r, h.renderer, redirectUsers+RouteSuffixNew,
			fmt.Sprintf("Kata sandi minimal %d karakter", minPasswordLength))
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logAndInternalError(w, "failed to hash password", "error", err)
		return
	}

	now := time.Now()
	user, err := h.queries.CreateUser(r.Context(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		slog.Error("failed to create user", "error", err)
		flashError(w, r, h.renderer, redirectUsers, "Gagal membuat pengguna (email mungkin sudah terdaftar)")
		return
	}

	slog.Info("user created", "new_user_id", user.ID, "role", user.Role,
		"user_id", userIDFromRequest(r), "category", "auth")
	flashSuccess(w, r, h.renderer, redirectUsers, "Pengguna dibuat")
}

// EditForm renders the edit form for one account.
func (h *UsersHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectUsers, "ID tidak valid")
		return
	}

	user, ok := requireEntityWithRedirect(w, r, h.renderer, redirectUsers, "user", id,
		func(id int64) (store.User, error) { return h.queries.GetUserByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/users_form", render.TemplateData{
		Title: "Ubah Pengguna",
		Data: map[string]any{
			"User":  user,
			"Roles": []string{RoleAdmin, RoleEditor, RoleViewer},
			"IsNew": false,
		},
	}); err != nil {
		logAndInternalError(w, "rendering user form", "error", err)
	}
}

// Update handles the edit-account form submission. An empty password field
// leaves the current password unchanged.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectUsers, "ID tidak valid")
		return
	}
	editURL := fmt.Sprintf("%s/%d", redirectUsers, id)

	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	name := strings.TrimSpace(r.FormValue("name"))
	role := r.FormValue("role")

	if _, err := mail.ParseAddress(email); err != nil {
		flashError(w, r, h.renderer, editURL, "Alamat email tidak valid")
		return
	}
	if name == "" {
		flashError(w, r, h.renderer, editURL, "Nama wajib diisi")
		return
	}
	if model.RoleLevel(role) == 0 {
		flashError(w, r, h.renderer, editURL, "Peran tidak dikenal")
		return
	}

	// The last admin cannot demote themselves
	if id == userIDFromRequest(r) && role != RoleAdmin {
		flashError(w, r, h.renderer, editURL, "Tidak dapat menurunkan peran akun sendiri")
		return
	}

	now := time.Now()
	user, err := h.queries.UpdateUser(r.Context(), store.UpdateUserParams{
		Email:     email,
		Role:      role,
		Name:      name,
		UpdatedAt: now,
		ID:        id,
	})
	if err != nil {
		slog.Error("failed to update user", "error", err, "target_user_id", id)
		flashError(w, r, h.renderer, editURL, "Gagal menyimpan pengguna")
		return
	}

	if password := r.FormValue("password"); password != "" {
		if len(password) < minPasswordLength {
			flashError(w, r, h.renderer, editURL,
				fmt.Sprintf("Kata sandi minimal %d karakter", minPasswordLength))
			return
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			logAndInternalError(w, "failed to hash password", "error", err)
			return
		}
		if err := h.queries.UpdateUserPassword(r.Context(), store.UpdateUserPasswordParams{
			PasswordHash: hash,
			UpdatedAt:    now,
			ID:           id,
		}); err != nil {
			slog.Error("failed to update password", "error", err, "target_user_id", id)
			flashError(w, r, h.renderer, editURL, "Gagal mengubah kata sandi")
			return
		}
	}

	slog.Info("user updated", "target_user_id", user.ID, "role", user.Role,
		"user_id", userIDFromRequest(r), "category", "auth")
	flashSuccess(w, r, h.renderer, redirectUsers, "Pengguna disimpan")
}

// Delete removes an account. Self-deletion is rejected.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectUsers, "ID tidak valid")
		return
	}

	if id == userIDFromRequest(r) {
		flashError(w, r, h.renderer, redirectUsers, "Tidak dapat menghapus akun sendiri")
		return
	}

	if err := h.queries.DeleteUser(r.Context(), id); err != nil {
		slog.Error("failed to delete user", "error", err, "target_user_id", id)
		flashError(w, r, h.renderer, redirectUsers, "Gagal menghapus pengguna")
		return
	}

	slog.Info("user deleted", "target_user_id", id, "user_id", userIDFromRequest(r), "category", "auth")
	flashSuccess(w, r, h.renderer, redirectUsers, "Pengguna dihapus")
}
