// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

func TestRequireRole(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		minRole        string
		userRole       string
		expectRedirect bool
		expectForbid   bool
	}{
		{"admin can access admin route", "admin", "admin", false, false},
		{"editor cannot access admin route", "admin", "editor", false, true},
		{"viewer cannot access admin route", "admin", "viewer", false, true},
		{"unknown role cannot access admin route", "admin", "unknown", false, true},

		{"admin can access editor route", "editor", "admin", false, false},
		{"editor can access editor route", "editor", "editor", false, false},
		{"viewer cannot access editor route", "editor", "viewer", false, true},

		{"viewer can access viewer route", "viewer", "viewer", false, false},
		{"unknown role cannot access viewer route", "viewer", "unknown", false, true},

		{"no user redirects to login", "editor", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := RequireRole(tt.minRole)

			req := httptest.NewRequest("GET", "/admin/test", nil)
			if tt.userRole != "" {
				user := store.User{ID: 1, Role: tt.userRole}
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, user))
			}

			rec := httptest.NewRecorder()
			mw(handler).ServeHTTP(rec, req)

			switch {
			case tt.expectRedirect:
				if rec.Code != http.StatusSeeOther {
					t.Errorf("status = %d, want redirect %d", rec.Code, http.StatusSeeOther)
				}
				if loc := rec.Header().Get("Location"); loc != "/login" {
					t.Errorf("redirect location = %q, want /login", loc)
				}
			case tt.expectForbid:
				if rec.Code != http.StatusForbidden {
					t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
				}
			default:
				if rec.Code != http.StatusOK {
					t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
				}
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if GetUser(req) != nil {
		t.Error("expected nil user for empty context")
	}
	if GetUserID(req) != 0 {
		t.Error("expected zero user ID for empty context")
	}

	user := store.User{ID: 42, Email: "editor@mustaqbal.sch.id", Role: "editor"}
	req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, user))

	got := GetUser(req)
	if got == nil || got.ID != 42 {
		t.Errorf("GetUser = %+v, want ID 42", got)
	}
	if GetUserID(req) != 42 {
		t.Errorf("GetUserID = %d, want 42", GetUserID(req))
	}
}
