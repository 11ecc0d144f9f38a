package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/auth"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/middleware"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/testutil"
)

func createTestUserRecord(t *testing.T, db *sql.DB, email, password, role string) store.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Name:         "Petugas Uji",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return user
}

func postLogin(t *testing.T, h *AuthHandler, sm *scs.SessionManager, email, password string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = requestWithSession(t, sm, req)
	w := httptest.NewRecorder()
	h.Login(w, req)
	return w, req
}

func TestLogin_ValidCredentialsRedirectToAdmin(t *testing.T) {
	db := testutil.TestDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm)
	user := createTestUserRecord(t, db, "admin@smkmustaqbal.sch.id", "rahasia-sekali", RoleAdmin)

	w, req := postLogin(t, h, sm, "admin@smkmustaqbal.sch.id", "rahasia-sekali")

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, redirectAdmin, w.Header().Get("Location"))
	assert.Equal(t, user.ID, sm.GetInt64(req.Context(), middleware.SessionKeyUserID))
}

func TestLogin_WrongPasswordRedirectsBackToLogin(t *testing.T) {
	db := testutil.TestDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm)
	createTestUserRecord(t, db, "admin@smkmustaqbal.sch.id", "rahasia-sekali", RoleAdmin)

	w, req := postLogin(t, h, sm, "admin@smkmustaqbal.sch.id", "salah")

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, redirectLogin, w.Header().Get("Location"))
	assert.Zero(t, sm.GetInt64(req.Context(), middleware.SessionKeyUserID))
}

func TestLogin_UnknownUserRedirectsBackToLogin(t *testing.T) {
	db := testutil.TestDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm)

	w, _ := postLogin(t, h, sm, "tidak-ada@smkmustaqbal.sch.id", "apapun")

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, redirectLogin, w.Header().Get("Location"))
}

func TestLogout_ClearsSession(t *testing.T) {
	db := testutil.TestDB(t)
	sm := testSessionManager(t)
	h := NewAuthHandler(db, testRenderer(t, sm), sm)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req = requestWithSession(t, sm, req)
	sm.Put(req.Context(), middleware.SessionKeyUserID, int64(42))

	w := httptest.NewRecorder()
	h.Logout(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Zero(t, sm.GetInt64(req.Context(), middleware.SessionKeyUserID))
}
