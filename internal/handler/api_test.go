package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/testutil"
)

func newTestAPIHandler(t *testing.T) (*APIHandler, *sql.DB) {
	t.Helper()
	db := testutil.TestDB(t)
	return NewAPIHandler(db, testCache(t)), db
}

func createTestPartner(t *testing.T, db *sql.DB, name string, sortOrder int64, active bool) {
	t.Helper()
	now := time.Now()
	_, err := store.New(db).CreatePartner(context.Background(), store.CreatePartnerParams{
		Name:      name,
		SortOrder: sortOrder,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
}

func TestAPIListPartners_OrderedBySortOrder(t *testing.T) {
	h, db := newTestAPIHandler(t)

	// created out of order on purpose
	createTestPartner(t, db, "Gamma", 3, true)
	createTestPartner(t, db, "Alpha", 1, true)
	createTestPartner(t, db, "Beta", 2, true)
	createTestPartner(t, db, "Hidden", 0, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners", nil)
	w := httptest.NewRecorder()
	h.ListPartners(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Partners []partnerResponse `json:"partners"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Partners, 3)
	assert.Equal(t, "Alpha", resp.Partners[0].Name)
	assert.Equal(t, "Beta", resp.Partners[1].Name)
	assert.Equal(t, "Gamma", resp.Partners[2].Name)
}

func TestAPIGetSettings_AbsentDocumentIsEmptyObject(t *testing.T) {
	h, _ := newTestAPIHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings/beranda", nil)
	req = requestWithURLParams(req, map[string]string{"page": "beranda"})
	w := httptest.NewRecorder()
	h.GetSettings(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}

func TestAPIGetSettings_UnknownPageIs404(t *testing.T) {
	h, _ := newTestAPIHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings/halaman-lain", nil)
	req = requestWithURLParams(req, map[string]string{"page": "halaman-lain"})
	w := httptest.NewRecorder()
	h.GetSettings(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIPutSettings_RoundTrip(t *testing.T) {
	h, _ := newTestAPIHandler(t)

	doc := `{"hero":{"title":"SMK Mustaqbal"}}`
	put := httptest.NewRequest(http.MethodPut, "/api/v1/settings/beranda", strings.NewReader(doc))
	put = requestWithURLParams(put, map[string]string{"page": "beranda"})
	w := httptest.NewRecorder()
	h.PutSettings(w, put)
	require.Equal(t, http.StatusOK, w.Code)

	get := httptest.NewRequest(http.MethodGet, "/api/v1/settings/beranda", nil)
	get = requestWithURLParams(get, map[string]string{"page": "beranda"})
	w = httptest.NewRecorder()
	h.GetSettings(w, get)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, doc, w.Body.String())
}

func TestAPIPutSettings_RejectsNonObjectBody(t *testing.T) {
	h, _ := newTestAPIHandler(t)

	put := httptest.NewRequest(http.MethodPut, "/api/v1/settings/beranda", strings.NewReader(`["a","b"]`))
	put = requestWithURLParams(put, map[string]string{"page": "beranda"})
	w := httptest.NewRecorder()
	h.PutSettings(w, put)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
