package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/testutil"
)

func newTestPpdbHandler(t *testing.T) (*PpdbHandler, *scs.SessionManager, *store.Queries) {
	t.Helper()
	db := testutil.TestDB(t)
	sm := testSessionManager(t)
	return NewPpdbHandler(db, testRenderer(t, sm)), sm, store.New(db)
}

func postPpdbForm(t *testing.T, h *PpdbHandler, sm *scs.SessionManager, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ppdb", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = requestWithSession(t, sm, req)
	w := httptest.NewRecorder()
	h.Submit(w, req)
	return w
}

func TestPpdbSubmit_ValidFormStoresSubmissionAsNew(t *testing.T) {
	h, sm, queries := newTestPpdbHandler(t)

	w := postPpdbForm(t, h, sm, url.Values{
		"full_name":      {"Ahmad Fauzi"},
		"birth_date":     {"2010-04-17"},
		"gender":         {"L"},
		"origin_school":  {"SMPN 1 Cibinong"},
		"chosen_program": {"Teknik Komputer dan Jaringan"},
		"guardian_name":  {"Budi Fauzi"},
		"phone":          {"081234567890"},
		"address":        {"Jl. Raya Bogor KM 40"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	submissions, err := queries.ListPpdbSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, "Ahmad Fauzi", submissions[0].FullName)
	assert.Equal(t, model.PPDBStatusNew, submissions[0].Status)
}

func TestPpdbSubmit_MissingContactRejected(t *testing.T) {
	h, sm, queries := newTestPpdbHandler(t)

	w := postPpdbForm(t, h, sm, url.Values{
		"full_name":      {"Ahmad Fauzi"},
		"chosen_program": {"Teknik Komputer dan Jaringan"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/ppdb", w.Header().Get("Location"))

	count, err := queries.CountPpdbSubmissions(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPpdbSubmit_BadBirthDateRejected(t *testing.T) {
	h, sm, queries := newTestPpdbHandler(t)

	w := postPpdbForm(t, h, sm, url.Values{
		"full_name":      {"Ahmad Fauzi"},
		"chosen_program": {"Teknik Komputer dan Jaringan"},
		"phone":          {"081234567890"},
		"birth_date":     {"17-04-2010"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	count, err := queries.CountPpdbSubmissions(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPpdbExportCSV(t *testing.T) {
	h, _, queries := newTestPpdbHandler(t)

	_, err := queries.CreatePpdbSubmission(context.Background(), store.CreatePpdbSubmissionParams{
		FullName:      "Ahmad Fauzi",
		ChosenProgram: "Rekayasa Perangkat Lunak",
		Phone:         "081234567890",
		Status:        model.PPDBStatusNew,
		CreatedAt:     time.Now(),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/ppdb/export.csv", nil)
	w := httptest.NewRecorder()
	h.ExportCSV(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "nama_lengkap")
	assert.Contains(t, lines[1], "Ahmad Fauzi")
}
