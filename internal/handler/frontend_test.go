package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/testutil"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/theme"
)

// newTestFrontendHandler builds a frontend handler with a fresh cache so
// route caching in one test run cannot leak into the next render.
func newTestFrontendHandler(t *testing.T, db *sql.DB) (*FrontendHandler, *scs.SessionManager) {
	t.Helper()
	sm := testSessionManager(t)
	projector := theme.NewProjector(store.New(db), testutil.TestLogger())
	h := NewFrontendHandler(db, testRenderer(t, sm), testCache(t), projector)
	return h, sm
}

func getPage(t *testing.T, h http.HandlerFunc, sm *scs.SessionManager, target string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = requestWithSession(t, sm, req)
	if params != nil {
		req = requestWithURLParams(req, params)
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestHome_AbsentSettingsRendersLikeEmptyDocument(t *testing.T) {
	db := testutil.TestDB(t)

	// no page_settings row at all
	h1, sm1 := newTestFrontendHandler(t, db)
	absent := getPage(t, h1.Home, sm1, "/", nil)
	require.Equal(t, http.StatusOK, absent.Code)

	// store an explicit empty document for the home page
	_, err := store.New(db).UpsertPageSetting(context.Background(), store.UpsertPageSettingParams{
		PageName:  "beranda",
		Content:   "{}",
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)

	h2, sm2 := newTestFrontendHandler(t, db)
	empty := getPage(t, h2.Home, sm2, "/", nil)
	require.Equal(t, http.StatusOK, empty.Code)

	assert.Equal(t, absent.Body.String(), empty.Body.String())
}

func TestHome_SecondRequestServedFromRouteCache(t *testing.T) {
	db := testutil.TestDB(t)
	h, sm := newTestFrontendHandler(t, db)

	first := getPage(t, h.Home, sm, "/", nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := getPage(t, h.Home, sm, "/", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestNewsDetail_UnknownSlugRenders404(t *testing.T) {
	db := testutil.TestDB(t)
	h, sm := newTestFrontendHandler(t, db)

	w := getPage(t, h.NewsDetail, sm, "/berita/tidak-ada", map[string]string{"slug": "tidak-ada"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewsDetail_DraftArticleIsNotServed(t *testing.T) {
	db := testutil.TestDB(t)
	h, sm := newTestFrontendHandler(t, db)

	now := time.Now()
	_, err := store.New(db).CreateNews(context.Background(), store.CreateNewsParams{
		Title:     "Draf",
		Slug:      "draf",
		Body:      "isi",
		BodyHtml:  "<p>isi</p>",
		Status:    "draft",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	w := getPage(t, h.NewsDetail, sm, "/berita/draf", map[string]string{"slug": "draf"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestThemeCSS_ServesProjectedStylesheet(t *testing.T) {
	db := testutil.TestDB(t)
	h, sm := newTestFrontendHandler(t, db)

	w := getPage(t, h.ThemeCSS, sm, "/theme.css", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), ":root")
}
