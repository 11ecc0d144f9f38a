package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/testutil"
)

func newTestSectionsHandler(t *testing.T) (*SectionsHandler, *scs.SessionManager, *store.Queries) {
	t.Helper()
	db := testutil.TestDB(t)
	sm := testSessionManager(t)
	h := NewSectionsHandler(db, testRenderer(t, sm), testCache(t))
	return h, sm, store.New(db)
}

func createTestSection(t *testing.T, queries *store.Queries) store.PageSection {
	t.Helper()
	now := time.Now()
	section, err := queries.CreatePageSection(context.Background(), store.CreatePageSectionParams{
		PagePath:          "/",
		Name:              "Hero",
		OrderPosition:     1,
		IsVisible:         true,
		Content:           `{"heading":"Halo"}`,
		Styles:            `{"background-color":"#ffffff"}`,
		AnimationSettings: `{"type":"fade"}`,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	require.NoError(t, err)
	return section
}

func postSectionForm(t *testing.T, h *SectionsHandler, sm *scs.SessionManager, target string, id int64, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = requestWithSession(t, sm, req)
	if id != 0 {
		req = requestWithURLParams(req, map[string]string{"id": strconv.FormatInt(id, 10)})
	}
	w := httptest.NewRecorder()
	if id != 0 {
		h.Update(w, req)
	} else {
		h.Create(w, req)
	}
	return w
}

func TestSectionsUpdate_InvalidStylesLeavesAllBlobsUnchanged(t *testing.T) {
	h, sm, queries := newTestSectionsHandler(t)
	section := createTestSection(t, queries)

	form := url.Values{
		"page_path":          {"/"},
		"name":               {"Hero"},
		"order_position":     {"1"},
		"is_visible":         {"on"},
		"content":            {`{"heading":"Diganti"}`},
		"styles":             {`{not valid json`},
		"animation_settings": {`{"type":"slide"}`},
	}
	w := postSectionForm(t, h, sm, "/admin/sections/1", section.ID, form)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	// the invalid styles blob must abort the whole save: content and
	// animation stay at their previous values too
	got, err := queries.GetPageSection(context.Background(), section.ID)
	require.NoError(t, err)
	assert.Equal(t, section.Content, got.Content)
	assert.Equal(t, section.Styles, got.Styles)
	assert.Equal(t, section.AnimationSettings, got.AnimationSettings)
}

func TestSectionsUpdate_InvalidContentLeavesAllBlobsUnchanged(t *testing.T) {
	h, sm, queries := newTestSectionsHandler(t)
	section := createTestSection(t, queries)

	form := url.Values{
		"page_path":          {"/"},
		"name":               {"Hero"},
		"order_position":     {"1"},
		"content":            {`["not","an","object"]`},
		"styles":             {`{}`},
		"animation_settings": {`{}`},
	}
	w := postSectionForm(t, h, sm, "/admin/sections/1", section.ID, form)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	got, err := queries.GetPageSection(context.Background(), section.ID)
	require.NoError(t, err)
	assert.Equal(t, section.Content, got.Content)
	assert.Equal(t, section.Styles, got.Styles)
	assert.Equal(t, section.AnimationSettings, got.AnimationSettings)
}

func TestSectionsUpdate_ValidFormReplacesAllBlobs(t *testing.T) {
	h, sm, queries := newTestSectionsHandler(t)
	section := createTestSection(t, queries)

	form := url.Values{
		"page_path":          {"/"},
		"name":               {"Hero Baru"},
		"order_position":     {"2"},
		"is_visible":         {"on"},
		"content":            {`{"heading": "Baru"}`},
		"styles":             {`{"color": "#000000"}`},
		"animation_settings": {`{"type": "slide"}`},
	}
	w := postSectionForm(t, h, sm, "/admin/sections/1", section.ID, form)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	got, err := queries.GetPageSection(context.Background(), section.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hero Baru", got.Name)
	assert.Equal(t, int64(2), got.OrderPosition)
	// blobs are stored compacted
	assert.JSONEq(t, `{"heading":"Baru"}`, got.Content)
	assert.JSONEq(t, `{"color":"#000000"}`, got.Styles)
	assert.JSONEq(t, `{"type":"slide"}`, got.AnimationSettings)
}

func TestSectionsUpdate_MovesSectionToAnotherPage(t *testing.T) {
	h, sm, queries := newTestSectionsHandler(t)
	section := createTestSection(t, queries)

	// render and cache both routes, then move the section
	ctx := context.Background()
	require.NoError(t, h.cache.SetRoute(ctx, "/", []byte("beranda lama")))
	require.NoError(t, h.cache.SetRoute(ctx, "/galeri", []byte("galeri lama")))

	form := url.Values{
		"page_path":          {"/galeri"},
		"name":               {"Hero"},
		"order_position":     {"1"},
		"is_visible":         {"on"},
		"content":            {`{"heading":"Halo"}`},
		"styles":             {`{"background-color":"#ffffff"}`},
		"animation_settings": {`{"type":"fade"}`},
	}
	w := postSectionForm(t, h, sm, "/admin/sections/1", section.ID, form)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, redirectSections, w.Header().Get("Location"))

	got, err := queries.GetPageSection(ctx, section.ID)
	require.NoError(t, err)
	assert.Equal(t, "/galeri", got.PagePath)

	// both the old and the new page's cached routes must be dropped
	_, err = h.cache.GetRoute(ctx, "/")
	assert.Error(t, err)
	_, err = h.cache.GetRoute(ctx, "/galeri")
	assert.Error(t, err)
}

func TestSectionsCreate_InvalidAnimationCreatesNothing(t *testing.T) {
	h, sm, queries := newTestSectionsHandler(t)

	form := url.Values{
		"page_path":          {"/"},
		"name":               {"Hero"},
		"content":            {`{}`},
		"styles":             {`{}`},
		"animation_settings": {`not json at all`},
	}
	w := postSectionForm(t, h, sm, "/admin/sections", 0, form)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	sections, err := queries.ListPageSections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestParseSectionForm_RequiresLeadingSlash(t *testing.T) {
	form := url.Values{
		"page_path":          {"berita"},
		"name":               {"Hero"},
		"content":            {`{}`},
		"styles":             {`{}`},
		"animation_settings": {`{}`},
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/sections", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := parseSectionForm(req)
	require.Error(t, err)
}
