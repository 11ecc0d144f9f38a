// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/testutil"
)

func newTestScheduler(t *testing.T) (*Scheduler, *store.Queries) {
	t.Helper()
	db := testutil.TestDB(t)
	manager := cache.NewManager(cache.ManagerOptions{
		Backend: cache.NewMemoryCache(cache.MemoryCacheOptions{MaxSize: 100, DefaultTTL: time.Minute}),
	})
	t.Cleanup(func() { _ = manager.Close() })

	s, err := New(db, manager, testutil.TestLogger())
	require.NoError(t, err)
	return s, store.New(db)
}

func createArticle(t *testing.T, q *store.Queries, slug string, scheduledAt sql.NullTime) store.News {
	t.Helper()
	now := time.Now()
	article, err := q.CreateNews(context.Background(), store.CreateNewsParams{
		Title:       "Artikel " + slug,
		Slug:        slug,
		Body:        "isi",
		BodyHtml:    "<p>isi</p>",
		Status:      model.NewsStatusDraft,
		ScheduledAt: scheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	return article
}

func TestPublishScheduledNews_DueArticlePublished(t *testing.T) {
	s, q := newTestScheduler(t)
	ctx := context.Background()

	past := sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true}
	due := createArticle(t, q, "sudah-waktunya", past)

	s.publishScheduledNews()

	got, err := q.GetNewsByID(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, model.NewsStatusPublished, got.Status)
	assert.True(t, got.PublishedAt.Valid)
}

func TestPublishScheduledNews_FutureArticleUntouched(t *testing.T) {
	s, q := newTestScheduler(t)
	ctx := context.Background()

	future := sql.NullTime{Time: time.Now().Add(time.Hour), Valid: true}
	notDue := createArticle(t, q, "masih-nanti", future)

	s.publishScheduledNews()

	got, err := q.GetNewsByID(ctx, notDue.ID)
	require.NoError(t, err)
	assert.Equal(t, model.NewsStatusDraft, got.Status)
	assert.False(t, got.PublishedAt.Valid)
}

func TestPruneEvents_RemovesOnlyOldRows(t *testing.T) {
	s, q := newTestScheduler(t)
	ctx := context.Background()

	old := time.Now().Add(-eventRetention - 24*time.Hour)
	require.NoError(t, q.CreateEvent(ctx, store.CreateEventParams{
		Level: model.EventLevelInfo, Category: model.EventCategorySystem,
		Message: "lama", Metadata: "{}", CreatedAt: old,
	}))
	require.NoError(t, q.CreateEvent(ctx, store.CreateEventParams{
		Level: model.EventLevelInfo, Category: model.EventCategorySystem,
		Message: "baru", Metadata: "{}", CreatedAt: time.Now(),
	}))

	s.pruneEvents()

	count, err := q.CountEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
