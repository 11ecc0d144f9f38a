// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the periodic background jobs: publishing
// scheduled news and pruning old event rows.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

const eventRetention = 90 * 24 * time.Hour

// Scheduler owns the cron runner.
type Scheduler struct {
	cron    *cron.Cron
	queries *store.Queries
	cache   *cache.Manager
	logger  *slog.Logger
}

// New creates a Scheduler with the standard job set registered.
func New(db *sql.DB, cacheManager *cache.Manager, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		queries: store.New(db),
		cache:   cacheManager,
		logger:  logger,
	}

	// Every minute: publish news whose scheduled time has passed
	if _, err := s.cron.AddFunc("* * * * *", s.publishScheduledNews); err != nil {
		return nil, err
	}
	// Daily at 03:00: prune old event rows
	if _, err := s.cron.AddFunc("0 3 * * *", s.pruneEvents); err != nil {
		return nil, err
	}

	return s, nil
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started")
}

// Stop halts the runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// publishScheduledNews flips due scheduled drafts to published and
// invalidates the affected routes.
func (s *Scheduler) publishScheduledNews() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	due, err := s.queries.ListScheduledNewsDue(ctx, sql.NullTime{Time: now, Valid: true})
	if err != nil {
		s.logger.Error("failed to list scheduled news", "error", err)
		return
	}

	for _, article := range due {
		if err := s.queries.PublishNews(ctx, store.PublishNewsParams{
			PublishedAt: sql.NullTime{Time: now, Valid: true},
			UpdatedAt:   now,
			ID:          article.ID,
		}); err != nil {
			s.logger.Error("failed to publish scheduled news", "error", err, "news_id", article.ID)
			continue
		}
		s.logger.Info("scheduled news published", "news_id", article.ID, "slug", article.Slug, "category", "content")
		s.cache.InvalidateRoute(ctx, "/berita/"+article.Slug)
	}

	if len(due) > 0 {
		s.cache.InvalidateRoute(ctx, "/berita")
		s.cache.InvalidateRoute(ctx, "/")
	}
}

// pruneEvents deletes event rows older than the retention window.
func (s *Scheduler) pruneEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-eventRetention)
	if err := s.queries.PruneEvents(ctx, cutoff); err != nil {
		s.logger.Error("failed to prune events", "error", err)
		return
	}
	s.logger.Info("old events pruned", "cutoff", cutoff)
}
