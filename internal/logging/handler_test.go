package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/testutil"
)

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func latestEvent(t *testing.T, q *store.Queries) store.Event {
	t.Helper()
	events, err := q.ListEvents(context.Background(), store.ListEventsParams{Limit: 1})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("no events recorded")
	}
	return events[0]
}

func TestEventLogHandler_ErrorMirroredToEventLog(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Error("login failed", "email", "x@y.z")

	ev := latestEvent(t, q)
	if ev.Level != model.EventLevelError {
		t.Errorf("level = %q, want error", ev.Level)
	}
	if ev.Category != model.EventCategoryAuth {
		t.Errorf("category = %q, want auth (inferred from message)", ev.Category)
	}
	if ev.Message != "login failed" {
		t.Errorf("message = %q", ev.Message)
	}
}

func TestEventLogHandler_WarnMirrored(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Warn("settings cache invalidation failed", "page", "beranda")

	ev := latestEvent(t, q)
	if ev.Level != model.EventLevelWarning {
		t.Errorf("level = %q, want warning", ev.Level)
	}
	if ev.Category != model.EventCategorySettings {
		t.Errorf("category = %q, want settings", ev.Category)
	}
}

func TestEventLogHandler_InfoNotMirrored(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Info("server started")

	events, err := q.ListEvents(context.Background(), store.ListEventsParams{Limit: 10})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("INFO records must not reach the event log, got %d events", len(events))
	}
}

func TestEventLogHandler_ExplicitCategoryWins(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Error("something broke", "category", model.EventCategoryUpload)

	ev := latestEvent(t, q)
	if ev.Category != model.EventCategoryUpload {
		t.Errorf("category = %q, want upload", ev.Category)
	}
}

func TestEventLogHandler_MetadataJSON(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)

	logger := slog.New(NewEventLogHandler(discardHandler{}, db))
	logger.Warn("news publish skipped", "slug", "pendaftaran-dibuka", "at", time.Now().Format(time.RFC3339))

	ev := latestEvent(t, q)
	if ev.Metadata == "{}" || ev.Metadata == "" {
		t.Errorf("metadata = %q, want attributes captured", ev.Metadata)
	}
}
