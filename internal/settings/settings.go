// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package settings implements the named settings document store: one JSON
// document per page name, read through a defaulting accessor and written
// wholesale.
package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

// Validator is implemented by page contracts that want to reject malformed
// persisted documents at the read boundary instead of rendering silently
// from defaults.
type Validator interface {
	Validate() error
}

// Get fetches the stored document for pageName and shallow-merges its
// top-level keys over def. A stored key replaces the default key entirely;
// nested objects are not merged. An absent row behaves as an empty document,
// so callers always get at least the defaults back.
func Get[T any](ctx context.Context, q *store.Queries, pageName string, def T) (T, error) {
	row, err := q.GetPageSetting(ctx, pageName)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("settings: loading %q: %w", pageName, err)
	}

	merged, err := shallowMerge(def, []byte(row.Content))
	if err != nil {
		return def, fmt.Errorf("settings: document %q: %w", pageName, err)
	}

	if v, ok := any(merged).(Validator); ok {
		if err := v.Validate(); err != nil {
			return def, fmt.Errorf("settings: document %q: %w", pageName, err)
		}
	}
	return merged, nil
}

// Update marshals patch and stores it verbatim for pageName, replacing any
// previous document. No merging happens at write time; merging is a read
// concern.
func Update(ctx context.Context, q *store.Queries, pageName string, patch any) error {
	content, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("settings: encoding %q: %w", pageName, err)
	}
	return UpdateRaw(ctx, q, pageName, content)
}

// UpdateRaw stores an already-encoded JSON document for pageName. The
// document must be a JSON object.
func UpdateRaw(ctx context.Context, q *store.Queries, pageName string, content []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(content, &probe); err != nil {
		return fmt.Errorf("settings: document for %q is not a JSON object: %w", pageName, err)
	}

	if _, err := q.UpsertPageSetting(ctx, store.UpsertPageSettingParams{
		PageName:  pageName,
		Content:   string(content),
		UpdatedAt: time.Now(),
	}); err != nil {
		return fmt.Errorf("settings: storing %q: %w", pageName, err)
	}
	return nil
}

// Raw returns the stored document for pageName, or "{}" when absent.
func Raw(ctx context.Context, q *store.Queries, pageName string) ([]byte, error) {
	row, err := q.GetPageSetting(ctx, pageName)
	if errors.Is(err, sql.ErrNoRows) {
		return []byte("{}"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings: loading %q: %w", pageName, err)
	}
	return []byte(row.Content), nil
}

// shallowMerge overlays the top-level keys of the stored JSON object onto
// def. Both values are flattened to key -> raw JSON maps, so a stored key
// wins wholesale: a stored {"hero":{...}} replaces the default hero object
// rather than merging into it.
func shallowMerge[T any](def T, stored []byte) (T, error) {
	var zero T

	defJSON, err := json.Marshal(def)
	if err != nil {
		return zero, fmt.Errorf("encoding defaults: %w", err)
	}

	base := make(map[string]json.RawMessage)
	if err := json.Unmarshal(defJSON, &base); err != nil {
		return zero, fmt.Errorf("defaults are not a JSON object: %w", err)
	}

	overlay := make(map[string]json.RawMessage)
	if err := json.Unmarshal(stored, &overlay); err != nil {
		return zero, fmt.Errorf("invalid JSON: %w", err)
	}

	for k, v := range overlay {
		base[k] = v
	}

	mergedJSON, err := json.Marshal(base)
	if err != nil {
		return zero, fmt.Errorf("encoding merged document: %w", err)
	}

	var merged T
	if err := json.Unmarshal(mergedJSON, &merged); err != nil {
		return zero, fmt.Errorf("decoding merged document: %w", err)
	}
	return merged, nil
}
