// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
)

// Key namespaces. Settings documents, the projected theme stylesheet, and
// rendered public routes live in the same backing cache under distinct
// prefixes so a single Redis instance can serve all three.
const (
	settingsPrefix = "settings:"
	routePrefix    = "route:"
	themeCSSKey    = "theme:css"
)

// Manager provides a unified interface over the backing cache for the three
// kinds of data the site caches. A write to a page settings document must
// invalidate both that document and any rendered route built from it; the
// Manager owns that coupling.
type Manager struct {
	backend Cache

	settingsTTL time.Duration
	routeTTL    time.Duration
}

// ManagerOptions configures the cache manager.
type ManagerOptions struct {
	Backend     Cache
	SettingsTTL time.Duration
	RouteTTL    time.Duration
}

// NewManager creates a new cache manager over the given backend.
func NewManager(opts ManagerOptions) *Manager {
	if opts.SettingsTTL == 0 {
		opts.SettingsTTL = 5 * time.Minute
	}
	if opts.RouteTTL == 0 {
		opts.RouteTTL = time.Minute
	}
	return &Manager{
		backend:     opts.Backend,
		settingsTTL: opts.SettingsTTL,
		routeTTL:    opts.RouteTTL,
	}
}

// GetSettings returns the cached raw settings document for a page.
func (m *Manager) GetSettings(ctx context.Context, pageName string) ([]byte, error) {
	return m.backend.Get(ctx, settingsPrefix+pageName)
}

// SetSettings caches the raw settings document for a page.
func (m *Manager) SetSettings(ctx context.Context, pageName string, doc []byte) error {
	return m.backend.Set(ctx, settingsPrefix+pageName, doc, m.settingsTTL)
}

// InvalidateSettings drops the cached settings document for a page and the
// rendered home route when the home document changes.
func (m *Manager) InvalidateSettings(ctx context.Context, pageName string) {
	if err := m.backend.Delete(ctx, settingsPrefix+pageName); err != nil {
		slog.Warn("settings cache invalidation failed", "page", pageName, "error", err)
	}
	if pageName == model.PageBeranda {
		m.InvalidateRoute(ctx, "/")
	}
}

// GetRoute returns the cached rendered HTML for a public route.
func (m *Manager) GetRoute(ctx context.Context, path string) ([]byte, error) {
	return m.backend.Get(ctx, routePrefix+path)
}

// SetRoute caches rendered HTML for a public route.
func (m *Manager) SetRoute(ctx context.Context, path string, html []byte) error {
	return m.backend.Set(ctx, routePrefix+path, html, m.routeTTL)
}

// InvalidateRoute drops a cached rendered route.
func (m *Manager) InvalidateRoute(ctx context.Context, path string) {
	if err := m.backend.Delete(ctx, routePrefix+path); err != nil {
		slog.Warn("route cache invalidation failed", "path", path, "error", err)
	}
}

// GetThemeCSS returns the cached projected stylesheet.
func (m *Manager) GetThemeCSS(ctx context.Context) ([]byte, error) {
	return m.backend.Get(ctx, themeCSSKey)
}

// SetThemeCSS caches the projected stylesheet.
func (m *Manager) SetThemeCSS(ctx context.Context, css []byte) error {
	return m.backend.Set(ctx, themeCSSKey, css, m.settingsTTL)
}

// InvalidateThemeCSS drops the cached stylesheet. Call after theme or style
// variable writes.
func (m *Manager) InvalidateThemeCSS(ctx context.Context) {
	if err := m.backend.Delete(ctx, themeCSSKey); err != nil {
		slog.Warn("theme css cache invalidation failed", "error", err)
	}
}

// Clear empties the whole cache.
func (m *Manager) Clear(ctx context.Context) error {
	return m.backend.Clear(ctx)
}

// Stats returns backend statistics when the backend supports them.
func (m *Manager) Stats() (Stats, bool) {
	sp, ok := m.backend.(StatsProvider)
	if !ok {
		return Stats{}, false
	}
	return sp.Stats(), true
}

// Close releases the backing cache.
func (m *Manager) Close() error {
	return m.backend.Close()
}
