// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package theme projects the active theme, the style variable table, and
// branding into CSS custom properties served to every public page.
package theme

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/util"
)

// Branding is the navigation chrome: logo and favicon from the active theme.
type Branding struct {
	LogoURL    string
	LogoAlt    string
	FaviconURL string
}

// Projector assembles the site stylesheet from three independent sources:
// active theme colors/fonts, the style_variables table, and branding.
// A failure in one source is logged and skipped; the others still apply.
type Projector struct {
	queries *store.Queries
	logger  *slog.Logger

	mu          sync.RWMutex
	branding    Branding
	brandingAt  time.Time
	brandingTTL time.Duration
}

// NewProjector creates a style projector over the given queries.
func NewProjector(queries *store.Queries, logger *slog.Logger) *Projector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Projector{
		queries:     queries,
		logger:      logger,
		brandingTTL: time.Minute,
	}
}

// CSS builds the `:root { ... }` block of custom properties. Theme colors
// and fonts are projected as --color-<name> and --font-<name>; style
// variable rows carry their own keys and win over theme-derived values on
// collision.
func (p *Projector) CSS(ctx context.Context) string {
	props := make(map[string]string)

	p.applyTheme(ctx, props)
	p.applyStyleVariables(ctx, props)

	if len(props) == 0 {
		return ":root {}\n"
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %s;\n", k, props[k])
	}
	b.WriteString("}\n")
	return b.String()
}

func (p *Projector) applyTheme(ctx context.Context, props map[string]string) {
	theme, err := p.queries.GetActiveTheme(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return
	}
	if err != nil {
		p.logger.Warn("loading active theme for stylesheet", "error", err)
		return
	}

	p.applyJSONGroup(props, "--color-", theme.Colors, "theme colors")
	p.applyJSONGroup(props, "--font-", theme.Fonts, "theme fonts")
}

func (p *Projector) applyJSONGroup(props map[string]string, prefix, raw, what string) {
	if raw == "" {
		return
	}
	group := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &group); err != nil {
		p.logger.Warn("skipping malformed "+what, "error", err)
		return
	}
	for name, value := range group {
		key := prefix + util.Slugify(name)
		if !util.IsValidCSSVariableName(key) {
			continue
		}
		props[key] = value
	}
}

func (p *Projector) applyStyleVariables(ctx context.Context, props map[string]string) {
	vars, err := p.queries.ListStyleVariables(ctx)
	if err != nil {
		p.logger.Warn("loading style variables for stylesheet", "error", err)
		return
	}
	for _, v := range vars {
		if !util.IsValidCSSVariableName(v.Key) {
			p.logger.Warn("skipping style variable with invalid key", "key", v.Key)
			continue
		}
		props[v.Key] = v.Value
	}
}

// Branding returns logo and favicon from the active theme, cached briefly
// since it renders on every page.
func (p *Projector) Branding(ctx context.Context) Branding {
	p.mu.RLock()
	if time.Since(p.brandingAt) < p.brandingTTL && !p.brandingAt.IsZero() {
		b := p.branding
		p.mu.RUnlock()
		return b
	}
	p.mu.RUnlock()

	b := Branding{}
	theme, err := p.queries.GetActiveTheme(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			p.logger.Warn("loading active theme for branding", "error", err)
		}
	} else {
		b = Branding{
			LogoURL:    theme.LogoUrl,
			LogoAlt:    theme.LogoAlt,
			FaviconURL: theme.FaviconUrl,
		}
	}

	p.mu.Lock()
	p.branding = b
	p.brandingAt = time.Now()
	p.mu.Unlock()
	return b
}

// InvalidateBranding clears the branding cache. Call after theme writes.
func (p *Projector) InvalidateBranding() {
	p.mu.Lock()
	p.brandingAt = time.Time{}
	p.mu.Unlock()
}
