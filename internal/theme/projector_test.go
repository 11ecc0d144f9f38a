package theme

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/testutil"
)

func newTestProjector(t *testing.T) (*Projector, *store.Queries) {
	t.Helper()
	db := testutil.TestDB(t)
	q := store.New(db)
	return NewProjector(q, testutil.TestLogger()), q
}

func TestProjector_EmptyDatabase(t *testing.T) {
	p, _ := newTestProjector(t)

	css := p.CSS(context.Background())
	if css != ":root {}\n" {
		t.Errorf("css = %q, want empty root block", css)
	}
}

func TestProjector_ThemeColorsAndFonts(t *testing.T) {
	p, q := newTestProjector(t)
	ctx := context.Background()

	_, err := q.CreateTheme(ctx, store.CreateThemeParams{
		Name:      "Test",
		Colors:    `{"primary":"#0f766e","Text Muted":"#6b7280"}`,
		Fonts:     `{"body":"'Inter', sans-serif"}`,
		IsActive:  true,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateTheme: %v", err)
	}

	css := p.CSS(ctx)
	if !strings.Contains(css, "--color-primary: #0f766e;") {
		t.Errorf("missing primary color in %q", css)
	}
	if !strings.Contains(css, "--color-text-muted: #6b7280;") {
		t.Errorf("color name not slugified in %q", css)
	}
	if !strings.Contains(css, "--font-body: 'Inter', sans-serif;") {
		t.Errorf("missing body font in %q", css)
	}
}

func TestProjector_StyleVariablesWinOverTheme(t *testing.T) {
	p, q := newTestProjector(t)
	ctx := context.Background()

	_, err := q.CreateTheme(ctx, store.CreateThemeParams{
		Name:      "Test",
		Colors:    `{"primary":"#000000"}`,
		IsActive:  true,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateTheme: %v", err)
	}
	if _, err := q.UpsertStyleVariable(ctx, store.UpsertStyleVariableParams{
		Key:       "--color-primary",
		Value:     "#0f766e",
		Category:  "colors",
		UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("UpsertStyleVariable: %v", err)
	}

	css := p.CSS(ctx)
	if !strings.Contains(css, "--color-primary: #0f766e;") {
		t.Errorf("style variable should override theme color, got %q", css)
	}
	if strings.Contains(css, "#000000") {
		t.Errorf("theme color should be shadowed, got %q", css)
	}
}

func TestProjector_MalformedThemeJSONDoesNotBlockVariables(t *testing.T) {
	p, q := newTestProjector(t)
	ctx := context.Background()

	_, err := q.CreateTheme(ctx, store.CreateThemeParams{
		Name:      "Broken",
		Colors:    `{broken`,
		IsActive:  true,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateTheme: %v", err)
	}
	if _, err := q.UpsertStyleVariable(ctx, store.UpsertStyleVariableParams{
		Key:       "--radius-card",
		Value:     "0.75rem",
		Category:  "layout",
		UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("UpsertStyleVariable: %v", err)
	}

	css := p.CSS(ctx)
	if !strings.Contains(css, "--radius-card: 0.75rem;") {
		t.Errorf("style variables must still apply when theme JSON is broken, got %q", css)
	}
}

func TestProjector_InvalidVariableKeySkipped(t *testing.T) {
	p, q := newTestProjector(t)
	ctx := context.Background()

	if _, err := q.UpsertStyleVariable(ctx, store.UpsertStyleVariableParams{
		Key:       "color-primary", // missing leading --
		Value:     "#fff",
		UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("UpsertStyleVariable: %v", err)
	}

	css := p.CSS(ctx)
	if strings.Contains(css, "color-primary") {
		t.Errorf("invalid key must be skipped, got %q", css)
	}
}

func TestProjector_BrandingCached(t *testing.T) {
	p, q := newTestProjector(t)
	ctx := context.Background()

	created, err := q.CreateTheme(ctx, store.CreateThemeParams{
		Name:       "Test",
		LogoUrl:    "/static/logo.svg",
		LogoAlt:    "SMK Mustaqbal",
		FaviconUrl: "/static/favicon.ico",
		IsActive:   true,
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateTheme: %v", err)
	}

	b := p.Branding(ctx)
	if b.LogoURL != "/static/logo.svg" || b.LogoAlt != "SMK Mustaqbal" {
		t.Errorf("branding = %+v", b)
	}

	// A theme update within TTL is not visible until invalidation.
	if _, err := q.UpdateTheme(ctx, store.UpdateThemeParams{
		Name:      "Test",
		LogoUrl:   "/static/logo-v2.svg",
		LogoAlt:   "SMK Mustaqbal",
		UpdatedAt: time.Now(),
		ID:        created.ID,
	}); err != nil {
		t.Fatalf("UpdateTheme: %v", err)
	}
	if got := p.Branding(ctx); got.LogoURL != "/static/logo.svg" {
		t.Errorf("expected cached logo, got %q", got.LogoURL)
	}

	p.InvalidateBranding()
	if got := p.Branding(ctx); got.LogoURL != "/static/logo-v2.svg" {
		t.Errorf("expected fresh logo after invalidation, got %q", got.LogoURL)
	}
}
