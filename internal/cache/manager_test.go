package cache

import (
	"context"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	backend := NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      time.Hour,
		CleanupInterval: 0,
	})
	m := NewManager(ManagerOptions{Backend: backend})
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestManager_SettingsRoundTrip(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	doc := []byte(`{"hero":{"title":"Selamat Datang"}}`)
	if err := m.SetSettings(ctx, "beranda", doc); err != nil {
		t.Fatalf("SetSettings failed: %v", err)
	}

	got, err := m.GetSettings(ctx, "beranda")
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("got %s, want %s", got, doc)
	}
}

func TestManager_HomeWriteInvalidatesHomeRoute(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	if err := m.SetSettings(ctx, "beranda", []byte(`{}`)); err != nil {
		t.Fatalf("SetSettings failed: %v", err)
	}
	if err := m.SetRoute(ctx, "/", []byte("<html>home</html>")); err != nil {
		t.Fatalf("SetRoute failed: %v", err)
	}
	if err := m.SetRoute(ctx, "/berita", []byte("<html>news</html>")); err != nil {
		t.Fatalf("SetRoute failed: %v", err)
	}

	m.InvalidateSettings(ctx, "beranda")

	if _, err := m.GetSettings(ctx, "beranda"); err != ErrCacheMiss {
		t.Errorf("expected settings miss after invalidation, got %v", err)
	}
	if _, err := m.GetRoute(ctx, "/"); err != ErrCacheMiss {
		t.Errorf("expected home route miss after home settings write, got %v", err)
	}
	// Other routes are untouched
	if _, err := m.GetRoute(ctx, "/berita"); err != nil {
		t.Errorf("expected /berita to survive, got %v", err)
	}
}

func TestManager_NonHomeWriteLeavesHomeRoute(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	if err := m.SetRoute(ctx, "/", []byte("<html>home</html>")); err != nil {
		t.Fatalf("SetRoute failed: %v", err)
	}

	m.InvalidateSettings(ctx, "kontak")

	if _, err := m.GetRoute(ctx, "/"); err != nil {
		t.Errorf("home route should survive a non-home settings write, got %v", err)
	}
}

func TestManager_ThemeCSS(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	css := []byte(":root{--color-primary:#0f766e;}")
	if err := m.SetThemeCSS(ctx, css); err != nil {
		t.Fatalf("SetThemeCSS failed: %v", err)
	}
	got, err := m.GetThemeCSS(ctx)
	if err != nil {
		t.Fatalf("GetThemeCSS failed: %v", err)
	}
	if string(got) != string(css) {
		t.Errorf("got %s, want %s", got, css)
	}

	m.InvalidateThemeCSS(ctx)
	if _, err := m.GetThemeCSS(ctx); err != ErrCacheMiss {
		t.Errorf("expected miss after invalidation, got %v", err)
	}
}
