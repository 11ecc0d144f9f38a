package settings

import (
	"context"
	"testing"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/testutil"
)

func TestGet_AbsentRowReturnsDefaults(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	def := DefaultHomeSettings()
	got, err := Get(ctx, q, "beranda", def)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Hero.Title != def.Hero.Title {
		t.Errorf("hero title = %q, want default %q", got.Hero.Title, def.Hero.Title)
	}
	if got.Hero.SliderDuration != 5000 {
		t.Errorf("slider duration = %d, want 5000", got.Hero.SliderDuration)
	}
}

func TestGet_StoredKeysOverlayDefaults(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	patch := map[string]any{
		"hero": map[string]any{"title": "Selamat Datang"},
	}
	if err := Update(ctx, q, "beranda", patch); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := Get(ctx, q, "beranda", DefaultHomeSettings())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Hero.Title != "Selamat Datang" {
		t.Errorf("hero title = %q, want stored value", got.Hero.Title)
	}
	// Untouched top-level keys keep their defaults.
	if got.News.Title != DefaultHomeSettings().News.Title {
		t.Errorf("news title = %q, want default", got.News.Title)
	}
}

func TestGet_SecondWriteReplacesFirst(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	first := map[string]any{"news": map[string]any{"title": "Kabar", "visible": true}}
	second := map[string]any{"programs": map[string]any{"title": "Jurusan", "visible": true}}

	if err := Update(ctx, q, "beranda", first); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	if err := Update(ctx, q, "beranda", second); err != nil {
		t.Fatalf("second Update: %v", err)
	}

	got, err := Get(ctx, q, "beranda", DefaultHomeSettings())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	// The second document replaced the first wholesale: the "news" key from
	// the first write is gone, so news falls back to defaults.
	if got.Programs.Title != "Jurusan" {
		t.Errorf("programs title = %q, want second write value", got.Programs.Title)
	}
	if got.News.Title != DefaultHomeSettings().News.Title {
		t.Errorf("news title = %q, want default after replacement", got.News.Title)
	}
}

func TestGet_ShallowMergeReplacesNestedObjectWholesale(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	def := map[string]any{
		"hero": map[string]any{"slider_duration": float64(5000)},
	}
	patch := map[string]any{
		"hero": map[string]any{"overlay_opacity": 0.5},
	}
	if err := Update(ctx, q, "beranda", patch); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := Get(ctx, q, "beranda", def)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	hero, ok := got["hero"].(map[string]any)
	if !ok {
		t.Fatalf("hero is %T, want object", got["hero"])
	}
	if hero["overlay_opacity"] != 0.5 {
		t.Errorf("overlay_opacity = %v, want 0.5", hero["overlay_opacity"])
	}
	if _, present := hero["slider_duration"]; present {
		t.Errorf("slider_duration survived the merge; stored hero must replace the default hero entirely")
	}
}

func TestGet_MalformedDocumentSurfacesError(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	// Write a broken document directly, bypassing Update's probe.
	if _, err := db.ExecContext(ctx,
		`INSERT INTO page_settings (page_name, content, updated_at) VALUES ('beranda', '{not json', CURRENT_TIMESTAMP)`,
	); err != nil {
		t.Fatalf("inserting broken document: %v", err)
	}

	if _, err := Get(ctx, q, "beranda", DefaultHomeSettings()); err == nil {
		t.Error("expected error for malformed persisted document, got nil")
	}
}

func TestGet_ValidateRejectsOutOfRangeValues(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	patch := map[string]any{
		"hero": map[string]any{"overlay_opacity": 3.0},
	}
	if err := Update(ctx, q, "beranda", patch); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := Get(ctx, q, "beranda", DefaultHomeSettings()); err == nil {
		t.Error("expected validation error for overlay_opacity 3.0, got nil")
	}
}

func TestUpdateRaw_RejectsNonObjectDocument(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	if err := UpdateRaw(ctx, q, "beranda", []byte(`[1,2,3]`)); err == nil {
		t.Error("expected error for non-object document, got nil")
	}
}

func TestRaw_AbsentReturnsEmptyObject(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	raw, err := Raw(ctx, q, "kontak")
	if err != nil {
		t.Fatalf("Raw: %v", err)
	}
	if string(raw) != "{}" {
		t.Errorf("raw = %s, want {}", raw)
	}
}
