// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"accents", "Pésta Séni Budaya", "pesta-seni-budaya"},
		{"punctuation", "PPDB 2026/2027: Gelombang 1!", "ppdb-20262027-gelombang-1"},
		{"multiple spaces", "Teknik   Komputer  Jaringan", "teknik-komputer-jaringan"},
		{"leading trailing", "  -Berita Terbaru-  ", "berita-terbaru"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"berita", "teknik-komputer-jaringan", "ppdb-2026"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "Upper", "with space", "unicode-é"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true, want false", s)
		}
	}
}

func TestIsValidCSSVariableName(t *testing.T) {
	valid := []string{"--primary-color", "--font-heading", "--spacing_lg", "--c1"}
	for _, s := range valid {
		if !IsValidCSSVariableName(s) {
			t.Errorf("IsValidCSSVariableName(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "--", "primary-color", "-single", "--with space", "--semi;colon"}
	for _, s := range invalid {
		if IsValidCSSVariableName(s) {
			t.Errorf("IsValidCSSVariableName(%q) = true, want false", s)
		}
	}
}
