// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Settings document page keys. Each names one JSON document in the
// page_settings table. The keys are human-readable and stable: admin
// screens and public renderers agree on them by convention.
const (
	PageBeranda      = "beranda"       // home page
	PageTentangKami  = "tentang-kami"  // about page
	PageBeritaLayout = "berita-layout" // news listing layout
	PageKontak       = "kontak"        // contact page
)

// KnownPages lists the settings page keys the admin UI exposes.
var KnownPages = []string{PageBeranda, PageTentangKami, PageBeritaLayout, PageKontak}

// IsKnownPage reports whether pageName has a registered settings contract.
func IsKnownPage(pageName string) bool {
	for _, p := range KnownPages {
		if p == pageName {
			return true
		}
	}
	return false
}
