// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SeedDemo fills the database with sample content for local development and
// demo installs: study programs, a welcome article, testimonials and
// partners. It is a no-op when news rows already exist, so re-running the
// binary with seeding enabled never duplicates content.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	queries := New(db)
	now := time.Now()

	count, err := queries.CountNews(ctx)
	if err != nil {
		return fmt.Errorf("checking existing content: %w", err)
	}
	if count > 0 {
		return nil
	}

	programs := []CreateProgramParams{
		{
			Name:        "Teknik Komputer dan Jaringan",
			Slug:        "teknik-komputer-dan-jaringan",
			Icon:        "network",
			Description: "Kompetensi keahlian di bidang instalasi jaringan, administrasi server, dan keamanan sistem.",
			SortOrder:   1,
		},
		{
			Name:        "Rekayasa Perangkat Lunak",
			Slug:        "rekayasa-perangkat-lunak",
			Icon:        "cpu",
			Description: "Kompetensi keahlian pengembangan aplikasi web, mobile, dan desktop.",
			SortOrder:   2,
		},
		{
			Name:        "Teknik Kendaraan Ringan",
			Slug:        "teknik-kendaraan-ringan",
			Icon:        "car",
			Description: "Kompetensi keahlian perawatan dan perbaikan kendaraan ringan.",
			SortOrder:   3,
		},
	}
	for _, p := range programs {
		p.IsActive = true
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := queries.CreateProgram(ctx, p); err != nil {
			return fmt.Errorf("seeding demo program %q: %w", p.Name, err)
		}
	}

	if _, err := queries.CreateNews(ctx, CreateNewsParams{
		Title:       "Selamat Datang di Website SMK Mustaqbal",
		Slug:        "selamat-datang-di-website-smk-mustaqbal",
		Excerpt:     "Website resmi SMK Mustaqbal kini hadir dengan informasi program keahlian, berita sekolah, dan pendaftaran peserta didik baru.",
		Body:        "Website resmi SMK Mustaqbal kini hadir.\n\nSilakan jelajahi program keahlian kami dan daftarkan diri melalui halaman PPDB.",
		BodyHtml:    "<p>Website resmi SMK Mustaqbal kini hadir.</p>\n<p>Silakan jelajahi program keahlian kami dan daftarkan diri melalui halaman PPDB.</p>",
		Status:      "published",
		PublishedAt: sql.NullTime{Time: now, Valid: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return fmt.Errorf("seeding demo article: %w", err)
	}

	testimonials := []CreateTestimonialParams{
		{
			Author:    "Rizki Pratama",
			Role:      "Alumni TKJ 2024",
			Quote:     "Praktik langsung di lab jaringan membuat saya siap kerja begitu lulus.",
			SortOrder: 1,
		},
		{
			Author:    "Siti Nurhaliza",
			Role:      "Orang tua siswa",
			Quote:     "Guru-gurunya perhatian dan perkembangan anak selalu dikomunikasikan.",
			SortOrder: 2,
		},
	}
	for _, t := range testimonials {
		t.IsActive = true
		t.CreatedAt = now
		t.UpdatedAt = now
		if _, err := queries.CreateTestimonial(ctx, t); err != nil {
			return fmt.Errorf("seeding demo testimonial %q: %w", t.Author, err)
		}
	}

	partners := []CreatePartnerParams{
		{Name: "PT Telkom Indonesia", WebsiteUrl: "https://www.telkom.co.id", SortOrder: 1},
		{Name: "PT Astra International", WebsiteUrl: "https://www.astra.co.id", SortOrder: 2},
	}
	for _, p := range partners {
		p.IsActive = true
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := queries.CreatePartner(ctx, p); err != nil {
			return fmt.Errorf("seeding demo partner %q: %w", p.Name, err)
		}
	}

	return nil
}
