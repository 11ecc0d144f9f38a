// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package settings

import (
	"errors"
	"fmt"
)

// HeroSection configures the home page hero.
type HeroSection struct {
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle"`
	CTAText        string   `json:"cta_text"`
	CTALink        string   `json:"cta_link"`
	ImageURLs      []string `json:"image_urls"`
	SliderDuration int      `json:"slider_duration"`
	OverlayOpacity float64  `json:"overlay_opacity"`
}

// SectionHeading supplies the title, subtitle and visibility toggle for a
// list-backed home section. The rows themselves come from the database.
type SectionHeading struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Visible  bool   `json:"visible"`
}

// FeatureItem is one entry in the home page features strip.
type FeatureItem struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// HomeSettings is the settings contract for the home page document
// ("beranda").
type HomeSettings struct {
	Hero         HeroSection    `json:"hero"`
	Features     []FeatureItem  `json:"features"`
	Programs     SectionHeading `json:"programs"`
	Partners     SectionHeading `json:"partners"`
	Testimonials SectionHeading `json:"testimonials"`
	News         SectionHeading `json:"news"`
}

// Validate rejects documents whose values would break the render.
func (s HomeSettings) Validate() error {
	if s.Hero.SliderDuration < 0 {
		return errors.New("hero slider_duration must not be negative")
	}
	if s.Hero.OverlayOpacity < 0 || s.Hero.OverlayOpacity > 1 {
		return fmt.Errorf("hero overlay_opacity %v out of range [0,1]", s.Hero.OverlayOpacity)
	}
	return nil
}

// DefaultHomeSettings returns the defaults every home render starts from.
// An absent or empty stored document renders exactly this.
func DefaultHomeSettings() HomeSettings {
	return HomeSettings{
		Hero: HeroSection{
			Title:          "SMK Mustaqbal",
			Subtitle:       "Sekolah kejuruan unggulan yang siap mencetak lulusan berkompeten.",
			CTAText:        "Daftar PPDB",
			CTALink:        "/ppdb",
			SliderDuration: 5000,
			OverlayOpacity: 0.4,
		},
		Features: []FeatureItem{
			{Icon: "award", Title: "Terakreditasi A", Text: "Kurikulum berstandar industri."},
			{Icon: "users", Title: "Guru Berpengalaman", Text: "Pengajar bersertifikat kompetensi."},
			{Icon: "briefcase", Title: "Siap Kerja", Text: "Kemitraan magang dengan dunia usaha."},
		},
		Programs:     SectionHeading{Title: "Program Keahlian", Subtitle: "Pilih jurusan sesuai minatmu.", Visible: true},
		Partners:     SectionHeading{Title: "Mitra Industri", Visible: true},
		Testimonials: SectionHeading{Title: "Kata Mereka", Visible: true},
		News:         SectionHeading{Title: "Berita Terbaru", Subtitle: "Kabar dan kegiatan sekolah.", Visible: true},
	}
}

// AboutSettings is the settings contract for the about page document
// ("tentang-kami").
type AboutSettings struct {
	Title      string `json:"title"`
	Intro      string `json:"intro"`
	Vision     string `json:"vision"`
	Mission    string `json:"mission"`
	History    string `json:"history"`
	ImageURL   string `json:"image_url"`
	ShowStaff  bool   `json:"show_staff"`
	StaffTitle string `json:"staff_title"`
}

func (s AboutSettings) Validate() error { return nil }

// DefaultAboutSettings returns the about page defaults.
func DefaultAboutSettings() AboutSettings {
	return AboutSettings{
		Title:      "Tentang Kami",
		Intro:      "SMK Mustaqbal berdiri untuk menyiapkan generasi terampil dan berakhlak.",
		Vision:     "Menjadi sekolah kejuruan rujukan di tingkat nasional.",
		Mission:    "Menyelenggarakan pendidikan kejuruan yang relevan dengan kebutuhan industri.",
		ShowStaff:  true,
		StaffTitle: "Tenaga Pendidik",
	}
}

// NewsLayoutSettings is the settings contract for the news listing layout
// document ("berita-layout").
type NewsLayoutSettings struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	PageSize     int    `json:"page_size"`
	ShowExcerpts bool   `json:"show_excerpts"`
	ShowCovers   bool   `json:"show_covers"`
}

// Validate rejects page sizes the listing query cannot serve.
func (s NewsLayoutSettings) Validate() error {
	if s.PageSize < 1 || s.PageSize > 100 {
		return fmt.Errorf("page_size %d out of range [1,100]", s.PageSize)
	}
	return nil
}

// DefaultNewsLayoutSettings returns the news listing defaults.
func DefaultNewsLayoutSettings() NewsLayoutSettings {
	return NewsLayoutSettings{
		Title:        "Berita",
		Subtitle:     "Informasi dan kegiatan terbaru SMK Mustaqbal.",
		PageSize:     9,
		ShowExcerpts: true,
		ShowCovers:   true,
	}
}

// ContactSettings is the settings contract for the contact page document
// ("kontak").
type ContactSettings struct {
	Title     string `json:"title"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	MapsEmbed string `json:"maps_embed"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
}

func (s ContactSettings) Validate() error { return nil }

// DefaultContactSettings returns the contact page defaults.
func DefaultContactSettings() ContactSettings {
	return ContactSettings{
		Title:   "Hubungi Kami",
		Address: "Jl. Pendidikan No. 1, Bandung",
		Email:   "info@mustaqbal.sch.id",
	}
}
