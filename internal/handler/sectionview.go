// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"sort"
	"strings"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/markdown"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

// sectionContent is the recognized shape of a section's content blob.
// Absent keys fall back to defaults at view-build time.
type sectionContent struct {
	Heading  string `json:"heading"`
	Subtitle string `json:"subtitle"`
	BodyHTML string `json:"body_html"`
	ImageURL string `json:"image_url"`
	CTAText  string `json:"cta_text"`
	CTALink  string `json:"cta_link"`
}

// SectionView is one builder section prepared for template rendering.
type SectionView struct {
	Name      string
	Heading   string
	Subtitle  string
	Body      template.HTML
	ImageURL  string
	CTAText   string
	CTALink   string
	StyleAttr template.CSS
	Animation string
}

// buildSectionViews converts stored sections into render-ready views.
// A section whose content blob does not parse is skipped with a warning,
// never aborting the page.
func buildSectionViews(rows []store.PageSection) []SectionView {
	views := make([]SectionView, 0, len(rows))
	for _, row := range rows {
		var content sectionContent
		if err := json.Unmarshal([]byte(row.Content), &content); err != nil {
			slog.Warn("skipping section with malformed content", "section_id", row.ID, "error", err, "category", "content")
			continue
		}

		view := SectionView{
			Name:      row.Name,
			Heading:   content.Heading,
			Subtitle:  content.Subtitle,
			ImageURL:  content.ImageURL,
			CTAText:   content.CTAText,
			CTALink:   content.CTALink,
			StyleAttr: styleAttr(row.Styles),
			Animation: animationAttr(row.AnimationSettings),
		}
		if view.Heading == "" {
			view.Heading = row.Name
		}
		if content.BodyHTML != "" {
			view.Body = template.HTML(markdown.SanitizeHTML(content.BodyHTML))
		}
		views = append(views, view)
	}
	return views
}

// styleAttr flattens a styles blob into a deterministic inline style string.
func styleAttr(raw string) template.CSS {
	var styles map[string]string
	if err := json.Unmarshal([]byte(raw), &styles); err != nil || len(styles) == 0 {
		return ""
	}

	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s; ", k, styles[k])
	}
	return template.CSS(strings.TrimSpace(b.String()))
}

// animationAttr re-compacts the animation blob for the client script, or
// returns "" when the blob is empty or malformed.
func animationAttr(raw string) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil || len(obj) == 0 {
		return ""
	}
	compact, err := json.Marshal(obj)
	if err != nil {
		return ""
	}
	return string(compact)
}
