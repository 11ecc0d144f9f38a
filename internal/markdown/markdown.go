// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package markdown converts article bodies to sanitized HTML.
package markdown

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	initOnce  sync.Once
	converter goldmark.Markdown
	policy    *bluemonday.Policy
)

func setup() {
	converter = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	policy = bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("img", "table")
}

// Render converts markdown source to HTML and strips anything the
// sanitizer does not allow. The output is safe to emit unescaped.
func Render(source string) (string, error) {
	initOnce.Do(setup)

	var buf bytes.Buffer
	if err := converter.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}

// SanitizeHTML runs raw HTML through the same policy without markdown
// conversion. Used for editor-authored HTML fragments.
func SanitizeHTML(source string) string {
	initOnce.Do(setup)
	return policy.Sanitize(source)
}
