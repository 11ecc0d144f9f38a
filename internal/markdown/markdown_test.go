// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BasicMarkdown(t *testing.T) {
	out, err := Render("# Judul\n\nParagraf dengan **tebal**.")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Judul")
	assert.Contains(t, out, "<strong>tebal</strong>")
}

func TestRender_StripsScript(t *testing.T) {
	out, err := Render("halo <script>alert(1)</script> dunia")
	require.NoError(t, err)

	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "halo")
	assert.Contains(t, out, "dunia")
}

func TestRender_Table(t *testing.T) {
	src := "| A | B |\n|---|---|\n| 1 | 2 |"
	out, err := Render(src)
	require.NoError(t, err)

	assert.Contains(t, out, "<table")
	assert.True(t, strings.Contains(out, "<td>1</td>"))
}

func TestRender_StripsEventHandlers(t *testing.T) {
	out, err := Render(`<img src="x.png" onerror="alert(1)">`)
	require.NoError(t, err)

	assert.NotContains(t, out, "onerror")
}
