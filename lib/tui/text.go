// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate shortens text to at most width terminal cells, appending
// an ellipsis when anything was cut. Width accounting is
// ANSI-sequence- and wide-rune-aware, so styled or CJK cell content
// truncates at the right visual column.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}

// Pad right-pads text with spaces to exactly width terminal cells,
// truncating first when the text is too long. Used for fixed-width
// table cells.
func Pad(text string, width int) string {
	text = Truncate(text, width)
	if gap := width - ansi.StringWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}
