// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableui

import "github.com/charmbracelet/lipgloss"

// styles holds the fixed lipgloss styles for the table component.
// All colors use ANSI 256-color codes for broad terminal
// compatibility. The palette is intentionally not configurable:
// gridview renders structure, not themes.
type styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Row       lipgloss.Style
	CursorRow lipgloss.Style
	Checkbox  lipgloss.Style
	Faint     lipgloss.Style
	Loading   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Row:    lipgloss.NewStyle(),
		CursorRow: lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")),
		Checkbox: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Loading:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	}
}
