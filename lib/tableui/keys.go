// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the table component.
type KeyMap struct {
	// Cursor movement within the displayed rows.
	Up   key.Binding
	Down key.Binding

	// Page navigation.
	PreviousPage key.Binding
	NextPage     key.Binding

	// Selection.
	ToggleSelect key.Binding // Toggle the cursor row.
	ToggleAll    key.Binding // Select/deselect every displayed row.

	// Sorting. Number keys 1–9 cycle the tri-state sort on the Nth
	// column; clicking a header with the mouse does the same.
	SortColumn key.Binding

	// Search.
	SearchActivate key.Binding // Enter search mode.
	SearchClear    key.Binding // Clear the query and leave search mode.
	SearchAccept   key.Binding // Keep the query, return focus to the rows.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PreviousPage: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next page"),
	),
	ToggleSelect: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	SortColumn: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "sort column"),
	),
	SearchActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	SearchAccept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "accept"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
