// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableview

// MatchMode selects the text matching algorithm for the filter stage.
type MatchMode int

const (
	// MatchSubstring matches rows whose searchable text contains the
	// query case-insensitively. This is the default.
	MatchSubstring MatchMode = iota
	// MatchFuzzy matches with the fzf algorithm: query characters
	// must appear in order but need not be contiguous.
	MatchFuzzy
)

// DefaultPageSize is used when pagination is enabled without an
// explicit page size.
const DefaultPageSize = 10

// Options configures an [Engine]. The zero value is a plain static
// table: no search, no selection, no pagination. Each capability is
// enabled explicitly.
type Options[T any] struct {
	// RowID extracts a row's unique identifier. Required when
	// Selectable is set; ignored otherwise. Identity is by this id,
	// not structural equality.
	RowID func(row T) string

	// Loading bypasses the pipeline entirely: no rows are displayed
	// and events are ignored until cleared via [Engine.SetLoading].
	// The prior view state is preserved untouched underneath.
	Loading bool

	// Searchable enables the filter stage.
	Searchable bool

	// SearchPlaceholder is the prompt text renderers show in an empty
	// search input.
	SearchPlaceholder string

	// Match selects the filter algorithm. Zero value is substring
	// matching.
	Match MatchMode

	// Selectable enables per-row and select-all selection.
	Selectable bool

	// Paginated enables the pagination stage. When set and PageSize
	// is zero, [DefaultPageSize] applies.
	Paginated bool

	// PageSize is the rows-per-page count. Only meaningful with
	// Paginated.
	PageSize int

	// ShowRowCount asks renderers to display the filtered/total row
	// count.
	ShowRowCount bool

	// OnSelectionChange is invoked after every selection mutation
	// with the full selected rows from the unfiltered origin
	// collection, in origin order — not the filtered or paginated
	// view — so callers see true selected rows regardless of the
	// current filter state.
	OnSelectionChange func(selected []T)
}
