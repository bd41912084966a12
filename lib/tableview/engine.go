// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableview

import "strings"

// Engine derives a displayed subset of a row collection through three
// sequential pure transforms — filter, sort, paginate — and layers
// selection state on top. All methods are synchronous and must be
// called from a single goroutine; each engine owns its [ViewState]
// and [SelectionSet] exclusively.
//
// Row ids are assumed unique within the collection. Behavior with
// colliding ids is undefined: selection is keyed by id, so duplicate
// ids alias each other.
type Engine[T any] struct {
	rows      []T
	columns   []Column[T]
	options   Options[T]
	state     ViewState
	selection *SelectionSet
	loading   bool
}

// NewEngine creates an engine over rows. The columns describe field
// extraction and per-column capabilities; options enable the optional
// stages. The row slice is treated as read-only and is never mutated.
func NewEngine[T any](rows []T, columns []Column[T], options Options[T]) *Engine[T] {
	if options.Paginated && options.PageSize <= 0 {
		options.PageSize = DefaultPageSize
	}
	return &Engine[T]{
		rows:      rows,
		columns:   columns,
		options:   options,
		state:     ViewState{Page: 1, PageSize: options.PageSize},
		selection: NewSelectionSet(),
		loading:   options.Loading,
	}
}

// Options returns the engine's configuration.
func (engine *Engine[T]) Options() Options[T] {
	return engine.options
}

// Columns returns the column descriptors, in display order.
func (engine *Engine[T]) Columns() []Column[T] {
	return engine.columns
}

// SetRows replaces the row collection. Selection persists: ids no
// longer present stay in the set and simply never intersect until a
// row with that id returns. The current page is clamped to the new
// page count on read.
func (engine *Engine[T]) SetRows(rows []T) {
	engine.rows = rows
}

// SetLoading toggles the loading bypass. While loading, [Engine.Rows]
// is empty and all other events are ignored; the prior view state is
// preserved untouched underneath.
func (engine *Engine[T]) SetLoading(loading bool) {
	engine.loading = loading
}

// Loading reports whether the loading bypass is active.
func (engine *Engine[T]) Loading() bool {
	return engine.loading
}

// --- Filter events ---

// SetQuery replaces the search text. A changed query resets the
// current page to 1, since a new filter result invalidates the prior
// pagination position. Ignored when search is disabled or the engine
// is loading.
func (engine *Engine[T]) SetQuery(query string) {
	if engine.loading || !engine.options.Searchable {
		return
	}
	if query == engine.state.Query {
		return
	}
	engine.state.Query = query
	engine.state.Page = 1
}

// ClearQuery removes the search text, restoring the unfiltered set.
func (engine *Engine[T]) ClearQuery() {
	engine.SetQuery("")
}

// --- Sort events ---

// CycleSort advances the tri-state sort for the named column:
// none → ascending → descending → none. Cycling a different column
// than the current one resets to ascending on the new column,
// discarding the previous column's state. Requests for non-sortable
// or unknown columns are ignored.
func (engine *Engine[T]) CycleSort(key string) {
	if engine.loading {
		return
	}
	column, ok := columnByKey(engine.columns, key)
	if !ok || !column.Sortable() {
		return
	}

	if engine.state.SortColumn != key {
		engine.state.SortColumn = key
		engine.state.SortDirection = DirectionAscending
		return
	}

	engine.state.SortDirection = engine.state.SortDirection.next()
	if engine.state.SortDirection == DirectionNone {
		engine.state.SortColumn = ""
	}
}

// SetSort sets the sort column and direction directly, subject to the
// same sortability rules as [Engine.CycleSort]. DirectionNone clears
// the sort.
func (engine *Engine[T]) SetSort(key string, direction SortDirection) {
	if engine.loading {
		return
	}
	if direction == DirectionNone || key == "" {
		engine.state.SortColumn = ""
		engine.state.SortDirection = DirectionNone
		return
	}
	column, ok := columnByKey(engine.columns, key)
	if !ok || !column.Sortable() {
		return
	}
	engine.state.SortColumn = key
	engine.state.SortDirection = direction
}

// --- Pagination events ---

// NextPage advances one page. A no-op on the last page.
func (engine *Engine[T]) NextPage() {
	engine.SetPage(engine.Page() + 1)
}

// PreviousPage goes back one page. A no-op on page 1.
func (engine *Engine[T]) PreviousPage() {
	engine.SetPage(engine.Page() - 1)
}

// SetPage jumps to a 1-based page, clamped to [1, TotalPages].
func (engine *Engine[T]) SetPage(page int) {
	if engine.loading || !engine.options.Paginated {
		return
	}
	engine.state.Page = clampPage(page, engine.TotalPages())
}

// SetPageSize changes the rows-per-page count. Non-positive sizes are
// ignored. The current page is re-clamped against the new page count.
func (engine *Engine[T]) SetPageSize(size int) {
	if engine.loading || !engine.options.Paginated || size <= 0 {
		return
	}
	engine.state.PageSize = size
	engine.options.PageSize = size
	engine.state.Page = clampPage(engine.state.Page, engine.TotalPages())
}

// --- Selection events ---

// ToggleRow flips the selection state of one currently displayed row.
// Ids outside the displayed (post filter/sort/pagination) set are
// ignored. Notifies OnSelectionChange.
func (engine *Engine[T]) ToggleRow(id string) {
	if !engine.selectable() {
		return
	}
	if !engine.displayedIDs()[id] {
		return
	}
	engine.selection.Toggle(id)
	engine.notifySelection()
}

// SelectAll selects every currently displayed row — only the current
// page and filter view, never rows outside it. Notifies
// OnSelectionChange.
func (engine *Engine[T]) SelectAll() {
	if !engine.selectable() {
		return
	}
	for id := range engine.displayedIDs() {
		engine.selection.Add(id)
	}
	engine.notifySelection()
}

// DeselectAll deselects every currently displayed row. Selected rows
// outside the displayed view are untouched. Notifies
// OnSelectionChange.
func (engine *Engine[T]) DeselectAll() {
	if !engine.selectable() {
		return
	}
	for id := range engine.displayedIDs() {
		engine.selection.Remove(id)
	}
	engine.notifySelection()
}

// ToggleAll deselects the displayed rows when all of them are
// selected, and selects them all otherwise. This is the "select all"
// header checkbox behavior.
func (engine *Engine[T]) ToggleAll() {
	if !engine.selectable() {
		return
	}
	if engine.AllSelected() {
		engine.DeselectAll()
	} else {
		engine.SelectAll()
	}
}

// IsSelected reports whether the row id is in the selection set,
// whether or not the row is currently visible.
func (engine *Engine[T]) IsSelected(id string) bool {
	return engine.selection.Contains(id)
}

// SelectedCount returns the size of the selection set, including ids
// currently filtered out of view.
func (engine *Engine[T]) SelectedCount() int {
	return engine.selection.Len()
}

// SelectedRows returns the full rows whose id is in the selection
// set, derived by re-intersecting the id set against the unfiltered
// origin collection — not the filtered or paginated view — in origin
// order. Callers therefore see true selected rows regardless of the
// current filter state, without a second lookup.
func (engine *Engine[T]) SelectedRows() []T {
	if engine.options.RowID == nil {
		return nil
	}
	var selected []T
	for _, row := range engine.rows {
		if engine.selection.Contains(engine.options.RowID(row)) {
			selected = append(selected, row)
		}
	}
	return selected
}

// AllSelected reports whether every displayed row is selected and at
// least one row is displayed. Derived, never stored.
func (engine *Engine[T]) AllSelected() bool {
	displayed := engine.Rows()
	if len(displayed) == 0 || engine.options.RowID == nil {
		return false
	}
	for _, row := range displayed {
		if !engine.selection.Contains(engine.options.RowID(row)) {
			return false
		}
	}
	return true
}

// PartiallySelected reports whether some but not all displayed rows
// are selected (the indeterminate header checkbox state).
func (engine *Engine[T]) PartiallySelected() bool {
	displayed := engine.Rows()
	if len(displayed) == 0 || engine.options.RowID == nil {
		return false
	}
	selected := 0
	for _, row := range displayed {
		if engine.selection.Contains(engine.options.RowID(row)) {
			selected++
		}
	}
	return selected > 0 && selected < len(displayed)
}

// --- Derived reads ---

// Rows returns the currently displayed row sequence: the origin rows
// filtered by the query, ordered by the sort state, and cut to the
// current page. Empty while loading.
func (engine *Engine[T]) Rows() []T {
	if engine.loading {
		return nil
	}
	rows := engine.sorted()
	if !engine.options.Paginated {
		return rows
	}
	return paginateRows(rows, engine.Page(), engine.state.PageSize)
}

// View returns a copy of the current view state with the page already
// clamped to the valid range.
func (engine *Engine[T]) View() ViewState {
	state := engine.state
	state.Page = engine.Page()
	return state
}

// Query returns the current search text.
func (engine *Engine[T]) Query() string {
	return engine.state.Query
}

// Filtering reports whether a non-empty query is narrowing the view.
func (engine *Engine[T]) Filtering() bool {
	return strings.TrimSpace(engine.state.Query) != ""
}

// TotalRows returns the size of the unfiltered origin collection.
func (engine *Engine[T]) TotalRows() int {
	return len(engine.rows)
}

// FilteredCount returns the number of rows surviving the filter
// stage, across all pages.
func (engine *Engine[T]) FilteredCount() int {
	return len(engine.filtered())
}

// TotalPages returns ceil(FilteredCount/PageSize), minimum 1. Always
// 1 when pagination is disabled.
func (engine *Engine[T]) TotalPages() int {
	if !engine.options.Paginated {
		return 1
	}
	return totalPages(engine.FilteredCount(), engine.state.PageSize)
}

// Page returns the current 1-based page, clamped to [1, TotalPages].
func (engine *Engine[T]) Page() int {
	if !engine.options.Paginated {
		return 1
	}
	return clampPage(engine.state.Page, engine.TotalPages())
}

// --- Pipeline stages ---

// filtered applies the filter stage. Skipped entirely when search is
// disabled in configuration.
func (engine *Engine[T]) filtered() []T {
	if !engine.options.Searchable {
		return engine.rows
	}
	return filterRows(engine.rows, engine.columns, engine.state.Query, engine.options.Match)
}

// sorted applies the sort stage to the filtered set.
func (engine *Engine[T]) sorted() []T {
	return sortRows(engine.filtered(), engine.columns, engine.state.SortColumn, engine.state.SortDirection)
}

// displayedIDs returns the id set of the currently displayed rows.
func (engine *Engine[T]) displayedIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, row := range engine.Rows() {
		ids[engine.options.RowID(row)] = true
	}
	return ids
}

// selectable reports whether selection events apply: selection
// enabled, an id extractor present, and not loading.
func (engine *Engine[T]) selectable() bool {
	return !engine.loading && engine.options.Selectable && engine.options.RowID != nil
}

// notifySelection reports the full selected row list outward after
// every selection mutation.
func (engine *Engine[T]) notifySelection() {
	if engine.options.OnSelectionChange != nil {
		engine.options.OnSelectionChange(engine.SelectedRows())
	}
}
