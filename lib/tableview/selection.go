// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableview

// SelectionSet is the set of row identifiers marked selected. It is
// owned exclusively by the table engine and persists across re-filter,
// re-sort, and re-page operations: selecting rows and then changing
// the search text does not clear them. Ids whose rows are currently
// filtered out remain selected but inert until visible again.
type SelectionSet struct {
	ids map[string]struct{}
}

// NewSelectionSet returns an empty selection.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{ids: make(map[string]struct{})}
}

// Contains reports whether the id is selected.
func (selection *SelectionSet) Contains(id string) bool {
	_, ok := selection.ids[id]
	return ok
}

// Add marks the id selected. Returns true if the set changed.
func (selection *SelectionSet) Add(id string) bool {
	if selection.Contains(id) {
		return false
	}
	selection.ids[id] = struct{}{}
	return true
}

// Remove unmarks the id. Returns true if the set changed.
func (selection *SelectionSet) Remove(id string) bool {
	if !selection.Contains(id) {
		return false
	}
	delete(selection.ids, id)
	return true
}

// Toggle flips the id between selected and unselected.
func (selection *SelectionSet) Toggle(id string) {
	if !selection.Add(id) {
		selection.Remove(id)
	}
}

// Len returns the number of selected ids, including ids not currently
// visible.
func (selection *SelectionSet) Len() int {
	return len(selection.ids)
}

// Clear removes every id.
func (selection *SelectionSet) Clear() {
	clear(selection.ids)
}
