// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableview

import (
	"fmt"
	"strings"
)

// Column describes how to extract, label, sort-enable, search-enable,
// and render one field across all rows of a table.
type Column[T any] struct {
	// Key identifies the column for sort state and definitions.
	// Must be unique within a table.
	Key string

	// Title is the display label shown in the header.
	Title string

	// Value extracts the column's field from a row. A nil extractor
	// yields the empty value for every row.
	Value func(row T) any

	// Render formats a cell for display. The index is the row's
	// position within the currently displayed sequence. When nil,
	// cells fall back to default stringification. A panic inside
	// Render is the caller's responsibility.
	Render func(value any, row T, index int) string

	// NoSort excludes the column from sorting. The zero value keeps
	// the column sortable.
	NoSort bool

	// NoSearch excludes the column from text search. The zero value
	// keeps the column searchable.
	NoSearch bool

	// Width is a rendering hint: fixed cell width in terminal cells.
	// Zero lets the renderer distribute remaining space.
	Width int
}

// Sortable reports whether sort toggles apply to this column.
func (column Column[T]) Sortable() bool {
	return !column.NoSort
}

// Searchable reports whether text search inspects this column.
func (column Column[T]) Searchable() bool {
	return !column.NoSearch
}

// value extracts the column's raw value from a row, treating a nil
// extractor as absent.
func (column Column[T]) value(row T) any {
	if column.Value == nil {
		return nil
	}
	return column.Value(row)
}

// CellText returns the display text for a cell: the Render override
// when present, default stringification otherwise.
func (column Column[T]) CellText(row T, index int) string {
	value := column.value(row)
	if column.Render != nil {
		return column.Render(value, row, index)
	}
	return Stringify(value)
}

// Stringify converts a cell value to its search/display string
// representation. Nil (an absent field) becomes the empty string so
// that missing values compare and search as the type's natural empty
// value rather than failing.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// columnByKey finds a column by key. The second return is false when
// no column carries the key.
func columnByKey[T any](columns []Column[T], key string) (Column[T], bool) {
	for _, column := range columns {
		if column.Key == key {
			return column, true
		}
	}
	return Column[T]{}, false
}

// searchText returns the lowercased searchable text of a cell. Search
// always inspects the raw value's string form, not the Render output,
// so custom renderers (icons, padding) do not distort matching.
func (column Column[T]) searchText(row T) string {
	return strings.ToLower(Stringify(column.value(row)))
}
