// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableview

// SortDirection is the tri-state sort setting for a column.
type SortDirection int

const (
	// DirectionNone leaves rows in their original input order.
	DirectionNone SortDirection = iota
	// DirectionAscending sorts smallest-first.
	DirectionAscending
	// DirectionDescending sorts largest-first.
	DirectionDescending
)

func (direction SortDirection) String() string {
	switch direction {
	case DirectionAscending:
		return "asc"
	case DirectionDescending:
		return "desc"
	default:
		return "none"
	}
}

// next advances the tri-state cycle: none → ascending → descending → none.
func (direction SortDirection) next() SortDirection {
	switch direction {
	case DirectionNone:
		return DirectionAscending
	case DirectionAscending:
		return DirectionDescending
	default:
		return DirectionNone
	}
}

// ViewState is the table-instance-owned combination of search text,
// sort column/direction, and pagination position. The displayed row
// sequence is always a deterministic function of (rows, columns,
// ViewState).
type ViewState struct {
	// Query is the current search text. Empty or whitespace-only
	// means unfiltered.
	Query string

	// SortColumn is the key of the column sorted by, or "" when
	// unsorted.
	SortColumn string

	// SortDirection is the current direction for SortColumn.
	SortDirection SortDirection

	// Page is the current 1-based page. Always within
	// [1, total pages].
	Page int

	// PageSize is the number of rows per page. Always positive when
	// pagination is enabled.
	PageSize int
}
