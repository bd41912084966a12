// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableview

import (
	"slices"
	"strings"
	"time"
)

// sortRows returns a new slice ordered by the named column. When the
// column is unset, unknown, or the direction is [DirectionNone], the
// input is returned unchanged (stable passthrough, same slice). The
// sort is stable: rows whose values compare equal keep their relative
// input order. The input slice is never mutated.
func sortRows[T any](rows []T, columns []Column[T], key string, direction SortDirection) []T {
	if key == "" || direction == DirectionNone {
		return rows
	}
	column, ok := columnByKey(columns, key)
	if !ok {
		return rows
	}

	sorted := make([]T, len(rows))
	copy(sorted, rows)
	slices.SortStableFunc(sorted, func(a, b T) int {
		order := compareValues(column.value(a), column.value(b))
		if direction == DirectionDescending {
			return -order
		}
		return order
	})
	return sorted
}

// compareValues orders two cell values by their natural ordering:
// numerically when both sides are numeric, chronologically for
// times, lexicographically for everything else via the string
// representation. Absent (nil) values order as the empty value of
// the other side's type.
func compareValues(a, b any) int {
	if numericA, okA := toFloat(a); okA {
		if numericB, okB := toFloat(b); okB {
			switch {
			case numericA < numericB:
				return -1
			case numericA > numericB:
				return 1
			default:
				return 0
			}
		}
	}

	if timeA, okA := a.(time.Time); okA {
		if timeB, okB := b.(time.Time); okB {
			return timeA.Compare(timeB)
		}
	}

	return strings.Compare(Stringify(a), Stringify(b))
}

// toFloat widens any numeric cell value to float64 for comparison.
// Nil counts as numeric zero so that absent fields sort ahead of
// populated ones in a numeric column rather than falling back to
// string comparison.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
