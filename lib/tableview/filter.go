// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableview

import (
	"strings"

	"github.com/junegunn/fzf/src/util"

	"github.com/gridview-ui/gridview/lib/tui"
)

// filterRows returns the subset of rows where at least one searchable
// column's stringified value matches the query. An empty or
// whitespace-only query short-circuits to the full, unfiltered set
// (same slice, same order). The input is never mutated.
func filterRows[T any](rows []T, columns []Column[T], query string, mode MatchMode) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return rows
	}

	var matcher rowMatcher[T]
	switch mode {
	case MatchFuzzy:
		matcher = newFuzzyMatcher[T](query)
	default:
		matcher = substringMatcher[T]{query: strings.ToLower(query)}
	}

	var result []T
	for _, row := range rows {
		if matcher.matches(row, columns) {
			result = append(result, row)
		}
	}
	return result
}

// rowMatcher decides whether a row matches the current query.
// Implementations check each searchable column and succeed on the
// first hit.
type rowMatcher[T any] interface {
	matches(row T, columns []Column[T]) bool
}

// substringMatcher is the default filter: case-insensitive substring
// containment, not token match.
type substringMatcher[T any] struct {
	query string // already lowercased
}

func (matcher substringMatcher[T]) matches(row T, columns []Column[T]) bool {
	for _, column := range columns {
		if !column.Searchable() {
			continue
		}
		if strings.Contains(column.searchText(row), matcher.query) {
			return true
		}
	}
	return false
}

// fuzzyMatcher applies the fzf algorithm per searchable column. The
// slab is reused across cells to avoid re-allocating the scoring
// matrix on every keystroke.
type fuzzyMatcher[T any] struct {
	pattern []rune
	slab    *util.Slab
}

func newFuzzyMatcher[T any](query string) *fuzzyMatcher[T] {
	return &fuzzyMatcher[T]{
		pattern: []rune(strings.ToLower(query)),
		slab:    tui.NewFuzzySlab(),
	}
}

func (matcher *fuzzyMatcher[T]) matches(row T, columns []Column[T]) bool {
	for _, column := range columns {
		if !column.Searchable() {
			continue
		}
		result := tui.FuzzyMatch(Stringify(column.value(row)), matcher.pattern, matcher.slab)
		if result.Score > 0 {
			return true
		}
	}
	return false
}
