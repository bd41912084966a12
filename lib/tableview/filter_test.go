// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableview

import (
	"slices"
	"testing"
)

type employee struct {
	ID   int
	Name string
	Team string
	Age  int
}

func employeeColumns() []Column[employee] {
	return []Column[employee]{
		{Key: "name", Title: "Name", Value: func(e employee) any { return e.Name }},
		{Key: "team", Title: "Team", Value: func(e employee) any { return e.Team }},
		{Key: "age", Title: "Age", Value: func(e employee) any { return e.Age }},
	}
}

func testEmployees() []employee {
	return []employee{
		{ID: 1, Name: "Bob", Team: "Transport", Age: 34},
		{ID: 2, Name: "Amy", Team: "Storage", Age: 28},
		{ID: 3, Name: "Cid", Team: "Transport", Age: 41},
		{ID: 4, Name: "Dana", Team: "Observability", Age: 28},
		{ID: 5, Name: "Eve", Team: "Storage", Age: 35},
	}
}

func names(rows []employee) []string {
	result := make([]string, len(rows))
	for i, row := range rows {
		result[i] = row.Name
	}
	return result
}

func TestFilterMatchesSingleColumn(t *testing.T) {
	rows := filterRows(testEmployees(), employeeColumns(), "amy", MatchSubstring)
	if got := names(rows); !slices.Equal(got, []string{"Amy"}) {
		t.Errorf("filter 'amy' returned %v, want [Amy]", got)
	}
}

func TestFilterMatchesAnySearchableColumn(t *testing.T) {
	// "transport" only appears in the Team column; both transport
	// employees must match, in input order.
	rows := filterRows(testEmployees(), employeeColumns(), "transport", MatchSubstring)
	if got := names(rows); !slices.Equal(got, []string{"Bob", "Cid"}) {
		t.Errorf("filter 'transport' returned %v, want [Bob Cid]", got)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	rows := filterRows(testEmployees(), employeeColumns(), "STORAGE", MatchSubstring)
	if len(rows) != 2 {
		t.Errorf("filter 'STORAGE' matched %d rows, want 2", len(rows))
	}
}

func TestFilterSubstringNotToken(t *testing.T) {
	// "bserv" is an interior substring of "Observability" — substring
	// matching must hit it even though it is not a word.
	rows := filterRows(testEmployees(), employeeColumns(), "bserv", MatchSubstring)
	if got := names(rows); !slices.Equal(got, []string{"Dana"}) {
		t.Errorf("filter 'bserv' returned %v, want [Dana]", got)
	}
}

func TestFilterEmptyQueryReturnsSameSlice(t *testing.T) {
	input := testEmployees()
	rows := filterRows(input, employeeColumns(), "", MatchSubstring)
	if len(rows) != len(input) {
		t.Fatalf("empty query returned %d rows, want %d", len(rows), len(input))
	}
	if !slices.Equal(names(rows), names(input)) {
		t.Error("empty query changed row order")
	}
}

func TestFilterWhitespaceQueryShortCircuits(t *testing.T) {
	rows := filterRows(testEmployees(), employeeColumns(), "   \t", MatchSubstring)
	if len(rows) != 5 {
		t.Errorf("whitespace-only query matched %d rows, want all 5", len(rows))
	}
}

func TestFilterNumericColumnStringified(t *testing.T) {
	// Ages are ints; search inspects their string representation.
	rows := filterRows(testEmployees(), employeeColumns(), "28", MatchSubstring)
	if got := names(rows); !slices.Equal(got, []string{"Amy", "Dana"}) {
		t.Errorf("filter '28' returned %v, want [Amy Dana]", got)
	}
}

func TestFilterSkipsNoSearchColumns(t *testing.T) {
	columns := employeeColumns()
	columns[1].NoSearch = true // Team no longer searchable.
	rows := filterRows(testEmployees(), columns, "transport", MatchSubstring)
	if len(rows) != 0 {
		t.Errorf("filter matched %d rows through a NoSearch column, want 0", len(rows))
	}
}

func TestFilterNoMatch(t *testing.T) {
	rows := filterRows(testEmployees(), employeeColumns(), "zzz", MatchSubstring)
	if len(rows) != 0 {
		t.Errorf("filter 'zzz' matched %d rows, want 0", len(rows))
	}
}

func TestFilterResultIsSubsetInInputOrder(t *testing.T) {
	input := testEmployees()
	rows := filterRows(input, employeeColumns(), "a", MatchSubstring)
	// Every result row must exist in the input, and relative order
	// must be preserved.
	lastIndex := -1
	for _, row := range rows {
		index := slices.IndexFunc(input, func(e employee) bool { return e.ID == row.ID })
		if index < 0 {
			t.Fatalf("filter invented row %+v", row)
		}
		if index <= lastIndex {
			t.Fatalf("filter reordered rows: index %d after %d", index, lastIndex)
		}
		lastIndex = index
	}
}

func TestFilterFuzzyNonContiguous(t *testing.T) {
	// "obs" appears contiguously nowhere relevant, but fuzzy "obsy"
	// matches O-b-s...y in "Observability".
	rows := filterRows(testEmployees(), employeeColumns(), "obsy", MatchFuzzy)
	if got := names(rows); !slices.Equal(got, []string{"Dana"}) {
		t.Errorf("fuzzy filter 'obsy' returned %v, want [Dana]", got)
	}
}

func TestFilterFuzzyCaseInsensitive(t *testing.T) {
	rows := filterRows(testEmployees(), employeeColumns(), "TRNSPRT", MatchFuzzy)
	if len(rows) != 2 {
		t.Errorf("fuzzy filter 'TRNSPRT' matched %d rows, want 2", len(rows))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	input := testEmployees()
	before := names(input)
	filterRows(input, employeeColumns(), "storage", MatchSubstring)
	if !slices.Equal(names(input), before) {
		t.Error("filter mutated its input slice")
	}
}
