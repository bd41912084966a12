// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableview

import (
	"slices"
	"testing"
	"time"
)

func TestSortAscendingByString(t *testing.T) {
	rows := sortRows(testEmployees(), employeeColumns(), "name", DirectionAscending)
	want := []string{"Amy", "Bob", "Cid", "Dana", "Eve"}
	if got := names(rows); !slices.Equal(got, want) {
		t.Errorf("ascending name sort returned %v, want %v", got, want)
	}
}

func TestSortDescendingByString(t *testing.T) {
	rows := sortRows(testEmployees(), employeeColumns(), "name", DirectionDescending)
	want := []string{"Eve", "Dana", "Cid", "Bob", "Amy"}
	if got := names(rows); !slices.Equal(got, want) {
		t.Errorf("descending name sort returned %v, want %v", got, want)
	}
}

func TestSortNumericNotLexicographic(t *testing.T) {
	rows := []employee{
		{ID: 1, Name: "a", Age: 9},
		{ID: 2, Name: "b", Age: 100},
		{ID: 3, Name: "c", Age: 20},
	}
	sorted := sortRows(rows, employeeColumns(), "age", DirectionAscending)
	// Lexicographic would give 100 < 20 < 9.
	want := []string{"a", "c", "b"}
	if got := names(sorted); !slices.Equal(got, want) {
		t.Errorf("numeric sort returned %v, want %v", got, want)
	}
}

func TestSortUnsetColumnReturnsInputOrder(t *testing.T) {
	input := testEmployees()
	rows := sortRows(input, employeeColumns(), "", DirectionAscending)
	if !slices.Equal(names(rows), names(input)) {
		t.Error("sort with unset column changed row order")
	}
}

func TestSortDirectionNoneReturnsInputOrder(t *testing.T) {
	input := testEmployees()
	rows := sortRows(input, employeeColumns(), "name", DirectionNone)
	if !slices.Equal(names(rows), names(input)) {
		t.Error("sort with direction none changed row order")
	}
}

func TestSortUnknownColumnReturnsInputOrder(t *testing.T) {
	input := testEmployees()
	rows := sortRows(input, employeeColumns(), "salary", DirectionAscending)
	if !slices.Equal(names(rows), names(input)) {
		t.Error("sort by unknown column changed row order")
	}
}

func TestSortStableOnTies(t *testing.T) {
	// Amy and Dana are both 28; their relative input order (Amy
	// before Dana) must survive the sort.
	rows := sortRows(testEmployees(), employeeColumns(), "age", DirectionAscending)
	want := []string{"Amy", "Dana", "Bob", "Eve", "Cid"}
	if got := names(rows); !slices.Equal(got, want) {
		t.Errorf("stable age sort returned %v, want %v", got, want)
	}
}

func TestSortIdempotent(t *testing.T) {
	first := sortRows(testEmployees(), employeeColumns(), "age", DirectionAscending)
	second := sortRows(first, employeeColumns(), "age", DirectionAscending)
	if !slices.Equal(names(first), names(second)) {
		t.Errorf("sorting twice changed order: %v then %v", names(first), names(second))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := testEmployees()
	before := names(input)
	sortRows(input, employeeColumns(), "name", DirectionDescending)
	if !slices.Equal(names(input), before) {
		t.Error("sort mutated its input slice")
	}
}

func TestSortMissingValuesAsEmpty(t *testing.T) {
	columns := []Column[employee]{
		{Key: "name", Title: "Name", Value: func(e employee) any { return e.Name }},
		{Key: "ghost", Title: "Ghost"}, // no extractor: every value absent
	}
	input := testEmployees()
	rows := sortRows(input, columns, "ghost", DirectionAscending)
	// All values are equal (empty), so stability requires input order.
	if !slices.Equal(names(rows), names(input)) {
		t.Error("sorting an absent column changed row order")
	}
}

func TestCompareValuesTimes(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	if compareValues(earlier, later) >= 0 {
		t.Error("expected earlier time to compare less than later time")
	}
	if compareValues(later, earlier) <= 0 {
		t.Error("expected later time to compare greater than earlier time")
	}
	if compareValues(earlier, earlier) != 0 {
		t.Error("expected equal times to compare equal")
	}
}

func TestCompareValuesMixedFallsBackToStrings(t *testing.T) {
	// A numeric and a string value compare by string representation.
	if compareValues(2, "10") <= 0 {
		t.Error(`expected 2 > "10" under lexicographic fallback`)
	}
}

func TestCompareValuesNilIsNumericZero(t *testing.T) {
	if compareValues(nil, 5) >= 0 {
		t.Error("expected nil to compare less than 5 in a numeric column")
	}
	if compareValues(nil, nil) != 0 {
		t.Error("expected nil values to compare equal")
	}
}

func TestTriStateCycleRestoresOriginalOrder(t *testing.T) {
	engine := NewEngine(testEmployees(), employeeColumns(), Options[employee]{})
	original := names(engine.Rows())

	// Three cycles on the same column: none → asc → desc → none.
	engine.CycleSort("name")
	engine.CycleSort("name")
	engine.CycleSort("name")

	state := engine.View()
	if state.SortColumn != "" || state.SortDirection != DirectionNone {
		t.Errorf("after three cycles state = (%q, %v), want unsorted", state.SortColumn, state.SortDirection)
	}
	if got := names(engine.Rows()); !slices.Equal(got, original) {
		t.Errorf("after three cycles rows = %v, want original %v", got, original)
	}
}

func TestCycleSortScenario(t *testing.T) {
	// rows [Bob, Amy, Cid]: asc → [Amy Bob Cid], desc → [Cid Bob Amy],
	// third click → original [Bob Amy Cid].
	rows := []employee{
		{ID: 1, Name: "Bob"},
		{ID: 2, Name: "Amy"},
		{ID: 3, Name: "Cid"},
	}
	engine := NewEngine(rows, employeeColumns(), Options[employee]{})

	engine.CycleSort("name")
	if got := names(engine.Rows()); !slices.Equal(got, []string{"Amy", "Bob", "Cid"}) {
		t.Errorf("first click: rows = %v, want [Amy Bob Cid]", got)
	}

	engine.CycleSort("name")
	if got := names(engine.Rows()); !slices.Equal(got, []string{"Cid", "Bob", "Amy"}) {
		t.Errorf("second click: rows = %v, want [Cid Bob Amy]", got)
	}

	engine.CycleSort("name")
	if got := names(engine.Rows()); !slices.Equal(got, []string{"Bob", "Amy", "Cid"}) {
		t.Errorf("third click: rows = %v, want original [Bob Amy Cid]", got)
	}
}

func TestCycleSortDifferentColumnResetsToAscending(t *testing.T) {
	engine := NewEngine(testEmployees(), employeeColumns(), Options[employee]{})

	engine.CycleSort("name")
	engine.CycleSort("name") // name descending
	engine.CycleSort("age")  // switch columns

	state := engine.View()
	if state.SortColumn != "age" || state.SortDirection != DirectionAscending {
		t.Errorf("after column switch state = (%q, %v), want (age, asc)", state.SortColumn, state.SortDirection)
	}
}

func TestCycleSortNonSortableIgnored(t *testing.T) {
	columns := employeeColumns()
	columns[0].NoSort = true
	engine := NewEngine(testEmployees(), columns, Options[employee]{})

	engine.CycleSort("name")

	state := engine.View()
	if state.SortColumn != "" || state.SortDirection != DirectionNone {
		t.Errorf("non-sortable column accepted a sort toggle: (%q, %v)", state.SortColumn, state.SortDirection)
	}
}
