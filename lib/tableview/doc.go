// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

// Package tableview implements the in-memory view pipeline behind
// gridview's data table: text search filtering, column sorting,
// pagination, and row selection, composed over a caller-supplied row
// slice.
//
// The pipeline is three sequential pure transforms — Filter → Sort →
// Paginate — with selection state layered orthogonally on top. Every
// derived value (the displayed rows, page counts, selection flags) is
// recomputed deterministically from the engine's current inputs, so
// repeating the same inputs always yields identical output. Nothing is
// asynchronous: each mutating method corresponds to one discrete user
// event (a keystroke, a header click, a page button) and completes
// before the next is processed.
//
// [Engine] is generic over the row type. Callers describe how to read
// rows through [Column] descriptors and identify them through
// [Options].RowID:
//
//	type User struct {
//	    ID   int
//	    Name string
//	}
//
//	engine := tableview.NewEngine(users,
//	    []tableview.Column[User]{
//	        {Key: "id", Title: "ID", Value: func(u User) any { return u.ID }},
//	        {Key: "name", Title: "Name", Value: func(u User) any { return u.Name }},
//	    },
//	    tableview.Options[User]{
//	        RowID:      func(u User) string { return strconv.Itoa(u.ID) },
//	        Searchable: true,
//	        Selectable: true,
//	        Paginated:  true,
//	    },
//	)
//
// Rendering is deliberately out of scope: a renderer (such as
// [gridview/lib/tableui]) reads Rows, View, and the selection
// accessors each cycle and forwards user events back into the engine.
package tableview
