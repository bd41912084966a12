// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tabledef

import (
	"github.com/gridview-ui/gridview/lib/tableview"
)

// Build translates a Definition into the column descriptors and
// options a [tableview.Engine] takes. The caller is expected to have
// run Validate first; Build does not re-check.
func Build(definition *Definition) ([]tableview.Column[Record], tableview.Options[Record]) {
	columns := make([]tableview.Column[Record], 0, len(definition.Columns))
	for _, columnDef := range definition.Columns {
		key := columnDef.Key
		title := columnDef.Title
		if title == "" {
			title = key
		}
		columns = append(columns, tableview.Column[Record]{
			Key:      key,
			Title:    title,
			Width:    columnDef.Width,
			Value:    func(record Record) any { return record[key] },
			NoSort:   columnDef.Sortable != nil && !*columnDef.Sortable,
			NoSearch: columnDef.Searchable != nil && !*columnDef.Searchable,
		})
	}

	idField := definition.IDField
	if idField == "" {
		idField = DefaultIDField
	}

	options := tableview.Options[Record]{
		RowID: func(record Record) string {
			return tableview.Stringify(record[idField])
		},
		Searchable:        definition.Options.Searchable,
		SearchPlaceholder: definition.Options.SearchPlaceholder,
		Selectable:        definition.Options.Selectable,
		Paginated:         definition.Options.Paginated,
		PageSize:          definition.Options.PageSize,
		ShowRowCount:      definition.Options.ShowRowCount,
	}
	if definition.Options.Match == "fuzzy" {
		options.Match = tableview.MatchFuzzy
	}

	return columns, options
}
