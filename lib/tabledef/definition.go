// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

// Package tabledef provides parsing, validation, and engine wiring
// for declarative table definitions. A definition describes a table's
// columns and behavior; row data ships separately as a list of
// records. Definitions are authored on disk as YAML or as JSONC (JSON
// extended with comments and trailing commas), chosen by file
// extension.
//
// The typical flow:
//
//  1. ReadFile: definition bytes → Definition
//  2. Validate: structural checks (unique keys, known match mode, etc.)
//  3. Build: Definition → tableview columns and options
//  4. ReadRecords: row data bytes → []Record
package tabledef

// Definition is a declarative description of a table: its columns
// plus the behavior switches that become [tableview.Options].
type Definition struct {
	// Title is an optional heading shown above the table.
	Title string `yaml:"title" json:"title"`

	// IDField names the record field used as the stable row id for
	// selection. Defaults to "id".
	IDField string `yaml:"id_field" json:"id_field"`

	// Columns lists the table's columns in display order.
	Columns []ColumnDef `yaml:"columns" json:"columns"`

	// Options holds the behavior switches.
	Options OptionsDef `yaml:"options" json:"options"`
}

// ColumnDef describes one column of a definition.
type ColumnDef struct {
	// Key identifies the column and names the record field it reads.
	Key string `yaml:"key" json:"key"`

	// Title is the header label. Defaults to Key.
	Title string `yaml:"title" json:"title"`

	// Width fixes the rendered width in terminal cells. Zero means
	// the column shares the remaining space.
	Width int `yaml:"width" json:"width"`

	// Sortable and Searchable opt the column out of sorting or
	// searching when explicitly false. Absent means true.
	Sortable   *bool `yaml:"sortable" json:"sortable"`
	Searchable *bool `yaml:"searchable" json:"searchable"`
}

// OptionsDef holds the definition's behavior switches, mirroring
// [tableview.Options] in authoring-friendly form.
type OptionsDef struct {
	Searchable        bool   `yaml:"searchable" json:"searchable"`
	SearchPlaceholder string `yaml:"search_placeholder" json:"search_placeholder"`

	// Match selects the filter algorithm: "substring" (the default)
	// or "fuzzy".
	Match string `yaml:"match" json:"match"`

	Selectable   bool `yaml:"selectable" json:"selectable"`
	Paginated    bool `yaml:"paginated" json:"paginated"`
	PageSize     int  `yaml:"page_size" json:"page_size"`
	ShowRowCount bool `yaml:"show_row_count" json:"show_row_count"`
}

// Record is one row of table data. Values are whatever the source
// format produced: strings, numbers (float64 from JSON, int from
// YAML), booleans, or nil. The engine's comparator handles the
// numeric-type mix.
type Record map[string]any

// DefaultIDField is used when a definition leaves IDField empty.
const DefaultIDField = "id"
