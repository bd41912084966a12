// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tabledef

import (
	"fmt"
	"regexp"
)

// columnKeyPattern matches valid column keys: start with a letter or
// underscore, followed by letters, digits, underscores, or hyphens.
// Anchored to the full string.
var columnKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Validate checks a Definition for structural issues. Returns a list
// of human-readable issue descriptions. An empty list means the
// definition is valid.
//
// Structural checks include:
//   - At least one column is required
//   - Each column must have a non-empty, well-formed Key
//   - Column keys must be unique
//   - Column widths must not be negative
//   - Match (when present) must be "substring" or "fuzzy"
//   - PageSize must not be negative
func Validate(definition *Definition) []string {
	var issues []string

	if len(definition.Columns) == 0 {
		issues = append(issues, "definition has no columns (at least one column is required)")
	}

	// Duplicate keys would make the later column unreachable: field
	// lookup, sorting, and header clicks all address columns by key.
	columnKeys := make(map[string]int, len(definition.Columns))
	for index, column := range definition.Columns {
		prefix := fmt.Sprintf("columns[%d]", index)

		switch {
		case column.Key == "":
			issues = append(issues, fmt.Sprintf("%s: key is required", prefix))
		case !columnKeyPattern.MatchString(column.Key):
			issues = append(issues, fmt.Sprintf(
				"%s: key %q must be an identifier ([A-Za-z_][A-Za-z0-9_-]*)",
				prefix, column.Key,
			))
		default:
			if firstIndex, exists := columnKeys[column.Key]; exists {
				issues = append(issues, fmt.Sprintf(
					"%s: duplicate key %q (first used at columns[%d])",
					prefix, column.Key, firstIndex,
				))
			} else {
				columnKeys[column.Key] = index
			}
		}

		if column.Width < 0 {
			issues = append(issues, fmt.Sprintf("%s %q: width must not be negative", prefix, column.Key))
		}
	}

	switch definition.Options.Match {
	case "", "substring", "fuzzy":
	default:
		issues = append(issues, fmt.Sprintf(
			"options.match: unknown mode %q (want \"substring\" or \"fuzzy\")",
			definition.Options.Match,
		))
	}

	if definition.Options.PageSize < 0 {
		issues = append(issues, "options.page_size must not be negative")
	}

	return issues
}
