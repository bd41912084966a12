// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableui

import (
	"fmt"
	"strings"

	"github.com/gridview-ui/gridview/lib/tableview"
	"github.com/gridview-ui/gridview/lib/tui"
)

// checkboxWidth is the rendered width of the selection column,
// "[x] " including the trailing separator. The mouse handler treats
// clicks left of this boundary as checkbox clicks.
const checkboxWidth = 4

// minColumnWidth is the floor for flexible columns on narrow
// terminals.
const minColumnWidth = 4

func (model Model[T]) View() string {
	if model.engine.Loading() {
		return model.styles.Loading.Render(model.spinner.View() + "Loading…")
	}

	options := model.engine.Options()
	var sections []string

	if model.Title != "" {
		sections = append(sections, model.styles.Title.Render(model.Title))
	}
	if options.Searchable {
		sections = append(sections, model.search.View())
	}

	sections = append(sections, model.renderHeader())
	sections = append(sections, model.renderBody()...)
	sections = append(sections, model.renderFooter()...)

	return strings.Join(sections, "\n")
}

// headerLine returns the Y coordinate of the header row within the
// rendered output. Mouse hit-testing depends on this matching the
// section order in View.
func (model Model[T]) headerLine() int {
	line := 0
	if model.Title != "" {
		line++
	}
	if model.engine.Options().Searchable {
		line++
	}
	return line
}

// columnWidths computes the rendered width of each column. Columns
// with an explicit Width keep it; the remaining space is split evenly
// among the rest, one separator cell between neighbors.
func (model Model[T]) columnWidths() []int {
	columns := model.engine.Columns()
	widths := make([]int, len(columns))

	available := model.width
	if model.engine.Options().Selectable {
		available -= checkboxWidth
	}
	available -= len(columns) - 1 // separators

	flexible := 0
	for index, column := range columns {
		if column.Width > 0 {
			widths[index] = column.Width
			available -= column.Width
		} else {
			flexible++
		}
	}
	if flexible == 0 {
		return widths
	}

	share := available / flexible
	if share < minColumnWidth {
		share = minColumnWidth
	}
	for index := range widths {
		if widths[index] == 0 {
			widths[index] = share
		}
	}
	return widths
}

// columnAt maps a terminal X coordinate on the header line to a
// column index.
func (model Model[T]) columnAt(x int) (int, bool) {
	start := 0
	if model.engine.Options().Selectable {
		start = checkboxWidth
	}
	for index, width := range model.columnWidths() {
		if x >= start && x < start+width {
			return index, true
		}
		start += width + 1
	}
	return 0, false
}

func (model Model[T]) renderHeader() string {
	options := model.engine.Options()
	view := model.engine.View()
	widths := model.columnWidths()

	var builder strings.Builder
	if options.Selectable {
		builder.WriteString(model.styles.Checkbox.Render(model.aggregateCheckbox()))
		builder.WriteString(" ")
	}

	cells := make([]string, 0, len(widths))
	for index, column := range model.engine.Columns() {
		title := column.Title
		if view.SortColumn == column.Key {
			switch view.SortDirection {
			case tableview.DirectionAscending:
				title += " ▲"
			case tableview.DirectionDescending:
				title += " ▼"
			}
		}
		cells = append(cells, tui.Pad(title, widths[index]))
	}
	builder.WriteString(model.styles.Header.Render(strings.Join(cells, " ")))
	return builder.String()
}

// aggregateCheckbox reflects the selection state of the displayed
// rows: all selected, some selected, or none.
func (model Model[T]) aggregateCheckbox() string {
	switch {
	case model.engine.AllSelected():
		return "[x]"
	case model.engine.PartiallySelected():
		return "[~]"
	default:
		return "[ ]"
	}
}

func (model Model[T]) renderBody() []string {
	options := model.engine.Options()
	rows := model.engine.Rows()
	widths := model.columnWidths()
	columns := model.engine.Columns()

	if len(rows) == 0 {
		message := "no rows"
		if model.engine.Filtering() {
			message = "no matching rows"
		}
		return []string{model.styles.Faint.Render(message)}
	}

	lines := make([]string, 0, len(rows))
	for rowIndex, row := range rows {
		var builder strings.Builder
		if options.Selectable {
			checkbox := "[ ]"
			if options.RowID != nil && model.engine.IsSelected(options.RowID(row)) {
				checkbox = "[x]"
			}
			builder.WriteString(checkbox)
			builder.WriteString(" ")
		}
		cells := make([]string, 0, len(columns))
		for columnIndex, column := range columns {
			cells = append(cells, tui.Pad(column.CellText(row, rowIndex), widths[columnIndex]))
		}
		builder.WriteString(strings.Join(cells, " "))

		line := builder.String()
		if rowIndex == model.cursor {
			line = model.styles.CursorRow.Render(line)
		} else {
			line = model.styles.Row.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

func (model Model[T]) renderFooter() []string {
	options := model.engine.Options()
	var lines []string

	if options.ShowRowCount {
		total := model.engine.TotalRows()
		count := fmt.Sprintf("%d rows", total)
		if model.engine.Filtering() {
			count = fmt.Sprintf("%d of %d rows", model.engine.FilteredCount(), total)
		}
		if selected := model.engine.SelectedCount(); selected > 0 {
			count += fmt.Sprintf(" · %d selected", selected)
		}
		lines = append(lines, model.styles.Faint.Render(count))
	}

	if options.Paginated && model.engine.TotalPages() > 1 {
		page := fmt.Sprintf(" %d/%d", model.engine.Page(), model.engine.TotalPages())
		lines = append(lines, model.pager.View()+model.styles.Faint.Render(page))
	}

	lines = append(lines, model.styles.Faint.Render(model.helpLine()))
	return lines
}

// helpLine summarizes the bindings that apply to the current options.
func (model Model[T]) helpLine() string {
	options := model.engine.Options()
	parts := []string{"j/k move"}
	if options.Paginated {
		parts = append(parts, "h/l page")
	}
	if options.Selectable {
		parts = append(parts, "space select", "a all")
	}
	if options.Searchable {
		parts = append(parts, "/ search")
	}
	parts = append(parts, "1-9 sort", "q quit")
	return strings.Join(parts, " · ")
}
