// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridview-ui/gridview/lib/tableview"
)

// FocusRegion identifies where keystrokes are routed.
type FocusRegion int

const (
	// FocusRows means navigation keys move the row cursor.
	FocusRows FocusRegion = iota
	// FocusSearch means keystrokes go to the search input
	// (the user pressed / to start typing).
	FocusSearch
)

// Model is the bubbletea component wrapping a [tableview.Engine]. It
// renders the engine's displayed rows and forwards user events
// (keystrokes, header clicks, page buttons) into the engine, one
// discrete event per Update call.
//
// The model holds no derived table state of its own: every View call
// reads the displayed rows, view state, and selection flags fresh
// from the engine.
type Model[T any] struct {
	// Title is an optional heading rendered above the table.
	Title string

	engine  *tableview.Engine[T]
	keys    KeyMap
	styles  styles
	search  textinput.Model
	spinner spinner.Model
	pager   paginator.Model

	focus  FocusRegion
	cursor int
	width  int
	height int
}

// defaultWidth is used until the terminal reports its size.
const defaultWidth = 80

// NewModel creates a table component over the engine.
func NewModel[T any](engine *tableview.Engine[T]) Model[T] {
	options := engine.Options()

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = options.SearchPlaceholder
	if search.Placeholder == "" {
		search.Placeholder = "search"
	}

	loading := spinner.New()
	loading.Spinner = spinner.Dot

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = "●"
	pager.InactiveDot = "○"

	model := Model[T]{
		engine:  engine,
		keys:    DefaultKeyMap,
		styles:  defaultStyles(),
		search:  search,
		spinner: loading,
		pager:   pager,
		width:   defaultWidth,
	}
	model.syncPager()
	return model
}

// Engine returns the underlying view pipeline, for callers that need
// to drive it programmatically or read selection state.
func (model Model[T]) Engine() *tableview.Engine[T] {
	return model.engine
}

// Cursor returns the cursor's index within the displayed rows.
func (model Model[T]) Cursor() int {
	return model.cursor
}

// Focus returns the current keystroke routing target.
func (model Model[T]) Focus() FocusRegion {
	return model.focus
}

func (model Model[T]) Init() tea.Cmd {
	if model.engine.Loading() {
		return model.spinner.Tick
	}
	return nil
}

func (model Model[T]) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil

	case spinner.TickMsg:
		if !model.engine.Loading() {
			return model, nil
		}
		var command tea.Cmd
		model.spinner, command = model.spinner.Update(message)
		return model, command

	case tea.MouseMsg:
		return model.handleMouse(message), nil

	case tea.KeyMsg:
		if model.engine.Loading() {
			if key.Matches(message, model.keys.Quit) {
				return model, tea.Quit
			}
			return model, nil
		}
		if model.focus == FocusSearch {
			return model.handleSearchKeys(message)
		}
		return model.handleRowKeys(message)
	}

	return model, nil
}

// handleSearchKeys routes keystrokes while the search input has
// focus. Every change to the input immediately re-filters the engine,
// which resets the page to 1 on a changed query.
func (model Model[T]) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.SearchClear):
		model.search.SetValue("")
		model.search.Blur()
		model.focus = FocusRows
		model.engine.ClearQuery()
		model.afterEvent()
		return model, nil

	case key.Matches(message, model.keys.SearchAccept):
		model.search.Blur()
		model.focus = FocusRows
		return model, nil
	}

	var command tea.Cmd
	model.search, command = model.search.Update(message)
	model.engine.SetQuery(model.search.Value())
	model.afterEvent()
	return model, command
}

// handleRowKeys routes keystrokes while the row list has focus.
func (model Model[T]) handleRowKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := model.engine.Options()

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.SearchActivate):
		if !options.Searchable {
			return model, nil
		}
		model.focus = FocusSearch
		return model, model.search.Focus()

	case key.Matches(message, model.keys.SearchClear):
		if model.engine.Filtering() {
			model.search.SetValue("")
			model.engine.ClearQuery()
			model.afterEvent()
		}
		return model, nil

	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
		return model, nil

	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.engine.Rows())-1 {
			model.cursor++
		}
		return model, nil

	case key.Matches(message, model.keys.PreviousPage):
		model.engine.PreviousPage()
		model.afterEvent()
		return model, nil

	case key.Matches(message, model.keys.NextPage):
		model.engine.NextPage()
		model.afterEvent()
		return model, nil

	case key.Matches(message, model.keys.ToggleSelect):
		rows := model.engine.Rows()
		if options.Selectable && options.RowID != nil && model.cursor < len(rows) {
			model.engine.ToggleRow(options.RowID(rows[model.cursor]))
		}
		return model, nil

	case key.Matches(message, model.keys.ToggleAll):
		model.engine.ToggleAll()
		return model, nil

	case key.Matches(message, model.keys.SortColumn):
		model.cycleSortByIndex(int(message.String()[0] - '1'))
		model.afterEvent()
		return model, nil
	}

	return model, nil
}

// handleMouse maps a left click onto the rendered layout: a click on
// the header line cycles the clicked column's sort tri-state, a click
// on a body row moves the cursor there (and toggles selection when
// the click lands on the checkbox).
func (model Model[T]) handleMouse(message tea.MouseMsg) Model[T] {
	if model.engine.Loading() {
		return model
	}
	if message.Action != tea.MouseActionPress || message.Button != tea.MouseButtonLeft {
		return model
	}

	headerY := model.headerLine()
	switch {
	case message.Y == headerY:
		if index, ok := model.columnAt(message.X); ok {
			model.cycleSortByIndex(index)
			model.afterEvent()
		}

	case message.Y > headerY:
		rowIndex := message.Y - headerY - 1
		rows := model.engine.Rows()
		if rowIndex < 0 || rowIndex >= len(rows) {
			return model
		}
		model.cursor = rowIndex
		options := model.engine.Options()
		if options.Selectable && options.RowID != nil && message.X < checkboxWidth {
			model.engine.ToggleRow(options.RowID(rows[rowIndex]))
		}
	}
	return model
}

// cycleSortByIndex cycles sort on the column at the given display
// index. Out-of-range indices are ignored; the engine ignores
// non-sortable columns itself.
func (model *Model[T]) cycleSortByIndex(index int) {
	columns := model.engine.Columns()
	if index < 0 || index >= len(columns) {
		return
	}
	model.engine.CycleSort(columns[index].Key)
}

// afterEvent re-derives component-local state that shadows the
// engine: the cursor is clamped to the new displayed row count and
// the paginator mirrors the engine's page math.
func (model *Model[T]) afterEvent() {
	rowCount := len(model.engine.Rows())
	if model.cursor >= rowCount {
		model.cursor = rowCount - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.syncPager()
}

// syncPager mirrors the engine's pagination into the bubbles
// paginator used for the footer dots. The paginator is presentation
// only; the engine owns the page math.
func (model *Model[T]) syncPager() {
	view := model.engine.View()
	model.pager.PerPage = view.PageSize
	model.pager.TotalPages = model.engine.TotalPages()
	model.pager.Page = view.Page - 1
}
