// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

// Package tableui renders a [tableview.Engine] as an interactive
// bubbletea component: a column header with clickable tri-state sort
// markers, a search input, per-row and select-all checkboxes, and a
// paginator footer.
//
// The component is a thin event shell. All table semantics (which
// rows are displayed, in what order, what is selected) live in the
// engine; the model translates keystrokes and mouse clicks into
// engine calls and re-renders from engine state. Embedding it in a
// larger program follows the usual bubbletea pattern:
//
//	engine := tableview.NewEngine(rows, columns, options)
//	model := tableui.NewModel(engine)
//	model.Title = "Deployments"
//	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
package tableui
