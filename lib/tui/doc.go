// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides generic terminal UI helpers shared by gridview
// components: fzf-based fuzzy matching and width-aware text
// truncation. Domain logic (the view pipeline, table rendering) lives
// in the tableview and tableui packages; this package has no
// gridview-internal dependencies.
package tui
