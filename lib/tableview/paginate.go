// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tableview

// totalPages returns ceil(count/pageSize) with a floor of one page,
// so an empty result still has a valid current page.
func totalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// clampPage confines a 1-based page number to [1, totalPages].
func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// paginateRows returns the slice of rows visible on the given 1-based
// page. The page is assumed already clamped; out-of-range arithmetic
// is still guarded so a stale page never panics.
func paginateRows[T any](rows []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return rows
	}
	start := (page - 1) * pageSize
	if start < 0 || start >= len(rows) {
		return nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
