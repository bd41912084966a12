// Copyright 2026 The Gridview Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab dimensions for the fzf scoring matrix, matching fzf's own
// defaults. One slab serves any number of sequential matches.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// FuzzyResult describes a single fuzzy match: the fzf score (zero
// means no match) and the rune positions in the text that matched the
// pattern, for highlight rendering.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// NewFuzzySlab allocates a reusable scoring slab for [FuzzyMatch].
// Callers that match many strings in a loop (filtering a table on
// each keystroke) should allocate one slab and pass it to every call;
// passing nil allocates per call.
func NewFuzzySlab() *util.Slab {
	return util.MakeSlab(slab16Size, slab32Size)
}

// FuzzyMatch runs fzf's FuzzyMatchV2 against text. Matching is
// case-insensitive: the text is matched with case folding and the
// pattern must be lowercase (callers typically lowercase the query
// once). An empty pattern or a non-match returns a zero-score result
// with no positions.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, pattern, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{Score: result.Score}
	if positions != nil {
		matched.Positions = *positions
	}
	return matched
}
