// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paragraph

import (
	"slices"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// segment is a maximal run of runes sharing one direction.
// Start and End are rune indices, End exclusive.
type segment struct {
	Start, End int
	Direction  di.Direction
	Script     language.Script
}

// segmentRunes splits text into bidi runs in logical order.
// On bidi failure the whole text is one left-to-right run.
func segmentRunes(text string, runes []rune) []segment {
	whole := []segment{{Start: 0, End: len(runes), Direction: di.DirectionLTR, Script: detectScript(runes)}}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	segs := make([]segment, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos() // rune indices, end inclusive
		end++
		if end > len(runes) {
			end = len(runes)
		}
		if start >= end {
			continue
		}
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		segs = append(segs, segment{
			Start:     start,
			End:       end,
			Direction: dir,
			Script:    detectScript(runes[start:end]),
		})
	}
	if len(segs) == 0 {
		return whole
	}
	slices.SortFunc(segs, func(a, b segment) int { return a.Start - b.Start })
	return segs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
