// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package state

import (
	"strings"

	"github.com/gogpu/ggdom/layout"
)

// ParseAlignment parses a main_align attribute value.
func ParseAlignment(s string) (layout.Alignment, error) {
	switch strings.TrimSpace(s) {
	case "start":
		return layout.AlignStart, nil
	case "center":
		return layout.AlignCenter, nil
	case "end":
		return layout.AlignEnd, nil
	case "space-between":
		return layout.AlignSpaceBetween, nil
	case "space-evenly":
		return layout.AlignSpaceEvenly, nil
	case "space-around":
		return layout.AlignSpaceAround, nil
	}
	return layout.AlignStart, &AttributeError{Name: "main_align", Value: s, Err: ErrBadAlignment}
}
