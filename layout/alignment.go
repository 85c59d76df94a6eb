// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

// Alignment positions children along the main axis of their parent.
type Alignment uint8

const (
	// AlignStart packs children at the start of the main axis.
	AlignStart Alignment = iota
	// AlignCenter centers children.
	AlignCenter
	// AlignEnd packs children at the end.
	AlignEnd
	// AlignSpaceBetween puts equal space between children, none at the edges.
	AlignSpaceBetween
	// AlignSpaceEvenly puts equal space between children and at the edges.
	AlignSpaceEvenly
	// AlignSpaceAround puts half-size space at the edges.
	AlignSpaceAround
)

// String returns the attribute spelling of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignSpaceBetween:
		return "space-between"
	case AlignSpaceEvenly:
		return "space-evenly"
	case AlignSpaceAround:
		return "space-around"
	default:
		return "unknown"
	}
}

// offsets distributes free space over n children.
// It returns the offset of the first child and the extra gap after each child.
func (a Alignment) offsets(free float64, n int) (start, gap float64) {
	if free <= 0 || n == 0 {
		return 0, 0
	}
	switch a {
	case AlignCenter:
		return free / 2, 0
	case AlignEnd:
		return free, 0
	case AlignSpaceBetween:
		if n == 1 {
			return 0, 0
		}
		return 0, free / float64(n-1)
	case AlignSpaceEvenly:
		g := free / float64(n+1)
		return g, g
	case AlignSpaceAround:
		g := free / float64(n)
		return g / 2, g
	default:
		return 0, 0
	}
}
