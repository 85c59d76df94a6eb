// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paragraph

import (
	"hash/fnv"
	"math"
)

// ShapingKey identifies shaped content in the shaping cache.
// Every input that changes the shaped result must be part of the key.
type ShapingKey struct {
	// TextHash is the FNV-1a hash of the text.
	TextHash uint64

	// TextLen guards against hash collisions between texts of different length.
	TextLen int

	// SizeBits is the IEEE 754 bit pattern of the font size, for exact matching.
	SizeBits uint64
}

// NewShapingKey creates the key for text shaped at size.
func NewShapingKey(text string, size float64) ShapingKey {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text)) // fnv.Write never returns an error
	return ShapingKey{
		TextHash: h.Sum64(),
		TextLen:  len(text),
		SizeBits: math.Float64bits(size),
	}
}
