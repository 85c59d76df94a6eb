// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paragraph

import "errors"

// ErrEmptyFontData is returned when a Shaper is created without font data.
var ErrEmptyFontData = errors.New("paragraph: empty font data")
