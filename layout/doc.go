// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layout holds the resolved layout of a retained tree.
//
// A Tree maps node keys to their last resolved Node (outer area, margins and
// inner area). The tree never walks the retained tree itself: every
// structural question is asked through a DOMAdapter, so the same Tree works
// for any key type.
//
// Invalidate marks a node for recomputation, Remove forgets a node and its
// descendants and invalidates the parent. Measure is a minimal column/row
// stacking solver used to give nodes real areas; it honors fixed, fill and
// content sizes, margins, paddings and main-axis alignment, nothing more.
package layout
