// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package state

import (
	"github.com/gogpu/ggdom/dom"
	"github.com/gogpu/ggdom/layers"
	"github.com/gogpu/ggdom/paragraph"
)

// LayerState is the paint layer a visible element was assigned to.
type LayerState struct {
	Layer layers.Layer
}

// CursorReference identifies the shaped text owned by a node.
type CursorReference struct {
	TextID paragraph.TextID
}

// CursorState is the text state of a visible element. CursorRef is nil for
// elements that do not render text.
type CursorState struct {
	CursorRef *CursorReference
}

// Derived returns the layer and cursor state of id. ok is false when either
// has not been derived yet.
func Derived(tree *dom.Tree, id dom.NodeID) (ls LayerState, cs CursorState, ok bool) {
	ls, okL := dom.GetState[LayerState](tree, id)
	cs, okC := dom.GetState[CursorState](tree, id)
	return ls, cs, okL && okC
}
