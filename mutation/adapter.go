// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mutation

import (
	"unicode/utf8"

	"github.com/gogpu/ggdom/dom"
	"github.com/gogpu/ggdom/internal/logx"
	"github.com/gogpu/ggdom/layout"
	"github.com/gogpu/ggdom/paragraph"
	"github.com/gogpu/ggdom/state"
)

// DOMAdapter exposes the retained tree to the layout tree.
type DOMAdapter struct {
	tree   *dom.Tree
	shaper *paragraph.Shaper
	scale  float64
}

var _ layout.Measurer[dom.NodeID] = (*DOMAdapter)(nil)

// NewDOMAdapter creates an adapter over tree. Text is measured with shaper;
// a nil shaper falls back to an estimate of half an em per rune.
func NewDOMAdapter(tree *dom.Tree, shaper *paragraph.Shaper, scale float64) *DOMAdapter {
	if scale <= 0 {
		scale = 1
	}
	return &DOMAdapter{tree: tree, shaper: shaper, scale: scale}
}

// Parent implements layout.DOMAdapter.
func (a *DOMAdapter) Parent(id dom.NodeID) (dom.NodeID, bool) {
	return a.tree.Parent(id)
}

// Children implements layout.DOMAdapter. Placeholders are left out.
func (a *DOMAdapter) Children(id dom.NodeID) []dom.NodeID {
	return a.tree.ChildrenIDs(id, false)
}

// Style implements layout.Measurer.
func (a *DOMAdapter) Style(id dom.NodeID) layout.Style {
	ref, ok := a.tree.Get(id)
	if !ok || !ref.Type().IsVisibleElement() {
		return layout.Style{}
	}
	st, err := state.LayoutStyle(ref, a.scale)
	if err != nil {
		logx.Logger().Warn("mutation: bad layout attributes", "node", id, "err", err)
	}
	return st
}

// Descend implements layout.Measurer.
func (a *DOMAdapter) Descend(id dom.NodeID) bool {
	typ, ok := a.tree.Type(id)
	return ok && typ.PropagatesLayoutToChildren()
}

// Intrinsic implements layout.Measurer. Only text blocks have content of
// their own.
func (a *DOMAdapter) Intrinsic(id dom.NodeID, _ float64) (width, height float64) {
	ref, ok := a.tree.Get(id)
	if !ok || !ref.Type().IsVisibleElement() || !ref.Type().Tag.IsTextBearing() {
		return 0, 0
	}
	text := a.tree.TextContent(id)
	size := state.FontSize(ref, a.scale)
	if a.shaper == nil {
		return 0.5 * size * float64(utf8.RuneCountInString(text)), 1.2 * size
	}
	p := a.shaper.Shape(text, size)
	return p.Width, p.Height()
}
