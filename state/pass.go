// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package state

import (
	"github.com/gogpu/ggdom/dom"
	"github.com/gogpu/ggdom/internal/logx"
	"github.com/gogpu/ggdom/layers"
	"github.com/gogpu/ggdom/paragraph"
)

// Pass derives state for nodes that have none and registers them in the
// layer and paragraph registries.
//
// The children of layout-opaque elements are never visited, so they are
// never registered. Removal relies on this: it does not visit them either.
type Pass struct {
	Tree       *dom.Tree
	Layers     *layers.Registry
	Paragraphs *paragraph.Registry

	// Shaper shapes text of text-bearing elements. With a nil Shaper the
	// registered paragraphs carry text and size only.
	Shaper *paragraph.Shaper

	// Scale multiplies font sizes.
	Scale float64
}

// Result counts what a Run did.
type Result struct {
	Derived   int
	Relayered int
	Reshaped  int
}

type visit struct {
	id          dom.NodeID
	parentLayer layers.Layer
}

// Run walks the tree from the root, deriving missing state. Elements whose
// layer no longer matches their parent layer and layer attribute are moved
// to the right layer. The nodes in reshape had their text changed; the
// text-bearing element owning each of them is shaped again.
func (p *Pass) Run(reshape []dom.NodeID) Result {
	var res Result
	var fresh map[dom.NodeID]struct{}
	stack := []visit{{id: p.Tree.Root()}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ref, ok := p.Tree.Get(v.id)
		if !ok {
			continue
		}
		typ := ref.Type()
		layer := v.parentLayer
		if typ.IsVisibleElement() {
			ls, _, derived := Derived(p.Tree, v.id)
			switch want := layerOf(ref, v.parentLayer); {
			case !derived:
				ls = p.derive(ref, want)
				res.Derived++
				if len(reshape) > 0 {
					if fresh == nil {
						fresh = make(map[dom.NodeID]struct{})
					}
					fresh[v.id] = struct{}{}
				}
			case ls.Layer != want:
				logx.Logger().Debug("state: layer changed", "node", v.id, "from", ls.Layer, "to", want)
				ls.Layer = want
				dom.SetState(p.Tree, v.id, ls)
				p.Layers.InsertNode(v.id, want)
				res.Relayered++
			}
			layer = ls.Layer
			if !typ.PropagatesLayoutToChildren() {
				continue
			}
		}
		children := p.Tree.ChildrenIDs(v.id, false)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, visit{id: children[i], parentLayer: layer})
		}
	}

	shaped := make(map[dom.NodeID]struct{}, len(reshape))
	for _, id := range reshape {
		owner, ok := p.textOwner(id)
		if !ok {
			continue
		}
		if _, done := shaped[owner]; done {
			continue
		}
		shaped[owner] = struct{}{}
		if _, derivedNow := fresh[owner]; derivedNow {
			continue
		}
		if p.reshape(owner) {
			res.Reshaped++
		}
	}
	return res
}

// layerOf returns parentLayer offset by the layer attribute of ref.
func layerOf(ref dom.NodeRef, parentLayer layers.Layer) layers.Layer {
	if v, ok := ref.Attribute(AttrLayer); ok {
		if f, ok := number(v); ok {
			return parentLayer + layers.Layer(f)
		}
	}
	return parentLayer
}

func (p *Pass) derive(ref dom.NodeRef, layer layers.Layer) LayerState {
	id := ref.ID()
	ls := LayerState{Layer: layer}

	var cs CursorState
	if ref.Type().Tag.IsTextBearing() {
		cs.CursorRef = &CursorReference{TextID: paragraph.NewTextID()}
		p.Paragraphs.InsertParagraph(id, cs.CursorRef.TextID, p.shape(ref))
	}

	dom.SetState(p.Tree, id, ls)
	dom.SetState(p.Tree, id, cs)
	p.Layers.InsertNode(id, ls.Layer)

	logx.Logger().Debug("state: derived", "node", id, "type", ref.Type(), "layer", ls.Layer)
	return ls
}

// textOwner returns the text-bearing element id belongs to, which may be
// id itself.
func (p *Pass) textOwner(id dom.NodeID) (dom.NodeID, bool) {
	for cur, ok := id, true; ok; cur, ok = p.Tree.Parent(cur) {
		typ, found := p.Tree.Type(cur)
		if !found {
			return 0, false
		}
		if typ.IsVisibleElement() && typ.Tag.IsTextBearing() {
			return cur, true
		}
	}
	return 0, false
}

// reshape shapes the text block id again. It reports false when id has no
// derived cursor state.
func (p *Pass) reshape(id dom.NodeID) bool {
	ref, ok := p.Tree.Get(id)
	if !ok {
		return false
	}
	cs, ok := dom.GetState[CursorState](p.Tree, id)
	if !ok || cs.CursorRef == nil {
		return false
	}
	p.Paragraphs.InsertParagraph(id, cs.CursorRef.TextID, p.shape(ref))
	return true
}

func (p *Pass) shape(ref dom.NodeRef) *paragraph.Paragraph {
	text := p.Tree.TextContent(ref.ID())
	size := FontSize(ref, p.scale())
	if p.Shaper == nil {
		return &paragraph.Paragraph{Text: text, Size: size}
	}
	return p.Shaper.Shape(text, size)
}

func (p *Pass) scale() float64 {
	if p.Scale <= 0 {
		return 1
	}
	return p.Scale
}
