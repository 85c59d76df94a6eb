// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package state

import (
	"testing"

	"github.com/gogpu/ggdom/dom"
	"github.com/gogpu/ggdom/layers"
	"github.com/gogpu/ggdom/paragraph"
)

type passFixture struct {
	tree                  *dom.Tree
	pass                  *Pass
	box, label, text, svg dom.NodeID
	svgChild              dom.NodeID
}

// newPassFixture builds root -> box(layer=2) -> [label("hi"), svg -> rect].
func newPassFixture() *passFixture {
	tree := dom.NewTree()
	f := &passFixture{tree: tree}
	f.box = tree.CreateElement(dom.TagRect)
	tree.SetAttribute(f.box, AttrLayer, "", dom.Int(2))
	f.label = tree.CreateElement(dom.TagLabel)
	f.text = tree.CreateText("hi")
	f.svg = tree.CreateElement(dom.TagSvg)
	f.svgChild = tree.CreateElement(dom.TagRect)

	tree.AppendChild(tree.Root(), f.box)
	tree.AppendChild(f.box, f.label)
	tree.AppendChild(f.label, f.text)
	tree.AppendChild(f.box, f.svg)
	tree.AppendChild(f.svg, f.svgChild)

	f.pass = &Pass{
		Tree:       tree,
		Layers:     layers.New(),
		Paragraphs: paragraph.NewRegistry(),
	}
	return f
}

func TestPassDerivesState(t *testing.T) {
	f := newPassFixture()

	res := f.pass.Run(nil)
	// root, box, label, svg; the svg child is private.
	if res.Derived != 4 {
		t.Errorf("Derived = %d, want 4", res.Derived)
	}

	for _, id := range []dom.NodeID{f.box, f.label, f.svg} {
		ls, _, ok := Derived(f.tree, id)
		if !ok {
			t.Fatalf("node %d has no derived state", id)
		}
		if ls.Layer != 2 {
			t.Errorf("node %d layer = %d, want 2", id, ls.Layer)
		}
		if l, ok := f.pass.Layers.LayerOf(id); !ok || l != 2 {
			t.Errorf("LayerOf(%d) = %d, %v, want 2, true", id, l, ok)
		}
	}

	if _, _, ok := Derived(f.tree, f.svgChild); ok {
		t.Error("private child of svg should not get state")
	}
	if f.pass.Layers.Contains(f.svgChild) {
		t.Error("private child of svg should not be registered")
	}
	if _, _, ok := Derived(f.tree, f.text); ok {
		t.Error("text node should not get state")
	}

	_, cs, _ := Derived(f.tree, f.label)
	if cs.CursorRef == nil {
		t.Fatal("label has no cursor reference")
	}
	e, ok := f.pass.Paragraphs.Get(cs.CursorRef.TextID)
	if !ok || e.Node != f.label || e.Paragraph.Text != "hi" {
		t.Errorf("paragraph entry = %+v, %v", e, ok)
	}
	if e.Paragraph.Size != DefaultFontSize {
		t.Errorf("paragraph size = %v, want %v", e.Paragraph.Size, DefaultFontSize)
	}

	if _, cs, _ := Derived(f.tree, f.box); cs.CursorRef != nil {
		t.Error("box should have no cursor reference")
	}
}

func TestPassIsIncremental(t *testing.T) {
	f := newPassFixture()
	f.pass.Run(nil)

	if res := f.pass.Run(nil); res.Derived != 0 {
		t.Errorf("second Run() Derived = %d, want 0", res.Derived)
	}

	extra := f.tree.CreateElement(dom.TagRect)
	f.tree.AppendChild(f.box, extra)
	if res := f.pass.Run(nil); res.Derived != 1 {
		t.Errorf("Run() after insert Derived = %d, want 1", res.Derived)
	}
	if l, _ := f.pass.Layers.LayerOf(extra); l != 2 {
		t.Errorf("LayerOf(extra) = %d, want inherited 2", l)
	}
}

func TestPassReshape(t *testing.T) {
	f := newPassFixture()
	f.pass.Run(nil)

	f.tree.SetText(f.text, "hello")
	res := f.pass.Run([]dom.NodeID{f.text, f.box})
	if res.Reshaped != 1 {
		t.Errorf("Reshaped = %d, want 1", res.Reshaped)
	}
	_, cs, _ := Derived(f.tree, f.label)
	e, _ := f.pass.Paragraphs.Get(cs.CursorRef.TextID)
	if e.Paragraph.Text != "hello" {
		t.Errorf("paragraph text = %q, want %q", e.Paragraph.Text, "hello")
	}
	if f.pass.Paragraphs.Len() != 1 {
		t.Errorf("Paragraphs.Len() = %d, want 1", f.pass.Paragraphs.Len())
	}
}

func TestPassShapesWithShaper(t *testing.T) {
	f := newPassFixture()
	s, err := paragraph.DefaultShaper()
	if err != nil {
		t.Fatal(err)
	}
	f.pass.Shaper = s
	f.pass.Scale = 2
	f.pass.Run(nil)

	_, cs, _ := Derived(f.tree, f.label)
	e, _ := f.pass.Paragraphs.Get(cs.CursorRef.TextID)
	if e.Paragraph.Width <= 0 {
		t.Errorf("paragraph width = %v, want > 0", e.Paragraph.Width)
	}
	if e.Paragraph.Size != 2*DefaultFontSize {
		t.Errorf("paragraph size = %v, want %v", e.Paragraph.Size, 2*DefaultFontSize)
	}
}

func TestPassRelayersOnAttributeChange(t *testing.T) {
	f := newPassFixture()
	f.pass.Run(nil)

	f.tree.SetAttribute(f.box, AttrLayer, "", dom.Int(5))
	res := f.pass.Run(nil)
	// box, label and svg follow; the svg child is private.
	if res.Relayered != 3 || res.Derived != 0 {
		t.Errorf("Run() = %+v, want 3 relayered, 0 derived", res)
	}
	for _, id := range []dom.NodeID{f.box, f.label, f.svg} {
		if l, _ := f.pass.Layers.LayerOf(id); l != 5 {
			t.Errorf("LayerOf(%d) = %d, want 5", id, l)
		}
		if ls, _, _ := Derived(f.tree, id); ls.Layer != 5 {
			t.Errorf("node %d LayerState = %d, want 5", id, ls.Layer)
		}
	}
	if got := f.pass.Layers.Members(2); len(got) != 0 {
		t.Errorf("Members(2) = %v, want empty", got)
	}

	if res := f.pass.Run(nil); res.Relayered != 0 {
		t.Errorf("second Run() Relayered = %d, want 0", res.Relayered)
	}
}

func TestPassRelayersMovedSubtree(t *testing.T) {
	f := newPassFixture()
	other := f.tree.CreateElement(dom.TagRect)
	f.tree.SetAttribute(other, AttrLayer, "", dom.Int(-1))
	f.tree.AppendChild(f.tree.Root(), other)
	f.pass.Run(nil)

	f.tree.AppendChild(other, f.label)
	if res := f.pass.Run(nil); res.Relayered != 1 {
		t.Errorf("Relayered = %d, want 1", res.Relayered)
	}
	if l, _ := f.pass.Layers.LayerOf(f.label); l != -1 {
		t.Errorf("LayerOf(label) = %d, want -1", l)
	}
	if f.pass.Paragraphs.Len() != 1 {
		t.Errorf("Paragraphs.Len() = %d, want 1 after move", f.pass.Paragraphs.Len())
	}
}

func TestPassReshapesOwnerOnce(t *testing.T) {
	f := newPassFixture()
	f.pass.Run(nil)

	f.tree.SetText(f.text, "again")
	if res := f.pass.Run([]dom.NodeID{f.text, f.label}); res.Reshaped != 1 {
		t.Errorf("Reshaped = %d, want 1 for one text block", res.Reshaped)
	}

	// A text block derived in the same run is shaped once, by derivation.
	fresh := f.tree.CreateElement(dom.TagLabel)
	span := f.tree.CreateText("new")
	f.tree.AppendChild(fresh, span)
	f.tree.AppendChild(f.box, fresh)
	res := f.pass.Run([]dom.NodeID{fresh})
	if res.Derived != 1 || res.Reshaped != 0 {
		t.Errorf("Run() = %+v, want 1 derived, 0 reshaped", res)
	}
}
