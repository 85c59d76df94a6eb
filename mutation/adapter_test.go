// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mutation

import (
	"testing"

	"github.com/gogpu/ggdom/dom"
	"github.com/gogpu/ggdom/layout"
	"github.com/gogpu/ggdom/paragraph"
)

func TestAdapterMeasure(t *testing.T) {
	f := newFixture()
	root := f.tree.Root()
	box := f.add(root, dom.TagRect, 1)
	f.tree.SetAttribute(box, "height", "", dom.Float(20))
	lbl := f.add(box, dom.TagLabel, 2)
	f.tree.AppendChild(lbl, f.tree.CreateText("hi"))
	svg := f.add(root, dom.TagSvg, 3)
	f.tree.SetAttribute(svg, "width", "", dom.Int(5))
	f.tree.SetAttribute(svg, "height", "", dom.Int(5))
	priv := f.add(svg, dom.TagRect, 4)

	if !f.layout.Measure(root, layout.NewArea(0, 0, 100, 100), f.w.Adapter()) {
		t.Fatal("Measure() = false on first run")
	}

	tests := []struct {
		id   dom.NodeID
		want layout.Area
	}{
		{box, layout.NewArea(0, 0, 16, 20)},
		{lbl, layout.NewArea(0, 0, 16, 19.2)},
		{svg, layout.NewArea(0, 20, 5, 5)},
	}
	for _, tt := range tests {
		n, ok := f.layout.Get(tt.id)
		if !ok {
			t.Errorf("node %d has no layout", tt.id)
			continue
		}
		if n.VisibleArea() != tt.want {
			t.Errorf("node %d VisibleArea() = %v, want %v", tt.id, n.VisibleArea(), tt.want)
		}
	}
	if _, ok := f.layout.Get(priv); ok {
		t.Error("private child of svg should not be laid out")
	}

	if f.layout.Measure(root, layout.NewArea(0, 0, 100, 100), f.w.Adapter()) {
		t.Error("Measure() = true without invalidation")
	}
}

func TestAdapterScaleAndShaper(t *testing.T) {
	s, err := paragraph.DefaultShaper()
	if err != nil {
		t.Fatal(err)
	}
	tree := dom.NewTree()
	lbl := tree.CreateElement(dom.TagLabel)
	tree.AppendChild(tree.Root(), lbl)
	tree.AppendChild(lbl, tree.CreateText("Hello"))

	one := NewDOMAdapter(tree, s, 1)
	two := NewDOMAdapter(tree, s, 2)
	w1, h1 := one.Intrinsic(lbl, 0)
	w2, h2 := two.Intrinsic(lbl, 0)
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("Intrinsic() = %v, %v, want positive", w1, h1)
	}
	if w2 <= w1 || h2 <= h1 {
		t.Errorf("scaled Intrinsic() = %v, %v, want larger than %v, %v", w2, h2, w1, h1)
	}

	if w, h := one.Intrinsic(tree.Root(), 100); w != 0 || h != 0 {
		t.Errorf("Intrinsic(rect) = %v, %v, want 0, 0", w, h)
	}
	if NewDOMAdapter(tree, nil, 0).scale != 1 {
		t.Error("non-positive scale should default to 1")
	}
}
