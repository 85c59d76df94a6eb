// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import "math"

// SizeKind selects how a dimension is resolved.
type SizeKind uint8

const (
	// SizeAuto sizes the node to its content.
	SizeAuto SizeKind = iota
	// SizePixels uses a fixed value.
	SizePixels
	// SizeFill takes all the space the parent offers.
	SizeFill
)

// Size is one dimension of a node's requested size.
type Size struct {
	Kind  SizeKind
	Value float64
}

// Pixels returns a fixed Size.
func Pixels(v float64) Size { return Size{Kind: SizePixels, Value: v} }

// Auto returns a content-sized Size.
func Auto() Size { return Size{Kind: SizeAuto} }

// Fill returns a Size taking all available space.
func Fill() Size { return Size{Kind: SizeFill} }

// Direction is the main axis children are stacked on.
type Direction uint8

const (
	// Vertical stacks children top to bottom.
	Vertical Direction = iota
	// Horizontal stacks children left to right.
	Horizontal
)

// Style is the layout input of a node.
type Style struct {
	Width, Height Size
	Margin        Gaps
	Padding       Gaps
	Direction     Direction
	MainAlign     Alignment
}

// Measurer extends DOMAdapter with the per-node inputs Measure needs.
type Measurer[K comparable] interface {
	DOMAdapter[K]

	// Style returns the layout style of k.
	Style(k K) Style

	// Descend reports whether the children of k are laid out by this tree.
	// Nodes that return false are measured through Intrinsic alone.
	Descend(k K) bool

	// Intrinsic returns the content size of k given the available width.
	Intrinsic(k K, maxWidth float64) (width, height float64)
}

// Measure resolves the layout of the tree under root inside viewport.
// It does nothing and returns false when root is already resolved and no
// node was invalidated since the last call.
func (t *Tree[K]) Measure(root K, viewport Area, m Measurer[K]) bool {
	if _, ok := t.results[root]; ok && len(t.dirty) == 0 {
		return false
	}
	t.measure(root, viewport, m)
	clear(t.dirty)
	return true
}

// measureFrame is a node whose children are being measured.
type measureFrame[K comparable] struct {
	key      K
	avail    Area
	style    Style
	inner    Area
	children []K
	next     int

	cursor, contentW, contentH float64
}

func (f *measureFrame[K]) vertical() bool {
	return f.style.Direction == Vertical
}

// childArea is the space offered to the next child.
func (f *measureFrame[K]) childArea() Area {
	a := f.inner
	if f.vertical() {
		a.Y += f.cursor
		a.Height = math.Max(0, f.inner.Height-f.cursor)
	} else {
		a.X += f.cursor
		a.Width = math.Max(0, f.inner.Width-f.cursor)
	}
	return a
}

// addChild adds a measured child to the content size.
func (f *measureFrame[K]) addChild(child Area) {
	if f.vertical() {
		f.cursor += child.Height
		f.contentW = math.Max(f.contentW, child.Width)
	} else {
		f.cursor += child.Width
		f.contentH = math.Max(f.contentH, child.Height)
	}
}

func (t *Tree[K]) enter(k K, avail Area, m Measurer[K]) *measureFrame[K] {
	st := m.Style(k)
	f := &measureFrame[K]{
		key:   k,
		avail: avail,
		style: st,
		inner: avail.Inset(st.Margin).Inset(st.Padding),
	}
	if m.Descend(k) {
		f.children = m.Children(k)
	}
	return f
}

// measure lays out the subtree of k with an explicit stack, children
// before their parent, so tree depth is bounded by memory only.
func (t *Tree[K]) measure(k K, avail Area, m Measurer[K]) {
	stack := []*measureFrame[K]{t.enter(k, avail, m)}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next < len(f.children) {
			stack = append(stack, t.enter(f.children[f.next], f.childArea(), m))
			f.next++
			continue
		}
		stack = stack[:len(stack)-1]

		n := t.finish(f, m)
		t.results[f.key] = &n
		if len(stack) > 0 {
			stack[len(stack)-1].addChild(n.Area)
		}
	}
}

// finish resolves the node of f once all its children are measured.
func (t *Tree[K]) finish(f *measureFrame[K], m Measurer[K]) Node {
	st := f.style
	contentW, contentH := f.contentW, f.contentH
	switch {
	case len(f.children) == 0:
		contentW, contentH = m.Intrinsic(f.key, f.inner.Width)
	case f.vertical():
		contentH = f.cursor
	default:
		contentW = f.cursor
	}

	extraW := st.Margin.Horizontal() + st.Padding.Horizontal()
	extraH := st.Margin.Vertical() + st.Padding.Vertical()
	area := Area{
		X:      f.avail.X,
		Y:      f.avail.Y,
		Width:  resolveSize(st.Width, f.avail.Width, contentW+extraW, st.Margin.Horizontal()),
		Height: resolveSize(st.Height, f.avail.Height, contentH+extraH, st.Margin.Vertical()),
	}
	node := Node{
		Area:      area,
		InnerArea: area.Inset(st.Margin).Inset(st.Padding),
		Margin:    st.Margin,
	}

	if len(f.children) > 0 {
		t.align(node.InnerArea, f.children, f.vertical(), st.MainAlign, contentW, contentH, m)
	}
	return node
}

// align shifts already measured children along the main axis.
func (t *Tree[K]) align(inner Area, children []K, vertical bool, a Alignment, contentW, contentH float64, m Measurer[K]) {
	free := inner.Width - contentW
	if vertical {
		free = inner.Height - contentH
	}
	start, gap := a.offsets(free, len(children))
	if start == 0 && gap == 0 {
		return
	}
	for i, c := range children {
		d := start + float64(i)*gap
		if vertical {
			t.translate(c, 0, d, m)
		} else {
			t.translate(c, d, 0, m)
		}
	}
}

// translate moves the resolved subtree of k by (dx, dy).
func (t *Tree[K]) translate(k K, dx, dy float64, m Measurer[K]) {
	stack := []K{k}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := t.results[id]
		if !ok {
			continue
		}
		n.Area = n.Area.Translate(dx, dy)
		n.InnerArea = n.InnerArea.Translate(dx, dy)
		if m.Descend(id) {
			stack = append(stack, m.Children(id)...)
		}
	}
}

func resolveSize(s Size, available, content, margin float64) float64 {
	switch s.Kind {
	case SizePixels:
		return s.Value + margin
	case SizeFill:
		return math.Max(0, available)
	default:
		return content
	}
}
