// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mutation

import (
	"fmt"

	"github.com/gogpu/ggdom/compositor"
	"github.com/gogpu/ggdom/dom"
	"github.com/gogpu/ggdom/edit"
	"github.com/gogpu/ggdom/internal/logx"
	"github.com/gogpu/ggdom/layers"
	"github.com/gogpu/ggdom/layout"
	"github.com/gogpu/ggdom/paragraph"
	"github.com/gogpu/ggdom/state"
)

// Option configures a Writer.
type Option func(*Writer)

// WithScaleFactor sets the factor pixel attributes are multiplied by.
func WithScaleFactor(f float64) Option {
	return func(w *Writer) {
		if f > 0 {
			w.scale = f
		}
	}
}

// WithStrictLayout makes the removal cascade panic with a
// *dom.ContractError wrapping ErrMissingLayout when a registered element
// has no layout. By default such elements add nothing to the dirty
// rectangle and a warning is logged.
func WithStrictLayout(strict bool) Option {
	return func(w *Writer) {
		w.strict = strict
	}
}

// WithTraversalHook installs a function called for every node the removal
// cascade visits.
func WithTraversalHook(hook func(dom.NodeID)) Option {
	return func(w *Writer) {
		w.hook = hook
	}
}

// WithShaper sets the shaper used to measure text blocks.
func WithShaper(s *paragraph.Shaper) Option {
	return func(w *Writer) {
		w.shaper = s
	}
}

// Stats counts removal work since the last TakeStats.
type Stats struct {
	// Visited is the number of nodes popped by the cascade.
	Visited int
	// Deregistered is the number of elements dropped from the registries.
	Deregistered int
}

// Writer is the mutation engine. It implements edit.Writer.
type Writer struct {
	native     *dom.Writer
	tree       *dom.Tree
	layout     *layout.Tree[dom.NodeID]
	layers     *layers.Registry
	paragraphs *paragraph.Registry
	compositor *compositor.DirtyNodes
	adapter    *DOMAdapter

	shaper *paragraph.Shaper
	scale  float64
	strict bool
	hook   func(dom.NodeID)

	dirty    layout.Area
	hasDirty bool
	stats    Stats
	stack    []dom.NodeID // reused by the cascade
}

var _ edit.Writer = (*Writer)(nil)

// NewWriter creates a mutation engine over native and the collaborators
// it keeps consistent.
func NewWriter(
	native *dom.Writer,
	lt *layout.Tree[dom.NodeID],
	lr *layers.Registry,
	pr *paragraph.Registry,
	cd *compositor.DirtyNodes,
	opts ...Option,
) *Writer {
	w := &Writer{
		native:     native,
		tree:       native.Tree(),
		layout:     lt,
		layers:     lr,
		paragraphs: pr,
		compositor: cd,
		scale:      1,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.adapter = NewDOMAdapter(w.tree, w.shaper, w.scale)
	return w
}

// Adapter returns the layout adapter over the retained tree.
func (w *Writer) Adapter() *DOMAdapter {
	return w.adapter
}

// ScaleFactor returns the configured scale factor.
func (w *Writer) ScaleFactor() float64 {
	return w.scale
}

// DirtyRect returns the union of the areas removed since the last
// TakeDirtyRect. ok is false when nothing was removed.
func (w *Writer) DirtyRect() (area layout.Area, ok bool) {
	return w.dirty, w.hasDirty
}

// TakeDirtyRect returns the accumulated dirty rectangle and resets it.
func (w *Writer) TakeDirtyRect() (area layout.Area, ok bool) {
	area, ok = w.dirty, w.hasDirty
	w.dirty, w.hasDirty = layout.Area{}, false
	return area, ok
}

// TakeStats returns the removal counters and resets them.
func (w *Writer) TakeStats() Stats {
	s := w.stats
	w.stats = Stats{}
	return s
}

// Remove runs the removal cascade for the subtree of id without changing
// the retained tree. Unknown ids are ignored, so removing twice is safe.
func (w *Writer) Remove(id dom.ElementID) {
	n, ok := w.tree.ElementToNodeID(id)
	if !ok {
		logx.Logger().Debug("mutation: remove of unmapped element ignored", "element", id)
		return
	}
	w.RemoveSubtree(n)
}

// RemoveSubtree runs the removal cascade for the subtree rooted at root.
func (w *Writer) RemoveSubtree(root dom.NodeID) {
	if !w.tree.Contains(root) {
		logx.Logger().Debug("mutation: remove of unknown node ignored", "node", root)
		return
	}
	if root == w.tree.Root() {
		logx.Logger().Warn("mutation: refusing to remove the tree root")
		return
	}

	stack := append(w.stack[:0], root)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w.stats.Visited++
		if w.hook != nil {
			w.hook(id)
		}

		ref, ok := w.tree.Get(id)
		if !ok {
			continue
		}
		typ := ref.Type()
		if typ.PropagatesLayoutToChildren() || !typ.IsVisibleElement() {
			stack = w.pushChildren(stack, id)
		}
		if !typ.IsVisibleElement() {
			continue
		}

		ls, cs, ok := state.Derived(w.tree, id)
		if !ok {
			// Created in this batch, never registered.
			continue
		}

		w.layers.RemoveNodeFromLayer(id, ls.Layer)
		if cs.CursorRef != nil {
			w.paragraphs.RemoveParagraph(id, cs.CursorRef.TextID)
		}
		w.stats.Deregistered++

		if n, ok := w.layout.Get(id); ok {
			w.addDirty(n.VisibleArea())
			continue
		}
		if w.strict {
			eid, _ := ref.Element()
			panic(&dom.ContractError{Op: "remove", Element: eid, Err: fmt.Errorf("%w: node %d", ErrMissingLayout, id)})
		}
		logx.Logger().Warn("mutation: registered node without layout", "node", id, "type", typ)
	}
	w.stack = stack[:0]

	w.layout.Remove(root, w.adapter, true)
}

// pushChildren pushes the children of id so they pop in document order.
func (w *Writer) pushChildren(stack []dom.NodeID, id dom.NodeID) []dom.NodeID {
	children := w.tree.ChildrenIDs(id, false)
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, children[i])
	}
	return stack
}

func (w *Writer) addDirty(a layout.Area) {
	if !w.hasDirty {
		w.dirty, w.hasDirty = a, true
		return
	}
	w.dirty = w.dirty.Union(a)
}

// RegisterTemplate implements edit.Writer.
func (w *Writer) RegisterTemplate(tmpl dom.Template) {
	w.native.RegisterTemplate(tmpl)
}

// AppendChildren appends the top m stack entries to id. Text blocks that
// gain or lose children are queued for reshaping.
func (w *Writer) AppendChildren(id dom.ElementID, m int) {
	w.detaching(m)
	w.native.AppendChildren(id, m)
	w.invalidateText(w.native.ElementToNodeID(id))
}

// AssignNodeID implements edit.Writer.
func (w *Writer) AssignNodeID(path []uint8, id dom.ElementID) {
	w.native.AssignNodeID(path, id)
}

// CreatePlaceholder implements edit.Writer.
func (w *Writer) CreatePlaceholder(id dom.ElementID) {
	w.native.CreatePlaceholder(id)
}

// CreateTextNode implements edit.Writer.
func (w *Writer) CreateTextNode(value string, id dom.ElementID) {
	w.native.CreateTextNode(value, id)
}

// HydrateTextNode implements edit.Writer.
func (w *Writer) HydrateTextNode(path []uint8, value string, id dom.ElementID) {
	w.native.HydrateTextNode(path, value, id)
}

// LoadTemplate implements edit.Writer.
func (w *Writer) LoadTemplate(name string, index int, id dom.ElementID) {
	w.native.LoadTemplate(name, index, id)
}

// ReplaceNodeWith runs the removal cascade for id when m > 0, then
// replaces it.
func (w *Writer) ReplaceNodeWith(id dom.ElementID, m int) {
	if m == 0 {
		w.native.ReplaceNodeWith(id, m)
		return
	}
	var parent dom.NodeID
	var attached bool
	if n, ok := w.tree.ElementToNodeID(id); ok {
		parent, attached = w.tree.Parent(n)
	}
	w.detaching(m)
	w.Remove(id)
	w.native.ReplaceNodeWith(id, m)
	if attached {
		w.invalidateText(parent)
	}
}

// ReplacePlaceholderWithNodes implements edit.Writer. Placeholders are
// never registered, so no cleanup is needed.
func (w *Writer) ReplacePlaceholderWithNodes(path []uint8, m int) {
	moved := w.detaching(m)
	w.native.ReplacePlaceholderWithNodes(path, m)
	if len(moved) > 0 {
		if parent, ok := w.tree.Parent(moved[0]); ok {
			w.invalidateText(parent)
		}
	}
}

// InsertNodesAfter implements edit.Writer.
func (w *Writer) InsertNodesAfter(id dom.ElementID, m int) {
	w.detaching(m)
	w.native.InsertNodesAfter(id, m)
	w.invalidateSiblings(id)
}

// InsertNodesBefore implements edit.Writer.
func (w *Writer) InsertNodesBefore(id dom.ElementID, m int) {
	w.detaching(m)
	w.native.InsertNodesBefore(id, m)
	w.invalidateSiblings(id)
}

// SetAttribute implements edit.Writer. A font size change reshapes the
// text block it applies to.
func (w *Writer) SetAttribute(name, namespace string, value dom.AttributeValue, id dom.ElementID) {
	w.native.SetAttribute(name, namespace, value, id)
	if name == state.AttrFontSize {
		w.invalidateText(w.native.ElementToNodeID(id))
	}
}

// SetNodeText invalidates the layout and compositor state of id, then
// replaces its text.
func (w *Writer) SetNodeText(value string, id dom.ElementID) {
	n := w.native.ElementToNodeID(id)
	w.compositor.Invalidate(n)
	w.layout.Invalidate(n)
	w.native.SetNodeText(value, id)
}

// CreateEventListener implements edit.Writer.
func (w *Writer) CreateEventListener(name string, id dom.ElementID) {
	w.native.CreateEventListener(name, id)
}

// RemoveEventListener implements edit.Writer.
func (w *Writer) RemoveEventListener(name string, id dom.ElementID) {
	w.native.RemoveEventListener(name, id)
}

// RemoveNode runs the removal cascade for id, then removes it.
func (w *Writer) RemoveNode(id dom.ElementID) {
	var parent dom.NodeID
	var attached bool
	if n, ok := w.tree.ElementToNodeID(id); ok {
		parent, attached = w.tree.Parent(n)
	}
	w.Remove(id)
	w.native.RemoveNode(id)
	if attached {
		w.invalidateText(parent)
	}
}

// PushRoot implements edit.Writer.
func (w *Writer) PushRoot(id dom.ElementID) {
	w.native.PushRoot(id)
}

// detaching returns the top m stack entries and queues the text blocks
// they are about to leave.
func (w *Writer) detaching(m int) []dom.NodeID {
	nodes := w.native.Peek(m)
	for _, n := range nodes {
		if parent, ok := w.tree.Parent(n); ok {
			w.invalidateText(parent)
		}
	}
	return nodes
}

// invalidateSiblings queues the text block owning the parent of anchor id.
func (w *Writer) invalidateSiblings(id dom.ElementID) {
	if parent, ok := w.tree.Parent(w.native.ElementToNodeID(id)); ok {
		w.invalidateText(parent)
	}
}

// invalidateText marks the text block owning id, or id itself, dirty in
// the compositor so its paragraph is shaped again. Registered containers
// never sit inside a text block, so the walk stops at the first one.
func (w *Writer) invalidateText(id dom.NodeID) {
	for cur, ok := id, true; ok; cur, ok = w.tree.Parent(cur) {
		typ, found := w.tree.Type(cur)
		if !found {
			return
		}
		if !typ.IsVisibleElement() {
			continue
		}
		if typ.Tag.IsTextBearing() {
			w.compositor.Invalidate(cur)
			return
		}
		if typ.Tag.HasChildrenWithIntrinsicLayout() {
			if _, registered := dom.GetState[state.LayerState](w.tree, cur); registered {
				return
			}
		}
	}
}
