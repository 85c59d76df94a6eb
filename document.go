// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggdom

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/gogpu/ggdom/compositor"
	"github.com/gogpu/ggdom/dom"
	"github.com/gogpu/ggdom/edit"
	"github.com/gogpu/ggdom/layers"
	"github.com/gogpu/ggdom/layout"
	"github.com/gogpu/ggdom/mutation"
	"github.com/gogpu/ggdom/paragraph"
	"github.com/gogpu/ggdom/state"
)

// Frame is the result of applying one edit stream.
type Frame struct {
	// Number counts frames applied to the document, starting at 1.
	Number int

	// DirtyRect is the union of the areas removed by the frame. It is only
	// meaningful when HasDirty is set.
	DirtyRect layout.Area
	HasDirty  bool

	// Applied is the number of mutations applied.
	Applied int

	// Removed is the number of registered elements cleaned up.
	Removed int

	// Derived is the number of nodes that received state this frame.
	Derived int

	// Relayered is the number of elements moved to another paint layer.
	Relayered int

	// Reshaped is the number of text blocks shaped again after their
	// content or font size changed.
	Reshaped int

	// Relayout reports whether layout was recomputed.
	Relayout bool
}

// Document is a retained tree together with its derived indices.
//
// A Document has a single writer. ApplyFrame must not be called
// concurrently, and readers of the tree and registries must not run while
// a frame is being applied.
type Document struct {
	opts options

	tree       *dom.Tree
	layout     *layout.Tree[dom.NodeID]
	layers     *layers.Registry
	paragraphs *paragraph.Registry
	dirty      *compositor.DirtyNodes
	writer     *mutation.Writer
	pass       *state.Pass

	frames int
	broken bool
	closed bool
}

// NewDocument creates an empty document holding only the root element.
func NewDocument(opts ...Option) (*Document, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.shaper == nil {
		s, err := paragraph.DefaultShaper()
		if err != nil {
			return nil, fmt.Errorf("ggdom: unable to create default shaper: %w", err)
		}
		o.shaper = s
	}

	d := &Document{
		opts:       o,
		tree:       dom.NewTree(),
		layout:     layout.NewTree[dom.NodeID](),
		layers:     layers.New(),
		paragraphs: paragraph.NewRegistry(),
		dirty:      compositor.NewDirtyNodes(),
	}
	scale := float64(o.scale)
	d.writer = mutation.NewWriter(
		dom.NewWriter(d.tree), d.layout, d.layers, d.paragraphs, d.dirty,
		mutation.WithScaleFactor(scale),
		mutation.WithStrictLayout(o.strict),
		mutation.WithShaper(o.shaper),
	)
	d.pass = &state.Pass{
		Tree:       d.tree,
		Layers:     d.layers,
		Paragraphs: d.paragraphs,
		Shaper:     o.shaper,
		Scale:      scale,
	}

	// The root is registered and laid out before the first frame.
	d.pass.Run(nil)
	d.layout.Measure(d.tree.Root(), o.viewport, d.writer.Adapter())
	return d, nil
}

// ApplyFrame applies stream in order, derives state for new nodes and
// recomputes layout. The returned Frame carries the dirty rectangle of
// the frame, which is reset for the next one.
//
// A malformed stream panics unless the document was created with
// WithRecover(true), in which case the *ContractError is returned.
func (d *Document) ApplyFrame(stream []edit.Mutation) (f Frame, err error) {
	switch {
	case d.closed:
		return Frame{}, ErrClosed
	case d.broken:
		return Frame{}, ErrBroken
	}
	if d.opts.recoverPanics {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			var ce *ContractError
			if e, ok := r.(error); ok && errors.As(e, &ce) {
				d.broken = true
				Logger().Warn("ggdom: frame aborted", "frame", d.frames+1, "err", ce)
				f, err = Frame{}, ce
				return
			}
			panic(r)
		}()
	}

	d.frames++
	f.Number = d.frames
	f.Applied = edit.Apply(d.writer, stream)
	f.DirtyRect, f.HasDirty = d.writer.TakeDirtyRect()
	f.Removed = d.writer.TakeStats().Deregistered

	res := d.pass.Run(d.dirty.Take())
	f.Derived, f.Relayered, f.Reshaped = res.Derived, res.Relayered, res.Reshaped

	root := d.tree.Root()
	if slices.ContainsFunc(stream, func(m edit.Mutation) bool { return m.Op.ChangesLayout() }) {
		d.layout.Invalidate(root)
	}
	f.Relayout = d.layout.Measure(root, d.opts.viewport, d.writer.Adapter())

	Logger().Debug("ggdom: frame applied",
		"frame", f.Number, "applied", f.Applied, "removed", f.Removed,
		"derived", f.Derived, "dirty", f.HasDirty)
	return f, nil
}

// Check verifies that every registry entry refers to a node still in the
// tree. All problems are reported together.
func (d *Document) Check() error {
	var errs error
	for _, l := range d.layers.Layers() {
		for _, id := range d.layers.Members(l) {
			if !d.tree.Contains(id) {
				errs = multierr.Append(errs, fmt.Errorf("%w: layer %d holds node %d", ErrDangling, l, id))
			}
		}
	}
	for textID, e := range d.paragraphs.All() {
		if !d.tree.Contains(e.Node) {
			errs = multierr.Append(errs, fmt.Errorf("%w: paragraph %s held by node %d", ErrDangling, textID, e.Node))
		}
	}
	for id := range d.layout.All() {
		if !d.tree.Contains(id) {
			errs = multierr.Append(errs, fmt.Errorf("%w: layout of node %d", ErrDangling, id))
		}
	}
	return errs
}

// Close checks the document one last time and releases its indices.
// The document cannot be used afterwards.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	err := d.Check()
	d.layers.Reset()
	d.paragraphs.Reset()
	d.layout.Reset()
	d.closed = true
	return err
}

// Tree returns the retained tree. It must not be modified directly.
func (d *Document) Tree() *dom.Tree { return d.tree }

// Layout returns the layout tree.
func (d *Document) Layout() *layout.Tree[dom.NodeID] { return d.layout }

// Layers returns the paint layer registry.
func (d *Document) Layers() *layers.Registry { return d.layers }

// Paragraphs returns the paragraph registry.
func (d *Document) Paragraphs() *paragraph.Registry { return d.paragraphs }

// Viewport returns the area the root is laid out in.
func (d *Document) Viewport() layout.Area { return d.opts.viewport }

// Frames returns the number of frames applied.
func (d *Document) Frames() int { return d.frames }

// Lookup resolves an element id to its node.
func (d *Document) Lookup(id dom.ElementID) (dom.NodeID, bool) {
	return d.tree.ElementToNodeID(id)
}
