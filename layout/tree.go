// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import "iter"

// Node is the resolved layout of a single tree node.
type Node struct {
	// Area is the outer area allocated by the parent, margins included.
	Area Area

	// InnerArea is Area minus margin and padding, where children are placed.
	InnerArea Area

	// Margin is the margin the node was resolved with.
	Margin Gaps
}

// VisibleArea returns the area the node actually paints into:
// the outer area without its margins.
func (n *Node) VisibleArea() Area {
	return n.Area.Inset(n.Margin)
}

// DOMAdapter answers the structural questions the layout tree needs.
// It must reflect the retained tree at the moment of the call.
type DOMAdapter[K comparable] interface {
	// Parent returns the parent of k, or false for a root or unknown node.
	Parent(k K) (K, bool)

	// Children returns the children of k that take part in layout, in order.
	Children(k K) []K
}

// Tree stores resolved layout per node key.
//
// Tree is not safe for concurrent use. It is written by one mutation pass
// and read by the layout and paint passes that follow it.
type Tree[K comparable] struct {
	results map[K]*Node
	dirty   map[K]struct{}
}

// NewTree creates an empty layout tree.
func NewTree[K comparable]() *Tree[K] {
	return &Tree[K]{
		results: make(map[K]*Node),
		dirty:   make(map[K]struct{}),
	}
}

// Get returns the resolved layout of k.
func (t *Tree[K]) Get(k K) (*Node, bool) {
	n, ok := t.results[k]
	return n, ok
}

// Set stores n as the resolved layout of k.
func (t *Tree[K]) Set(k K, n Node) {
	t.results[k] = &n
}

// All iterates over every resolved node in unspecified order.
func (t *Tree[K]) All() iter.Seq2[K, *Node] {
	return func(yield func(K, *Node) bool) {
		for k, n := range t.results {
			if !yield(k, n) {
				return
			}
		}
	}
}

// Len returns the number of nodes with a resolved layout.
func (t *Tree[K]) Len() int {
	return len(t.results)
}

// Invalidate marks k for recomputation on the next Measure.
func (t *Tree[K]) Invalidate(k K) {
	t.dirty[k] = struct{}{}
}

// IsDirty reports whether k is marked for recomputation.
func (t *Tree[K]) IsDirty(k K) bool {
	_, ok := t.dirty[k]
	return ok
}

// DirtyLen returns the number of nodes marked for recomputation.
func (t *Tree[K]) DirtyLen() int {
	return len(t.dirty)
}

// Remove forgets k and all of its descendants as reported by the adapter.
// When invalidateParent is set the parent of k is marked dirty so the space
// k occupied is recomputed.
//
// The adapter must still see the subtree of k: call Remove before the
// retained tree drops it. Removing an unknown key is a no-op for the key
// itself but still walks whatever descendants the adapter reports.
func (t *Tree[K]) Remove(k K, adapter DOMAdapter[K], invalidateParent bool) {
	if invalidateParent {
		if parent, ok := adapter.Parent(k); ok {
			t.Invalidate(parent)
		}
	}
	stack := []K{k}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		delete(t.results, id)
		delete(t.dirty, id)
		stack = append(stack, adapter.Children(id)...)
	}
}

// Reset drops every result and dirty mark.
func (t *Tree[K]) Reset() {
	clear(t.results)
	clear(t.dirty)
}
