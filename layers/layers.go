// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layers keeps the paint layer membership of visible nodes.
//
// Layers are painted in ascending order, lower layers behind higher ones.
// Within a layer, nodes are painted in the order they were inserted.
package layers

import (
	"slices"

	"github.com/gogpu/ggdom/dom"
)

// Layer is a z-ordering bucket.
type Layer int16

// Registry maps each layer to its member nodes.
//
// Registry holds node ids only, never nodes. It is not safe for concurrent
// use: the mutation pass writes it, the paint pass reads it afterwards.
type Registry struct {
	members map[Layer]*memberSet
	owner   map[dom.NodeID]Layer
	zOrder  []Layer // cached sorted layer list, nil when stale
}

// memberSet keeps the nodes of one layer in insertion order. Removal
// leaves a zero tombstone; the slice is compacted once tombstones
// outnumber live entries, so removal is amortized O(1).
type memberSet struct {
	slots []dom.NodeID
	pos   map[dom.NodeID]int
	live  int
}

// minCompact is the slot count below which tombstones are left in place.
const minCompact = 32

func (s *memberSet) add(id dom.NodeID) {
	s.pos[id] = len(s.slots)
	s.slots = append(s.slots, id)
	s.live++
}

func (s *memberSet) remove(id dom.NodeID) bool {
	i, ok := s.pos[id]
	if !ok {
		return false
	}
	s.slots[i] = 0
	delete(s.pos, id)
	s.live--
	if len(s.slots) >= minCompact && s.live*2 < len(s.slots) {
		s.compact()
	}
	return true
}

func (s *memberSet) compact() {
	live := s.slots[:0]
	for _, id := range s.slots {
		if id != 0 {
			s.pos[id] = len(live)
			live = append(live, id)
		}
	}
	clear(s.slots[len(live):])
	s.slots = live
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		members: make(map[Layer]*memberSet),
		owner:   make(map[dom.NodeID]Layer),
	}
}

// InsertNode adds id to layer. A node belongs to one layer at a time, so
// it is first removed from any previous layer.
func (r *Registry) InsertNode(id dom.NodeID, layer Layer) {
	if prev, ok := r.owner[id]; ok {
		if prev == layer {
			return
		}
		r.RemoveNodeFromLayer(id, prev)
	}
	set, exists := r.members[layer]
	if !exists {
		set = &memberSet{pos: make(map[dom.NodeID]int)}
		r.members[layer] = set
		r.zOrder = nil
	}
	set.add(id)
	r.owner[id] = layer
}

// RemoveNodeFromLayer removes id from layer and reports whether it was a
// member. Empty layers are dropped.
func (r *Registry) RemoveNodeFromLayer(id dom.NodeID, layer Layer) bool {
	set, ok := r.members[layer]
	if !ok || !set.remove(id) {
		return false
	}
	if set.live == 0 {
		delete(r.members, layer)
		r.zOrder = nil
	}
	delete(r.owner, id)
	return true
}

// LayerOf returns the layer id belongs to.
func (r *Registry) LayerOf(id dom.NodeID) (Layer, bool) {
	l, ok := r.owner[id]
	return l, ok
}

// Contains reports whether id belongs to any layer.
func (r *Registry) Contains(id dom.NodeID) bool {
	_, ok := r.owner[id]
	return ok
}

// Layers returns the non-empty layers in paint order (ascending).
// The returned slice must not be modified.
func (r *Registry) Layers() []Layer {
	if r.zOrder == nil {
		r.zOrder = make([]Layer, 0, len(r.members))
		for l := range r.members {
			r.zOrder = append(r.zOrder, l)
		}
		slices.Sort(r.zOrder)
	}
	return r.zOrder
}

// Members returns a copy of the nodes of layer in paint order.
func (r *Registry) Members(layer Layer) []dom.NodeID {
	set, ok := r.members[layer]
	if !ok {
		return nil
	}
	out := make([]dom.NodeID, 0, set.live)
	for _, id := range set.slots {
		if id != 0 {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of registered nodes across all layers.
func (r *Registry) Len() int {
	return len(r.owner)
}

// Reset drops every layer.
func (r *Registry) Reset() {
	clear(r.members)
	clear(r.owner)
	r.zOrder = nil
}
