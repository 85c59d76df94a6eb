// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compositor tracks nodes whose cached paint output is stale.
package compositor

import (
	"slices"

	"github.com/gogpu/ggdom/dom"
)

// DirtyNodes is the set of nodes the compositor must repaint.
//
// DirtyNodes is not safe for concurrent use.
type DirtyNodes struct {
	nodes map[dom.NodeID]struct{}
}

// NewDirtyNodes creates an empty set.
func NewDirtyNodes() *DirtyNodes {
	return &DirtyNodes{nodes: make(map[dom.NodeID]struct{})}
}

// Invalidate marks id dirty.
func (d *DirtyNodes) Invalidate(id dom.NodeID) {
	d.nodes[id] = struct{}{}
}

// Contains reports whether id is marked dirty.
func (d *DirtyNodes) Contains(id dom.NodeID) bool {
	_, ok := d.nodes[id]
	return ok
}

// Len returns the number of dirty nodes.
func (d *DirtyNodes) Len() int {
	return len(d.nodes)
}

// Take returns the dirty nodes in ascending id order and clears the set.
func (d *DirtyNodes) Take() []dom.NodeID {
	if len(d.nodes) == 0 {
		return nil
	}
	out := make([]dom.NodeID, 0, len(d.nodes))
	for id := range d.nodes {
		out = append(out, id)
	}
	slices.Sort(out)
	clear(d.nodes)
	return out
}
