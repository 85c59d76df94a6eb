// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dom

import "reflect"

// stateBag stores at most one derived state value per Go type.
// A missing entry means the state was never computed, which is distinct
// from a computed zero value.
type stateBag map[reflect.Type]any

// GetState returns the state of type T stored on id.
// The second result is false when the node is unknown or the state has not
// been derived yet.
func GetState[T any](t *Tree, id NodeID) (T, bool) {
	var zero T
	n, ok := t.nodes[id]
	if !ok || n.state == nil {
		return zero, false
	}
	v, ok := n.state[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// SetState stores v as the state of type T on id. Unknown ids are ignored.
func SetState[T any](t *Tree, id NodeID, v T) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	if n.state == nil {
		n.state = make(stateBag)
	}
	n.state[reflect.TypeFor[T]()] = v
}

// ClearState drops the state of type T from id.
func ClearState[T any](t *Tree, id NodeID) {
	if n, ok := t.nodes[id]; ok && n.state != nil {
		delete(n.state, reflect.TypeFor[T]())
	}
}
