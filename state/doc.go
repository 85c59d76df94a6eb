// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package state derives per-node render state from the retained tree.
//
// Derived state lives in the dom state bag as LayerState and CursorState.
// A node without both has never been processed by Pass and is therefore
// absent from the layer and paragraph registries. The mutation engine
// relies on that distinction when cleaning up removed subtrees. Once
// derived, the layer of a node is kept in step with its parent and its
// layer attribute on every Pass run.
//
// The package also parses the layout attributes of elements (size, margin,
// padding, direction, alignment) into a layout.Style.
package state
