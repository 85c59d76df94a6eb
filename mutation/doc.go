// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mutation applies edit streams to the retained tree while keeping
// the layout tree, the paint layers and the paragraph registry consistent.
//
// Writer wraps a dom.Writer. Most operations are delegated unchanged.
// These are not:
//
//   - RemoveNode and ReplaceNodeWith (with m > 0) first run the removal
//     cascade over the displaced subtree: every registered element is
//     dropped from its paint layer and paragraph entry, its last resolved
//     area is merged into the frame's dirty rectangle, and finally the
//     subtree is removed from the layout tree. The cascade must run while
//     the retained tree still holds the old structure.
//   - SetNodeText invalidates the node's layout and marks it dirty for the
//     compositor before the text changes.
//   - Operations that change the children of a text block, and font size
//     changes, mark the owning paragraph or label dirty for the compositor
//     so its text is shaped again.
//
// The cascade walks with an explicit stack. Children of layout-opaque
// elements (text blocks, images, vector graphics) are private to their
// element and are not visited.
//
// A Writer serves one mutator. Readers (layout, paint) run after the
// stream of a frame has been applied completely.
package mutation
