// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides the bounded LRU used for shaped paragraph reuse.
//
// The registry of live paragraphs is keyed by text identity and never
// evicts; this cache sits behind it and is keyed by content, so a paragraph
// whose node was removed and re-created with the same text, font size and
// width does not have to be shaped again.
package cache
