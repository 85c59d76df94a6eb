// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package paragraph shapes text blocks and keeps the registry of live
// shaped paragraphs.
//
// A text-bearing node owns one TextID. The Registry maps that identity to
// the node and its shaped Paragraph; it holds at most one entry per
// identity and must be told when the owning node goes away.
//
// Shaper turns text into glyph runs with go-text/typesetting. Text is split
// into bidi runs first (golang.org/x/text/unicode/bidi), each run is shaped
// with its own direction and script. Results are cached by content.
package paragraph
