// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggdom is a retained element tree for gg based user interfaces.
//
// # Overview
//
// A UI framework diffs its declarative description of the interface against
// the previous one and emits an edit stream: create this, append that,
// replace, remove, set text. ggdom applies that stream to a long-lived tree
// and keeps the indices derived from it consistent:
//
//   - the layout tree (resolved areas per node)
//   - the paint layers (z-ordered buckets of visible elements)
//   - the paragraph registry (shaped text per text block)
//
// It also computes the dirty rectangle of every frame: the union of the
// areas occupied by removed elements, so the renderer repaints only what
// changed.
//
// # Quick Start
//
//	doc, err := ggdom.NewDocument(ggdom.WithViewport(800, 600))
//	if err != nil {
//	    return err
//	}
//	defer doc.Close()
//
//	stream, err := edit.Decode(r)
//	if err != nil {
//	    return err
//	}
//	frame, err := doc.ApplyFrame(stream)
//	if frame.HasDirty {
//	    repaint(frame.DirtyRect)
//	}
//
// # Frame phases
//
// ApplyFrame runs three phases in order: the mutation pass (package
// mutation), the state-derivation pass for nodes created by the stream
// (package state) and layout. Nothing else may touch the document while a
// frame is applied.
//
// # Errors
//
// A malformed stream (an unknown element id, a working stack underflow) is
// a bug in the producer and panics with a *ContractError. WithRecover turns
// the panic into an error. Removing an element that no longer exists is
// not an error.
//
// # Logging
//
// ggdom logs through log/slog and is silent by default. See SetLogger.
package ggdom
