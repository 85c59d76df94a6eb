// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggdom

import (
	"github.com/gogpu/ggdom/layout"
	"github.com/gogpu/ggdom/paragraph"
)

// Default viewport size used when WithViewport is not given.
const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)

// Option configures a Document during creation.
// Use functional options to customize Document behavior.
//
// Example:
//
//	// HiDPI surface, assert layout consistency while developing
//	doc, err := ggdom.NewDocument(
//	    ggdom.WithScaleFactor(2),
//	    ggdom.WithStrictLayout(true),
//	)
type Option func(*options)

// options holds optional configuration for Document creation.
type options struct {
	scale         float32
	strict        bool
	recoverPanics bool
	viewport      layout.Area
	shaper        *paragraph.Shaper
}

// defaultOptions returns the default document options.
func defaultOptions() options {
	return options{
		scale:    1,
		viewport: layout.NewArea(0, 0, DefaultViewportWidth, DefaultViewportHeight),
		shaper:   nil, // Will be set to paragraph.DefaultShaper if nil
	}
}

// WithScaleFactor sets the device scale factor. Pixel sizes in attributes
// and font sizes are multiplied by it. Non-positive values are ignored.
func WithScaleFactor(f float32) Option {
	return func(o *options) {
		if f > 0 {
			o.scale = f
		}
	}
}

// WithStrictLayout makes removal panic when a registered node has never
// been laid out, instead of logging a warning and skipping its area.
// Use it in tests and debug builds.
func WithStrictLayout(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithRecover makes ApplyFrame return contract violations of a malformed
// edit stream as a *ContractError instead of panicking.
//
// A frame that failed part-way leaves the document inconsistent, so every
// later ApplyFrame returns ErrBroken.
func WithRecover(enabled bool) Option {
	return func(o *options) {
		o.recoverPanics = enabled
	}
}

// WithViewport sets the size of the area the root is laid out in.
func WithViewport(width, height float64) Option {
	return func(o *options) {
		o.viewport = layout.NewArea(0, 0, width, height)
	}
}

// WithShaper sets the text shaper. Shapers are safe for concurrent use and
// may be shared between documents.
func WithShaper(s *paragraph.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}
