// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mutation

import "errors"

// ErrMissingLayout is reported, in strict mode, when a registered element
// being removed has never been laid out.
var ErrMissingLayout = errors.New("mutation: registered node has no layout")
