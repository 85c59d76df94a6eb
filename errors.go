// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggdom

import (
	"errors"

	"github.com/gogpu/ggdom/dom"
)

var (
	// ErrBroken is returned by ApplyFrame after an earlier frame failed
	// part-way.
	ErrBroken = errors.New("ggdom: document is inconsistent after a failed frame")

	// ErrClosed is returned by ApplyFrame after Close.
	ErrClosed = errors.New("ggdom: document closed")

	// ErrDangling is reported by Check for a registry entry whose node is
	// no longer in the tree.
	ErrDangling = errors.New("ggdom: dangling registry entry")
)

// ContractError describes an edit operation rejected because the stream
// was malformed. See WithRecover.
type ContractError = dom.ContractError
