// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package edit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOp is reported for an operation that does not exist.
	ErrUnknownOp = errors.New("edit: unknown operation")

	// ErrNegativeCount is reported for a negative m.
	ErrNegativeCount = errors.New("edit: negative node count")

	// ErrMissingName is reported when a template, attribute or listener
	// name is empty.
	ErrMissingName = errors.New("edit: missing name")

	// ErrMissingTemplate is reported for register_template without a body.
	ErrMissingTemplate = errors.New("edit: missing template")

	// ErrStackUnderflow is reported when the stream consumes more nodes
	// from the working stack than it pushed.
	ErrStackUnderflow = errors.New("edit: working stack underflow")
)

// OpError locates a problem inside a stream.
type OpError struct {
	Index int
	Op    Op
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("edit: #%d %s: %v", e.Index, e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
