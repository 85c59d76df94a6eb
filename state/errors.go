// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package state

import (
	"errors"
	"fmt"
)

var (
	// ErrBadAlignment is returned for an unknown alignment keyword.
	ErrBadAlignment = errors.New("state: invalid alignment")

	// ErrBadDirection is returned for a direction other than "vertical" or
	// "horizontal".
	ErrBadDirection = errors.New("state: invalid direction")

	// ErrBadSize is returned for a size attribute that is not a number,
	// "auto" or "fill".
	ErrBadSize = errors.New("state: invalid size")

	// ErrBadGaps is returned for a margin or padding attribute with the
	// wrong number of values.
	ErrBadGaps = errors.New("state: invalid gaps")
)

// AttributeError reports an attribute that could not be parsed.
type AttributeError struct {
	Name  string
	Value string
	Err   error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("state: attribute %s=%q: %v", e.Name, e.Value, e.Err)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}
