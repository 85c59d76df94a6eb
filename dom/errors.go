// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dom

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations of an edit stream.
var (
	// ErrUnknownElement is reported when an ElementID is not mapped to a node.
	ErrUnknownElement = errors.New("dom: unknown element id")

	// ErrUnknownNode is reported when a NodeID is not part of the tree.
	ErrUnknownNode = errors.New("dom: unknown node id")

	// ErrUnknownTemplate is reported when loading a template never registered.
	ErrUnknownTemplate = errors.New("dom: unknown template")

	// ErrTemplateIndex is reported when a template root index is out of range.
	ErrTemplateIndex = errors.New("dom: template root index out of range")

	// ErrStackUnderflow is reported when an operation pops more nodes than the
	// working stack holds.
	ErrStackUnderflow = errors.New("dom: working stack underflow")

	// ErrBadPath is reported when a child path does not resolve to a node.
	ErrBadPath = errors.New("dom: path does not resolve")

	// ErrNotText is reported when a text operation targets a non-text node.
	ErrNotText = errors.New("dom: node is not a text node")

	// ErrUnknownTag is reported for a template element with an unknown tag.
	ErrUnknownTag = errors.New("dom: unknown tag")
)

// ContractError describes an edit operation that could not be applied
// because the stream was malformed.
type ContractError struct {
	Op      string
	Element ElementID
	Err     error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("dom: %s on element %d: %v", e.Op, e.Element, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// violate aborts the current operation.
func violate(op string, id ElementID, err error) {
	panic(&ContractError{Op: op, Element: id, Err: err})
}
