// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package edit

import "go.uber.org/multierr"

// Validate checks a stream without applying it, assuming it starts with an
// empty working stack. It reports every problem found, not just the first.
//
// Validate cannot know which elements exist, so unknown ids are left to
// the Writer.
func Validate(stream []Mutation) error {
	var (
		errs  error
		depth int
	)
	fail := func(i int, m *Mutation, err error) {
		errs = multierr.Append(errs, &OpError{Index: i, Op: m.Op, Err: err})
	}
	pop := func(i int, m *Mutation, n int) bool {
		if n > depth {
			fail(i, m, ErrStackUnderflow)
			depth = 0
			return false
		}
		depth -= n
		return true
	}

	for i := range stream {
		m := &stream[i]
		if !m.Op.Valid() {
			fail(i, m, ErrUnknownOp)
			continue
		}
		if m.M < 0 {
			fail(i, m, ErrNegativeCount)
			continue
		}

		switch m.Op {
		case OpRegisterTemplate:
			switch {
			case m.Template == nil:
				fail(i, m, ErrMissingTemplate)
			case m.Template.Name == "":
				fail(i, m, ErrMissingName)
			}
		case OpLoadTemplate:
			if m.Name == "" {
				fail(i, m, ErrMissingName)
			}
			depth++
		case OpCreatePlaceholder, OpCreateTextNode, OpPushRoot:
			depth++
		case OpAssignNodeID, OpHydrateTextNode:
			if depth == 0 {
				fail(i, m, ErrStackUnderflow)
			}
		case OpAppendChildren, OpReplaceNodeWith, OpInsertNodesAfter, OpInsertNodesBefore:
			pop(i, m, m.M)
		case OpReplacePlaceholder:
			// The placeholder is found under the entry left on top.
			if pop(i, m, m.M) && depth == 0 {
				fail(i, m, ErrStackUnderflow)
			}
		case OpSetAttribute, OpCreateEventListener, OpRemoveEventListener:
			if m.Name == "" {
				fail(i, m, ErrMissingName)
			}
		}
	}
	return errs
}
