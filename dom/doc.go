// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package dom implements the retained render tree that edit streams are
// applied to.
//
// A Tree is an arena of nodes addressed by NodeID. Each node has a closed
// NodeType (element, text or placeholder), attributes, event listener names,
// text content and a typed bag of derived state (see GetState and SetState).
// The diffing producer addresses nodes through ElementIDs; the tree keeps
// the ElementID to NodeID mapping.
//
// Writer translates edit operations into primitive tree changes. It owns
// the template registry and the working stack that template instantiation
// and node creation push onto. Writer has no side effects outside the Tree;
// registry cleanup on removal is the job of the mutation package.
//
// A malformed edit stream (unknown element, stack underflow, bad path) is a
// contract violation: the Writer panics with a *ContractError.
package dom
