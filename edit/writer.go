// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package edit defines the edit stream that transforms a retained tree
// from one frame to the next, and the Writer contract that applies it.
//
// A stream is applied strictly in order; its order encodes the structural
// diff. Apply dispatches each Mutation to the matching Writer method.
package edit

import (
	"github.com/gogpu/ggdom/dom"
	"github.com/gogpu/ggdom/internal/logx"
)

// Writer applies edit operations. Implementations panic on a malformed
// stream instead of returning errors: a well-formed stream never fails.
type Writer interface {
	RegisterTemplate(tmpl dom.Template)
	AppendChildren(id dom.ElementID, m int)
	AssignNodeID(path []uint8, id dom.ElementID)
	CreatePlaceholder(id dom.ElementID)
	CreateTextNode(value string, id dom.ElementID)
	HydrateTextNode(path []uint8, value string, id dom.ElementID)
	LoadTemplate(name string, index int, id dom.ElementID)
	ReplaceNodeWith(id dom.ElementID, m int)
	ReplacePlaceholderWithNodes(path []uint8, m int)
	InsertNodesAfter(id dom.ElementID, m int)
	InsertNodesBefore(id dom.ElementID, m int)
	SetAttribute(name, namespace string, value dom.AttributeValue, id dom.ElementID)
	SetNodeText(value string, id dom.ElementID)
	CreateEventListener(name string, id dom.ElementID)
	RemoveEventListener(name string, id dom.ElementID)
	RemoveNode(id dom.ElementID)
	PushRoot(id dom.ElementID)
}

var _ Writer = (*dom.Writer)(nil)

// Apply feeds stream to w in order and returns the number of mutations
// applied. Mutations with an invalid Op are skipped; use Validate first to
// reject them.
func Apply(w Writer, stream []Mutation) int {
	log := logx.Logger()
	applied := 0
	for i := range stream {
		m := &stream[i]
		switch m.Op {
		case OpRegisterTemplate:
			if m.Template == nil {
				log.Warn("edit: skipping register_template without template", "index", i)
				continue
			}
			w.RegisterTemplate(*m.Template)
		case OpAppendChildren:
			w.AppendChildren(m.ID, m.M)
		case OpAssignNodeID:
			w.AssignNodeID(m.Path, m.ID)
		case OpCreatePlaceholder:
			w.CreatePlaceholder(m.ID)
		case OpCreateTextNode:
			w.CreateTextNode(m.Text, m.ID)
		case OpHydrateTextNode:
			w.HydrateTextNode(m.Path, m.Text, m.ID)
		case OpLoadTemplate:
			w.LoadTemplate(m.Name, m.Index, m.ID)
		case OpReplaceNodeWith:
			w.ReplaceNodeWith(m.ID, m.M)
		case OpReplacePlaceholder:
			w.ReplacePlaceholderWithNodes(m.Path, m.M)
		case OpInsertNodesAfter:
			w.InsertNodesAfter(m.ID, m.M)
		case OpInsertNodesBefore:
			w.InsertNodesBefore(m.ID, m.M)
		case OpSetAttribute:
			w.SetAttribute(m.Name, m.Namespace, m.Value, m.ID)
		case OpSetNodeText:
			w.SetNodeText(m.Text, m.ID)
		case OpCreateEventListener:
			w.CreateEventListener(m.Name, m.ID)
		case OpRemoveEventListener:
			w.RemoveEventListener(m.Name, m.ID)
		case OpRemoveNode:
			w.RemoveNode(m.ID)
		case OpPushRoot:
			w.PushRoot(m.ID)
		default:
			log.Warn("edit: skipping invalid mutation", "index", i, "op", m.Op)
			continue
		}
		log.Debug("edit: applied", "index", i, "mutation", m.String())
		applied++
	}
	return applied
}
