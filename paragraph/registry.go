// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paragraph

import (
	"iter"

	"github.com/google/uuid"

	"github.com/gogpu/ggdom/dom"
)

// TextID is the identity of a shaped text block, carried in a node's
// cursor state.
type TextID uuid.UUID

// NewTextID returns a fresh random identity.
func NewTextID() TextID {
	return TextID(uuid.New())
}

// ParseTextID parses the canonical string form of a TextID.
func ParseTextID(s string) (TextID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TextID{}, err
	}
	return TextID(u), nil
}

func (id TextID) String() string {
	return uuid.UUID(id).String()
}

// Entry is a registered paragraph.
type Entry struct {
	Node      dom.NodeID
	Paragraph *Paragraph
}

// Registry maps text identities to their owning node and shaped paragraph.
//
// Registry is not safe for concurrent use.
type Registry struct {
	entries map[TextID]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[TextID]Entry)}
}

// InsertParagraph registers p for textID owned by id, replacing any
// previous entry for textID.
func (r *Registry) InsertParagraph(id dom.NodeID, textID TextID, p *Paragraph) {
	r.entries[textID] = Entry{Node: id, Paragraph: p}
}

// RemoveParagraph drops the entry for textID if it is owned by id and
// reports whether something was removed.
func (r *Registry) RemoveParagraph(id dom.NodeID, textID TextID) bool {
	e, ok := r.entries[textID]
	if !ok || e.Node != id {
		return false
	}
	delete(r.entries, textID)
	return true
}

// Get returns the entry for textID.
func (r *Registry) Get(textID TextID) (Entry, bool) {
	e, ok := r.entries[textID]
	return e, ok
}

// Owns reports whether any entry is owned by id.
func (r *Registry) Owns(id dom.NodeID) bool {
	for _, e := range r.entries {
		if e.Node == id {
			return true
		}
	}
	return false
}

// All iterates over every entry in unspecified order.
func (r *Registry) All() iter.Seq2[TextID, Entry] {
	return func(yield func(TextID, Entry) bool) {
		for id, e := range r.entries {
			if !yield(id, e) {
				return
			}
		}
	}
}

// Len returns the number of registered paragraphs.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Reset drops every entry.
func (r *Registry) Reset() {
	clear(r.entries)
}
