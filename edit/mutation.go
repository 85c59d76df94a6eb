// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package edit

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggdom/dom"
)

// Mutation is one edit operation. Only the fields its Op uses are set.
type Mutation struct {
	Op        Op                 `yaml:"op"`
	ID        dom.ElementID      `yaml:"id,omitempty"`
	Path      []uint8            `yaml:"path,omitempty,flow"`
	M         int                `yaml:"m,omitempty"`
	Name      string             `yaml:"name,omitempty"`
	Namespace string             `yaml:"ns,omitempty"`
	Value     dom.AttributeValue `yaml:"value,omitempty"`
	Text      string             `yaml:"text,omitempty"`
	Index     int                `yaml:"index,omitempty"`
	Template  *dom.Template      `yaml:"template,omitempty"`
}

func (m Mutation) String() string {
	switch m.Op {
	case OpRegisterTemplate:
		if m.Template != nil {
			return fmt.Sprintf("%s %q", m.Op, m.Template.Name)
		}
	case OpAppendChildren, OpReplaceNodeWith, OpInsertNodesAfter, OpInsertNodesBefore:
		return fmt.Sprintf("%s id=%d m=%d", m.Op, m.ID, m.M)
	case OpReplacePlaceholder:
		return fmt.Sprintf("%s path=%v m=%d", m.Op, m.Path, m.M)
	case OpAssignNodeID, OpHydrateTextNode:
		return fmt.Sprintf("%s path=%v id=%d", m.Op, m.Path, m.ID)
	case OpLoadTemplate:
		return fmt.Sprintf("%s %q[%d] id=%d", m.Op, m.Name, m.Index, m.ID)
	case OpSetAttribute:
		return fmt.Sprintf("%s %s=%s id=%d", m.Op, m.Name, m.Value, m.ID)
	case OpCreateEventListener, OpRemoveEventListener:
		return fmt.Sprintf("%s %s id=%d", m.Op, m.Name, m.ID)
	}
	return fmt.Sprintf("%s id=%d", m.Op, m.ID)
}

// Decode reads a YAML sequence of mutations. Unknown fields are rejected.
func Decode(r io.Reader) ([]Mutation, error) {
	var stream []Mutation
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&stream); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("edit: failed to decode mutations: %w", err)
	}
	return stream, nil
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(data []byte) ([]Mutation, error) {
	return Decode(bytes.NewReader(data))
}
