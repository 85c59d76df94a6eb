// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package edit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Op is the kind of an edit operation.
type Op uint8

// Edit operations. The zero Op is invalid.
const (
	OpInvalid Op = iota
	OpRegisterTemplate
	OpAppendChildren
	OpAssignNodeID
	OpCreatePlaceholder
	OpCreateTextNode
	OpHydrateTextNode
	OpLoadTemplate
	OpReplaceNodeWith
	OpReplacePlaceholder
	OpInsertNodesAfter
	OpInsertNodesBefore
	OpSetAttribute
	OpSetNodeText
	OpCreateEventListener
	OpRemoveEventListener
	OpRemoveNode
	OpPushRoot

	opCount
)

var opNames = [...]string{
	OpInvalid:             "invalid",
	OpRegisterTemplate:    "register_template",
	OpAppendChildren:      "append_children",
	OpAssignNodeID:        "assign_node_id",
	OpCreatePlaceholder:   "create_placeholder",
	OpCreateTextNode:      "create_text_node",
	OpHydrateTextNode:     "hydrate_text_node",
	OpLoadTemplate:        "load_template",
	OpReplaceNodeWith:     "replace_node_with",
	OpReplacePlaceholder:  "replace_placeholder",
	OpInsertNodesAfter:    "insert_nodes_after",
	OpInsertNodesBefore:   "insert_nodes_before",
	OpSetAttribute:        "set_attribute",
	OpSetNodeText:         "set_node_text",
	OpCreateEventListener: "create_event_listener",
	OpRemoveEventListener: "remove_event_listener",
	OpRemoveNode:          "remove_node",
	OpPushRoot:            "push_root",
}

// ParseOp returns the Op spelled name.
func ParseOp(name string) (Op, bool) {
	for i := OpRegisterTemplate; i < opCount; i++ {
		if opNames[i] == name {
			return i, true
		}
	}
	return OpInvalid, false
}

func (o Op) String() string {
	if o < opCount {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Valid reports whether o names a real operation.
func (o Op) Valid() bool {
	return o > OpInvalid && o < opCount
}

// ChangesLayout reports whether applying o can change the size or position
// of an attached node. Listener, template and stack operations cannot.
func (o Op) ChangesLayout() bool {
	switch o {
	case OpAppendChildren, OpReplaceNodeWith, OpReplacePlaceholder,
		OpInsertNodesAfter, OpInsertNodesBefore, OpSetAttribute,
		OpSetNodeText, OpRemoveNode:
		return true
	default:
		return false
	}
}

// UnmarshalYAML decodes an operation name.
func (o *Op) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	op, ok := ParseOp(s)
	if !ok {
		return fmt.Errorf("edit: line %d: %w %q", n.Line, ErrUnknownOp, s)
	}
	*o = op
	return nil
}

// MarshalYAML encodes the operation name.
func (o Op) MarshalYAML() (any, error) {
	return o.String(), nil
}
