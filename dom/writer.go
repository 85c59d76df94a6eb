// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dom

import (
	"fmt"
	"slices"

	"github.com/gogpu/ggdom/internal/logx"
)

// Writer applies edit operations to a Tree.
//
// Nodes created by the stream are pushed onto a working stack; operations
// taking a count m consume the top m entries in the order they were pushed.
// Paths address a descendant of the stack top by child indices.
type Writer struct {
	tree      *Tree
	templates map[string]Template
	stack     []NodeID
}

// NewWriter creates a Writer over tree.
func NewWriter(tree *Tree) *Writer {
	return &Writer{
		tree:      tree,
		templates: make(map[string]Template),
	}
}

// Tree returns the tree the writer mutates.
func (w *Writer) Tree() *Tree {
	return w.tree
}

// StackLen returns the depth of the working stack.
func (w *Writer) StackLen() int {
	return len(w.stack)
}

// Peek returns a copy of the top m stack entries, bottom first, or nil when
// the stack holds fewer than m entries.
func (w *Writer) Peek(m int) []NodeID {
	if m <= 0 || m > len(w.stack) {
		return nil
	}
	return slices.Clone(w.stack[len(w.stack)-m:])
}

// ElementToNodeID resolves id or panics with a *ContractError.
func (w *Writer) ElementToNodeID(id ElementID) NodeID {
	n, ok := w.tree.ElementToNodeID(id)
	if !ok {
		violate("resolve", id, ErrUnknownElement)
	}
	return n
}

// RegisterTemplate stores tmpl under its name, replacing an earlier one.
func (w *Writer) RegisterTemplate(tmpl Template) {
	if err := validateTemplate(&tmpl); err != nil {
		panic(&ContractError{Op: "register_template", Err: fmt.Errorf("%w in template %q", err, tmpl.Name)})
	}
	w.templates[tmpl.Name] = tmpl
}

// LoadTemplate instantiates root index of the named template, maps it to id
// and pushes it.
func (w *Writer) LoadTemplate(name string, index int, id ElementID) {
	tmpl, ok := w.templates[name]
	if !ok {
		violate("load_template", id, fmt.Errorf("%w %q", ErrUnknownTemplate, name))
	}
	if index < 0 || index >= len(tmpl.Roots) {
		violate("load_template", id, ErrTemplateIndex)
	}
	n := w.tree.instantiate(&tmpl.Roots[index])
	w.tree.SetElementID(n, id)
	w.stack = append(w.stack, n)
}

// AssignNodeID maps id to the node at path under the stack top.
func (w *Writer) AssignNodeID(path []uint8, id ElementID) {
	n := w.loadChild("assign_node_id", path, id)
	w.tree.SetElementID(n, id)
}

// CreatePlaceholder creates a placeholder mapped to id and pushes it.
func (w *Writer) CreatePlaceholder(id ElementID) {
	n := w.tree.CreatePlaceholder()
	w.tree.SetElementID(n, id)
	w.stack = append(w.stack, n)
}

// CreateTextNode creates a text node mapped to id and pushes it.
func (w *Writer) CreateTextNode(value string, id ElementID) {
	n := w.tree.CreateText(value)
	w.tree.SetElementID(n, id)
	w.stack = append(w.stack, n)
}

// HydrateTextNode fills the text slot at path and maps it to id.
func (w *Writer) HydrateTextNode(path []uint8, value string, id ElementID) {
	n := w.loadChild("hydrate_text_node", path, id)
	if typ, _ := w.tree.Type(n); typ.Kind != KindText {
		violate("hydrate_text_node", id, ErrNotText)
	}
	w.tree.SetText(n, value)
	w.tree.SetElementID(n, id)
}

// AppendChildren pops m nodes and appends them to id.
func (w *Writer) AppendChildren(id ElementID, m int) {
	parent := w.ElementToNodeID(id)
	for _, c := range w.pop("append_children", id, m) {
		w.tree.AppendChild(parent, c)
	}
}

// ReplaceNodeWith pops m nodes, puts them where id is and removes id.
// With m == 0 nothing is displaced and the tree is left unchanged.
func (w *Writer) ReplaceNodeWith(id ElementID, m int) {
	old := w.ElementToNodeID(id)
	if m == 0 {
		return
	}
	for _, n := range w.pop("replace_node_with", id, m) {
		w.tree.InsertBefore(old, n)
	}
	w.tree.Remove(old)
}

// ReplacePlaceholderWithNodes pops m nodes and puts them in place of the
// placeholder at path under the new stack top.
func (w *Writer) ReplacePlaceholderWithNodes(path []uint8, m int) {
	news := w.pop("replace_placeholder", RootElement, m)
	old := w.loadChild("replace_placeholder", path, RootElement)
	for _, n := range news {
		w.tree.InsertBefore(old, n)
	}
	w.tree.Remove(old)
}

// InsertNodesAfter pops m nodes and inserts them after id.
func (w *Writer) InsertNodesAfter(id ElementID, m int) {
	anchor := w.ElementToNodeID(id)
	news := w.pop("insert_nodes_after", id, m)
	for i := len(news) - 1; i >= 0; i-- {
		w.tree.InsertAfter(anchor, news[i])
	}
}

// InsertNodesBefore pops m nodes and inserts them before id.
func (w *Writer) InsertNodesBefore(id ElementID, m int) {
	anchor := w.ElementToNodeID(id)
	for _, n := range w.pop("insert_nodes_before", id, m) {
		w.tree.InsertBefore(anchor, n)
	}
}

// SetAttribute sets or, for a None value, removes an attribute of id.
func (w *Writer) SetAttribute(name, namespace string, value AttributeValue, id ElementID) {
	w.tree.SetAttribute(w.ElementToNodeID(id), name, namespace, value)
}

// SetNodeText replaces the content of the text node id.
func (w *Writer) SetNodeText(value string, id ElementID) {
	n := w.ElementToNodeID(id)
	if typ, _ := w.tree.Type(n); typ.Kind != KindText {
		violate("set_node_text", id, ErrNotText)
	}
	w.tree.SetText(n, value)
}

// CreateEventListener registers the named listener on id.
func (w *Writer) CreateEventListener(name string, id ElementID) {
	w.tree.AddListener(w.ElementToNodeID(id), name)
}

// RemoveEventListener drops the named listener from id.
func (w *Writer) RemoveEventListener(name string, id ElementID) {
	w.tree.RemoveListener(w.ElementToNodeID(id), name)
}

// RemoveNode deletes id and its subtree. Removing an element that is no
// longer mapped is a no-op.
func (w *Writer) RemoveNode(id ElementID) {
	n, ok := w.tree.ElementToNodeID(id)
	if !ok {
		logx.Logger().Debug("dom: remove of unmapped element ignored", "element", id)
		return
	}
	w.tree.Remove(n)
}

// PushRoot pushes id onto the working stack.
func (w *Writer) PushRoot(id ElementID) {
	w.stack = append(w.stack, w.ElementToNodeID(id))
}

// pop removes the top m entries of the stack and returns them bottom first.
func (w *Writer) pop(op string, id ElementID, m int) []NodeID {
	if m < 0 || m > len(w.stack) {
		violate(op, id, ErrStackUnderflow)
	}
	at := len(w.stack) - m
	out := make([]NodeID, m)
	copy(out, w.stack[at:])
	w.stack = w.stack[:at]
	return out
}

// loadChild walks path from the stack top.
func (w *Writer) loadChild(op string, path []uint8, id ElementID) NodeID {
	if len(w.stack) == 0 {
		violate(op, id, ErrStackUnderflow)
	}
	cur := w.stack[len(w.stack)-1]
	for _, i := range path {
		n := w.tree.nodes[cur]
		if n == nil || int(i) >= len(n.children) {
			violate(op, id, fmt.Errorf("%w: %v", ErrBadPath, path))
		}
		cur = n.children[i]
	}
	return cur
}
