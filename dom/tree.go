// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dom

import "slices"

// node is a single arena entry.
type node struct {
	id        NodeID
	typ       NodeType
	parent    NodeID // 0 when detached or root
	children  []NodeID
	attrs     []Attribute
	listeners []string
	text      string
	element   ElementID
	mapped    bool // element is valid
	state     stateBag
}

// Tree is the retained render tree.
//
// Tree is not safe for concurrent use: a single mutation pass owns it while
// an edit stream is applied.
type Tree struct {
	nodes    map[NodeID]*node
	elements map[ElementID]NodeID
	next     NodeID
	root     NodeID
}

// NewTree creates a tree holding only a root rect element, mapped to
// RootElement.
func NewTree() *Tree {
	t := &Tree{
		nodes:    make(map[NodeID]*node),
		elements: make(map[ElementID]NodeID),
	}
	t.root = t.create(ElementType(TagRect))
	t.SetElementID(t.root, RootElement)
	return t
}

func (t *Tree) create(typ NodeType) NodeID {
	t.next++
	id := t.next
	t.nodes[id] = &node{id: id, typ: typ}
	return id
}

// CreateElement creates a detached element node.
func (t *Tree) CreateElement(tag Tag) NodeID {
	return t.create(ElementType(tag))
}

// CreateText creates a detached text node.
func (t *Tree) CreateText(value string) NodeID {
	id := t.create(NodeType{Kind: KindText})
	t.nodes[id].text = value
	return id
}

// CreatePlaceholder creates a detached placeholder node.
func (t *Tree) CreatePlaceholder() NodeID {
	return t.create(NodeType{Kind: KindPlaceholder})
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of live nodes, detached ones included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Contains reports whether id is a live node.
func (t *Tree) Contains(id NodeID) bool {
	_, ok := t.nodes[id]
	return ok
}

// Get returns a read-only view of id.
func (t *Tree) Get(id NodeID) (NodeRef, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return NodeRef{}, false
	}
	return NodeRef{tree: t, n: n}, true
}

// Type returns the NodeType of id.
func (t *Tree) Type(id NodeID) (NodeType, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return NodeType{}, false
	}
	return n.typ, true
}

// Parent returns the parent of id. Detached nodes and the root have none.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	n, ok := t.nodes[id]
	if !ok || n.parent == 0 {
		return 0, false
	}
	return n.parent, true
}

// ChildrenIDs returns the children of id in document order.
// Placeholders are only included when includeInvisible is set.
// The returned slice is a copy.
func (t *Tree) ChildrenIDs(id NodeID, includeInvisible bool) []NodeID {
	n, ok := t.nodes[id]
	if !ok || len(n.children) == 0 {
		return nil
	}
	if includeInvisible {
		return slices.Clone(n.children)
	}
	out := make([]NodeID, 0, len(n.children))
	for _, c := range n.children {
		if t.nodes[c].typ.Kind != KindPlaceholder {
			out = append(out, c)
		}
	}
	return out
}

// ElementToNodeID resolves an ElementID.
func (t *Tree) ElementToNodeID(eid ElementID) (NodeID, bool) {
	id, ok := t.elements[eid]
	return id, ok
}

// SetElementID maps eid to id. A previous mapping of eid is replaced.
func (t *Tree) SetElementID(id NodeID, eid ElementID) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	if n.mapped && n.element != eid {
		if cur, ok := t.elements[n.element]; ok && cur == id {
			delete(t.elements, n.element)
		}
	}
	if prev, ok := t.elements[eid]; ok && prev != id {
		if pn, ok := t.nodes[prev]; ok {
			pn.mapped = false
		}
	}
	n.element, n.mapped = eid, true
	t.elements[eid] = id
}

// AppendChild attaches child as the last child of parent, detaching it
// from any previous parent first.
func (t *Tree) AppendChild(parent, child NodeID) {
	p, c := t.mustNode(parent), t.mustNode(child)
	t.detach(c)
	c.parent = parent
	p.children = append(p.children, child)
}

// InsertBefore attaches n as the previous sibling of anchor.
func (t *Tree) InsertBefore(anchor, n NodeID) {
	t.insertAt(anchor, n, 0)
}

// InsertAfter attaches n as the next sibling of anchor.
func (t *Tree) InsertAfter(anchor, n NodeID) {
	t.insertAt(anchor, n, 1)
}

func (t *Tree) insertAt(anchor, id NodeID, offset int) {
	a, c := t.mustNode(anchor), t.mustNode(id)
	if a.parent == 0 {
		panic(&ContractError{Op: "insert", Element: a.element, Err: ErrUnknownNode})
	}
	t.detach(c)
	p := t.nodes[a.parent]
	i := slices.Index(p.children, anchor)
	p.children = slices.Insert(p.children, i+offset, id)
	c.parent = a.parent
}

// detach unlinks n from its parent, if any.
func (t *Tree) detach(n *node) {
	if n.parent == 0 {
		return
	}
	if p, ok := t.nodes[n.parent]; ok {
		if i := slices.Index(p.children, n.id); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
	}
	n.parent = 0
}

// Remove detaches id and deletes it with its whole subtree, unmapping every
// ElementID in it. It returns the number of deleted nodes; removing an
// unknown node deletes nothing. The root cannot be removed.
func (t *Tree) Remove(id NodeID) int {
	n, ok := t.nodes[id]
	if !ok || id == t.root {
		return 0
	}
	t.detach(n)
	removed := 0
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cn := t.nodes[cur]
		stack = append(stack, cn.children...)
		if cn.mapped {
			if mapped, ok := t.elements[cn.element]; ok && mapped == cur {
				delete(t.elements, cn.element)
			}
		}
		delete(t.nodes, cur)
		removed++
	}
	return removed
}

// SetText replaces the content of a text node.
func (t *Tree) SetText(id NodeID, value string) {
	n := t.mustNode(id)
	if n.typ.Kind != KindText {
		panic(&ContractError{Op: "set_text", Element: n.element, Err: ErrNotText})
	}
	n.text = value
}

// SetAttribute stores value under name. A None value removes the attribute.
func (t *Tree) SetAttribute(id NodeID, name, namespace string, value AttributeValue) {
	n := t.mustNode(id)
	i := slices.IndexFunc(n.attrs, func(a Attribute) bool {
		return a.Name == name && a.Namespace == namespace
	})
	switch {
	case value.IsNone() && i >= 0:
		n.attrs = slices.Delete(n.attrs, i, i+1)
	case value.IsNone():
	case i >= 0:
		n.attrs[i].Value = value
	default:
		n.attrs = append(n.attrs, Attribute{Name: name, Namespace: namespace, Value: value})
	}
}

// AddListener registers interest in the named event.
func (t *Tree) AddListener(id NodeID, name string) {
	n := t.mustNode(id)
	if !slices.Contains(n.listeners, name) {
		n.listeners = append(n.listeners, name)
	}
}

// RemoveListener drops interest in the named event.
func (t *Tree) RemoveListener(id NodeID, name string) {
	n := t.mustNode(id)
	if i := slices.Index(n.listeners, name); i >= 0 {
		n.listeners = slices.Delete(n.listeners, i, i+1)
	}
}

// Clone deep-copies the subtree of id into new detached nodes.
// Element mappings and derived state are not copied.
func (t *Tree) Clone(id NodeID) NodeID {
	src := t.mustNode(id)
	dst := t.cloneNode(src)
	type pair struct{ src, dst NodeID }
	stack := []pair{{src.id, dst}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range t.nodes[p.src].children {
			cc := t.cloneNode(t.nodes[c])
			t.AppendChild(p.dst, cc)
			stack = append(stack, pair{c, cc})
		}
	}
	return dst
}

func (t *Tree) cloneNode(src *node) NodeID {
	id := t.create(src.typ)
	n := t.nodes[id]
	n.text = src.text
	n.attrs = slices.Clone(src.attrs)
	n.listeners = slices.Clone(src.listeners)
	return id
}

func (t *Tree) mustNode(id NodeID) *node {
	n, ok := t.nodes[id]
	if !ok {
		panic(&ContractError{Op: "lookup", Err: ErrUnknownNode})
	}
	return n
}

// NodeRef is a read-only view of a node.
type NodeRef struct {
	tree *Tree
	n    *node
}

// ID returns the node id.
func (r NodeRef) ID() NodeID { return r.n.id }

// Type returns the node type.
func (r NodeRef) Type() NodeType { return r.n.typ }

// Text returns the content of a text node.
func (r NodeRef) Text() string { return r.n.text }

// Element returns the ElementID mapped to the node.
func (r NodeRef) Element() (ElementID, bool) { return r.n.element, r.n.mapped }

// Attribute returns the value stored under name in the default namespace.
func (r NodeRef) Attribute(name string) (AttributeValue, bool) {
	for _, a := range r.n.attrs {
		if a.Name == name && a.Namespace == "" {
			return a.Value, true
		}
	}
	return AttributeValue{}, false
}

// Attributes returns a copy of all attributes in insertion order.
func (r NodeRef) Attributes() []Attribute { return slices.Clone(r.n.attrs) }

// Listeners returns a copy of the registered event names.
func (r NodeRef) Listeners() []string { return slices.Clone(r.n.listeners) }

// HasListener reports whether the node listens to the named event.
func (r NodeRef) HasListener(name string) bool { return slices.Contains(r.n.listeners, name) }

// ChildCount returns the number of children, placeholders included.
func (r NodeRef) ChildCount() int { return len(r.n.children) }

// TextContent concatenates the text of every text node under the node in
// document order.
func (t *Tree) TextContent(id NodeID) string {
	n, ok := t.nodes[id]
	if !ok {
		return ""
	}
	if n.typ.Kind == KindText {
		return n.text
	}
	var out []byte
	stack := slices.Clone(n.children)
	slices.Reverse(stack)
	for len(stack) > 0 {
		cur := t.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		if cur.typ.Kind == KindText {
			out = append(out, cur.text...)
			continue
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
	return string(out)
}
