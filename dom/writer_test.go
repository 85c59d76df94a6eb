// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dom

import (
	"errors"
	"slices"
	"testing"
)

// cardTemplate is rect > [label > dynamic_text, dynamic].
var cardTemplate = Template{
	Name: "card",
	Roots: []TemplateNode{{
		Kind:  TemplateElement,
		Tag:   "rect",
		Attrs: []TemplateAttribute{{Name: "width", Value: "100"}},
		Children: []TemplateNode{
			{Kind: TemplateElement, Tag: "label", Children: []TemplateNode{{Kind: TemplateDynamicText}}},
			{Kind: TemplateDynamic},
		},
	}},
}

func expectViolation(t *testing.T, want error) {
	t.Helper()
	r := recover()
	var ce *ContractError
	err, _ := r.(error)
	if !errors.As(err, &ce) || !errors.Is(err, want) {
		t.Errorf("recover() = %v, want ContractError wrapping %v", r, want)
	}
}

func TestWriterLoadTemplateAndHydrate(t *testing.T) {
	w := NewWriter(NewTree())
	w.RegisterTemplate(cardTemplate)

	w.LoadTemplate("card", 0, 1)
	w.HydrateTextNode([]uint8{0, 0}, "Title", 2)
	w.AssignNodeID([]uint8{1}, 3)
	w.AppendChildren(RootElement, 1)

	tree := w.Tree()
	card, ok := tree.ElementToNodeID(1)
	if !ok {
		t.Fatal("element 1 not mapped")
	}
	if p, _ := tree.Parent(card); p != tree.Root() {
		t.Errorf("card parent = %d, want root", p)
	}
	if got := tree.TextContent(card); got != "Title" {
		t.Errorf("TextContent(card) = %q, want Title", got)
	}
	slot, _ := tree.ElementToNodeID(3)
	if typ, _ := tree.Type(slot); typ.Kind != KindPlaceholder {
		t.Errorf("dynamic slot type = %v, want placeholder", typ)
	}
	ref, _ := tree.Get(card)
	if v, _ := ref.Attribute("width"); v.String() != "100" {
		t.Errorf("static attribute width = %q, want 100", v.String())
	}
	if w.StackLen() != 0 {
		t.Errorf("StackLen() = %d, want 0", w.StackLen())
	}
}

func TestWriterReplacePlaceholder(t *testing.T) {
	w := NewWriter(NewTree())
	w.RegisterTemplate(cardTemplate)
	w.LoadTemplate("card", 0, 1)
	w.CreateTextNode("a", 10)
	w.CreateTextNode("b", 11)
	w.ReplacePlaceholderWithNodes([]uint8{1}, 2)
	w.AppendChildren(RootElement, 1)

	tree := w.Tree()
	card, _ := tree.ElementToNodeID(1)
	kids := tree.ChildrenIDs(card, true)
	if len(kids) != 3 {
		t.Fatalf("card has %d children, want 3", len(kids))
	}
	a, _ := tree.ElementToNodeID(10)
	b, _ := tree.ElementToNodeID(11)
	if kids[1] != a || kids[2] != b {
		t.Errorf("children = %v, want [label %d %d]", kids, a, b)
	}
}

func TestWriterInsertAndReplace(t *testing.T) {
	w := NewWriter(NewTree())
	tree := w.Tree()
	w.CreatePlaceholder(1)
	w.AppendChildren(RootElement, 1)

	w.CreateTextNode("before", 2)
	w.InsertNodesBefore(1, 1)
	w.CreateTextNode("after1", 3)
	w.CreateTextNode("after2", 4)
	w.InsertNodesAfter(1, 2)

	ids := func(eids ...ElementID) []NodeID {
		out := make([]NodeID, len(eids))
		for i, e := range eids {
			out[i], _ = tree.ElementToNodeID(e)
		}
		return out
	}
	if got, want := tree.ChildrenIDs(tree.Root(), true), ids(2, 1, 3, 4); !slices.Equal(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}

	w.CreateTextNode("x", 5)
	w.CreateTextNode("y", 6)
	w.ReplaceNodeWith(1, 2)
	if got, want := tree.ChildrenIDs(tree.Root(), true), ids(2, 5, 6, 3, 4); !slices.Equal(got, want) {
		t.Errorf("children after replace = %v, want %v", got, want)
	}
	if _, ok := tree.ElementToNodeID(1); ok {
		t.Error("replaced element still mapped")
	}

	// Replacing with nothing displaces nothing.
	w.ReplaceNodeWith(2, 0)
	if got, want := tree.ChildrenIDs(tree.Root(), true), ids(2, 5, 6, 3, 4); !slices.Equal(got, want) {
		t.Errorf("children after empty replace = %v, want %v", got, want)
	}
}

func TestWriterSetTextAttributesListeners(t *testing.T) {
	w := NewWriter(NewTree())
	tree := w.Tree()
	w.CreateTextNode("old", 1)
	w.AppendChildren(RootElement, 1)
	w.SetNodeText("new", 1)
	n, _ := tree.ElementToNodeID(1)
	if got := tree.TextContent(n); got != "new" {
		t.Errorf("text = %q, want new", got)
	}

	w.SetAttribute("background", "", Text("red"), RootElement)
	w.CreateEventListener("click", RootElement)
	root, _ := tree.Get(tree.Root())
	if v, _ := root.Attribute("background"); v.String() != "red" {
		t.Errorf("background = %q, want red", v.String())
	}
	if !root.HasListener("click") {
		t.Error("click listener missing")
	}
	w.RemoveEventListener("click", RootElement)
	if root.HasListener("click") {
		t.Error("click listener still present")
	}
}

func TestWriterPushRootAndRemove(t *testing.T) {
	w := NewWriter(NewTree())
	tree := w.Tree()
	w.CreatePlaceholder(1)
	w.AppendChildren(RootElement, 1)
	w.PushRoot(1)
	if w.StackLen() != 1 {
		t.Errorf("StackLen() = %d, want 1", w.StackLen())
	}
	w.CreateTextNode("inner", 2)
	w.AppendChildren(1, 1)

	w.RemoveNode(1)
	if _, ok := tree.ElementToNodeID(2); ok {
		t.Error("descendant element still mapped after RemoveNode")
	}
	// Removing again is a no-op.
	w.RemoveNode(1)
}

func TestWriterPeek(t *testing.T) {
	w := NewWriter(NewTree())
	w.CreateTextNode("a", 1)
	w.CreateTextNode("b", 2)
	a, _ := w.Tree().ElementToNodeID(1)
	b, _ := w.Tree().ElementToNodeID(2)

	if got := w.Peek(2); !slices.Equal(got, []NodeID{a, b}) {
		t.Errorf("Peek(2) = %v, want %v", got, []NodeID{a, b})
	}
	if got := w.Peek(1); !slices.Equal(got, []NodeID{b}) {
		t.Errorf("Peek(1) = %v, want %v", got, []NodeID{b})
	}
	if got := w.Peek(3); got != nil {
		t.Errorf("Peek(3) = %v, want nil", got)
	}
	if w.StackLen() != 2 {
		t.Errorf("StackLen() = %d after Peek, want 2", w.StackLen())
	}
}

func TestWriterContractViolations(t *testing.T) {
	t.Run("unknown element", func(t *testing.T) {
		defer expectViolation(t, ErrUnknownElement)
		NewWriter(NewTree()).AppendChildren(99, 0)
	})
	t.Run("stack underflow", func(t *testing.T) {
		defer expectViolation(t, ErrStackUnderflow)
		NewWriter(NewTree()).AppendChildren(RootElement, 1)
	})
	t.Run("unknown template", func(t *testing.T) {
		defer expectViolation(t, ErrUnknownTemplate)
		NewWriter(NewTree()).LoadTemplate("missing", 0, 1)
	})
	t.Run("template index", func(t *testing.T) {
		defer expectViolation(t, ErrTemplateIndex)
		w := NewWriter(NewTree())
		w.RegisterTemplate(cardTemplate)
		w.LoadTemplate("card", 3, 1)
	})
	t.Run("bad path", func(t *testing.T) {
		defer expectViolation(t, ErrBadPath)
		w := NewWriter(NewTree())
		w.RegisterTemplate(cardTemplate)
		w.LoadTemplate("card", 0, 1)
		w.AssignNodeID([]uint8{7}, 2)
	})
	t.Run("not text", func(t *testing.T) {
		defer expectViolation(t, ErrNotText)
		NewWriter(NewTree()).SetNodeText("x", RootElement)
	})
	t.Run("unknown tag", func(t *testing.T) {
		defer expectViolation(t, ErrUnknownTag)
		NewWriter(NewTree()).RegisterTemplate(Template{
			Name:  "bad",
			Roots: []TemplateNode{{Kind: TemplateElement, Tag: "marquee"}},
		})
	})
}
