// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package edit

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/gogpu/ggdom/dom"
)

func TestOpNames(t *testing.T) {
	for op := OpRegisterTemplate; op < opCount; op++ {
		got, ok := ParseOp(op.String())
		if !ok || got != op {
			t.Errorf("ParseOp(%q) = %v, %v, want %v", op.String(), got, ok, op)
		}
	}
	if _, ok := ParseOp("invalid"); ok {
		t.Error("ParseOp(invalid) should fail")
	}
	if OpInvalid.Valid() || !OpPushRoot.Valid() || opCount.Valid() {
		t.Error("Valid() mismatch")
	}
}

const sampleStream = `
- op: register_template
  template:
    name: card
    roots:
      - kind: element
        tag: rect
        attrs:
          - {name: height, value: "20"}
        children:
          - kind: element
            tag: label
            children:
              - kind: dynamic_text
- op: load_template
  name: card
  index: 0
  id: 1
- op: hydrate_text_node
  path: [0, 0]
  text: hello
  id: 2
- op: append_children
  id: 0
  m: 1
- op: set_attribute
  name: width
  value: 40.5
  id: 1
- op: set_node_text
  text: bye
  id: 2
- op: remove_node
  id: 1
`

func TestDecode(t *testing.T) {
	stream, err := DecodeBytes([]byte(sampleStream))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if len(stream) != 7 {
		t.Fatalf("len(stream) = %d, want 7", len(stream))
	}
	if stream[0].Template == nil || stream[0].Template.Name != "card" {
		t.Errorf("stream[0].Template = %+v", stream[0].Template)
	}
	if got := stream[2].Path; !slices.Equal(got, []uint8{0, 0}) {
		t.Errorf("stream[2].Path = %v, want [0 0]", got)
	}
	if got := stream[4].Value; got.Kind != dom.AttrFloat || got.Float != 40.5 {
		t.Errorf("stream[4].Value = %+v, want float 40.5", got)
	}
	if err := Validate(stream); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestDecodeEmpty(t *testing.T) {
	stream, err := DecodeBytes(nil)
	if err != nil || stream != nil {
		t.Errorf("DecodeBytes(nil) = %v, %v, want nil, nil", stream, err)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown field", "- op: remove_node\n  idd: 3\n"},
		{"unknown op", "- op: explode\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeBytes([]byte(tt.in)); err == nil {
				t.Error("DecodeBytes() should fail")
			}
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	stream := []Mutation{
		{Op: OpInvalid},
		{Op: OpAppendChildren, ID: 0, M: -1},
		{Op: OpAppendChildren, ID: 0, M: 2},
		{Op: OpSetAttribute, ID: 1},
		{Op: OpRegisterTemplate},
		{Op: OpAssignNodeID, Path: []uint8{0}, ID: 4},
	}
	err := Validate(stream)
	errs := multierr.Errors(err)
	if len(errs) != len(stream) {
		t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), len(stream), err)
	}
	want := []error{ErrUnknownOp, ErrNegativeCount, ErrStackUnderflow, ErrMissingName, ErrMissingTemplate, ErrStackUnderflow}
	for i, e := range errs {
		if !errors.Is(e, want[i]) {
			t.Errorf("error %d = %v, want %v", i, e, want[i])
		}
		var oe *OpError
		if !errors.As(e, &oe) || oe.Index != i {
			t.Errorf("error %d is not an *OpError for index %d: %v", i, i, e)
		}
	}
}

func TestValidateReplacePlaceholder(t *testing.T) {
	ok := []Mutation{
		{Op: OpLoadTemplate, Name: "t", ID: 1},
		{Op: OpCreateTextNode, Text: "x", ID: 2},
		{Op: OpReplacePlaceholder, Path: []uint8{0}, M: 1},
	}
	if err := Validate(ok); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	bad := []Mutation{
		{Op: OpCreateTextNode, Text: "x", ID: 2},
		{Op: OpReplacePlaceholder, Path: []uint8{0}, M: 1},
	}
	if err := Validate(bad); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("Validate() error = %v, want %v", err, ErrStackUnderflow)
	}
}

// recorder logs every call it receives.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) RegisterTemplate(tmpl dom.Template)          { r.add("register %s", tmpl.Name) }
func (r *recorder) AppendChildren(id dom.ElementID, m int)      { r.add("append %d %d", id, m) }
func (r *recorder) AssignNodeID(path []uint8, id dom.ElementID) { r.add("assign %v %d", path, id) }
func (r *recorder) CreatePlaceholder(id dom.ElementID)          { r.add("placeholder %d", id) }
func (r *recorder) CreateTextNode(value string, id dom.ElementID) {
	r.add("text %s %d", value, id)
}
func (r *recorder) HydrateTextNode(path []uint8, value string, id dom.ElementID) {
	r.add("hydrate %v %s %d", path, value, id)
}
func (r *recorder) LoadTemplate(name string, index int, id dom.ElementID) {
	r.add("load %s %d %d", name, index, id)
}
func (r *recorder) ReplaceNodeWith(id dom.ElementID, m int) { r.add("replace %d %d", id, m) }
func (r *recorder) ReplacePlaceholderWithNodes(path []uint8, m int) {
	r.add("replace_placeholder %v %d", path, m)
}
func (r *recorder) InsertNodesAfter(id dom.ElementID, m int)  { r.add("after %d %d", id, m) }
func (r *recorder) InsertNodesBefore(id dom.ElementID, m int) { r.add("before %d %d", id, m) }
func (r *recorder) SetAttribute(name, namespace string, value dom.AttributeValue, id dom.ElementID) {
	r.add("attr %s %s %d", name, value, id)
}
func (r *recorder) SetNodeText(value string, id dom.ElementID) { r.add("set_text %s %d", value, id) }
func (r *recorder) CreateEventListener(name string, id dom.ElementID) {
	r.add("listen %s %d", name, id)
}
func (r *recorder) RemoveEventListener(name string, id dom.ElementID) {
	r.add("unlisten %s %d", name, id)
}
func (r *recorder) RemoveNode(id dom.ElementID) { r.add("remove %d", id) }
func (r *recorder) PushRoot(id dom.ElementID)   { r.add("push %d", id) }

func TestApplyDispatchesInOrder(t *testing.T) {
	stream, err := DecodeBytes([]byte(sampleStream))
	if err != nil {
		t.Fatal(err)
	}
	stream = append(stream,
		Mutation{Op: OpInvalid},
		Mutation{Op: OpCreateEventListener, Name: "click", ID: 3},
		Mutation{Op: OpPushRoot, ID: 3},
	)

	var r recorder
	if n := Apply(&r, stream); n != 9 {
		t.Errorf("Apply() = %d, want 9", n)
	}
	want := []string{
		"register card",
		"load card 0 1",
		"hydrate [0 0] hello 2",
		"append 0 1",
		"attr width 40.5 1",
		"set_text bye 2",
		"remove 1",
		"listen click 3",
		"push 3",
	}
	if !slices.Equal(r.calls, want) {
		t.Errorf("calls:\n%s\nwant:\n%s", strings.Join(r.calls, "\n"), strings.Join(want, "\n"))
	}
}

func TestApplyOnTree(t *testing.T) {
	stream, err := DecodeBytes([]byte(sampleStream))
	if err != nil {
		t.Fatal(err)
	}
	tree := dom.NewTree()
	w := dom.NewWriter(tree)

	// Everything but the final removal.
	Apply(w, stream[:6])
	card, ok := tree.ElementToNodeID(1)
	if !ok {
		t.Fatal("element 1 not mapped")
	}
	if got := tree.TextContent(card); got != "bye" {
		t.Errorf("TextContent() = %q, want %q", got, "bye")
	}
	if w.StackLen() != 0 {
		t.Errorf("StackLen() = %d, want 0", w.StackLen())
	}

	Apply(w, stream[6:])
	if tree.Contains(card) {
		t.Error("card should be removed")
	}
}
