// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dom

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TemplateNodeKind discriminates TemplateNode.
type TemplateNodeKind uint8

const (
	// TemplateElement is a static element with static attributes.
	TemplateElement TemplateNodeKind = iota
	// TemplateText is static text.
	TemplateText
	// TemplateDynamic is a slot filled later; it is instantiated as a placeholder.
	TemplateDynamic
	// TemplateDynamicText is a text slot hydrated later.
	TemplateDynamicText
)

var templateKindNames = [...]string{
	TemplateElement:     "element",
	TemplateText:        "text",
	TemplateDynamic:     "dynamic",
	TemplateDynamicText: "dynamic_text",
}

func (k TemplateNodeKind) String() string {
	if int(k) < len(templateKindNames) {
		return templateKindNames[k]
	}
	return "unknown"
}

// UnmarshalYAML decodes the kind from its name.
func (k *TemplateNodeKind) UnmarshalYAML(n *yaml.Node) error {
	for i, name := range templateKindNames {
		if name == n.Value {
			*k = TemplateNodeKind(i)
			return nil
		}
	}
	return fmt.Errorf("dom: unknown template node kind %q, line %d", n.Value, n.Line)
}

// TemplateAttribute is a static attribute of a template element.
type TemplateAttribute struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace,omitempty"`
	Value     string `yaml:"value"`
}

// TemplateNode is one node of a template definition.
type TemplateNode struct {
	Kind     TemplateNodeKind    `yaml:"kind"`
	Tag      string              `yaml:"tag,omitempty"`
	Attrs    []TemplateAttribute `yaml:"attrs,omitempty"`
	Children []TemplateNode      `yaml:"children,omitempty"`
	Text     string              `yaml:"text,omitempty"`
}

// Template is a reusable subtree shape registered once and instantiated
// many times.
type Template struct {
	Name  string         `yaml:"name"`
	Roots []TemplateNode `yaml:"roots"`
}

// instantiate builds detached nodes for tn and returns the root.
func (t *Tree) instantiate(tn *TemplateNode) NodeID {
	type pending struct {
		parent NodeID
		tn     *TemplateNode
	}
	root := t.instantiateNode(tn)
	var stack []pending
	for i := len(tn.Children) - 1; i >= 0; i-- {
		stack = append(stack, pending{root, &tn.Children[i]})
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := t.instantiateNode(p.tn)
		t.AppendChild(p.parent, id)
		for i := len(p.tn.Children) - 1; i >= 0; i-- {
			stack = append(stack, pending{id, &p.tn.Children[i]})
		}
	}
	return root
}

func (t *Tree) instantiateNode(tn *TemplateNode) NodeID {
	switch tn.Kind {
	case TemplateText:
		return t.CreateText(tn.Text)
	case TemplateDynamic:
		return t.CreatePlaceholder()
	case TemplateDynamicText:
		return t.CreateText("")
	default:
		tag, _ := ParseTag(tn.Tag)
		id := t.CreateElement(tag)
		for _, a := range tn.Attrs {
			t.SetAttribute(id, a.Name, a.Namespace, Text(a.Value))
		}
		return id
	}
}

// validateTemplate checks every element tag of tmpl.
func validateTemplate(tmpl *Template) error {
	stack := make([]*TemplateNode, 0, len(tmpl.Roots))
	for i := range tmpl.Roots {
		stack = append(stack, &tmpl.Roots[i])
	}
	for len(stack) > 0 {
		tn := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tn.Kind == TemplateElement {
			if _, ok := ParseTag(tn.Tag); !ok {
				return ErrUnknownTag
			}
		}
		for i := range tn.Children {
			stack = append(stack, &tn.Children[i])
		}
	}
	return nil
}
