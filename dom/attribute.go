// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dom

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AttributeKind discriminates AttributeValue.
type AttributeKind uint8

const (
	// AttrNone removes the attribute.
	AttrNone AttributeKind = iota
	// AttrText is a string value.
	AttrText
	// AttrFloat is a floating point value.
	AttrFloat
	// AttrInt is an integer value.
	AttrInt
	// AttrBool is a boolean value.
	AttrBool
)

// AttributeValue is the value carried by a set-attribute operation.
// The zero value is None.
type AttributeValue struct {
	Kind  AttributeKind
	Text  string
	Float float64
	Int   int64
	Bool  bool
}

// Text returns a string AttributeValue.
func Text(s string) AttributeValue { return AttributeValue{Kind: AttrText, Text: s} }

// Float returns a float AttributeValue.
func Float(f float64) AttributeValue { return AttributeValue{Kind: AttrFloat, Float: f} }

// Int returns an integer AttributeValue.
func Int(i int64) AttributeValue { return AttributeValue{Kind: AttrInt, Int: i} }

// Bool returns a boolean AttributeValue.
func Bool(b bool) AttributeValue { return AttributeValue{Kind: AttrBool, Bool: b} }

// None returns the AttributeValue that removes an attribute.
func None() AttributeValue { return AttributeValue{} }

// IsNone reports whether v removes the attribute.
func (v AttributeValue) IsNone() bool { return v.Kind == AttrNone }

// String formats the value the way it would be written in markup.
func (v AttributeValue) String() string {
	switch v.Kind {
	case AttrText:
		return v.Text
	case AttrFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case AttrInt:
		return strconv.FormatInt(v.Int, 10)
	case AttrBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// UnmarshalYAML decodes a scalar, picking the kind from its resolved tag.
func (v *AttributeValue) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("dom: attribute value must be a scalar, line %d", n.Line)
	}
	switch n.ShortTag() {
	case "!!null":
		*v = None()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		*v = Bool(b)
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return err
		}
		*v = Int(i)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		*v = Float(f)
	default:
		*v = Text(n.Value)
	}
	return nil
}

// Attribute is a named attribute stored on an element.
type Attribute struct {
	Name      string
	Namespace string
	Value     AttributeValue
}
