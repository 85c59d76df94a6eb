// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dom

// NodeID identifies a node of a Tree. IDs are never reused by a Tree.
// The zero NodeID is never issued.
type NodeID uint64

// ElementID is the identifier the diffing producer uses for a node.
// ElementID 0 always addresses the tree root.
type ElementID uint64

// RootElement is the ElementID of the tree root.
const RootElement ElementID = 0

// Tag is the element type of an element node.
type Tag uint8

const (
	// TagRect is a generic container.
	TagRect Tag = iota
	// TagParagraph is a multi-span text block.
	TagParagraph
	// TagLabel is a single-style text block.
	TagLabel
	// TagText is a span inside a paragraph.
	TagText
	// TagImage is a raster image.
	TagImage
	// TagSvg is a vector graphic.
	TagSvg
)

var tagNames = [...]string{
	TagRect:      "rect",
	TagParagraph: "paragraph",
	TagLabel:     "label",
	TagText:      "text",
	TagImage:     "image",
	TagSvg:       "svg",
}

// ParseTag returns the Tag spelled name.
func ParseTag(name string) (Tag, bool) {
	for i, n := range tagNames {
		if n == name {
			return Tag(i), true
		}
	}
	return 0, false
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// HasChildrenWithIntrinsicLayout reports whether the children of an element
// with this tag are laid out as part of the outer tree. Text blocks and
// graphics own their children privately.
func (t Tag) HasChildrenWithIntrinsicLayout() bool {
	switch t {
	case TagParagraph, TagLabel, TagText, TagImage, TagSvg:
		return false
	default:
		return true
	}
}

// IsTextBearing reports whether elements with this tag render shaped text.
func (t Tag) IsTextBearing() bool {
	return t == TagParagraph || t == TagLabel
}

// NodeKind discriminates NodeType.
type NodeKind uint8

const (
	// KindElement is a paintable element with a Tag.
	KindElement NodeKind = iota
	// KindText is raw text content.
	KindText
	// KindPlaceholder marks a position with nothing rendered.
	KindPlaceholder
)

func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// NodeType is the closed variant describing what a node is.
// Tag is only meaningful for KindElement.
type NodeType struct {
	Kind NodeKind
	Tag  Tag
}

// ElementType returns the NodeType of an element with tag t.
func ElementType(t Tag) NodeType {
	return NodeType{Kind: KindElement, Tag: t}
}

// IsVisibleElement reports whether the node is painted and may be
// registered in paint layers.
func (t NodeType) IsVisibleElement() bool {
	return t.Kind == KindElement
}

// PropagatesLayoutToChildren reports whether the children of the node take
// part in the outer layout.
func (t NodeType) PropagatesLayoutToChildren() bool {
	return t.Kind == KindElement && t.Tag.HasChildrenWithIntrinsicLayout()
}

// ElementTag returns the tag of an element node.
func (t NodeType) ElementTag() (Tag, bool) {
	if t.Kind != KindElement {
		return 0, false
	}
	return t.Tag, true
}

func (t NodeType) String() string {
	if t.Kind == KindElement {
		return t.Tag.String()
	}
	return t.Kind.String()
}
