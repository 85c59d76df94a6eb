// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package state

import (
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/gogpu/ggdom/dom"
	"github.com/gogpu/ggdom/layout"
)

// DefaultFontSize is the font size of text without a font_size attribute.
const DefaultFontSize = 16.0

// Layout attribute names.
const (
	AttrWidth     = "width"
	AttrHeight    = "height"
	AttrMargin    = "margin"
	AttrPadding   = "padding"
	AttrDirection = "direction"
	AttrMainAlign = "main_align"
	AttrFontSize  = "font_size"
	AttrLayer     = "layer"
)

// LayoutStyle builds the layout style of an element from its attributes.
// Pixel values are multiplied by scale. Attributes that fail to parse keep
// their default and are reported together in the returned error.
func LayoutStyle(ref dom.NodeRef, scale float64) (layout.Style, error) {
	var (
		st   layout.Style
		errs error
		err  error
	)
	if v, ok := ref.Attribute(AttrWidth); ok {
		st.Width, err = parseSize(AttrWidth, v, scale)
		errs = multierr.Append(errs, err)
	}
	if v, ok := ref.Attribute(AttrHeight); ok {
		st.Height, err = parseSize(AttrHeight, v, scale)
		errs = multierr.Append(errs, err)
	}
	if v, ok := ref.Attribute(AttrMargin); ok {
		st.Margin, err = parseGaps(AttrMargin, v, scale)
		errs = multierr.Append(errs, err)
	}
	if v, ok := ref.Attribute(AttrPadding); ok {
		st.Padding, err = parseGaps(AttrPadding, v, scale)
		errs = multierr.Append(errs, err)
	}
	if v, ok := ref.Attribute(AttrDirection); ok {
		switch v.String() {
		case "horizontal":
			st.Direction = layout.Horizontal
		case "vertical":
			st.Direction = layout.Vertical
		default:
			errs = multierr.Append(errs, &AttributeError{Name: AttrDirection, Value: v.String(), Err: ErrBadDirection})
		}
	}
	if v, ok := ref.Attribute(AttrMainAlign); ok {
		st.MainAlign, err = ParseAlignment(v.String())
		errs = multierr.Append(errs, err)
	}
	return st, errs
}

// FontSize returns the scaled font size of an element.
func FontSize(ref dom.NodeRef, scale float64) float64 {
	size := DefaultFontSize
	if v, ok := ref.Attribute(AttrFontSize); ok {
		if f, ok := number(v); ok && f > 0 {
			size = f
		}
	}
	return size * scale
}

func parseSize(name string, v dom.AttributeValue, scale float64) (layout.Size, error) {
	if f, ok := number(v); ok {
		return layout.Pixels(f * scale), nil
	}
	switch s := strings.TrimSpace(v.String()); s {
	case "auto", "":
		return layout.Auto(), nil
	case "fill", "100%":
		return layout.Fill(), nil
	default:
		return layout.Auto(), &AttributeError{Name: name, Value: s, Err: ErrBadSize}
	}
}

// parseGaps accepts one, two or four values in CSS order.
func parseGaps(name string, v dom.AttributeValue, scale float64) (layout.Gaps, error) {
	if f, ok := number(v); ok {
		return layout.UniformGaps(f).Scale(scale), nil
	}
	fields := strings.Fields(v.String())
	vals := make([]float64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return layout.Gaps{}, &AttributeError{Name: name, Value: v.String(), Err: ErrBadGaps}
		}
		vals[i] = n
	}
	var g layout.Gaps
	switch len(vals) {
	case 1:
		g = layout.UniformGaps(vals[0])
	case 2:
		g = layout.Gaps{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}
	case 4:
		g = layout.Gaps{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}
	default:
		return layout.Gaps{}, &AttributeError{Name: name, Value: v.String(), Err: ErrBadGaps}
	}
	return g.Scale(scale), nil
}

// number returns the numeric value of v, parsing text if needed.
func number(v dom.AttributeValue) (float64, bool) {
	switch v.Kind {
	case dom.AttrFloat:
		return v.Float, true
	case dom.AttrInt:
		return float64(v.Int), true
	case dom.AttrText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		return f, err == nil
	}
	return 0, false
}
