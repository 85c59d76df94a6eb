// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"math"
)

// Area is an axis-aligned rectangle in layout coordinates.
// X and Y are the top-left corner.
type Area struct {
	X, Y, Width, Height float64
}

// NewArea creates an Area from its origin and size.
func NewArea(x, y, width, height float64) Area {
	return Area{X: x, Y: y, Width: width, Height: height}
}

// MinX returns the left edge.
func (a Area) MinX() float64 { return a.X }

// MinY returns the top edge.
func (a Area) MinY() float64 { return a.Y }

// MaxX returns the right edge.
func (a Area) MaxX() float64 { return a.X + a.Width }

// MaxY returns the bottom edge.
func (a Area) MaxY() float64 { return a.Y + a.Height }

// IsEmpty reports whether the area covers no surface.
func (a Area) IsEmpty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Union returns the smallest area containing both a and other.
// An empty operand does not contribute: the union of an empty area and b is b.
func (a Area) Union(other Area) Area {
	if other.IsEmpty() {
		return a
	}
	if a.IsEmpty() {
		return other
	}
	minX := math.Min(a.MinX(), other.MinX())
	minY := math.Min(a.MinY(), other.MinY())
	maxX := math.Max(a.MaxX(), other.MaxX())
	maxY := math.Max(a.MaxY(), other.MaxY())
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Intersect returns the overlap of a and other.
// The result is the zero Area when they do not overlap.
func (a Area) Intersect(other Area) Area {
	minX := math.Max(a.MinX(), other.MinX())
	minY := math.Max(a.MinY(), other.MinY())
	maxX := math.Min(a.MaxX(), other.MaxX())
	maxY := math.Min(a.MaxY(), other.MaxY())
	if maxX <= minX || maxY <= minY {
		return Area{}
	}
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether the point (x, y) lies inside the area.
func (a Area) Contains(x, y float64) bool {
	return x >= a.MinX() && x < a.MaxX() && y >= a.MinY() && y < a.MaxY()
}

// Translate returns the area moved by (dx, dy).
func (a Area) Translate(dx, dy float64) Area {
	a.X += dx
	a.Y += dy
	return a
}

// Inset shrinks the area by g on each side. Sizes never go negative.
func (a Area) Inset(g Gaps) Area {
	a.X += g.Left
	a.Y += g.Top
	a.Width = math.Max(0, a.Width-g.Horizontal())
	a.Height = math.Max(0, a.Height-g.Vertical())
	return a
}

// Outset grows the area by g on each side.
func (a Area) Outset(g Gaps) Area {
	a.X -= g.Left
	a.Y -= g.Top
	a.Width += g.Horizontal()
	a.Height += g.Vertical()
	return a
}

func (a Area) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", a.X, a.Y, a.Width, a.Height)
}

// Gaps holds per-side spacing such as margins or paddings.
type Gaps struct {
	Top, Right, Bottom, Left float64
}

// UniformGaps returns Gaps with v on every side.
func UniformGaps(v float64) Gaps {
	return Gaps{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns Left + Right.
func (g Gaps) Horizontal() float64 { return g.Left + g.Right }

// Vertical returns Top + Bottom.
func (g Gaps) Vertical() float64 { return g.Top + g.Bottom }

// Scale multiplies every side by f.
func (g Gaps) Scale(f float64) Gaps {
	return Gaps{Top: g.Top * f, Right: g.Right * f, Bottom: g.Bottom * f, Left: g.Left * f}
}
