package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggdom"
	"github.com/gogpu/ggdom/dom"
	"github.com/gogpu/ggdom/layout"
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	dirtyFill  = color.RGBA{0x80, 0x00, 0x00, 0x50} // premultiplied
	outline    = color.RGBA{0x30, 0x30, 0x30, 0xff}
)

// tagFill is the premultiplied fill per element tag.
var tagFill = map[dom.Tag]color.RGBA{
	dom.TagRect:      {0x1c, 0x34, 0x4c, 0x60},
	dom.TagParagraph: {0x20, 0x40, 0x10, 0x60},
	dom.TagLabel:     {0x20, 0x40, 0x10, 0x60},
	dom.TagText:      {0x20, 0x40, 0x10, 0x60},
	dom.TagImage:     {0x50, 0x40, 0x00, 0x60},
	dom.TagSvg:       {0x40, 0x10, 0x40, 0x60},
}

// renderDocument paints the layout boxes of doc in paint order and
// overlays dirty, when given.
func renderDocument(doc *ggdom.Document, dirty *layout.Area) *image.RGBA {
	vp := doc.Viewport()
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(vp.Width)), int(math.Ceil(vp.Height))))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	tree := doc.Tree()
	for _, l := range doc.Layers().Layers() {
		for _, id := range doc.Layers().Members(l) {
			n, ok := doc.Layout().Get(id)
			if !ok {
				continue
			}
			typ, _ := tree.Type(id)
			area := n.VisibleArea()
			fillArea(img, area, tagFill[typ.Tag])
			strokeArea(img, area, outline)
		}
	}
	if dirty != nil {
		fillArea(img, *dirty, dirtyFill)
	}
	return img
}

// fillArea rasterizes a with anti-aliased edges.
func fillArea(img *image.RGBA, a layout.Area, c color.RGBA) {
	if a.IsEmpty() {
		return
	}
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	r.MoveTo(float32(a.MinX()), float32(a.MinY()))
	r.LineTo(float32(a.MaxX()), float32(a.MinY()))
	r.LineTo(float32(a.MaxX()), float32(a.MaxY()))
	r.LineTo(float32(a.MinX()), float32(a.MaxY()))
	r.ClosePath()
	r.Draw(img, b, image.NewUniform(c), image.Point{})
}

// strokeArea draws a one pixel outline inside a.
func strokeArea(img *image.RGBA, a layout.Area, c color.RGBA) {
	rect := image.Rect(int(a.MinX()), int(a.MinY()), int(math.Ceil(a.MaxX())), int(math.Ceil(a.MaxY())))
	if rect.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1),
		image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y),
		image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
	}
}

func savePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create image file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("unable to encode image: %w", err)
	}
	return nil
}
