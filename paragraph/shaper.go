// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paragraph

import (
	"bytes"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggdom/internal/cache"
)

// DefaultCacheSize is the number of shaped paragraphs kept by a Shaper.
const DefaultCacheSize = 1024

// Glyph is a positioned glyph of a shaped run.
type Glyph struct {
	ID      uint32
	Cluster int // rune index into the paragraph text
	X, Y    float64
	Advance float64
}

// Run is a shaped single-direction segment.
type Run struct {
	Direction di.Direction
	Script    language.Script
	Glyphs    []Glyph
	Width     float64
}

// Paragraph is shaped text ready to be painted.
// A Paragraph is immutable once returned by a Shaper.
type Paragraph struct {
	Text    string
	Size    float64
	Runs    []Run
	Width   float64
	Ascent  float64
	Descent float64
	Gap     float64
}

// Height returns the line height of the paragraph.
func (p *Paragraph) Height() float64 {
	return p.Ascent + p.Descent + p.Gap
}

// Shaper shapes text with HarfBuzz through go-text/typesetting.
//
// Shaper is safe for concurrent use: the parsed font.Font is read-only,
// a font.Face is created per call and HarfbuzzShaper instances are pooled.
type Shaper struct {
	font  *font.Font
	pool  sync.Pool
	cache *cache.LRU[ShapingKey, *Paragraph]
}

// NewShaper parses ttf and creates a Shaper caching up to cacheSize
// paragraphs. A cacheSize <= 0 uses DefaultCacheSize.
func NewShaper(ttf []byte, cacheSize int) (*Shaper, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Shaper{
		font: face.Font,
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		cache: cache.New[ShapingKey, *Paragraph](cacheSize),
	}, nil
}

// DefaultShaper creates a Shaper using the Go Regular font.
func DefaultShaper() (*Shaper, error) {
	return NewShaper(goregular.TTF, DefaultCacheSize)
}

// Shape returns text shaped at size (pixels per em).
// Identical requests are answered from the cache. A cached paragraph whose
// text differs from text shares only the key hash and is replaced.
func (s *Shaper) Shape(text string, size float64) *Paragraph {
	key := NewShapingKey(text, size)
	if p, ok := s.cache.Get(key); ok && p.Text == text {
		return p
	}
	p := s.shape(text, size)
	s.cache.Set(key, p)
	return p
}

// CacheStats returns the shaping cache counters.
func (s *Shaper) CacheStats() cache.Stats {
	return s.cache.Stats()
}

func (s *Shaper) shape(text string, size float64) *Paragraph {
	p := &Paragraph{Text: text, Size: size}
	runes := []rune(text)
	if len(runes) == 0 {
		return p
	}

	face := font.NewFace(s.font)
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	for _, seg := range segmentRunes(text, runes) {
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  seg.Start,
			RunEnd:    seg.End,
			Direction: seg.Direction,
			Face:      face,
			Size:      floatToFixed(size),
			Script:    seg.Script,
			Language:  language.NewLanguage("en"),
		})
		run := Run{
			Direction: seg.Direction,
			Script:    seg.Script,
			Glyphs:    convertGlyphs(out.Glyphs, p.Width),
			Width:     fixedToFloat(out.Advance),
		}
		p.Runs = append(p.Runs, run)
		p.Width += run.Width
		p.Ascent = math.Max(p.Ascent, fixedToFloat(out.LineBounds.Ascent))
		p.Descent = math.Max(p.Descent, math.Abs(fixedToFloat(out.LineBounds.Descent)))
		p.Gap = math.Max(p.Gap, fixedToFloat(out.LineBounds.Gap))
	}
	return p
}

// convertGlyphs positions glyphs on a horizontal line starting at x.
func convertGlyphs(glyphs []shaping.Glyph, x float64) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		out[i] = Glyph{
			ID:      uint32(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return out
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
