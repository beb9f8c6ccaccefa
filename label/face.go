// seehuhn.de/go/plane - an interactive coordinate plane
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package label measures and outlines the text of tick labels.
//
// A [Face] wraps a parsed TrueType font. Sizes are given in pixels; all
// lengths returned are in pixels as well.
package label

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plane/canvas"
)

// Face gives access to the metrics and glyph outlines of a font.
// All methods are safe for concurrent use.
type Face struct {
	font *sfnt.Font

	buffers sync.Pool // of *sfnt.Buffer

	mu     sync.Mutex
	xfaces map[float64]font.Face
}

// New parses a TrueType or OpenType font.
func New(data []byte) (*Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Face{
		font: f,
		buffers: sync.Pool{
			New: func() any { return new(sfnt.Buffer) },
		},
		xfaces: make(map[float64]font.Face),
	}, nil
}

// Default returns the face for the Go Regular font.
var Default = sync.OnceValue(func() *Face {
	f, err := New(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
})

// MeasureText returns the advance width of text, including kerning, and
// the height of the line box (ascent plus descent).
func (f *Face) MeasureText(text string, size float64) vec.Vec2 {
	if !(size > 0) {
		return vec.Vec2{}
	}
	buf := f.buffers.Get().(*sfnt.Buffer)
	defer f.buffers.Put(buf)

	ppem := toFixed(size)
	m, err := f.font.Metrics(buf, ppem, font.HintingNone)
	if err != nil {
		return vec.Vec2{}
	}

	var width fixed.Int26_6
	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range text {
		gid, err := f.font.GlyphIndex(buf, r)
		if err != nil {
			continue
		}
		if hasPrev {
			width += f.kern(buf, prev, gid, ppem)
		}
		adv, err := f.font.GlyphAdvance(buf, gid, ppem, font.HintingNone)
		if err == nil {
			width += adv
		}
		prev, hasPrev = gid, true
	}
	return vec.Vec2{X: fromFixed(width), Y: fromFixed(m.Ascent + m.Descent)}
}

// Ascent returns the distance from the top of the line box to the
// baseline.
func (f *Face) Ascent(size float64) float64 {
	buf := f.buffers.Get().(*sfnt.Buffer)
	defer f.buffers.Put(buf)

	m, err := f.font.Metrics(buf, toFixed(size), font.HintingNone)
	if err != nil {
		return size
	}
	return fromFixed(m.Ascent)
}

// Outline returns the glyph outlines of text, laid out so that the top-left
// corner of the line box is at topLeft. The y-axis points down, so the
// result can be filled directly in pixel coordinates.
// All contours are closed.
func (f *Face) Outline(text string, size float64, topLeft vec.Vec2) path.Path {
	res := &canvas.Builder{}
	f.appendOutline(res, text, size, topLeft)
	return res.Path()
}

func (f *Face) appendOutline(res *canvas.Builder, text string, size float64, topLeft vec.Vec2) {
	if !(size > 0) {
		return
	}
	buf := f.buffers.Get().(*sfnt.Buffer)
	defer f.buffers.Put(buf)

	ppem := toFixed(size)
	m, err := f.font.Metrics(buf, ppem, font.HintingNone)
	if err != nil {
		return
	}
	pen := vec.Vec2{X: topLeft.X, Y: topLeft.Y + fromFixed(m.Ascent)}

	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range text {
		gid, err := f.font.GlyphIndex(buf, r)
		if err != nil {
			continue
		}
		if hasPrev {
			pen.X += fromFixed(f.kern(buf, prev, gid, ppem))
		}
		segs, err := f.font.LoadGlyph(buf, gid, ppem, nil)
		if err == nil {
			appendSegments(res, segs, pen)
		}
		if adv, err := f.font.GlyphAdvance(buf, gid, ppem, font.HintingNone); err == nil {
			pen.X += fromFixed(adv)
		}
		prev, hasPrev = gid, true
	}
}

// XFace returns a [font.Face] for drawing text at the given pixel size
// with golang.org/x/image/font based renderers. Faces are cached per size.
// The returned face itself is not safe for concurrent use.
func (f *Face) XFace(size float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if xf, ok := f.xfaces[size]; ok {
		return xf, nil
	}
	xf, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face at %gpx: %w", size, err)
	}
	f.xfaces[size] = xf
	return xf, nil
}

func (f *Face) kern(buf *sfnt.Buffer, a, b sfnt.GlyphIndex, ppem fixed.Int26_6) fixed.Int26_6 {
	k, err := f.font.Kern(buf, a, b, ppem, font.HintingNone)
	if err != nil {
		// fonts without kerning data report sfnt.ErrNotFound
		return 0
	}
	return k
}

func appendSegments(p *canvas.Builder, segs sfnt.Segments, pen vec.Vec2) {
	pt := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: pen.X + fromFixed(q.X), Y: pen.Y + fromFixed(q.Y)}
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	if open {
		p.Close()
	}
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x*64 + 0.5)
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
