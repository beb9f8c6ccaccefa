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

// Package pdfout draws coordinate planes onto single-page PDF files.
//
// Pages use pixel coordinates with the origin in the top-left corner; one
// pixel is one PDF point. Colours are written in the DeviceRGB colour
// space, with translucent colours mixed with the page background.
package pdfout

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/plane/canvas"
	"seehuhn.de/go/plane/export"
	"seehuhn.de/go/plane/label"
)

func init() {
	export.Register("pdf", func(fname string, width, height int, opts export.Options) (export.Backend, error) {
		return Create(fname, width, height, opts.Background, opts.Face)
	})
}

// Page is a [canvas.Canvas] writing to a PDF file.
type Page struct {
	page *document.Page
	face *label.Face
	bg   color.NRGBA
}

var _ canvas.Canvas = (*Page)(nil)
var _ canvas.PolylineDrawer = (*Page)(nil)

// Create starts a new PDF file with a single page of the given size,
// filled with the background colour.
// If face is nil, [label.Default] is used.
func Create(fname string, width, height int, bg color.NRGBA, face *label.Face) (*Page, error) {
	if face == nil {
		face = label.Default()
	}
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	bg.A = 255
	p := &Page{page: page, face: face, bg: bg}
	page.SetFillColor(p.rgb(bg))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	return p, nil
}

// Close writes the PDF file.
func (p *Page) Close() error {
	return p.page.Close()
}

func (p *Page) DrawLine(p0, p1 vec.Vec2, thickness float64, c color.NRGBA) {
	if !(thickness > 0) || c.A == 0 {
		return
	}
	p.page.SetStrokeColor(p.rgb(c))
	p.page.SetLineWidth(thickness)
	p.page.SetLineCap(graphics.LineCapButt)
	p.page.MoveTo(p0.X, p0.Y)
	p.page.LineTo(p1.X, p1.Y)
	p.page.Stroke()
}

func (p *Page) DrawFilledRect(pos, size vec.Vec2, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	p.page.SetFillColor(p.rgb(c))
	p.page.Rectangle(pos.X, pos.Y, size.X, size.Y)
	p.page.Fill()
}

// DrawPolyline strokes the open polyline through pts with round joins and
// caps.
func (p *Page) DrawPolyline(pts []vec.Vec2, thickness float64, c color.NRGBA) {
	if len(pts) < 2 || !(thickness > 0) || c.A == 0 {
		return
	}
	p.page.SetStrokeColor(p.rgb(c))
	p.page.SetLineWidth(thickness)
	p.page.SetLineCap(graphics.LineCapRound)
	p.page.SetLineJoin(graphics.LineJoinRound)
	p.page.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.page.LineTo(pt.X, pt.Y)
	}
	p.page.Stroke()
}

func (p *Page) DrawText(text string, pos vec.Vec2, size float64, c color.NRGBA) {
	if text == "" || c.A == 0 {
		return
	}
	p.page.SetFillColor(p.rgb(c))
	p.fill(p.face.Outline(text, size, pos))
}

func (p *Page) DrawCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	if !(radius > 0) || c.A == 0 {
		return
	}
	p.page.SetFillColor(p.rgb(c))
	p.fill(canvas.CirclePath(center, radius))
}

func (p *Page) MeasureText(text string, size float64) vec.Vec2 {
	return p.face.MeasureText(text, size)
}

// fill paints the path with the nonzero winding rule.
func (p *Page) fill(d path.Path) {
	for cmd, pts := range d.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			p.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			p.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.page.ClosePath()
		}
	}
	p.page.Fill()
}

// rgb returns c composited over the page background.
func (p *Page) rgb(c color.NRGBA) pdfcolor.DeviceRGB {
	r, g, b := Over(c, p.bg)
	return pdfcolor.DeviceRGB{r, g, b}
}

// Over returns the red, green and blue components, in the range [0, 1],
// of c drawn over the opaque colour bg.
func Over(c, bg color.NRGBA) (r, g, b float64) {
	a := float64(c.A) / 255
	mix := func(fg, bg uint8) float64 {
		return (float64(fg)*a + float64(bg)*(1-a)) / 255
	}
	return mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B)
}
