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

package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/plane/canvas"
	"seehuhn.de/go/plane/label"
)

// Image is a [canvas.Canvas] which draws into an RGBA image.
// Colours are composited with the "source over" operator.
type Image struct {
	RGBA *image.RGBA

	face *label.Face
	r    *Rasteriser

	col   color.NRGBA
	blend EmitFunc
	pts   [2]vec.Vec2
}

var _ canvas.Canvas = (*Image)(nil)
var _ canvas.PolylineDrawer = (*Image)(nil)

// NewImage allocates a transparent image of the given size.
// If face is nil, [label.Default] is used for text.
func NewImage(width, height int, face *label.Face) *Image {
	if face == nil {
		face = label.Default()
	}
	img := &Image{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
		face: face,
		r: NewRasteriser(rect.Rect{
			URx: float64(width),
			URy: float64(height),
		}),
	}
	img.blend = img.composite
	return img
}

// Clear fills the whole image with c.
func (img *Image) Clear(c color.NRGBA) {
	pm := color.RGBAModel.Convert(c).(color.RGBA)
	pix := img.RGBA.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = pm.R
		pix[i+1] = pm.G
		pix[i+2] = pm.B
		pix[i+3] = pm.A
	}
}

func (img *Image) DrawLine(p0, p1 vec.Vec2, thickness float64, c color.NRGBA) {
	img.col = c
	img.r.Width = thickness
	img.r.Cap = graphics.LineCapButt
	img.pts[0], img.pts[1] = p0, p1
	img.r.Stroke(img.pts[:], img.blend)
}

// DrawPolyline strokes the open polyline through pts, with round joins.
func (img *Image) DrawPolyline(pts []vec.Vec2, thickness float64, c color.NRGBA) {
	img.col = c
	img.r.Width = thickness
	img.r.Cap = graphics.LineCapRound
	img.r.Stroke(pts, img.blend)
}

func (img *Image) DrawFilledRect(pos, size vec.Vec2, c color.NRGBA) {
	img.col = c
	img.r.FillNonZero(canvas.RectPath(pos, size), img.blend)
}

func (img *Image) DrawText(text string, pos vec.Vec2, size float64, c color.NRGBA) {
	img.col = c
	img.r.FillNonZero(img.face.Outline(text, size, pos), img.blend)
}

func (img *Image) DrawCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	img.col = c
	img.r.FillNonZero(canvas.CirclePath(center, radius), img.blend)
}

func (img *Image) MeasureText(text string, size float64) vec.Vec2 {
	return img.face.MeasureText(text, size)
}

// composite blends the current colour into one row of pixels, scaled by
// the coverage values.
func (img *Image) composite(y, xMin int, coverage []float32) {
	c := img.col
	if c.A == 0 {
		return
	}
	a := float32(c.A) / 255
	row := img.RGBA.Pix[img.RGBA.PixOffset(xMin, y):]
	for i, cov := range coverage {
		sa := cov * a
		if sa <= 0 {
			continue
		}
		keep := 1 - sa
		p := row[4*i : 4*i+4 : 4*i+4]
		p[0] = blend(c.R, p[0], sa, keep)
		p[1] = blend(c.G, p[1], sa, keep)
		p[2] = blend(c.B, p[2], sa, keep)
		p[3] = blend(255, p[3], sa, keep)
	}
}

// blend computes src·sa + dst·keep for premultiplied 8-bit channels.
func blend(src, dst uint8, sa, keep float32) uint8 {
	v := float32(src)*sa + float32(dst)*keep + 0.5
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
