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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke rasterises the open polyline through pts, using the current
// Width and Cap. Corners are drawn with round joins.
//
// The outline is built from one quadrilateral per segment plus discs for
// the joins and round caps. All pieces share the same orientation, so
// that the nonzero rule fills their union.
func (r *Rasteriser) Stroke(pts []vec.Vec2, emit EmitFunc) {
	d := r.Width / 2
	if !(d > 0) || len(pts) == 0 {
		return
	}
	r.outline.Reset()

	first, last := -1, -1
	for i := 1; i < len(pts); i++ {
		if pts[i].Sub(pts[i-1]).Length() > zeroLengthThreshold {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		r.addDot(pts[0], d)
		r.FillNonZero(r.outline.Path(), emit)
		return
	}

	var prevT vec.Vec2
	havePrev := false
	for i := first; i <= last; i++ {
		a, b := pts[i-1], pts[i]
		ab := b.Sub(a)
		l := ab.Length()
		if l <= zeroLengthThreshold {
			continue
		}
		t := ab.Mul(1 / l)

		if havePrev && t.Dot(prevT) < 1-collinearityThreshold {
			r.addDisc(a, d)
		}
		if r.Cap == graphics.LineCapSquare {
			if i == first {
				a = a.Sub(t.Mul(d))
			}
			if i == last {
				b = b.Add(t.Mul(d))
			}
		}
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.outline.MoveTo(a.Add(n))
		r.outline.LineTo(b.Add(n))
		r.outline.LineTo(b.Sub(n))
		r.outline.LineTo(a.Sub(n))
		r.outline.Close()

		prevT = t
		havePrev = true
	}
	if r.Cap == graphics.LineCapRound {
		r.addDisc(pts[first-1], d)
		r.addDisc(pts[last], d)
	}
	r.FillNonZero(r.outline.Path(), emit)
}

// addDot draws a polyline of zero length. Only round and square caps
// leave a mark.
func (r *Rasteriser) addDot(p vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		r.outline.MoveTo(vec.Vec2{X: p.X - d, Y: p.Y + d})
		r.outline.LineTo(vec.Vec2{X: p.X + d, Y: p.Y + d})
		r.outline.LineTo(vec.Vec2{X: p.X + d, Y: p.Y - d})
		r.outline.LineTo(vec.Vec2{X: p.X - d, Y: p.Y - d})
		r.outline.Close()
	}
}

// addDisc appends a polygon approximating a circle, traversed in the same
// direction as the segment quadrilaterals.
func (r *Rasteriser) addDisc(center vec.Vec2, radius float64) {
	dev := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}),
	)

	// A chord spanning the angle θ deviates from the circle by
	// r(1-cos(θ/2)); choose θ so that this equals the flatness.
	n := 4
	if dev > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/dev)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	r.outline.MoveTo(vec.Vec2{X: center.X + radius, Y: center.Y})
	for i := 1; i < n; i++ {
		phi := -2 * math.Pi * float64(i) / float64(n)
		r.outline.LineTo(vec.Vec2{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y + radius*math.Sin(phi),
		})
	}
	r.outline.Close()
}

// collinearityThreshold detects consecutive segments which need no join.
const collinearityThreshold = 1e-6
