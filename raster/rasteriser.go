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

// Package raster converts filled paths and stroked polylines into
// anti-aliased pixel coverage, and implements a drawing canvas on top of
// an in-memory image.
//
// Coverage is computed exactly from the signed area of the shape inside
// each pixel; there is no supersampling.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/plane/canvas"
)

// EmitFunc receives the coverage of one pixel row, starting at column xMin.
// The coverage slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser converts paths to pixel coverage.
// One instance is reused for many paths; internal buffers are kept
// between calls.
type Rasteriser struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates, with
	// integer-aligned corners.
	Clip rect.Rect

	// Flatness is the maximal distance in device pixels between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the line width for Stroke, in user space units.
	Width float64

	// Cap is the shape of stroke end points.
	Cap graphics.LineCapStyle

	edges     []edge
	active    []int
	cover     []float32
	area      []float32
	crossings []float64
	outline   canvas.Builder

	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasteriser returns a rasteriser with the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is retained.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
}

// FillNonZero rasterises p using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) FillNonZero(p path.Path, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.addPath(p)
	r.scan(emit)
}

func (r *Rasteriser) addPath(p path.Path) {
	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuad(current, pts[0], pts[1])
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}
}

// deviceLength returns the length of v after applying the linear part of
// the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic uses Wang's formula to choose the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if k := math.Sqrt(3 * dev / (4 * r.Flatness)); k > 1 {
		n = int(math.Ceil(k))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// addEdge transforms a user space segment to device space and records it.
// Horizontal segments do not contribute coverage and are dropped.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold || math.IsNaN(dy) {
		return
	}

	if len(r.edges) == 0 {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
	} else {
		r.devXMin = min(r.devXMin, x0, x1)
		r.devXMax = max(r.devXMax, x0, x1)
		r.devYMin = min(r.devYMin, y0, y1)
		r.devYMax = max(r.devYMax, y0, y1)
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})
}

// scan walks the scanlines of the edge bounding box, keeping a list of
// the edges which intersect the current row.
func (r *Rasteriser) scan(emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if cov, offs := trimZeros(r.cover); cov != nil {
			emit(y, xMin+offs, cov)
		}
	}
}

// Coverage model: for every pixel of the row, cover holds the signed
// height of the edge pieces crossing the pixel, and area holds the part
// of that height which falls inside the pixel itself (weighted by how far
// right of the edge the pixel extends). The coverage of pixel i is the
// running sum of cover over the pixels left of i, plus area[i].

// accumulate adds the part of e inside scanline y to the row buffers.
// It reports whether anything was added.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bottom := min(float64(y+1), e.yMax())
	if bottom <= top {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bottom-e.y0)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	switch {
	case right < xMin:
		// the whole piece lies left of the buffer
		h := sign * float32(bottom-top)
		r.cover[0] += h
		r.area[0] += h
		return true
	case left >= xMax:
		return false
	case left == right:
		r.addPiece(e, top, bottom, sign, xMin, xMax)
		return true
	}

	// split the piece where it crosses vertical pixel boundaries
	r.crossings = append(r.crossings[:0], top, bottom)
	dydx := 1 / e.dxdy
	for x := left + 1; x <= right; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > top && yx < bottom {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := 1; i < len(r.crossings); i++ {
		if r.crossings[i] > r.crossings[i-1] {
			r.addPiece(e, r.crossings[i-1], r.crossings[i], sign, xMin, xMax)
		}
	}
	return true
}

// addPiece adds the part of e between y-values top and bottom, which must
// lie within a single pixel column.
func (r *Rasteriser) addPiece(e *edge, top, bottom float64, sign float32, xMin, xMax int) {
	h := sign * float32(bottom-top)
	xm := e.x0 + e.dxdy*((top+bottom)/2-e.y0)
	pix := int(math.Floor(xm))
	switch {
	case pix < xMin:
		r.cover[0] += h
		r.area[0] += h
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-(xm-float64(pix)))
	}
}

// integrateNonZero turns the accumulated row buffers into coverage values
// in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	horizontalEdgeThreshold = 1e-10

	zeroLengthThreshold = 1e-10
)
