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

package plane

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Transform returns the matrix mapping world coordinates to pixels for the
// given viewport. The y-axis is flipped, so that world-up is screen-up.
//
// This is the only place where the pixel size of a world unit is computed;
// gridlines, labels and data all go through it.
func (p *Plane) Transform(viewport rect.Rect) matrix.Matrix {
	s := p.TickSpacing(viewport)
	return matrix.Matrix{s.X, 0, 0, -s.Y, p.origin.X, p.origin.Y}
}

// TickSpacing returns the distance in pixels between adjacent ticks on the
// x- and y-axis. An axis without ticks uses the spacing of the other one,
// so that the result is always finite.
func (p *Plane) TickSpacing(viewport rect.Rect) vec.Vec2 {
	total := p.TotalTicks()
	var s vec.Vec2
	if total.X > 0 {
		s.X = viewport.Dx() / total.X
	}
	if total.Y > 0 {
		s.Y = viewport.Dy() / total.Y
	}
	if total.X <= 0 {
		s.X = s.Y
	}
	if total.Y <= 0 {
		s.Y = s.X
	}
	return s
}

// WorldToScreen maps a point in world coordinates to pixel coordinates.
func (p *Plane) WorldToScreen(viewport rect.Rect, pt vec.Vec2) vec.Vec2 {
	x, y := p.Transform(viewport).Apply(pt.X, pt.Y)
	return vec.Vec2{X: x, Y: y}
}

// ScreenToWorld maps a pixel position to world coordinates. It inverts
// the matrix used by [Plane.WorldToScreen]. For viewports without area the
// mapping is singular and the zero vector is returned.
func (p *Plane) ScreenToWorld(viewport rect.Rect, pt vec.Vec2) vec.Vec2 {
	inv, ok := invert(p.Transform(viewport))
	if !ok {
		return vec.Vec2{}
	}
	x, y := inv.Apply(pt.X, pt.Y)
	return vec.Vec2{X: x, Y: y}
}

// VisibleRange returns the world bounds of the viewport corners. Unlike
// [Plane.Range] this takes panning into account.
func (p *Plane) VisibleRange(viewport rect.Rect) Range {
	if !p.Renderable(viewport) {
		return Range{}
	}
	topLeft := p.ScreenToWorld(viewport, vec.Vec2{X: viewport.LLx, Y: viewport.LLy})
	bottomRight := p.ScreenToWorld(viewport, vec.Vec2{X: viewport.URx, Y: viewport.URy})
	return Range{
		MinX: topLeft.X,
		MaxX: bottomRight.X,
		MinY: bottomRight.Y,
		MaxY: topLeft.Y,
	}
}

// invert returns the inverse of m, or false if m is singular.
// [matrix.Matrix.Inv] panics in that case.
func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || !finite(det) {
		return matrix.Matrix{}, false
	}
	return m.Inv(), true
}
