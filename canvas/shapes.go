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

package canvas

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// CirclePath returns a closed circle made of four cubic Bezier segments.
func CirclePath(center vec.Vec2, r float64) path.Path {
	k := r * kappa
	cx, cy := center.X, center.Y
	return (&Builder{}).
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + r, Y: cy}).
		Close().
		Path()
}

// RectPath returns the closed rectangle with top-left corner pos.
func RectPath(pos, size vec.Vec2) path.Path {
	return (&Builder{}).
		MoveTo(pos).
		LineTo(vec.Vec2{X: pos.X + size.X, Y: pos.Y}).
		LineTo(pos.Add(size)).
		LineTo(vec.Vec2{X: pos.X, Y: pos.Y + size.Y}).
		Close().
		Path()
}
