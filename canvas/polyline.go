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
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// PolylineDrawer is implemented by canvases which can stroke a connected
// polyline in one call, with joins between the segments.
type PolylineDrawer interface {
	DrawPolyline(pts []vec.Vec2, thickness float64, c color.NRGBA)
}

// DrawPolyline strokes the open polyline through pts on c.
// If c does not implement [PolylineDrawer], the polyline is drawn as
// separate line segments.  Fewer than two points draw nothing.
func DrawPolyline(c Canvas, pts []vec.Vec2, thickness float64, col color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	if pd, ok := c.(PolylineDrawer); ok {
		pd.DrawPolyline(pts, thickness, col)
		return
	}
	for i := 1; i < len(pts); i++ {
		c.DrawLine(pts[i-1], pts[i], thickness, col)
	}
}
