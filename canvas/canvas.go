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

// Package canvas defines the drawing surface used to render a coordinate
// plane, together with a recorder which stores the drawing calls as typed
// commands.
//
// All positions are in pixels, with the origin in the top-left corner and
// the y-axis pointing down.
package canvas

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Canvas is the set of drawing primitives needed to render a plane.
type Canvas interface {
	// DrawLine draws a straight line of the given thickness from p0 to p1.
	DrawLine(p0, p1 vec.Vec2, thickness float64, c color.NRGBA)

	// DrawFilledRect fills the axis-aligned rectangle with top-left corner
	// pos and the given size.
	DrawFilledRect(pos, size vec.Vec2, c color.NRGBA)

	// DrawText draws text with its bounding box's top-left corner at pos.
	// The size is the font size in pixels.
	DrawText(text string, pos vec.Vec2, size float64, c color.NRGBA)

	// DrawCircle draws a filled disc.
	DrawCircle(center vec.Vec2, radius float64, c color.NRGBA)

	Measurer
}

// Measurer computes the extent of rendered text.
type Measurer interface {
	// MeasureText returns the width and height of the bounding box used
	// by DrawText.
	MeasureText(text string, size float64) vec.Vec2
}
