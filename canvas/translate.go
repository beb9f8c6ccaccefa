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

// Translated returns a canvas which moves all drawing by delta before
// passing it on to c.
func Translated(c Canvas, delta vec.Vec2) Canvas {
	if t, ok := c.(*translated); ok {
		return &translated{Canvas: t.Canvas, delta: t.delta.Add(delta)}
	}
	return &translated{Canvas: c, delta: delta}
}

type translated struct {
	Canvas
	delta vec.Vec2
}

func (t *translated) DrawLine(p0, p1 vec.Vec2, thickness float64, c color.NRGBA) {
	t.Canvas.DrawLine(p0.Add(t.delta), p1.Add(t.delta), thickness, c)
}

func (t *translated) DrawPolyline(pts []vec.Vec2, thickness float64, c color.NRGBA) {
	moved := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		moved[i] = p.Add(t.delta)
	}
	DrawPolyline(t.Canvas, moved, thickness, c)
}

func (t *translated) DrawFilledRect(pos, size vec.Vec2, c color.NRGBA) {
	t.Canvas.DrawFilledRect(pos.Add(t.delta), size, c)
}

func (t *translated) DrawText(text string, pos vec.Vec2, size float64, c color.NRGBA) {
	t.Canvas.DrawText(text, pos.Add(t.delta), size, c)
}

func (t *translated) DrawCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	t.Canvas.DrawCircle(center.Add(t.delta), radius, c)
}
