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
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Command is one recorded drawing call.
type Command interface {
	// Apply issues the drawing call on c.
	Apply(c Canvas)
}

// Line is a recorded [Canvas.DrawLine] call.
type Line struct {
	P0, P1    vec.Vec2
	Thickness float64
	Color     color.NRGBA
}

// FilledRect is a recorded [Canvas.DrawFilledRect] call.
type FilledRect struct {
	Pos, Size vec.Vec2
	Color     color.NRGBA
}

// Text is a recorded [Canvas.DrawText] call.
type Text struct {
	Text  string
	Pos   vec.Vec2
	Size  float64
	Color color.NRGBA
}

// Circle is a recorded [Canvas.DrawCircle] call.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Color  color.NRGBA
}

func (l Line) Apply(c Canvas)       { c.DrawLine(l.P0, l.P1, l.Thickness, l.Color) }
func (r FilledRect) Apply(c Canvas) { c.DrawFilledRect(r.Pos, r.Size, r.Color) }
func (t Text) Apply(c Canvas)       { c.DrawText(t.Text, t.Pos, t.Size, t.Color) }
func (o Circle) Apply(c Canvas)     { c.DrawCircle(o.Center, o.Radius, o.Color) }

func (l Line) String() string {
	return fmt.Sprintf("line %v-%v w=%g", l.P0, l.P1, l.Thickness)
}

func (r FilledRect) String() string {
	return fmt.Sprintf("rect %v+%v", r.Pos, r.Size)
}

func (t Text) String() string {
	return fmt.Sprintf("text %q at %v", t.Text, t.Pos)
}

func (o Circle) String() string {
	return fmt.Sprintf("circle %v r=%g", o.Center, o.Radius)
}
