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

package scenes

import "seehuhn.de/go/geom/vec"

var panScenes = []Scene{
	{
		Name:   "right",
		Width:  800,
		Height: 600,
		Pan:    repeat(vec.Vec2{X: 20}, 10),
		Data:   Parabola(),
	},
	{
		Name:   "diagonal",
		Width:  800,
		Height: 600,
		Pan:    []vec.Vec2{{X: -30, Y: 40}, {X: -30, Y: 40}, {X: -40, Y: 60}},
		Data:   Parabola(),
	},
	{
		// both axes are off screen
		Name:   "far_away",
		Width:  800,
		Height: 600,
		Pan:    []vec.Vec2{{X: 5000, Y: -7000}},
	},
	{
		Name:   "zoomed",
		Width:  800,
		Height: 600,
		Zoom:   repeat(-1.0, 7),
		Pan:    []vec.Vec2{{X: -150, Y: 200}},
		Data:   Parabola(),
	},
}
