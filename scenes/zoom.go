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

var zoomScenes = []Scene{
	{
		// ten ticks per quadrant become 20, stride 2
		Name:   "out_5",
		Width:  800,
		Height: 600,
		Zoom:   repeat(-1.0, 5),
		Data:   Parabola(),
	},
	{
		// 30 ticks, stride 3
		Name:   "out_10",
		Width:  800,
		Height: 600,
		Zoom:   repeat(-1.0, 10),
		Data:   Parabola(),
	},
	{
		// clamped at 50 ticks, stride 4
		Name:   "max",
		Width:  800,
		Height: 600,
		Zoom:   repeat(-1.0, 40),
		Data:   Parabola(),
	},
	{
		// zooming in past the minimum has no effect
		Name:   "in_clamped",
		Width:  800,
		Height: 600,
		Zoom:   repeat(1.0, 3),
	},
	{
		Name:   "out_and_back",
		Width:  800,
		Height: 600,
		Zoom:   []float64{-1, -1, -1, -1, 1, 1, -0.5, 0, 0.25},
	},
}
