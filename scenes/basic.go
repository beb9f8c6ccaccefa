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

import (
	"math"

	"seehuhn.de/go/plane/grid"
)

var basicScenes = []Scene{
	{
		Name:   "empty",
		Width:  800,
		Height: 600,
	},
	{
		Name:   "parabola",
		Width:  800,
		Height: 600,
		Data:   Parabola(),
	},
	{
		Name:   "sine",
		Width:  800,
		Height: 600,
		Data: &grid.Dataset{
			Points: Sample(func(x float64) float64 { return 5 * math.Sin(x) }, -10, 10, 400),
			Mode:   grid.Polyline,
		},
	},
}

// Parabola returns 500 samples of 5x²+3x+2 on [-10, 10), drawn as
// markers. This is the dataset shown by the viewer when no other data is
// configured.
func Parabola() *grid.Dataset {
	return &grid.Dataset{
		Points: Sample(func(x float64) float64 { return 5*x*x + 3*x + 2 }, -10, 10, 500),
		Mode:   grid.Markers,
	}
}
