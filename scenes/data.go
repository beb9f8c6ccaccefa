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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plane/grid"
)

var dataScenes = []Scene{
	{
		Name:   "cubic_polyline",
		Width:  800,
		Height: 600,
		Data: &grid.Dataset{
			Points: Sample(func(x float64) float64 { return x*x*x/20 - x }, -10, 10, 200),
			Mode:   grid.Polyline,
		},
	},
	{
		// the sample at the pole is NaN, which splits the line
		Name:   "hyperbola_gap",
		Width:  800,
		Height: 600,
		Data: &grid.Dataset{
			Points: Sample(hyperbola, -10, 10, 100),
			Mode:   grid.Polyline,
		},
	},
	{
		Name:   "spiral_markers",
		Width:  800,
		Height: 600,
		Data:   &grid.Dataset{Points: spiral(120), Mode: grid.Markers},
	},
	{
		Name:   "spiral_polyline",
		Width:  800,
		Height: 600,
		Data:   &grid.Dataset{Points: spiral(240), Mode: grid.Polyline},
	},
}

func hyperbola(x float64) float64 {
	if math.Abs(x) < 1e-9 {
		return math.NaN()
	}
	return 4 / x
}

// spiral returns n points on an Archimedean spiral, which leaves the
// default view after about three turns.
func spiral(n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range res {
		phi := float64(i) * 0.15
		r := phi / 2
		res[i] = vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
	}
	return res
}
