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

package grid

import "image/color"

// Style holds the colours and sizes used by a [Renderer].
// Lengths are in pixels.
type Style struct {
	Background color.NRGBA // behind tick labels
	Grid       color.NRGBA
	Axis       color.NRGBA
	Label      color.NRGBA
	Data       color.NRGBA

	GridWidth   float64
	AxisWidth   float64
	LabelSize   float64
	LabelOffset float64 // distance between an axis and its labels
	PointRadius float64
	LineWidth   float64 // for polyline data
}

// DefaultStyle returns light gridlines on a dark background, with red
// data points.
func DefaultStyle() Style {
	return Style{
		Background: color.NRGBA{R: 25, G: 25, B: 25, A: 255},
		Grid:       color.NRGBA{R: 128, G: 128, B: 128, A: 125},
		Axis:       color.NRGBA{R: 245, G: 245, B: 245, A: 255},
		Label:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Data:       color.NRGBA{R: 230, G: 41, B: 55, A: 255},

		GridWidth:   1,
		AxisWidth:   3,
		LabelSize:   20,
		LabelOffset: 5,
		PointRadius: 3,
		LineWidth:   2,
	}
}
