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

var aspectScenes = []Scene{
	{
		Name:   "square",
		Width:  600,
		Height: 600,
	},
	{
		Name:   "tall",
		Width:  400,
		Height: 800,
		Data:   Parabola(),
	},
	{
		Name:   "wide",
		Width:  1200,
		Height: 300,
	},
	{
		// no whole y-tick fits; only the background is drawn
		Name:   "very_wide",
		Width:  2000,
		Height: 100,
	},
	{
		Name:   "small",
		Width:  64,
		Height: 64,
	},
}
