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

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Mode selects how a [Dataset] is drawn.
type Mode int

const (
	// Markers draws every sample as a filled circle.
	Markers Mode = iota

	// Polyline connects consecutive samples by straight lines.
	Polyline
)

func (m Mode) String() string {
	switch m {
	case Markers:
		return "markers"
	case Polyline:
		return "polyline"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the output of [Mode.String] back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "markers", "points":
		return Markers, nil
	case "polyline", "line":
		return Polyline, nil
	}
	return 0, fmt.Errorf("unknown data mode %q", s)
}

// Dataset is a sequence of samples in world coordinates.
// The renderer only reads it.
type Dataset struct {
	Points []vec.Vec2
	Mode   Mode
}
