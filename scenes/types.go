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

// Package scenes holds a table of named views of the coordinate plane.
// Each scene is reached from a freshly constructed plane by a fixed
// sequence of zoom and pan events, and can be exported for visual
// inspection.
package scenes

import (
	"maps"
	"slices"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plane"
	"seehuhn.de/go/plane/grid"
)

// Scene defines a single view.
type Scene struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // viewport width in pixels
	Height int    // viewport height in pixels

	Zoom []float64  // wheel deltas, one frame each
	Pan  []vec.Vec2 // pointer drags, one frame each, after the zoom frames

	Data *grid.Dataset // may be nil
}

// Viewport returns the pixel rectangle of the scene.
func (s Scene) Viewport() rect.Rect {
	return rect.Rect{URx: float64(s.Width), URy: float64(s.Height)}
}

// Build constructs a plane and feeds it the scene's events, one frame per
// event, exactly as the interactive viewer would.
func (s Scene) Build(cfg plane.Config) (*plane.Plane, rect.Rect) {
	vp := s.Viewport()
	p := plane.New(cfg, vp)
	for _, d := range s.Zoom {
		p.Update(plane.Input{WheelDelta: d, Viewport: vp})
	}
	for _, d := range s.Pan {
		p.Update(plane.Input{PointerDelta: d, PointerHeld: true, Viewport: vp})
	}
	return p, vp
}

// Find looks up a scene by its identifier "category/name".
func Find(id string) (string, Scene, bool) {
	category, name, ok := strings.Cut(id, "/")
	if !ok {
		return "", Scene{}, false
	}
	for _, s := range All[category] {
		if s.Name == name {
			return category, s, true
		}
	}
	return "", Scene{}, false
}

// IDs returns the identifiers of all scenes, sorted by category.
func IDs() []string {
	var ids []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			ids = append(ids, category+"/"+s.Name)
		}
	}
	return ids
}

// Sample evaluates f at n equally spaced points, starting at from.
// The end point to is not included.
func Sample(f func(float64) float64, from, to float64, n int) []vec.Vec2 {
	if n <= 0 {
		return nil
	}
	res := make([]vec.Vec2, n)
	step := (to - from) / float64(n)
	for i := range res {
		x := from + float64(i)*step
		res[i] = vec.Vec2{X: x, Y: f(x)}
	}
	return res
}

// repeat returns n copies of v.
func repeat[T any](v T, n int) []T {
	res := make([]T, n)
	for i := range res {
		res[i] = v
	}
	return res
}
