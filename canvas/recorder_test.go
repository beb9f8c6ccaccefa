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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"
)

var red = color.NRGBA{R: 230, G: 41, B: 55, A: 255}

func TestRecorderOrder(t *testing.T) {
	r := NewRecorder(nil)
	r.DrawLine(vec.Vec2{X: 1}, vec.Vec2{X: 2}, 3, red)
	r.DrawFilledRect(vec.Vec2{}, vec.Vec2{X: 4, Y: 5}, red)
	r.DrawText("12", vec.Vec2{X: 7}, 20, red)
	r.DrawCircle(vec.Vec2{Y: 9}, 3, red)

	require.Len(t, r.Commands, 4)
	assert.IsType(t, Line{}, r.Commands[0])
	assert.IsType(t, FilledRect{}, r.Commands[1])
	assert.IsType(t, Text{}, r.Commands[2])
	assert.IsType(t, Circle{}, r.Commands[3])
	assert.Equal(t, "12", r.Commands[2].(Text).Text)

	r.Reset()
	assert.Empty(t, r.Commands)
}

func TestReplay(t *testing.T) {
	src := NewRecorder(nil)
	src.DrawLine(vec.Vec2{X: 1}, vec.Vec2{X: 2}, 3, red)
	src.DrawText("-4", vec.Vec2{X: 7}, 20, red)
	src.DrawCircle(vec.Vec2{Y: 9}, 3, red)

	dst := NewRecorder(nil)
	src.Replay(dst)
	assert.Equal(t, src.Commands, dst.Commands)
}

func TestFixedMeasurer(t *testing.T) {
	r := NewRecorder(nil)
	assert.Equal(t, vec.Vec2{X: 20, Y: 20}, r.MeasureText("-1", 20))
	assert.Equal(t, vec.Vec2{X: 0, Y: 10}, r.MeasureText("", 10))

	wide := FixedMeasurer{Advance: 1}
	assert.Equal(t, vec.Vec2{X: 30, Y: 10}, wide.MeasureText("abc", 10))
}

func TestTranslated(t *testing.T) {
	rec := NewRecorder(nil)
	c := Translated(Translated(rec, vec.Vec2{X: -10}), vec.Vec2{Y: 5})

	c.DrawLine(vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 20, Y: 0}, 1, red)
	c.DrawFilledRect(vec.Vec2{X: 10}, vec.Vec2{X: 3, Y: 3}, red)
	c.DrawText("x", vec.Vec2{X: 10}, 20, red)
	c.DrawCircle(vec.Vec2{X: 10}, 2, red)

	require.Len(t, rec.Commands, 4)
	assert.Equal(t, vec.Vec2{X: 0, Y: 5}, rec.Commands[0].(Line).P0)
	assert.Equal(t, vec.Vec2{X: 10, Y: 5}, rec.Commands[0].(Line).P1)
	assert.Equal(t, vec.Vec2{X: 3, Y: 3}, rec.Commands[1].(FilledRect).Size)
	assert.Equal(t, vec.Vec2{X: 0, Y: 5}, rec.Commands[2].(Text).Pos)
	assert.Equal(t, vec.Vec2{X: 0, Y: 5}, rec.Commands[3].(Circle).Center)
	assert.Equal(t, vec.Vec2{X: 10, Y: 10}, c.MeasureText("x", 20))
}

type polylineCanvas struct {
	*Recorder
	runs [][]vec.Vec2
}

func (p *polylineCanvas) DrawPolyline(pts []vec.Vec2, thickness float64, c color.NRGBA) {
	p.runs = append(p.runs, append([]vec.Vec2(nil), pts...))
}

func TestDrawPolyline(t *testing.T) {
	pts := []vec.Vec2{{X: 0}, {X: 1, Y: 1}, {X: 2}}

	// segment-wise fallback
	rec := NewRecorder(nil)
	DrawPolyline(rec, pts, 2, red)
	require.Len(t, rec.Commands, 2)
	assert.Equal(t, Line{P0: pts[1], P1: pts[2], Thickness: 2, Color: red}, rec.Commands[1])

	DrawPolyline(rec, pts[:1], 2, red)
	assert.Len(t, rec.Commands, 2)

	// one call, shifted by the translation
	pc := &polylineCanvas{Recorder: NewRecorder(nil)}
	DrawPolyline(Translated(pc, vec.Vec2{X: 10}), pts, 2, red)
	assert.Empty(t, pc.Commands)
	require.Len(t, pc.runs, 1)
	assert.Equal(t, []vec.Vec2{{X: 10}, {X: 11, Y: 1}, {X: 12}}, pc.runs[0])
}
