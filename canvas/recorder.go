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

	"seehuhn.de/go/geom/vec"
)

// Recorder is a [Canvas] which stores all drawing calls.
// Text measurement is delegated to a Measurer.
type Recorder struct {
	Commands []Command

	m Measurer
}

// NewRecorder returns an empty recorder. If m is nil, text is measured
// with [FixedMeasurer] defaults.
func NewRecorder(m Measurer) *Recorder {
	if m == nil {
		m = FixedMeasurer{}
	}
	return &Recorder{m: m}
}

func (r *Recorder) DrawLine(p0, p1 vec.Vec2, thickness float64, c color.NRGBA) {
	r.Commands = append(r.Commands, Line{P0: p0, P1: p1, Thickness: thickness, Color: c})
}

func (r *Recorder) DrawFilledRect(pos, size vec.Vec2, c color.NRGBA) {
	r.Commands = append(r.Commands, FilledRect{Pos: pos, Size: size, Color: c})
}

func (r *Recorder) DrawText(text string, pos vec.Vec2, size float64, c color.NRGBA) {
	r.Commands = append(r.Commands, Text{Text: text, Pos: pos, Size: size, Color: c})
}

func (r *Recorder) DrawCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	r.Commands = append(r.Commands, Circle{Center: center, Radius: radius, Color: c})
}

func (r *Recorder) MeasureText(text string, size float64) vec.Vec2 {
	return r.m.MeasureText(text, size)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Replay issues the recorded commands on c, in order.
func (r *Recorder) Replay(c Canvas) {
	Replay(r.Commands, c)
}

// Replay issues the given commands on c, in order.
func Replay(cmds []Command, c Canvas) {
	for _, cmd := range cmds {
		cmd.Apply(c)
	}
}

// FixedMeasurer measures text as if every character had the same advance.
// It is useful in tests, where no font is available.
type FixedMeasurer struct {
	// Advance is the width of a character as a fraction of the font size.
	// Zero means 0.5.
	Advance float64
}

func (f FixedMeasurer) MeasureText(text string, size float64) vec.Vec2 {
	adv := f.Advance
	if adv == 0 {
		adv = 0.5
	}
	n := 0
	for range text {
		n++
	}
	return vec.Vec2{X: float64(n) * adv * size, Y: size}
}
