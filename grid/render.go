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

// Package grid draws a coordinate plane: minor gridlines with numeric tick
// labels, the two major axes, and an optional dataset.
package grid

import (
	"math"
	"strconv"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plane"
	"seehuhn.de/go/plane/canvas"
)

// Renderer issues the drawing calls for one frame.
// A Renderer holds no per-frame state and may be shared between planes.
type Renderer struct {
	Style Style
}

// New returns a renderer using the given style.
func New(style Style) *Renderer {
	return &Renderer{Style: style}
}

// Render draws the plane p into the viewport vp of c.
//
// The drawing order is: vertical gridlines with their labels, horizontal
// gridlines with their labels, the two major axes, and finally the data.
// If the viewport has no area, nothing is drawn and false is returned.
func (r *Renderer) Render(p *plane.Plane, vp rect.Rect, data *Dataset, c canvas.Canvas) bool {
	if !p.Renderable(vp) {
		return false
	}

	origin := p.WorldToScreen(vp, vec.Vec2{})
	r.verticalTicks(p, vp, origin, c)
	r.horizontalTicks(p, vp, origin, c)

	st := &r.Style
	c.DrawLine(vec.Vec2{X: vp.LLx, Y: origin.Y}, vec.Vec2{X: vp.URx, Y: origin.Y}, st.AxisWidth, st.Axis)
	c.DrawLine(vec.Vec2{X: origin.X, Y: vp.LLy}, vec.Vec2{X: origin.X, Y: vp.URy}, st.AxisWidth, st.Axis)

	if data != nil {
		r.drawData(p, vp, data, c)
	}
	return true
}

// verticalTicks draws the gridlines crossing the x-axis.
func (r *Renderer) verticalTicks(p *plane.Plane, vp rect.Rect, origin vec.Vec2, c canvas.Canvas) {
	st := &r.Style
	n := p.TicksPerQuadrant().X
	bound := p.Range().MaxX
	stride := p.Stride()

	v := 0.0
	for i := 0; float64(i) < n; i++ {
		if i > 0 && i%stride == 0 {
			for _, x := range [2]float64{-v, v} {
				s := p.WorldToScreen(vp, vec.Vec2{X: x})
				c.DrawLine(vec.Vec2{X: s.X, Y: vp.LLy}, vec.Vec2{X: s.X, Y: vp.URy}, st.GridWidth, st.Grid)

				text := formatTick(x)
				size := c.MeasureText(text, st.LabelSize)
				pos := vec.Vec2{X: s.X - size.X/2, Y: origin.Y + st.LabelOffset}
				r.drawLabel(text, pos, size, c)
			}
		}
		v = min(v+1, bound)
	}
}

// horizontalTicks draws the gridlines crossing the y-axis.
func (r *Renderer) horizontalTicks(p *plane.Plane, vp rect.Rect, origin vec.Vec2, c canvas.Canvas) {
	st := &r.Style
	n := p.TicksPerQuadrant().Y
	bound := p.Range().MaxY
	stride := p.Stride()

	v := 0.0
	for i := 0; float64(i) < n; i++ {
		if i > 0 && i%stride == 0 {
			// above the x-axis first, as world-up is screen-up
			for _, y := range [2]float64{v, -v} {
				s := p.WorldToScreen(vp, vec.Vec2{Y: y})
				c.DrawLine(vec.Vec2{X: vp.LLx, Y: s.Y}, vec.Vec2{X: vp.URx, Y: s.Y}, st.GridWidth, st.Grid)

				text := formatTick(y)
				size := c.MeasureText(text, st.LabelSize)
				pos := vec.Vec2{X: origin.X + st.LabelOffset, Y: s.Y - size.Y/2}
				r.drawLabel(text, pos, size, c)
			}
		}
		v = min(v+1, bound)
	}
}

// drawLabel draws text on a background box, which hides the gridline
// underneath.
func (r *Renderer) drawLabel(text string, pos, size vec.Vec2, c canvas.Canvas) {
	c.DrawFilledRect(pos, size, r.Style.Background)
	c.DrawText(text, pos, r.Style.LabelSize, r.Style.Label)
}

// drawData draws the dataset.  In polyline mode, each run of finite
// samples becomes one polyline; non-finite samples break the line.
func (r *Renderer) drawData(p *plane.Plane, vp rect.Rect, data *Dataset, c canvas.Canvas) {
	st := &r.Style
	if data.Mode != Polyline {
		for _, pt := range data.Points {
			if finite(pt) {
				c.DrawCircle(p.WorldToScreen(vp, pt), st.PointRadius, st.Data)
			}
		}
		return
	}

	var run []vec.Vec2
	for _, pt := range data.Points {
		if !finite(pt) {
			canvas.DrawPolyline(c, run, st.LineWidth, st.Data)
			run = nil
			continue
		}
		run = append(run, p.WorldToScreen(vp, pt))
	}
	canvas.DrawPolyline(c, run, st.LineWidth, st.Data)
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
