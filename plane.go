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

// Package plane implements the view model of an interactive 2D coordinate
// plane: the zoom level, the pan origin and the mapping between world
// coordinates and pixels.
//
// One world unit is one tick. The zoom level is the number of ticks between
// the origin and the edge of the viewport on the x-axis; the y-axis tick
// count follows from it and the viewport's aspect ratio, so that a world
// unit square is a pixel square.
//
// A Plane is updated once per frame by [Plane.Update] and read afterwards
// by a renderer. It is not safe for concurrent use.
package plane

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Plane holds the view state of one coordinate plane.
type Plane struct {
	cfg Config

	ticks    vec.Vec2 // ticks per quadrant; Y is derived from X and aspect
	stride   int
	origin   vec.Vec2 // pixel position of the world origin
	aspect   float64  // width/height of the last usable viewport
	viewport rect.Rect
}

// Input carries the per-frame values read from the windowing system.
type Input struct {
	WheelDelta   float64
	PointerDelta vec.Vec2
	PointerHeld  bool
	Viewport     rect.Rect
}

// Range gives world-coordinate bounds.
type Range struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// New returns a plane for the given viewport, zoomed to cfg.InitialTicks
// and with the world origin in the centre of the viewport.
// Unusable fields of cfg are replaced by their defaults.
func New(cfg Config, viewport rect.Rect) *Plane {
	cfg = cfg.withDefaults()
	cfg.Strides = cfg.Strides.Clone()
	p := &Plane{cfg: cfg, aspect: 1}
	p.Reset(viewport)
	return p
}

// Reset restores the state of a newly constructed plane for the given
// viewport.
func (p *Plane) Reset(viewport rect.Rect) {
	p.viewport = viewport
	if a, ok := aspectRatio(viewport); ok {
		p.aspect = a
	}
	p.ticks.X = p.clampTicks(p.cfg.InitialTicks)
	p.stride = max(p.cfg.Strides.Base, 1)
	p.origin = center(viewport)
	p.deriveY()
}

// Update applies one frame of input. The steps run in a fixed order:
// viewport change, zoom, pan (only while the pointer button is held),
// stride selection and finally the y-axis tick count.
func (p *Plane) Update(in Input) {
	if in.Viewport != p.viewport {
		p.Resize(in.Viewport)
	}
	p.Zoom(in.WheelDelta)
	if in.PointerHeld {
		p.Pan(in.PointerDelta)
	}
	p.RecomputeStride()
	p.deriveY()
}

// Zoom changes the number of ticks per quadrant by one zoom step.
// Negative wheel deltas zoom out (more ticks, more of the world visible),
// positive deltas zoom in, and zero leaves the plane unchanged.
func (p *Plane) Zoom(wheelDelta float64) {
	switch {
	case wheelDelta < 0:
		p.ticks.X += p.cfg.ZoomStep
	case wheelDelta > 0:
		p.ticks.X -= p.cfg.ZoomStep
	default:
		return
	}
	p.ticks.X = p.clampTicks(p.ticks.X)
	p.deriveY()
}

// Pan moves the world origin by the given number of pixels.
// The origin is not clamped. Non-finite deltas are ignored.
func (p *Plane) Pan(delta vec.Vec2) {
	if !finite(delta.X) || !finite(delta.Y) {
		return
	}
	p.origin = p.origin.Add(delta)
}

// Resize records a new viewport. Viewports without area leave the aspect
// ratio, and therefore the y-axis tick count, unchanged.
func (p *Plane) Resize(viewport rect.Rect) {
	p.viewport = viewport
	if a, ok := aspectRatio(viewport); ok {
		p.aspect = a
		p.deriveY()
	}
}

// RecomputeStride selects the gridline decimation factor for the current
// x-axis tick density.
func (p *Plane) RecomputeStride() {
	p.stride = p.cfg.Strides.Lookup(p.ticks.X, p.stride)
}

// TicksPerQuadrant returns the number of ticks between the origin and the
// viewport edge on each axis.
func (p *Plane) TicksPerQuadrant() vec.Vec2 {
	return p.ticks
}

// TotalTicks returns the number of ticks across the full width and height.
func (p *Plane) TotalTicks() vec.Vec2 {
	return p.ticks.Mul(2)
}

// Stride returns the gridline decimation factor: every Stride-th tick is
// drawn.
func (p *Plane) Stride() int {
	return p.stride
}

// Origin returns the pixel position of the world origin.
func (p *Plane) Origin() vec.Vec2 {
	return p.origin
}

// Aspect returns the width/height ratio used to derive the y-axis ticks.
func (p *Plane) Aspect() float64 {
	return p.aspect
}

// Viewport returns the most recently recorded viewport.
func (p *Plane) Viewport() rect.Rect {
	return p.viewport
}

// Config returns the configuration of the plane, with defaults applied.
func (p *Plane) Config() Config {
	cfg := p.cfg
	cfg.Strides = cfg.Strides.Clone()
	return cfg
}

// Range returns the world bounds covered by the tick layout. The range is
// symmetric about the origin.
func (p *Plane) Range() Range {
	return Range{
		MinX: -p.ticks.X,
		MaxX: p.ticks.X,
		MinY: -p.ticks.Y,
		MaxY: p.ticks.Y,
	}
}

// Renderable reports whether the viewport has a positive area and both
// axes have at least one tick per quadrant.
// Frames for which this returns false must not be drawn.
func (p *Plane) Renderable(viewport rect.Rect) bool {
	return viewport.Dx() > 0 && viewport.Dy() > 0 && p.ticks.X > 0 && p.ticks.Y > 0
}

// deriveY sets the y-axis ticks per quadrant from the x-axis value and
// the aspect ratio. For viewports more than MaxTicks times wider than
// tall this is zero, and the plane is not renderable.
func (p *Plane) deriveY() {
	y := math.Floor(p.ticks.X / p.aspect)
	if !(y > 0) {
		y = 0
	}
	p.ticks.Y = y
}

func (p *Plane) clampTicks(x float64) float64 {
	if math.IsNaN(x) {
		return p.cfg.MinTicks
	}
	return min(max(x, p.cfg.MinTicks), p.cfg.MaxTicks)
}

func aspectRatio(r rect.Rect) (float64, bool) {
	w, h := r.Dx(), r.Dy()
	if !(w > 0 && h > 0) {
		return 0, false
	}
	a := w / h
	if !finite(a) || a == 0 {
		return 0, false
	}
	return a, true
}

func center(r rect.Rect) vec.Vec2 {
	return vec.Vec2{X: r.LLx + r.Dx()/2, Y: r.LLy + r.Dy()/2}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
