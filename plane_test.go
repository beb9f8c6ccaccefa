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

package plane

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var window = rect.Rect{LLx: 0, LLy: 0, URx: 800, URy: 600}

func TestNew(t *testing.T) {
	p := New(DefaultConfig(), window)

	ticks := p.TicksPerQuadrant()
	assert.Equal(t, 10.0, ticks.X)
	assert.Equal(t, 7.0, ticks.Y) // floor(10 / (800/600))
	assert.Equal(t, vec.Vec2{X: 20, Y: 14}, p.TotalTicks())
	assert.Equal(t, vec.Vec2{X: 400, Y: 300}, p.Origin())
	assert.Equal(t, 1, p.Stride())
	assert.Equal(t, Range{MinX: -10, MaxX: 10, MinY: -7, MaxY: 7}, p.Range())
}

func TestNewDefaultsUnusableConfig(t *testing.T) {
	p := New(Config{}, window)

	total := p.TotalTicks()
	assert.Greater(t, total.X, 0.0)
	assert.Greater(t, total.Y, 0.0)
	assert.NoError(t, p.Config().Validate())
}

func TestNewBoundsTicks(t *testing.T) {
	inf := math.Inf(1)
	configs := []Config{
		{MinTicks: 10, MaxTicks: inf, InitialTicks: math.NaN(), ZoomStep: inf, Strides: DefaultStrides()},
		{MinTicks: inf, MaxTicks: inf, InitialTicks: inf, ZoomStep: 1, Strides: DefaultStrides()},
		{MinTicks: 1e9, MaxTicks: 1e9, InitialTicks: 1e9, ZoomStep: 1e9, Strides: DefaultStrides()},
	}
	for i, cfg := range configs {
		p := New(cfg, window)
		require.NoError(t, p.Config().Validate(), "case %d", i)
		for range 2000 {
			p.Zoom(-1)
		}
		x := p.TicksPerQuadrant().X
		assert.LessOrEqual(t, x, float64(TicksLimit), "case %d", i)
		assert.Greater(t, x, 0.0, "case %d", i)
		assert.True(t, p.Renderable(window), "case %d", i)
	}
}

func TestZoomClamped(t *testing.T) {
	cfg := DefaultConfig()
	p := New(cfg, window)

	deltas := []float64{-1, -3, -0.5, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
		-1, -1, -1, -1, -1, -1, -1, -1, -1, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, -1}
	for i, d := range deltas {
		p.Zoom(d)
		x := p.TicksPerQuadrant().X
		require.GreaterOrEqual(t, x, cfg.MinTicks, "after event %d", i)
		require.LessOrEqual(t, x, cfg.MaxTicks, "after event %d", i)
	}
}

func TestZoomDirections(t *testing.T) {
	p := New(DefaultConfig(), window)

	p.Zoom(-1)
	assert.Equal(t, 12.0, p.TicksPerQuadrant().X, "negative delta zooms out")
	p.Zoom(0)
	assert.Equal(t, 12.0, p.TicksPerQuadrant().X, "zero delta is a no-op")
	p.Zoom(3.5)
	assert.Equal(t, 10.0, p.TicksPerQuadrant().X, "positive delta zooms in")
	p.Zoom(1)
	assert.Equal(t, 10.0, p.TicksPerQuadrant().X, "clamped at the minimum")
	p.Zoom(math.NaN())
	assert.Equal(t, 10.0, p.TicksPerQuadrant().X)
}

func TestZoomOutFiveSteps(t *testing.T) {
	p := New(DefaultConfig(), window)

	var strides []int
	for range 5 {
		p.Update(Input{WheelDelta: -1, Viewport: window})
		strides = append(strides, p.Stride())
	}

	assert.Equal(t, 20.0, p.TicksPerQuadrant().X)
	assert.Less(t, p.TicksPerQuadrant().X, 50.0)
	// x goes 12, 14, 16, 18, 20: the stride changes once, when x exceeds 15
	assert.Equal(t, []int{1, 1, 2, 2, 2}, strides)
}

func TestYTicksDerived(t *testing.T) {
	p := New(DefaultConfig(), window)

	check := func(vp rect.Rect) {
		t.Helper()
		w, h := vp.Dx(), vp.Dy()
		want := math.Floor(p.TicksPerQuadrant().X / (w / h))
		assert.Equal(t, want, p.TicksPerQuadrant().Y)
	}

	p.Zoom(-1)
	check(window)

	tall := rect.Rect{URx: 300, URy: 900}
	p.Update(Input{Viewport: tall})
	check(tall)

	p.Update(Input{WheelDelta: -1, Viewport: tall})
	check(tall)

	shifted := rect.Rect{LLx: 100, LLy: 50, URx: 1380, URy: 770}
	p.Update(Input{WheelDelta: 1, Viewport: shifted})
	check(shifted)
}

func TestDegenerateViewportKeepsAspect(t *testing.T) {
	p := New(DefaultConfig(), window)
	before := p.TicksPerQuadrant()

	for _, vp := range []rect.Rect{
		{URx: 0, URy: 600},
		{URx: 800, URy: 0},
		{URx: -10, URy: 600},
		{},
	} {
		p.Update(Input{Viewport: vp})
		assert.Equal(t, before, p.TicksPerQuadrant())
		assert.False(t, p.Renderable(vp))
		assert.InDelta(t, 800.0/600.0, p.Aspect(), 1e-12)

		s := p.WorldToScreen(vp, vec.Vec2{X: 3, Y: -4})
		assert.False(t, math.IsNaN(s.X) || math.IsNaN(s.Y))
		assert.False(t, math.IsInf(s.X, 0) || math.IsInf(s.Y, 0))
	}
}

func TestVeryWideViewport(t *testing.T) {
	wide := rect.Rect{URx: 4000, URy: 100}
	p := New(DefaultConfig(), wide)

	// 10 ticks over an aspect ratio of 40 leave no whole tick on the y-axis
	assert.Equal(t, 0.0, p.TicksPerQuadrant().Y)
	assert.False(t, p.Renderable(wide))

	s := p.TickSpacing(wide)
	assert.Equal(t, vec.Vec2{X: 200, Y: 200}, s)
	up := p.WorldToScreen(wide, vec.Vec2{X: 1, Y: 1})
	assert.Equal(t, vec.Vec2{X: 2200, Y: -150}, up)

	// zooming out far enough brings the y-axis back
	for range 20 {
		p.Zoom(-1)
	}
	assert.Equal(t, 50.0, p.TicksPerQuadrant().X)
	assert.Equal(t, 1.0, p.TicksPerQuadrant().Y)
	assert.True(t, p.Renderable(wide))
}

func TestPanAdditive(t *testing.T) {
	a := New(DefaultConfig(), window)
	b := New(DefaultConfig(), window)

	a.Pan(vec.Vec2{X: 5, Y: 0})
	a.Pan(vec.Vec2{X: -2, Y: 3})
	b.Pan(vec.Vec2{X: 3, Y: 3})

	assert.Equal(t, b.Origin(), a.Origin())
	assert.Equal(t, vec.Vec2{X: 403, Y: 303}, a.Origin())
}

func TestPanUnclamped(t *testing.T) {
	p := New(DefaultConfig(), window)
	for range 1000 {
		p.Pan(vec.Vec2{X: -1e4, Y: 1e4})
	}
	assert.Equal(t, vec.Vec2{X: 400 - 1e7, Y: 300 + 1e7}, p.Origin())

	p.Pan(vec.Vec2{X: math.Inf(1)})
	p.Pan(vec.Vec2{Y: math.NaN()})
	assert.Equal(t, vec.Vec2{X: 400 - 1e7, Y: 300 + 1e7}, p.Origin())
}

func TestUpdatePanRequiresButton(t *testing.T) {
	p := New(DefaultConfig(), window)

	p.Update(Input{PointerDelta: vec.Vec2{X: 10, Y: 10}, Viewport: window})
	assert.Equal(t, vec.Vec2{X: 400, Y: 300}, p.Origin())

	p.Update(Input{PointerDelta: vec.Vec2{X: 10, Y: -5}, PointerHeld: true, Viewport: window})
	assert.Equal(t, vec.Vec2{X: 410, Y: 295}, p.Origin())
}

func TestResizeKeepsOrigin(t *testing.T) {
	p := New(DefaultConfig(), window)
	p.Pan(vec.Vec2{X: 7, Y: 9})

	p.Update(Input{Viewport: rect.Rect{URx: 1024, URy: 768}})
	assert.Equal(t, vec.Vec2{X: 407, Y: 309}, p.Origin())
}

func TestReset(t *testing.T) {
	p := New(DefaultConfig(), window)
	for range 8 {
		p.Update(Input{WheelDelta: -1, PointerDelta: vec.Vec2{X: 3, Y: 1}, PointerHeld: true, Viewport: window})
	}
	require.NotEqual(t, 1, p.Stride())

	p.Reset(window)
	fresh := New(DefaultConfig(), window)
	assert.Equal(t, fresh.TicksPerQuadrant(), p.TicksPerQuadrant())
	assert.Equal(t, fresh.Origin(), p.Origin())
	assert.Equal(t, fresh.Stride(), p.Stride())
}

func TestIndependentPlanes(t *testing.T) {
	left := New(DefaultConfig(), window)
	right := New(DefaultConfig(), window)

	left.Update(Input{WheelDelta: -1, PointerDelta: vec.Vec2{X: 50}, PointerHeld: true, Viewport: window})

	assert.Equal(t, 10.0, right.TicksPerQuadrant().X)
	assert.Equal(t, vec.Vec2{X: 400, Y: 300}, right.Origin())
}

func TestConfigNotAliased(t *testing.T) {
	cfg := DefaultConfig()
	p := New(cfg, window)
	cfg.Strides.Steps[0].Stride = 99

	for range 20 {
		p.Zoom(-1)
	}
	p.RecomputeStride()
	assert.Equal(t, 4, p.Stride())
}
