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

package pane

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plane"
	"seehuhn.de/go/plane/canvas"
	"seehuhn.de/go/plane/grid"
	_ "seehuhn.de/go/plane/raster"
	"seehuhn.de/go/plane/scenes"
)

func newPane(t *testing.T) (*Pane, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	p := New(plane.DefaultConfig(), grid.DefaultStyle(), scenes.Parabola(), 800, 600, logrus.NewEntry(logger))
	return p, hook
}

func frame(x, y float64, held bool) Frame {
	return Frame{Cursor: vec.Vec2{X: x, Y: y}, Button: held, Width: 800, Height: 600}
}

func TestInput(t *testing.T) {
	p, _ := newPane(t)

	in := p.Input(frame(100, 100, true))
	assert.Equal(t, vec.Vec2{}, in.PointerDelta)
	assert.True(t, in.PointerHeld)
	assert.Equal(t, 800.0, in.Viewport.URx)
	assert.Equal(t, 600.0, in.Viewport.URy)

	in = p.Input(frame(110, 95, false))
	assert.Equal(t, vec.Vec2{X: 10, Y: -5}, in.PointerDelta)
	assert.False(t, in.PointerHeld)
}

func TestStepPan(t *testing.T) {
	p, _ := newPane(t)
	p.Step(frame(100, 100, true))
	p.Step(frame(130, 120, true))
	assert.Equal(t, vec.Vec2{X: 430, Y: 320}, p.Plane.Origin())

	// moving without the button held does not pan
	p.Step(frame(200, 200, false))
	assert.Equal(t, vec.Vec2{X: 430, Y: 320}, p.Plane.Origin())

	// the delta is measured from the last frame, not the last pan
	p.Step(frame(201, 200, true))
	assert.Equal(t, vec.Vec2{X: 431, Y: 320}, p.Plane.Origin())
}

func TestStepZoom(t *testing.T) {
	p, hook := newPane(t)
	f := frame(0, 0, false)
	f.Wheel = -1
	for range 3 {
		p.Step(f)
	}
	assert.Equal(t, 16.0, p.Plane.TicksPerQuadrant().X)
	assert.Equal(t, 2, p.Plane.Stride())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "stride changed", entry.Message)
	assert.Equal(t, 2, entry.Data["stride"])
	assert.Equal(t, p.ID.String(), entry.Data["pane"])
}

func TestStepResize(t *testing.T) {
	p, _ := newPane(t)
	f := frame(0, 0, false)
	f.Width, f.Height = 1000, 500
	p.Step(f)
	assert.Equal(t, 1000.0, p.Plane.Viewport().URx)
	assert.Equal(t, vec.Vec2{X: 10, Y: 5}, p.Plane.TicksPerQuadrant())
}

func TestDraw(t *testing.T) {
	p, _ := newPane(t)
	rec := canvas.NewRecorder(nil)
	require.True(t, p.Draw(rec))

	circles := 0
	for _, cmd := range rec.Commands {
		if _, ok := cmd.(canvas.Circle); ok {
			circles++
		}
	}
	assert.Equal(t, 500, circles)
	assert.Equal(t, grid.DefaultStyle().Background, p.Background())
}

func TestDrawEmptyWindow(t *testing.T) {
	p, _ := newPane(t)
	f := frame(0, 0, false)
	f.Width = 0
	p.Step(f)

	rec := canvas.NewRecorder(nil)
	assert.False(t, p.Draw(rec))
	assert.Empty(t, rec.Commands)
}

func TestReset(t *testing.T) {
	p, hook := newPane(t)
	f := frame(0, 0, true)
	p.Step(f)
	f.Cursor = vec.Vec2{X: 50, Y: 50}
	f.Wheel = -1
	p.Step(f)
	require.NotEqual(t, vec.Vec2{X: 400, Y: 300}, p.Plane.Origin())

	p.Reset()
	assert.Equal(t, vec.Vec2{X: 400, Y: 300}, p.Plane.Origin())
	assert.Equal(t, 10.0, p.Plane.TicksPerQuadrant().X)
	assert.Equal(t, "view reset", hook.LastEntry().Message)
}

func TestSnapshot(t *testing.T) {
	p, hook := newPane(t)
	dir := filepath.Join(t.TempDir(), "snaps")

	fname, err := p.Snapshot(dir, "png")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(fname))

	fd, err := os.Open(fname)
	require.NoError(t, err)
	defer fd.Close()
	img, err := png.Decode(fd)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "snapshot written", entry.Message)
	assert.Equal(t, fname, entry.Data["file"])
	assert.Equal(t, p.ID.String(), entry.Data["pane"])

	second, err := p.Snapshot(dir, "png")
	require.NoError(t, err)
	assert.NotEqual(t, fname, second)

	_, err = p.Snapshot(dir, "no-such-backend")
	assert.Error(t, err)
}

func TestDistinctIDs(t *testing.T) {
	a, _ := newPane(t)
	b, _ := newPane(t)
	assert.NotEqual(t, a.ID, b.ID)
}
