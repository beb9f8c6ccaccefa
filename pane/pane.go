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

// Package pane holds the per-view state of the interactive viewer.
//
// A [Pane] turns the raw input of one frame into a [plane.Input], updates
// its plane and draws the result onto any [canvas.Canvas]. Nothing in
// this package depends on the windowing system.
package pane

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plane"
	"seehuhn.de/go/plane/canvas"
	"seehuhn.de/go/plane/export"
	"seehuhn.de/go/plane/grid"
)

// Frame is the raw input of one frame, as read from the window.
type Frame struct {
	Wheel  float64  // vertical wheel movement, positive away from the user
	Cursor vec.Vec2 // pointer position in window pixels
	Button bool     // primary pointer button held
	Width  int
	Height int
}

// Pane is one coordinate plane shown in a window.
type Pane struct {
	ID    uuid.UUID
	Plane *plane.Plane
	Data  *grid.Dataset

	exporter *export.Exporter
	log      *logrus.Entry

	cursor    vec.Vec2
	hasCursor bool
	snapshots int
}

// New creates a pane of the given size.
// If log is nil, the standard logger is used.
func New(cfg plane.Config, style grid.Style, data *grid.Dataset, width, height int, log *logrus.Entry) *Pane {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	id := uuid.New()
	log = log.WithField("pane", id.String())
	return &Pane{
		ID:       id,
		Plane:    plane.New(cfg, viewport(width, height)),
		Data:     data,
		exporter: export.NewExporter(cfg, style, log),
		log:      log,
	}
}

// Log returns the logger of the pane, which carries the pane ID.
func (p *Pane) Log() *logrus.Entry {
	return p.log
}

// Input converts the raw frame into the input of the plane.
// The pointer delta is measured from the cursor position of the previous
// call; on the first call it is zero.
func (p *Pane) Input(f Frame) plane.Input {
	var delta vec.Vec2
	if p.hasCursor {
		delta = f.Cursor.Sub(p.cursor)
	}
	p.cursor = f.Cursor
	p.hasCursor = true

	return plane.Input{
		WheelDelta:   f.Wheel,
		PointerDelta: delta,
		PointerHeld:  f.Button,
		Viewport:     viewport(f.Width, f.Height),
	}
}

// Step applies one frame of input to the plane.
func (p *Pane) Step(f Frame) {
	before := p.Plane.Stride()
	p.Plane.Update(p.Input(f))
	if s := p.Plane.Stride(); s != before {
		p.log.WithFields(logrus.Fields{
			"ticks":  p.Plane.TicksPerQuadrant().X,
			"stride": s,
		}).Debug("stride changed")
	}
}

// Draw renders the current view onto c.
// The result is false, and nothing is drawn, if the window has no area.
func (p *Pane) Draw(c canvas.Canvas) bool {
	return p.exporter.Renderer.Render(p.Plane, p.Plane.Viewport(), p.Data, c)
}

// Background returns the colour the window is cleared to before
// [Pane.Draw].
func (p *Pane) Background() color.NRGBA {
	return p.exporter.Options.Background
}

// Reset restores the initial zoom and centres the origin.
func (p *Pane) Reset() {
	p.Plane.Reset(p.Plane.Viewport())
	p.log.Info("view reset")
}

// Snapshot writes the current view to a new file in dir, using the given
// export backend, and returns the file name.
func (p *Pane) Snapshot(dir, backend string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	p.snapshots++
	name := fmt.Sprintf("snapshot_%s_%03d.%s", p.ID.String()[:8], p.snapshots, backend)
	fname := filepath.Join(dir, name)
	err := p.exporter.Plane(p.Plane, p.Plane.Viewport(), p.Data, backend, fname)
	if err != nil {
		return "", err
	}
	p.log.WithField("file", fname).Info("snapshot written")
	return fname, nil
}

func viewport(width, height int) rect.Rect {
	return rect.Rect{URx: float64(width), URy: float64(height)}
}
