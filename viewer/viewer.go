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

// Package viewer shows a coordinate plane in a resizable window.
//
// The mouse wheel zooms, dragging with the left button pans.
// Home or R resets the view, P writes a snapshot, and Escape quits.
package viewer

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plane"
	"seehuhn.de/go/plane/grid"
	"seehuhn.de/go/plane/label"
	"seehuhn.de/go/plane/pane"
	_ "seehuhn.de/go/plane/raster" // png snapshots
)

// Options configure the viewer window.
type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int

	Plane plane.Config
	Style grid.Style
	Data  *grid.Dataset
	Face  *label.Face // nil means label.Default

	SnapshotDir     string
	SnapshotBackend string // an export backend name, "png" if empty

	Log *logrus.Entry
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return errors.New("viewer: invalid window size")
	}
	if opts.Face == nil {
		opts.Face = label.Default()
	}
	if opts.SnapshotBackend == "" {
		opts.SnapshotBackend = "png"
	}
	if opts.SnapshotDir == "" {
		opts.SnapshotDir = "."
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	p := pane.New(opts.Plane, opts.Style, opts.Data, opts.Width, opts.Height, opts.Log)
	g := &game{
		pane:   p,
		opts:   opts,
		width:  opts.Width,
		height: opts.Height,
		screen: &screen{face: opts.Face, log: p.Log()},
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)

	p.Log().WithFields(logrus.Fields{
		"width":  opts.Width,
		"height": opts.Height,
	}).Info("viewer started")
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	p.Log().Info("viewer closed")
	return err
}

type game struct {
	pane   *pane.Pane
	opts   Options
	screen *screen

	width, height int
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyHome), inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.pane.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if _, err := g.pane.Snapshot(g.opts.SnapshotDir, g.opts.SnapshotBackend); err != nil {
			g.pane.Log().WithError(err).Error("snapshot failed")
		}
	}

	_, wheel := ebiten.Wheel()
	cx, cy := ebiten.CursorPosition()
	g.pane.Step(pane.Frame{
		Wheel:  wheel,
		Cursor: vec.Vec2{X: float64(cx), Y: float64(cy)},
		Button: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Width:  g.width,
		Height: g.height,
	})
	return nil
}

func (g *game) Draw(dst *ebiten.Image) {
	dst.Fill(g.pane.Background())
	g.screen.dst = dst
	g.pane.Draw(g.screen)
	g.screen.dst = nil
}

// Layout uses one logical pixel per device-independent window pixel, so
// that resizing the window changes the visible part of the plane.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	// ebiten requires a positive screen size
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
