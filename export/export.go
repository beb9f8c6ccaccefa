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

package export

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plane"
	"seehuhn.de/go/plane/canvas"
	"seehuhn.de/go/plane/grid"
	"seehuhn.de/go/plane/scenes"
)

// Exporter renders scenes to files.
type Exporter struct {
	Config   plane.Config
	Renderer *grid.Renderer
	Options  Options
	Log      *logrus.Entry
}

// NewExporter returns an exporter which draws on the style's background
// colour.
func NewExporter(cfg plane.Config, style grid.Style, log *logrus.Entry) *Exporter {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Exporter{
		Config:   cfg,
		Renderer: grid.New(style),
		Options:  Options{Background: style.Background},
		Log:      log,
	}
}

// FileName returns the name of the file a scene is exported to.
func FileName(category string, sc scenes.Scene, backend string) string {
	return category + "_" + sc.Name + "." + backend
}

// Scene renders one scene into dir and returns the path of the new file.
func (e *Exporter) Scene(category string, sc scenes.Scene, backend, dir string) (string, error) {
	p, vp := sc.Build(e.Config)
	fname := filepath.Join(dir, FileName(category, sc, backend))
	return fname, e.Plane(p, vp, sc.Data, backend, fname)
}

// Plane renders the current view of p into a new file.
// This is also used for snapshots of the interactive viewer.
func (e *Exporter) Plane(p *plane.Plane, vp rect.Rect, data *grid.Dataset, backend, fname string) error {
	w, h := int(vp.Dx()), int(vp.Dy())
	out, err := NewBackend(backend, fname, w, h, e.Options)
	if err != nil {
		return err
	}

	// the viewport is moved to the top-left corner of the file
	var dst canvas.Canvas = out
	if vp.LLx != 0 || vp.LLy != 0 {
		dst = canvas.Translated(out, vec.Vec2{X: -vp.LLx, Y: -vp.LLy})
	}
	if !e.Renderer.Render(p, vp, data, dst) {
		e.Log.WithField("file", fname).Warn("empty viewport, nothing drawn")
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	fields := logrus.Fields{"file": fname, "backend": backend}
	if fi, err := os.Stat(fname); err == nil {
		fields["size"] = humanize.Bytes(uint64(fi.Size()))
	}
	e.Log.WithFields(fields).Debug("written")
	return nil
}

// All exports every scene accepted by keep (all scenes if keep is nil)
// and returns the number of files written.
func (e *Exporter) All(backend, dir string, keep func(id string) bool) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	n := 0
	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, sc := range scenes.All[category] {
			if keep != nil && !keep(category+"/"+sc.Name) {
				continue
			}
			if _, err := e.Scene(category, sc, backend, dir); err != nil {
				return n, fmt.Errorf("%s/%s: %w", category, sc.Name, err)
			}
			n++
		}
	}
	e.Log.WithFields(logrus.Fields{
		"backend": backend,
		"dir":     dir,
		"files":   humanize.Comma(int64(n)),
	}).Info("export complete")
	return n, nil
}
