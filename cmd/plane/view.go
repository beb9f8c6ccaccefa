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

package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seehuhn.de/go/plane/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer",
	Long: `Open a window showing the coordinate plane. The mouse wheel zooms, dragging
with the left mouse button pans. Home or R resets the view, P writes a
snapshot into the export directory and Escape quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := conf.GridStyle()
		if err != nil {
			return err
		}
		data, err := conf.Dataset()
		if err != nil {
			return err
		}
		return viewer.Run(viewer.Options{
			Title:           conf.Window.Title,
			Width:           conf.Window.Width,
			Height:          conf.Window.Height,
			TPS:             conf.Window.TPS,
			Plane:           conf.PlaneConfig(),
			Style:           style,
			Data:            data,
			SnapshotDir:     conf.Export.Dir,
			SnapshotBackend: conf.Export.Backend,
			Log:             log.NewEntry(log.StandardLogger()),
		})
	},
}

func init() {
	f := viewCmd.Flags()
	f.String("scene", "", "Scene providing the data, as category/name")
	f.String("mode", "", "Data drawing mode (markers or polyline)")
	f.Int("width", 0, "Initial window width")
	f.Int("height", 0, "Initial window height")
	bindFlags(f, map[string]string{
		"scene":  "data.scene",
		"mode":   "data.mode",
		"width":  "window.width",
		"height": "window.height",
	})
}
