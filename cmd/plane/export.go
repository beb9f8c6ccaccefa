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
	"fmt"
	"path"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seehuhn.de/go/plane/export"
)

var exportFilter string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the built-in scenes to files",
	Long: `Render every built-in scene, or those matching --filter, into the export
directory. The file names have the form <category>_<name>.<backend>.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var keep func(string) bool
		if exportFilter != "" {
			if _, err := path.Match(exportFilter, ""); err != nil {
				return fmt.Errorf("filter %q: %w", exportFilter, err)
			}
			keep = func(id string) bool {
				ok, _ := path.Match(exportFilter, id)
				return ok
			}
		}

		style, err := conf.GridStyle()
		if err != nil {
			return err
		}
		e := export.NewExporter(conf.PlaneConfig(), style, log.NewEntry(log.StandardLogger()))
		n, err := e.All(conf.Export.Backend, conf.Export.Dir, keep)
		if err != nil {
			return err
		}
		if n == 0 {
			log.WithField("filter", exportFilter).Warn("no scene matched")
		}
		return nil
	},
}

func init() {
	f := exportCmd.Flags()
	f.String("backend", "", fmt.Sprintf("Output format, one of %v", export.Backends()))
	f.String("dir", "", "Output directory")
	f.StringVar(&exportFilter, "filter", "", "Only export scenes whose category/name matches this glob")
	bindFlags(f, map[string]string{
		"backend": "export.backend",
		"dir":     "export.dir",
	})
}
