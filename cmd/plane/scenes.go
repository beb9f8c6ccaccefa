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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seehuhn.de/go/plane/scenes"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List the built-in scenes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "SCENE\tSIZE\tEVENTS\tPOINTS\tMODE")
		for _, id := range scenes.IDs() {
			_, sc, _ := scenes.Find(id)
			points, mode := 0, "-"
			if sc.Data != nil {
				points, mode = len(sc.Data.Points), sc.Data.Mode.String()
			}
			fmt.Fprintf(w, "%s\t%dx%d\t%d\t%d\t%s\n",
				id, sc.Width, sc.Height, len(sc.Zoom)+len(sc.Pan), points, mode)
		}
		return w.Flush()
	},
}
