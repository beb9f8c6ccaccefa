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

// Plane shows an interactive coordinate plane and exports the built-in
// scenes to PNG and PDF files.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seehuhn.de/go/plane/config"
	_ "seehuhn.de/go/plane/pdfout"
	_ "seehuhn.de/go/plane/raster"
)

var (
	cfgFile string
	v       = viper.New()
	conf    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "plane",
	Short: "Interactive 2D coordinate plane",
	Long: `plane draws a Cartesian coordinate plane with gridlines, tick labels and
sample data. The view can be zoomed with the mouse wheel and panned by
dragging with the left mouse button.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

		var err error
		conf, err = config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		level, err := log.ParseLevel(conf.LogLevel)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		log.SetLevel(level)
		log.WithField("config", cfgFile).Debug("configuration loaded")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Usage()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file (toml, yaml or json)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	bindFlags(rootCmd.PersistentFlags(), map[string]string{"log-level": "log_level"})

	rootCmd.AddCommand(viewCmd, exportCmd, scenesCmd, configCmd)
}

// bindFlags binds command line flags, given by name, to configuration
// keys. Flags take precedence over the configuration file and the
// environment, but only when given on the command line.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
