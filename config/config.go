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

// Package config loads the settings of the plane command from defaults,
// an optional configuration file and PLANE_* environment variables.
package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/plane"
	"seehuhn.de/go/plane/grid"
	"seehuhn.de/go/plane/scenes"
)

// EnvPrefix is prepended to the upper-cased setting names to form the
// names of environment variables, e.g. PLANE_WINDOW_WIDTH.
const EnvPrefix = "PLANE"

// Config is the complete configuration.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	Plane  PlaneConfig  `mapstructure:"plane" yaml:"plane"`
	Style  StyleConfig  `mapstructure:"style" yaml:"style"`
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	Window WindowConfig `mapstructure:"window" yaml:"window"`
	Export ExportConfig `mapstructure:"export" yaml:"export"`
}

// PlaneConfig holds the zoom limits and stride table.
type PlaneConfig struct {
	MinTicks     float64  `mapstructure:"min_ticks" yaml:"min_ticks"`
	MaxTicks     float64  `mapstructure:"max_ticks" yaml:"max_ticks"`
	InitialTicks float64  `mapstructure:"initial_ticks" yaml:"initial_ticks"`
	ZoomStep     float64  `mapstructure:"zoom_step" yaml:"zoom_step"`
	Strides      []Stride `mapstructure:"strides" yaml:"strides"`
	BaseStride   int      `mapstructure:"base_stride" yaml:"base_stride"`
}

// Stride is one row of the stride table.
type Stride struct {
	Above  float64 `mapstructure:"above" yaml:"above"`
	Stride int     `mapstructure:"stride" yaml:"stride"`
}

// StyleConfig gives colours as hex strings, "#rrggbb" or "#rrggbbaa".
type StyleConfig struct {
	Background string `mapstructure:"background" yaml:"background"`
	Grid       string `mapstructure:"grid" yaml:"grid"`
	Axis       string `mapstructure:"axis" yaml:"axis"`
	Label      string `mapstructure:"label" yaml:"label"`
	Data       string `mapstructure:"data" yaml:"data"`

	GridWidth   float64 `mapstructure:"grid_width" yaml:"grid_width"`
	AxisWidth   float64 `mapstructure:"axis_width" yaml:"axis_width"`
	LabelSize   float64 `mapstructure:"label_size" yaml:"label_size"`
	LabelOffset float64 `mapstructure:"label_offset" yaml:"label_offset"`
	PointRadius float64 `mapstructure:"point_radius" yaml:"point_radius"`
	LineWidth   float64 `mapstructure:"line_width" yaml:"line_width"`
}

// DataConfig selects the dataset shown by the viewer.
type DataConfig struct {
	Scene string `mapstructure:"scene" yaml:"scene"` // "category/name"
	Mode  string `mapstructure:"mode" yaml:"mode"`   // overrides the scene's mode if set
}

// WindowConfig describes the viewer window.
type WindowConfig struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	TPS    int    `mapstructure:"tps" yaml:"tps"`
}

// ExportConfig holds the defaults of the export command and of viewer
// snapshots.
type ExportConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir"`
	Backend string `mapstructure:"backend" yaml:"backend"`
}

// SetDefaults registers the default value of every setting with v.
func SetDefaults(v *viper.Viper) {
	pc := plane.DefaultConfig()
	v.SetDefault("log_level", "info")

	v.SetDefault("plane.min_ticks", pc.MinTicks)
	v.SetDefault("plane.max_ticks", pc.MaxTicks)
	v.SetDefault("plane.initial_ticks", pc.InitialTicks)
	v.SetDefault("plane.zoom_step", pc.ZoomStep)
	strides := make([]map[string]interface{}, len(pc.Strides.Steps))
	for i, s := range pc.Strides.Steps {
		strides[i] = map[string]interface{}{"above": s.Above, "stride": s.Stride}
	}
	v.SetDefault("plane.strides", strides)
	v.SetDefault("plane.base_stride", pc.Strides.Base)

	st := grid.DefaultStyle()
	v.SetDefault("style.background", FormatColor(st.Background))
	v.SetDefault("style.grid", FormatColor(st.Grid))
	v.SetDefault("style.axis", FormatColor(st.Axis))
	v.SetDefault("style.label", FormatColor(st.Label))
	v.SetDefault("style.data", FormatColor(st.Data))
	v.SetDefault("style.grid_width", st.GridWidth)
	v.SetDefault("style.axis_width", st.AxisWidth)
	v.SetDefault("style.label_size", st.LabelSize)
	v.SetDefault("style.label_offset", st.LabelOffset)
	v.SetDefault("style.point_radius", st.PointRadius)
	v.SetDefault("style.line_width", st.LineWidth)

	v.SetDefault("data.scene", "basic/parabola")
	v.SetDefault("data.mode", "")

	v.SetDefault("window.title", "Plot GUI")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.tps", 60)

	v.SetDefault("export.dir", "out")
	v.SetDefault("export.backend", "png")
}

// Load reads the configuration. If file is not empty, it is read in the
// format given by its extension (toml, yaml, json, ...).
// Values in v set by flags or the environment override the file.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file, flags or
// environment variables are given.
func Default() *Config {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks all settings.
func (c *Config) Validate() error {
	if err := c.PlaneConfig().Validate(); err != nil {
		return fmt.Errorf("plane: %w", err)
	}
	if _, err := c.GridStyle(); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if _, err := c.Dataset(); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window: tps must be positive, got %d", c.Window.TPS)
	}
	return nil
}

// PlaneConfig returns the settings for [plane.New].
func (c *Config) PlaneConfig() plane.Config {
	steps := make([]plane.StrideStep, len(c.Plane.Strides))
	for i, s := range c.Plane.Strides {
		steps[i] = plane.StrideStep{Above: s.Above, Stride: s.Stride}
	}
	return plane.Config{
		MinTicks:     c.Plane.MinTicks,
		MaxTicks:     c.Plane.MaxTicks,
		InitialTicks: c.Plane.InitialTicks,
		ZoomStep:     c.Plane.ZoomStep,
		Strides:      plane.StrideTable{Steps: steps, Base: c.Plane.BaseStride},
	}
}

// GridStyle converts the style settings for use by a [grid.Renderer].
func (c *Config) GridStyle() (grid.Style, error) {
	s := c.Style
	st := grid.Style{
		GridWidth:   s.GridWidth,
		AxisWidth:   s.AxisWidth,
		LabelSize:   s.LabelSize,
		LabelOffset: s.LabelOffset,
		PointRadius: s.PointRadius,
		LineWidth:   s.LineWidth,
	}
	colors := []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"background", s.Background, &st.Background},
		{"grid", s.Grid, &st.Grid},
		{"axis", s.Axis, &st.Axis},
		{"label", s.Label, &st.Label},
		{"data", s.Data, &st.Data},
	}
	for _, col := range colors {
		v, err := ParseColor(col.hex)
		if err != nil {
			return grid.Style{}, fmt.Errorf("%s: %w", col.name, err)
		}
		*col.dst = v
	}
	if !(st.LabelSize > 0) {
		return grid.Style{}, fmt.Errorf("label size must be positive, got %g", st.LabelSize)
	}
	if st.GridWidth < 0 || st.AxisWidth < 0 || st.PointRadius < 0 || st.LineWidth < 0 {
		return grid.Style{}, fmt.Errorf("negative line width or point radius")
	}
	return st, nil
}

// Dataset returns the data selected by the data settings, or nil if
// the scene setting is empty.
func (c *Config) Dataset() (*grid.Dataset, error) {
	if c.Data.Scene == "" {
		return nil, nil
	}
	_, sc, ok := scenes.Find(c.Data.Scene)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", c.Data.Scene)
	}
	if sc.Data == nil {
		return nil, nil
	}
	data := *sc.Data
	if c.Data.Mode != "" {
		mode, err := grid.ParseMode(c.Data.Mode)
		if err != nil {
			return nil, err
		}
		data.Mode = mode
	}
	return &data, nil
}

// YAML returns the configuration in YAML format, suitable for use as a
// configuration file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
