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
	"errors"
	"fmt"
	"math"
)

// Default zoom limits, matching a plane that shows ten ticks per quadrant
// at start-up.
const (
	DefaultMinTicks = 10
	DefaultMaxTicks = 50
	DefaultZoomStep = 2
)

// TicksLimit is the largest accepted number of ticks per quadrant. The
// renderer visits every tick of a frame, so the count must stay bounded.
const TicksLimit = 1000

// Config holds the zoom limits and stride table of a [Plane].
type Config struct {
	// MinTicks and MaxTicks bound the number of x-axis ticks per quadrant.
	MinTicks float64
	MaxTicks float64

	// InitialTicks is the number of x-axis ticks per quadrant of a new plane.
	// Zero means MinTicks.
	InitialTicks float64

	// ZoomStep is added to the ticks per quadrant for every zoom-out event
	// and subtracted for every zoom-in event.
	ZoomStep float64

	// Strides selects the gridline decimation factor from the tick density.
	Strides StrideTable
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		MinTicks:     DefaultMinTicks,
		MaxTicks:     DefaultMaxTicks,
		InitialTicks: DefaultMinTicks,
		ZoomStep:     DefaultZoomStep,
		Strides:      DefaultStrides(),
	}
}

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	switch {
	case !(c.MinTicks > 0):
		return fmt.Errorf("minimum ticks per quadrant must be positive, got %g", c.MinTicks)
	case !(c.MaxTicks >= c.MinTicks):
		return fmt.Errorf("maximum ticks per quadrant %g is below the minimum %g", c.MaxTicks, c.MinTicks)
	case c.MaxTicks > TicksLimit:
		return fmt.Errorf("maximum ticks per quadrant %g exceeds the limit %d", c.MaxTicks, TicksLimit)
	case !(c.ZoomStep > 0) || !finite(c.ZoomStep):
		return fmt.Errorf("zoom step must be positive and finite, got %g", c.ZoomStep)
	case c.InitialTicks != 0 && !(c.InitialTicks >= c.MinTicks && c.InitialTicks <= c.MaxTicks):
		return fmt.Errorf("initial ticks %g outside [%g, %g]", c.InitialTicks, c.MinTicks, c.MaxTicks)
	}
	if err := c.Strides.Validate(); err != nil {
		return fmt.Errorf("stride table: %w", err)
	}
	return nil
}

// withDefaults replaces unusable fields by their defaults, so that a Plane
// never divides by a zero tick count and the tick counts stay within
// [1, TicksLimit].
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if !(c.MinTicks > 0) || !finite(c.MinTicks) {
		c.MinTicks = def.MinTicks
	}
	c.MinTicks = min(c.MinTicks, TicksLimit)
	if !(c.MaxTicks >= c.MinTicks) {
		c.MaxTicks = max(c.MinTicks, def.MaxTicks)
	}
	c.MaxTicks = min(c.MaxTicks, TicksLimit)
	if !(c.ZoomStep > 0) || !finite(c.ZoomStep) {
		c.ZoomStep = def.ZoomStep
	}
	if c.InitialTicks == 0 || math.IsNaN(c.InitialTicks) {
		c.InitialTicks = c.MinTicks
	}
	c.InitialTicks = min(max(c.InitialTicks, c.MinTicks), c.MaxTicks)
	if c.Strides.Validate() != nil {
		c.Strides = def.Strides
	}
	return c
}

// errEmptyStrides is returned by StrideTable.Validate for a table without
// any steps.
var errEmptyStrides = errors.New("no steps")
