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
	"fmt"
	"slices"
)

// StrideStep maps tick densities strictly above Above to Stride.
type StrideStep struct {
	Above  float64
	Stride int
}

// StrideTable decides how many ticks are skipped between drawn gridlines.
//
// Steps are ordered by decreasing Above and evaluated highest first; the
// first step whose bound is exceeded wins. Densities below the lowest bound
// use Base. A density exactly at the lowest bound matches no rule and
// keeps the previous stride.
type StrideTable struct {
	Steps []StrideStep
	Base  int
}

// DefaultStrides returns the table >35 → 4, >28 → 3, >15 → 2, <15 → 1.
func DefaultStrides() StrideTable {
	return StrideTable{
		Steps: []StrideStep{
			{Above: 35, Stride: 4},
			{Above: 28, Stride: 3},
			{Above: 15, Stride: 2},
		},
		Base: 1,
	}
}

// Lookup returns the stride for the given x-axis ticks per quadrant.
// The argument prev is returned when no rule applies.
func (t StrideTable) Lookup(ticks float64, prev int) int {
	for _, s := range t.Steps {
		if ticks > s.Above {
			return s.Stride
		}
	}
	if len(t.Steps) == 0 || ticks < t.Steps[len(t.Steps)-1].Above {
		return t.Base
	}
	return prev
}

// Validate checks that the steps are strictly decreasing and that all
// strides are positive.
func (t StrideTable) Validate() error {
	if len(t.Steps) == 0 {
		return errEmptyStrides
	}
	if t.Base < 1 {
		return fmt.Errorf("base stride must be at least 1, got %d", t.Base)
	}
	for i, s := range t.Steps {
		if s.Stride < 1 {
			return fmt.Errorf("step %d: stride must be at least 1, got %d", i, s.Stride)
		}
		if i > 0 && !(s.Above < t.Steps[i-1].Above) {
			return fmt.Errorf("step %d: bound %g is not below %g", i, s.Above, t.Steps[i-1].Above)
		}
	}
	return nil
}

// Clone returns a copy of t which shares no memory with t.
func (t StrideTable) Clone() StrideTable {
	return StrideTable{Steps: slices.Clone(t.Steps), Base: t.Base}
}
