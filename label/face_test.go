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

package label

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestMeasureText(t *testing.T) {
	f := Default()

	one := f.MeasureText("1", 20)
	two := f.MeasureText("12", 20)
	neg := f.MeasureText("-12", 20)

	assert.Greater(t, one.X, 0.0)
	assert.Greater(t, two.X, one.X)
	assert.Greater(t, neg.X, two.X)
	assert.Equal(t, one.Y, two.Y, "line height does not depend on the text")
	assert.Greater(t, one.Y, 15.0)
	assert.Less(t, one.Y, 30.0)

	double := f.MeasureText("12", 40)
	assert.InDelta(t, 2*two.X, double.X, 1)

	assert.Equal(t, vec.Vec2{}, f.MeasureText("12", 0))
	assert.Equal(t, 0.0, f.MeasureText("", 20).X)
}

func TestOutline(t *testing.T) {
	f := Default()
	topLeft := vec.Vec2{X: 100, Y: 50}
	p := f.Outline("-7", 20, topLeft)

	var cmds []path.Command
	for cmd := range p {
		cmds = append(cmds, cmd)
	}
	require.NotEmpty(t, cmds)
	assert.Equal(t, path.CmdMoveTo, cmds[0])
	assert.Equal(t, path.CmdClose, cmds[len(cmds)-1])

	size := f.MeasureText("-7", 20)
	bbox := p.BBox()
	assert.GreaterOrEqual(t, bbox.LLx, topLeft.X-1)
	assert.LessOrEqual(t, bbox.URx, topLeft.X+size.X+1)
	assert.GreaterOrEqual(t, bbox.LLy, topLeft.Y-1)
	assert.LessOrEqual(t, bbox.URy, topLeft.Y+size.Y+1)

	closes := 0
	moves := 0
	for _, cmd := range cmds {
		switch cmd {
		case path.CmdMoveTo:
			moves++
		case path.CmdClose:
			closes++
		}
	}
	assert.Equal(t, moves, closes)

	for range f.Outline(" ", 20, topLeft) {
		t.Error("space has no outline")
	}
}

func TestXFaceCached(t *testing.T) {
	f := Default()
	a, err := f.XFace(20)
	require.NoError(t, err)
	b, err := f.XFace(20)
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := f.XFace(12)
	require.NoError(t, err)
	assert.NotSame(t, a, c)
}

func TestConcurrentMeasure(t *testing.T) {
	f := Default()
	want := f.MeasureText("-35", 20)

	var wg sync.WaitGroup
	results := make([]vec.Vec2, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.Outline("-35", 20, vec.Vec2{})
			results[i] = f.MeasureText("-35", 20)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := New([]byte("not a font"))
	assert.Error(t, err)
}
