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

package raster

import (
	"image/color"
	"math"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plane/export"
	"seehuhn.de/go/plane/grid"
)

var (
	background = color.NRGBA{R: 25, G: 25, B: 25, A: 255}
	red        = color.NRGBA{R: 230, G: 41, B: 55, A: 255}
)

func rgba(img *Image, x, y int) color.RGBA {
	return img.RGBA.RGBAAt(x, y)
}

func TestClear(t *testing.T) {
	img := NewImage(5, 4, nil)
	img.Clear(background)
	for y := range 4 {
		for x := range 5 {
			assert.Equal(t, color.RGBA{R: 25, G: 25, B: 25, A: 255}, rgba(img, x, y))
		}
	}
}

func TestFilledRect(t *testing.T) {
	img := NewImage(10, 10, nil)
	img.Clear(background)
	img.DrawFilledRect(vec.Vec2{X: 2, Y: 3}, vec.Vec2{X: 4, Y: 2}, red)

	assert.Equal(t, color.RGBA{R: 230, G: 41, B: 55, A: 255}, rgba(img, 2, 3))
	assert.Equal(t, color.RGBA{R: 230, G: 41, B: 55, A: 255}, rgba(img, 5, 4))
	assert.Equal(t, color.RGBA{R: 25, G: 25, B: 25, A: 255}, rgba(img, 6, 4))
	assert.Equal(t, color.RGBA{R: 25, G: 25, B: 25, A: 255}, rgba(img, 2, 5))
}

func TestTranslucentLine(t *testing.T) {
	style := grid.DefaultStyle()
	img := NewImage(10, 10, nil)
	img.Clear(background)
	img.DrawLine(vec.Vec2{X: 0, Y: 4.5}, vec.Vec2{X: 10, Y: 4.5}, 1, style.Grid)

	a := 125.0 / 255
	want := 128*a + 25*(1-a)
	got := rgba(img, 3, 4)
	assert.InDelta(t, want, float64(got.R), 1)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, uint8(255), got.A)
	assert.Equal(t, uint8(25), rgba(img, 3, 3).R)
	assert.Equal(t, uint8(25), rgba(img, 3, 5).R)
}

func TestCircleAndText(t *testing.T) {
	img := NewImage(60, 40, nil)
	img.Clear(background)

	img.DrawCircle(vec.Vec2{X: 10.5, Y: 10.5}, 3, red)
	assert.Equal(t, color.RGBA{R: 230, G: 41, B: 55, A: 255}, rgba(img, 10, 10))
	assert.Equal(t, uint8(25), rgba(img, 10, 15).R)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	pos := vec.Vec2{X: 20, Y: 5}
	img.DrawText("-12", pos, 20, white)
	size := img.MeasureText("-12", 20)

	lit := 0
	for y := range 40 {
		for x := range 60 {
			if rgba(img, x, y).G <= 41 || (x >= 7 && x <= 14 && y >= 7 && y <= 14) {
				continue
			}
			lit++
			assert.GreaterOrEqual(t, float64(x), pos.X-1)
			assert.LessOrEqual(t, float64(x), pos.X+size.X+1)
			assert.GreaterOrEqual(t, float64(y), pos.Y-1)
			assert.LessOrEqual(t, float64(y), pos.Y+size.Y+1)
		}
	}
	assert.Greater(t, lit, 20)
}

func TestPNGBackend(t *testing.T) {
	require.Contains(t, export.Backends(), "png")

	fname := filepath.Join(t.TempDir(), "out.png")
	b, err := export.NewBackend("png", fname, 40, 30, export.Options{Background: background})
	require.NoError(t, err)
	b.DrawFilledRect(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 5, Y: 5}, red)
	require.NoError(t, b.Close())

	fd, err := os.Open(fname)
	require.NoError(t, err)
	defer fd.Close()
	decoded, err := png.Decode(fd)
	require.NoError(t, err)

	assert.Equal(t, 40, decoded.Bounds().Dx())
	assert.Equal(t, 30, decoded.Bounds().Dy())
	r, g, b2, a := decoded.At(12, 12).RGBA()
	assert.Equal(t, [4]uint32{230, 41, 55, 255}, [4]uint32{r >> 8, g >> 8, b2 >> 8, a >> 8})
	r, _, _, _ = decoded.At(0, 0).RGBA()
	assert.Equal(t, uint32(25), r>>8)
}

func TestPolylineJoin(t *testing.T) {
	pts := []vec.Vec2{{X: 2, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: 15}}

	img := NewImage(20, 20, nil)
	img.Clear(background)
	img.DrawLine(pts[0], pts[1], 2, red)
	img.DrawLine(pts[1], pts[2], 2, red)
	assert.InDelta(t, 25, float64(rgba(img, 10, 4).R), 1)

	// the round join fills about a quarter disc of the outer corner pixel
	img.Clear(background)
	img.DrawPolyline(pts, 2, red)
	want := 230*math.Pi/4 + 25*(1-math.Pi/4)
	assert.InDelta(t, want, float64(rgba(img, 10, 4).R), 8)
	assert.Equal(t, color.RGBA{R: 230, G: 41, B: 55, A: 255}, rgba(img, 6, 5))
	assert.Equal(t, color.RGBA{R: 230, G: 41, B: 55, A: 255}, rgba(img, 10, 10))

	// round caps extend past both ends
	assert.Greater(t, rgba(img, 1, 5).R, uint8(25))
	assert.Greater(t, rgba(img, 10, 15).R, uint8(25))
}
