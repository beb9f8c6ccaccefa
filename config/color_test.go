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

package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000", color.NRGBA{0, 0, 0, 255}},
		{"#f80", color.NRGBA{255, 136, 0, 255}},
		{"e62937", color.NRGBA{230, 41, 55, 255}},
		{"#8080807d", color.NRGBA{128, 128, 128, 125}},
		{" #FFFFFF ", color.NRGBA{255, 255, 255, 255}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#gggggg", "#+12345"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#e62937", FormatColor(color.NRGBA{230, 41, 55, 255}))
	assert.Equal(t, "#8080807d", FormatColor(color.NRGBA{128, 128, 128, 125}))

	for _, c := range []color.NRGBA{{1, 2, 3, 4}, {250, 0, 17, 255}} {
		got, err := ParseColor(FormatColor(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
