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

package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plane/label"
)

// screen draws onto an ebiten image.
type screen struct {
	dst  *ebiten.Image
	face *label.Face
	log  *logrus.Entry

	faces      map[float64]*text.GoXFace
	faceFailed bool
}

func (s *screen) DrawLine(p0, p1 vec.Vec2, thickness float64, c color.NRGBA) {
	vector.StrokeLine(s.dst,
		float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y),
		float32(thickness), c, true)
}

func (s *screen) DrawFilledRect(pos, size vec.Vec2, c color.NRGBA) {
	vector.DrawFilledRect(s.dst,
		float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y),
		c, false)
}

func (s *screen) DrawCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.dst,
		float32(center.X), float32(center.Y), float32(radius), c, true)
}

// DrawText draws text with its top-left corner at pos.
func (s *screen) DrawText(msg string, pos vec.Vec2, size float64, c color.NRGBA) {
	face := s.textFace(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, msg, face, op)
}

// textFace returns the cached face for the given size, or nil if the
// font cannot be used.
func (s *screen) textFace(size float64) *text.GoXFace {
	if face, ok := s.faces[size]; ok {
		return face
	}
	xf, err := s.face.XFace(size)
	if err != nil {
		if !s.faceFailed {
			s.log.WithError(err).Error("cannot create font face, labels disabled")
			s.faceFailed = true
		}
		return nil
	}
	if s.faces == nil {
		s.faces = make(map[float64]*text.GoXFace)
	}
	face := text.NewGoXFace(xf)
	s.faces[size] = face
	return face
}

func (s *screen) MeasureText(msg string, size float64) vec.Vec2 {
	return s.face.MeasureText(msg, size)
}
