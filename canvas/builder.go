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

package canvas

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Builder collects the segments of a path in two flat slices.
// The zero value is an empty path.
type Builder struct {
	Cmds   []path.Command
	Coords []vec.Vec2
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(p vec.Vec2) *Builder {
	b.Cmds = append(b.Cmds, path.CmdMoveTo)
	b.Coords = append(b.Coords, p)
	return b
}

// LineTo adds a straight segment.
func (b *Builder) LineTo(p vec.Vec2) *Builder {
	b.Cmds = append(b.Cmds, path.CmdLineTo)
	b.Coords = append(b.Coords, p)
	return b
}

// QuadTo adds a quadratic Bezier segment with control point c.
func (b *Builder) QuadTo(c, p vec.Vec2) *Builder {
	b.Cmds = append(b.Cmds, path.CmdQuadTo)
	b.Coords = append(b.Coords, c, p)
	return b
}

// CubeTo adds a cubic Bezier segment with control points c1 and c2.
func (b *Builder) CubeTo(c1, c2, p vec.Vec2) *Builder {
	b.Cmds = append(b.Cmds, path.CmdCubeTo)
	b.Coords = append(b.Coords, c1, c2, p)
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	b.Cmds = append(b.Cmds, path.CmdClose)
	return b
}

// Reset empties the path, keeping the allocated storage.
func (b *Builder) Reset() {
	b.Cmds = b.Cmds[:0]
	b.Coords = b.Coords[:0]
}

// Path returns an iterator over the segments. The point slices passed to
// the iterator alias the storage of b.
func (b *Builder) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		i := 0
		for _, cmd := range b.Cmds {
			n := numPoints(cmd)
			if !yield(cmd, b.Coords[i:i+n]) {
				return
			}
			i += n
		}
	}
}

func numPoints(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}
