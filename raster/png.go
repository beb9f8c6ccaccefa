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
	"bufio"
	"fmt"
	"image/png"
	"os"

	"seehuhn.de/go/plane/export"
)

func init() {
	export.Register("png", newPNGFile)
}

// pngFile is an export backend which encodes the image as PNG on Close.
type pngFile struct {
	*Image
	path string
}

func newPNGFile(path string, width, height int, opts export.Options) (export.Backend, error) {
	img := NewImage(width, height, opts.Face)
	img.Clear(opts.Background)
	return &pngFile{Image: img, path: path}, nil
}

func (f *pngFile) Close() (err error) {
	fd, err := os.Create(f.path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(fd)
	if err := png.Encode(w, f.RGBA); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return w.Flush()
}
