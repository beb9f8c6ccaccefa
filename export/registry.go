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

// Package export writes views of the coordinate plane to files.
//
// File formats are provided by backends, which register themselves from
// init functions of their packages:
//
//	import _ "seehuhn.de/go/plane/raster" // "png"
//	import _ "seehuhn.de/go/plane/pdfout" // "pdf"
//
// The backend name doubles as the file name extension.
package export

import (
	"fmt"
	"image/color"
	"slices"
	"sync"

	"seehuhn.de/go/plane/canvas"
	"seehuhn.de/go/plane/label"
)

// Backend is a canvas which is written to a file when closed.
type Backend interface {
	canvas.Canvas

	// Close writes the output file. The canvas must not be used
	// afterwards.
	Close() error
}

// Options are passed to backend factories.
type Options struct {
	// Background fills the whole canvas before drawing starts.
	Background color.NRGBA

	// Face is used to measure and draw text. Nil means [label.Default].
	Face *label.Face
}

// Factory creates a backend writing a width×height pixel image to path.
type Factory func(path string, width, height int, opts Options) (Backend, error)

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
)

// Register makes a backend available under the given name.
// It panics if factory is nil or the name is already taken.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("export: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("export: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend. It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates an output file using the named backend.
func NewBackend(name, path string, width, height int, opts Options) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("export: unknown backend %q (forgotten import?)", name)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("export: invalid size %dx%d", width, height)
	}
	if opts.Face == nil {
		opts.Face = label.Default()
	}
	return factory(path, width, height, opts)
}

// Backends returns the sorted names of all registered backends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
