// seehuhn.de/go/cellraster - a character-cell rasteriser
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

// Package cellraster draws lines, circles and triangles onto a grid of
// character cells.
//
// A [Canvas] is a fixed-size grid where every cell holds one byte, either
// [Empty] or an ink symbol. The drawing functions [DrawLine], [DrawCircle],
// [DrawTriangle] and [DrawPolyline] select cells with integer decision
// procedures (Bresenham and midpoint circle), so that the same call on a
// cleared canvas always marks the same cells. A [Tracer] draws vector paths
// from seehuhn.de/go/geom/path as connected lines.
//
// Cells which fall outside the canvas are silently dropped by all drawing
// functions. This way a shape which straddles the border keeps its visible
// part. Only [Canvas.Set], the direct user-facing write, reports
// [ErrOutOfBounds].
package cellraster

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"
	"image"
	"io"
	"iter"
	"strings"

	"seehuhn.de/go/geom/rect"
)

const (
	// Empty is the symbol of a cell which has not been drawn on.
	Empty byte = ' '

	// DefaultInk is used by the drawing functions when the ink is 0.
	DefaultInk byte = '*'
)

var (
	// ErrInvalidSize is returned by [New] when a dimension is not positive.
	ErrInvalidSize = errors.New("cellraster: invalid canvas size")

	// ErrOutOfBounds is returned by [Canvas.Set] for coordinates outside
	// the canvas.
	ErrOutOfBounds = errors.New("cellraster: coordinates out of bounds")
)

// Canvas is a grid of character cells. Cell (0, 0) is the top-left corner,
// x grows to the right and y grows downwards.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	cells  []byte // row-major, len(cells) == width*height
}

// New allocates a canvas with all cells set to [Empty].
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
	}
	c.Clear()
	return c, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas area in device coordinates.
func (c *Canvas) Bounds() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(c.width),
		URy: float64(c.height),
	}
}

// Clear resets every cell to [Empty].
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Empty
	}
}

// Set writes ink into the cell at (x, y).
// If the cell lies outside the canvas, the canvas is not modified and
// an error wrapping [ErrOutOfBounds] is returned.
func (c *Canvas) Set(x, y int, ink byte) error {
	if !c.contains(x, y) {
		return fmt.Errorf("%w: (%d, %d) not in %dx%d",
			ErrOutOfBounds, x, y, c.width, c.height)
	}
	c.cells[y*c.width+x] = ink
	return nil
}

// plot is the write used by the drawing functions.
// Cells outside the canvas are ignored and false is returned.
func (c *Canvas) plot(x, y int, ink byte) bool {
	if !c.contains(x, y) {
		return false
	}
	c.cells[y*c.width+x] = ink
	return true
}

func (c *Canvas) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// At returns the symbol stored at (x, y).
// Cells outside the canvas read as [Empty].
func (c *Canvas) At(x, y int) byte {
	if !c.contains(x, y) {
		return Empty
	}
	return c.cells[y*c.width+x]
}

// Marks iterates over all non-empty cells in row-major order.
func (c *Canvas) Marks() iter.Seq2[image.Point, byte] {
	return func(yield func(image.Point, byte) bool) {
		for i, ink := range c.cells {
			if ink == Empty {
				continue
			}
			if !yield(image.Point{X: i % c.width, Y: i / c.width}, ink) {
				return
			}
		}
	}
}

// Equal reports whether both canvases have the same size and contents.
// A canvas is never equal to nil.
func (c *Canvas) Equal(other *Canvas) bool {
	if other == nil {
		return false
	}
	if c.width != other.width || c.height != other.height {
		return false
	}
	return string(c.cells) == string(other.cells)
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	cells := make([]byte, len(c.cells))
	copy(cells, c.cells)
	return &Canvas{width: c.width, height: c.height, cells: cells}
}

// String returns the canvas as a bordered text block:
//
//	+-----+
//	|  *  |
//	+-----+
//
// Every line, including the last, is terminated by a newline.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.width + 3) * (c.height + 2))
	c.writeText(&b)
	return b.String()
}

// WriteTo writes the text form returned by [Canvas.String] to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

func (c *Canvas) writeText(b *strings.Builder) {
	rule := "+" + strings.Repeat("-", c.width) + "+\n"
	b.WriteString(rule)
	for y := range c.height {
		b.WriteByte('|')
		b.Write(c.cells[y*c.width : (y+1)*c.width])
		b.WriteString("|\n")
	}
	b.WriteString(rule)
}
