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

// Package preview renders a cellraster canvas as an image or a PDF page.
//
// Every ink cell becomes a black square or disc on a white background.
// The ink symbol itself is not shown; use [cellraster.Canvas.String] for
// the text form.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"seehuhn.de/go/cellraster"
)

// defaultScale is the cell size used when no options are given.
const defaultScale = 8

// Options controls the size of the output.
type Options struct {
	// Scale is the edge length of one cell, in pixels for PNG output and
	// in PDF points for PDF output. Values below 1 select the default of 8.
	Scale int
}

func (opt *Options) scale() int {
	if opt == nil || opt.Scale < 1 {
		return defaultScale
	}
	return opt.Scale
}

// Image returns the canvas as a grayscale image with one pixel per cell.
// Ink cells are black, empty cells are white.
func Image(c *cellraster.Canvas) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, c.Width(), c.Height()))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	for p := range c.Marks() {
		img.SetGray(p.X, p.Y, color.Gray{Y: 0})
	}
	return img
}

// WritePNG writes the canvas as a PNG image, with every cell enlarged to a
// square of opt.Scale pixels. A nil opt selects the defaults.
func WritePNG(w io.Writer, c *cellraster.Canvas, opt *Options) error {
	s := opt.scale()
	src := Image(c)
	dst := image.NewGray(image.Rect(0, 0, c.Width()*s, c.Height()*s))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("preview: encoding PNG: %w", err)
	}
	return nil
}
