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

package preview

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/cellraster"
)

// WritePDF writes the canvas to a single-page PDF file.
// Every ink cell becomes a filled square of opt.Scale points.
// A nil opt selects the defaults.
func WritePDF(fileName string, c *cellraster.Canvas, opt *Options) error {
	s := float64(opt.scale())
	w := float64(c.Width())
	h := float64(c.Height())

	paper := &pdf.Rectangle{
		URx: w * s,
		URy: h * s,
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	// PDF origin is bottom-left; canvas rows count from the top.
	// After this, one unit is one cell.
	page.Transform(matrix.Matrix{s, 0, 0, -s, 0, h * s})

	page.SetFillColor(color.DeviceGray(0))
	n := 0
	for p := range c.Marks() {
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
		n++
	}
	if n > 0 {
		page.Fill()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
