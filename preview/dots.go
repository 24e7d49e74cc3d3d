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
	"io"

	"github.com/gogpu/gg"

	"seehuhn.de/go/cellraster"
)

// dotRadius is the disc radius relative to the cell size.
const dotRadius = 0.4

// WriteDotsPNG writes the canvas as a PNG image in which every ink cell is
// drawn as an anti-aliased disc, like the dots of a matrix display.
// A nil opt selects the defaults.
func WriteDotsPNG(w io.Writer, c *cellraster.Canvas, opt *Options) error {
	s := float64(opt.scale())

	dc := gg.NewContext(c.Width()*opt.scale(), c.Height()*opt.scale())
	defer dc.Close()

	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)
	n := 0
	for p := range c.Marks() {
		dc.DrawCircle((float64(p.X)+0.5)*s, (float64(p.Y)+0.5)*s, dotRadius*s)
		n++
	}
	if n > 0 {
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("preview: filling dots: %w", err)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("preview: encoding PNG: %w", err)
	}
	return nil
}
