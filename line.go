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

package cellraster

// DrawLine marks the cells of the segment from (x0, y0) to (x1, y1) using
// Bresenham's algorithm. An ink of 0 selects [DefaultInk].
//
// Exactly one cell is marked for every step along the major axis, so a
// segment covers max(|x1-x0|, |y1-y0|) + 1 cells, both endpoints included.
// The segment is always traversed towards increasing major coordinate,
// so swapping the endpoints marks the same cells.
func DrawLine(c *Canvas, x0, y0, x1, y1 int, ink byte) {
	logDropped("line", drawLine(c, x0, y0, x1, y1, inkOrDefault(ink)))
}

// drawLine returns the number of cells which fell outside the canvas.
//
// The error term is kept in units of 1/(2·major), so that the threshold
// "half a major step" is the integer major.
func drawLine(c *Canvas, x0, y0, x1, y1 int, ink byte) (dropped int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	if dx >= dy {
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		sy := 1
		if y1 < y0 {
			sy = -1
		}
		y := y0
		e := 0
		for x := x0; x <= x1; x++ {
			if !c.plot(x, y, ink) {
				dropped++
			}
			e += 2 * dy
			if e >= dx {
				e -= 2 * dx
				y += sy
			}
		}
		return dropped
	}

	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	sx := 1
	if x1 < x0 {
		sx = -1
	}
	x := x0
	e := 0
	for y := y0; y <= y1; y++ {
		if !c.plot(x, y, ink) {
			dropped++
		}
		e += 2 * dx
		if e >= dy {
			e -= 2 * dy
			x += sx
		}
	}
	return dropped
}

func inkOrDefault(ink byte) byte {
	if ink == 0 {
		return DefaultInk
	}
	return ink
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
