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

// DrawCircle marks the outline of the circle with centre (xc, yc) and
// radius r, using the midpoint circle algorithm. An ink of 0 selects
// [DefaultInk]. A radius of 0 marks the centre cell, a negative radius
// marks nothing.
//
// Only the octant from (0, r) to the diagonal is computed; the other seven
// octants are obtained by reflection, so the outline is symmetric under
// (x, y) → (±x, ±y) and (x, y) → (±y, ±x) relative to the centre.
func DrawCircle(c *Canvas, xc, yc, r int, ink byte) {
	if r < 0 {
		return
	}
	logDropped("circle", drawCircle(c, xc, yc, r, inkOrDefault(ink)))
}

func drawCircle(c *Canvas, xc, yc, r int, ink byte) (dropped int) {
	x, y := 0, r
	d := 3 - 2*r
	for {
		dropped += plotOctants(c, xc, yc, x, y, ink)
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
		if x > y {
			return dropped
		}
	}
}

// plotOctants marks the eight reflections of (x, y) around (xc, yc).
// Reflections which coincide (on the axes and the diagonals) are written
// more than once but counted only once when dropped.
func plotOctants(c *Canvas, xc, yc, x, y int, ink byte) (dropped int) {
	pts := [8][2]int{
		{xc + x, yc + y},
		{xc + y, yc + x},
		{xc + y, yc - x},
		{xc + x, yc - y},
		{xc - x, yc - y},
		{xc - y, yc - x},
		{xc - y, yc + x},
		{xc - x, yc + y},
	}
	for i, p := range pts {
		if c.plot(p[0], p[1], ink) {
			continue
		}
		if !seenBefore(pts[:i], p) {
			dropped++
		}
	}
	return dropped
}

func seenBefore(pts [][2]int, p [2]int) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
