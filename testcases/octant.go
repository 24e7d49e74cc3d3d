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

package testcases

import "seehuhn.de/go/cellraster"

// octantCases sweep a segment starting at the centre (10, 10) of a 20x20
// canvas once around the compass, three segments per octant.
var octantCases = []TestCase{
	// ========================================
	// Octants 1 and 2: right and down
	// ========================================
	octant("one_horizontal", 19, 10),
	octant("one_shallow", 17, 12),
	octant("one_diagonal", 14, 14),
	octant("two_diagonal", 14, 15),
	octant("two_steep", 12, 17),
	octant("two_vertical", 10, 19),

	// ========================================
	// Octants 3 and 4: down and left
	// ========================================
	octant("three_vertical", 10, 19),
	octant("three_steep", 8, 17),
	octant("three_diagonal", 5, 15),
	octant("four_diagonal", 4, 14),
	octant("four_shallow", 2, 12),
	octant("four_horizontal", 0, 10),

	// ========================================
	// Octants 5 and 6: left and up
	// ========================================
	octant("five_horizontal", 0, 10),
	octant("five_shallow", 2, 8),
	octant("five_diagonal", 5, 5),
	octant("six_diagonal", 7, 3),
	octant("six_steep", 8, 2),
	octant("six_vertical", 10, 0),

	// ========================================
	// Octants 7 and 8: up and right
	// ========================================
	octant("seven_vertical", 10, 0),
	octant("seven_steep", 12, 2),
	octant("seven_diagonal", 15, 5),
	octant("eight_diagonal", 17, 7),
	octant("eight_shallow", 18, 8),
	octant("eight_horizontal", 19, 10),
}

// octant builds a 20x20 scene with one segment from (10, 10) to (x, y).
func octant(name string, x, y int) TestCase {
	return TestCase{
		Name:   name,
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{line(10, 10, x, y)},
	}
}
