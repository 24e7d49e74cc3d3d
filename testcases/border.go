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

// borderCases contain shapes which extend past the canvas edge.
// Only the visible cells are drawn.
var borderCases = []TestCase{
	{
		Name:   "circle_corner",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Circle{Center: cell(2, 2), Radius: 6},
		},
	},
	{
		Name:   "line_through",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			line(-5, -2, 25, 22),
		},
	},
	{
		Name:   "triangle_outside",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Triangle{A: cell(10, -10), B: cell(30, 10), C: cell(10, 30)},
		},
	},
}
