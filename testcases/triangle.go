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

var triangleCases = []TestCase{
	{
		Name:   "right_angle",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Triangle{A: cell(0, 0), B: cell(10, 0), C: cell(10, 10)},
		},
	},
	{
		Name:   "isosceles",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Triangle{A: cell(0, 0), B: cell(0, 10), C: cell(5, 5)},
		},
	},
	{
		Name:   "obtuse",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Triangle{A: cell(0, 0), B: cell(16, 0), C: cell(10, 10)},
		},
	},
	{
		Name:   "collinear",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Triangle{A: cell(2, 2), B: cell(9, 9), C: cell(16, 16)},
		},
	},
}
