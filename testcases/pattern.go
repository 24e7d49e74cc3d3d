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

import (
	"image"

	"seehuhn.de/go/cellraster"
)

var patternCases = []TestCase{
	{
		// both diagonals and both medians of the square [0, 10]²
		Name:   "cross",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			line(0, 0, 10, 10),
			line(0, 10, 10, 0),
			line(0, 5, 10, 5),
			line(5, 0, 5, 10),
		},
	},
	{
		Name:   "zigzag",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Polygon{
				Vertices: []image.Point{
					cell(1, 18), cell(4, 2), cell(7, 18), cell(10, 2),
					cell(13, 18), cell(16, 2), cell(18, 18),
				},
			},
		},
	},
	{
		Name:   "frame",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Polygon{
				Vertices: []image.Point{cell(0, 0), cell(19, 0), cell(19, 19), cell(0, 19)},
				Closed:   true,
				Ink:      '#',
			},
			cellraster.Circle{Center: cell(10, 10), Radius: 4, Ink: 'o'},
		},
	},
}
