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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/cellraster"
)

// largeCases use canvases with many cells, and shapes which span most of
// them.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Width:  256,
		Height: 256,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: rectangle(25, 25, 231, 231)},
		},
	},
	{
		Name:   "large_concentric",
		Width:  256,
		Height: 256,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: ringShape(128, 128, 100, 50)},
			cellraster.Circle{Center: cell(128, 128), Radius: 75, Ink: 'o'},
		},
	},
	{
		Name:   "large_diamond",
		Width:  256,
		Height: 256,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: diamond(128, 128, 90)},
		},
	},
	{
		Name:   "large_grid",
		Width:  256,
		Height: 256,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: rectangleGrid(8, 8, 256, 256, 4)},
		},
	},
	{
		// the left and right edges are outside the canvas
		Name:   "large_clipped",
		Width:  256,
		Height: 256,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: rectangle(-50, 50, 306, 200)},
			cellraster.Circle{Center: cell(128, 128), Radius: 150},
		},
	},
}

// diamond builds a square standing on one corner, with the given
// distance from the centre to each corner.
func diamond(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy+r)).
		LineTo(pt(cx-r, cy)).
		Close()
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			p = addRectangle(p,
				float64(col)*cellW+gap, float64(row)*cellH+gap,
				float64(col+1)*cellW-gap, float64(row+1)*cellH-gap)
		}
	}
	return p
}
