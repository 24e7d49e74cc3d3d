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

// precisionCases check how path coordinates snap to cells. A point
// belongs to the cell containing it, so any offset within [0, 1) gives
// the same cells.
var precisionCases = []TestCase{
	offsetCase("subpixel_offset_00", 0.0),
	offsetCase("subpixel_offset_25", 0.25),
	offsetCase("subpixel_offset_50", 0.5),
	offsetCase("subpixel_offset_75", 0.75),
	{
		Name:   "line_y_integer",
		Width:  64,
		Height: 64,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: horizontalLineAt(5, 10.0, 59)},
		},
	},
	{
		Name:   "line_y_almost_next",
		Width:  64,
		Height: 64,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: horizontalLineAt(5, 10.999, 59)},
		},
	},
	{
		Name:   "large_coord_centered",
		Width:  64,
		Height: 64,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: largeOffsetRectangle(1000, 1000, 20)},
		},
	},
	{
		Name:   "small_shape_large_offset",
		Width:  64,
		Height: 64,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: largeOffsetRectangle(10000, 10000, 2)},
		},
	},
	{
		Name:   "float64_precision",
		Width:  64,
		Height: 64,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: float64PrecisionShape()},
		},
	},
}

// offsetCase builds a 24x24 square at (20, 20), shifted by offset in both
// directions.
func offsetCase(name string, offset float64) TestCase {
	return TestCase{
		Name:   name,
		Width:  64,
		Height: 64,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: rectangle(20+offset, 20+offset, 44+offset, 44+offset)},
		},
	}
}

// horizontalLineAt builds a horizontal line segment at a specific y position.
func horizontalLineAt(x1, y, x2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y)).
		LineTo(pt(x2, y))
}

// largeOffsetRectangle builds a square which is computed around (cx, cy)
// and then translated back to the centre (32, 32) of the canvas.
func largeOffsetRectangle(cx, cy, size float64) *path.Data {
	dx := 32 - cx
	dy := 32 - cy

	return rectangle(
		cx-size/2+dx, cy-size/2+dy,
		cx+size/2+dx, cy+size/2+dy)
}

// float64PrecisionShape builds a square whose coordinates differ only in
// the low bits of a float64.
func float64PrecisionShape() *path.Data {
	const base = 32.0
	const delta1 = 0.123456789012345
	const delta2 = 0.123456789012346

	return rectangle(
		base-10+delta1, base-10+delta1,
		base+10+delta2, base+10+delta2)
}
