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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/cellraster"
)

// ctmCases draw paths through a transformation into cell coordinates.
var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Width:  32,
		Height: 32,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{
				Path: rectangle(0, 0, 10, 10),
				CTM:  matrix.Scale(2, 2).Translate(5, 5),
			},
		},
	},
	{
		Name:   "scale_half",
		Width:  32,
		Height: 32,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{
				Path: rectangle(0, 0, 40, 40),
				CTM:  matrix.Scale(0.5, 0.5).Translate(6, 6),
			},
		},
	},
	{
		Name:   "rotate_45deg",
		Width:  32,
		Height: 32,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{
				Path: rectangle(-8, -8, 8, 8),
				CTM:  matrix.RotateDeg(45).Translate(16, 16),
			},
		},
	},
	{
		Name:   "circle_to_ellipse",
		Width:  48,
		Height: 24,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{
				Path: circle(0, 0, 10),
				CTM:  matrix.Scale(2, 1).Translate(24, 12),
			},
		},
	},
}
