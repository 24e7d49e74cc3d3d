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

var circleCases = []TestCase{
	{
		Name:   "radius_five",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Circle{Center: cell(10, 10), Radius: 5},
		},
	},
	{
		Name:   "radius_nine",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Circle{Center: cell(10, 10), Radius: 9},
		},
	},
	{
		Name:   "radius_zero",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Circle{Center: cell(10, 10), Radius: 0},
		},
	},
	{
		Name:   "concentric",
		Width:  20,
		Height: 20,
		Shapes: []cellraster.Shape{
			cellraster.Circle{Center: cell(10, 10), Radius: 3, Ink: 'o'},
			cellraster.Circle{Center: cell(10, 10), Radius: 6, Ink: '+'},
			cellraster.Circle{Center: cell(10, 10), Radius: 9, Ink: '#'},
		},
	},
}
