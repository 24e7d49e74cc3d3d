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

// subpathCases contain paths with more than one subpath. Every subpath is
// traced on its own; overlapping outlines simply share cells.
var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Width:  64,
		Height: 64,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: twoTriangles(16, 32, 48, 32, 12)},
		},
	},
	{
		Name:   "overlapping_rectangles",
		Width:  64,
		Height: 64,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54)},
		},
	},
	{
		Name:   "ring",
		Width:  64,
		Height: 64,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: ringShape(32, 32, 25, 12)},
		},
	},
	{
		Name:   "multiple_rings",
		Width:  128,
		Height: 128,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: multipleRings(64, 64)},
		},
	},
	{
		Name:   "many_small_shapes",
		Width:  128,
		Height: 128,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: manySmallShapes(8, 8)},
		},
	},
	{
		// the first subpath lies completely outside and is skipped
		Name:   "one_hidden",
		Width:  32,
		Height: 32,
		Shapes: []cellraster.Shape{
			cellraster.PathShape{Path: twoTriangles(-40, -40, 16, 16, 10)},
		},
	},
}

// twoTriangles builds two disjoint triangles of the given half size.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	p := &path.Data{}
	for _, c := range [][2]float64{{cx1, cy1}, {cx2, cy2}} {
		p = p.
			MoveTo(pt(c[0], c[1]-size)).
			LineTo(pt(c[0]+size, c[1]+size)).
			LineTo(pt(c[0]-size, c[1]+size)).
			Close()
	}
	return p
}

// overlappingRectangles builds two overlapping rectangles.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *path.Data {
	p := addRectangle(&path.Data{}, x1a, y1a, x2a, y2a)
	return addRectangle(p, x1b, y1b, x2b, y2b)
}

// ringShape builds two concentric squares.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	return addRing(&path.Data{}, cx, cy, outerSize, innerSize)
}

func addRing(p *path.Data, cx, cy, outerSize, innerSize float64) *path.Data {
	p = addRectangle(p, cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	return addRectangle(p, cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
}

// multipleRings builds three square rings around (cx, cy).
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	p := &path.Data{}
	for _, ring := range rings {
		p = addRing(p, ring.cx, ring.cy, ring.outer, ring.inner)
	}
	return p
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) *path.Data {
	const size = 5.0
	const spacing = 14.0

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			p = p.
				MoveTo(pt(cx, cy-size)).
				LineTo(pt(cx+size, cy+size)).
				LineTo(pt(cx-size, cy+size)).
				Close()
		}
	}
	return p
}
