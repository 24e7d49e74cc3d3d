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

// Package testcases contains reference scenes for the cellraster package.
package testcases

import (
	"fmt"
	"image"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cellraster"
)

// TestCase defines a single scene.
type TestCase struct {
	Name   string             // lowercase a-z, digits and _ only
	Width  int                // canvas width in cells
	Height int                // canvas height in cells
	Shapes []cellraster.Shape // drawn in order onto a cleared canvas
}

// Render draws the scene onto a new canvas.
func (tc TestCase) Render() (*cellraster.Canvas, error) {
	c, err := cellraster.New(tc.Width, tc.Height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}
	tc.DrawOn(c)
	return c, nil
}

// DrawOn clears c and draws the scene onto it.
func (tc TestCase) DrawOn(c *cellraster.Canvas) {
	c.Clear()
	for _, s := range tc.Shapes {
		s.Draw(c)
	}
}

// cell is a helper to create an image.Point from x, y coordinates.
func cell(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// line is a helper for a segment drawn with the default ink.
func line(x0, y0, x1, y1 int) cellraster.Line {
	return cellraster.Line{P0: cell(x0, y0), P1: cell(x1, y1)}
}
