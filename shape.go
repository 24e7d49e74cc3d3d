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

package cellraster

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// DrawTriangle marks the outline of the triangle with the given vertices,
// as the three segments a→b, b→c and c→a. The interior is not filled.
// Degenerate triangles are drawn like any other.
func DrawTriangle(c *Canvas, x1, y1, x2, y2, x3, y3 int, ink byte) {
	ink = inkOrDefault(ink)
	dropped := drawLine(c, x1, y1, x2, y2, ink)
	dropped += drawLine(c, x2, y2, x3, y3, ink)
	dropped += drawLine(c, x3, y3, x1, y1, ink)
	logDropped("triangle", dropped)
}

// DrawPolyline marks the segments between consecutive points.
// If closed is true, the last point is joined back to the first.
// A single point marks one cell; an empty slice marks nothing.
func DrawPolyline(c *Canvas, pts []image.Point, closed bool, ink byte) {
	if len(pts) == 0 {
		return
	}
	logDropped("polyline", drawPolyline(c, pts, closed, inkOrDefault(ink)))
}

func drawPolyline(c *Canvas, pts []image.Point, closed bool, ink byte) (dropped int) {
	if len(pts) == 1 {
		if !c.plot(pts[0].X, pts[0].Y, ink) {
			dropped++
		}
		return dropped
	}
	for i := 1; i < len(pts); i++ {
		dropped += drawLine(c, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, ink)
	}
	if closed {
		last := pts[len(pts)-1]
		dropped += drawLine(c, last.X, last.Y, pts[0].X, pts[0].Y, ink)
	}
	return dropped
}

// Shape is a primitive which can be drawn onto a canvas.
type Shape interface {
	Draw(c *Canvas)
}

// Line is a segment between two cells.
type Line struct {
	P0, P1 image.Point
	Ink    byte // 0 means DefaultInk
}

// Draw implements the [Shape] interface.
func (l Line) Draw(c *Canvas) {
	DrawLine(c, l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, l.Ink)
}

// Circle is a circle outline.
type Circle struct {
	Center image.Point
	Radius int
	Ink    byte // 0 means DefaultInk
}

// Draw implements the [Shape] interface.
func (ci Circle) Draw(c *Canvas) {
	DrawCircle(c, ci.Center.X, ci.Center.Y, ci.Radius, ci.Ink)
}

// Triangle is a wireframe triangle.
type Triangle struct {
	A, B, C image.Point
	Ink     byte // 0 means DefaultInk
}

// Draw implements the [Shape] interface.
func (t Triangle) Draw(c *Canvas) {
	DrawTriangle(c, t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y, t.Ink)
}

// Polygon is a polyline, optionally closed.
type Polygon struct {
	Vertices []image.Point
	Closed   bool
	Ink      byte // 0 means DefaultInk
}

// Draw implements the [Shape] interface.
func (p Polygon) Draw(c *Canvas) {
	DrawPolyline(c, p.Vertices, p.Closed, p.Ink)
}

// PathShape is a vector path, traced with a fresh [Tracer].
type PathShape struct {
	Path *path.Data // nil draws nothing

	// CTM maps path coordinates to cell coordinates.
	// The zero value means the identity.
	CTM matrix.Matrix

	Ink byte // 0 means DefaultInk
}

// Draw implements the [Shape] interface.
func (p PathShape) Draw(c *Canvas) {
	t := NewTracer()
	if p.CTM != (matrix.Matrix{}) {
		t.CTM = p.CTM
	}
	t.Trace(c, p.Path, p.Ink)
}

var (
	_ Shape = Line{}
	_ Shape = Circle{}
	_ Shape = Triangle{}
	_ Shape = Polygon{}
	_ Shape = PathShape{}
)
