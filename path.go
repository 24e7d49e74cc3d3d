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
	"context"
	"image"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// defaultFlatness is the default curve flattening tolerance, in cells.
const defaultFlatness = 0.25

// Tracer draws vector paths as connected one-cell lines.
// Path coordinates are mapped through CTM; the device point (x, y) belongs
// to the cell (⌊x⌋, ⌊y⌋). Curves are flattened into line segments first.
//
// A Tracer can be reused for many paths. It is not safe for concurrent use.
type Tracer struct {
	// CTM transforms from path coordinates to cell coordinates.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in cells.
	// Values which are not positive select the default of 0.25.
	Flatness float64

	pts      []image.Point // cells of the current subpath
	drawing  bool          // current subpath has a drawing command
	segments int           // line segments emitted for the current path
	skipped  int           // subpaths culled for the current path
	dropped  int           // cells outside the canvas for the current path
}

// NewTracer returns a Tracer with the identity CTM and the default flatness.
func NewTracer() *Tracer {
	return &Tracer{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

// Trace draws the outline of p onto c. An ink of 0 selects [DefaultInk].
//
// Every subpath is drawn as a polyline through the cells of its flattened
// vertices; ClosePath adds the segment back to the subpath start.
// A subpath consisting of a lone MoveTo draws nothing. Subpaths lying
// completely outside the canvas are skipped. A nil path draws nothing.
func (t *Tracer) Trace(c *Canvas, p *path.Data, ink byte) {
	ink = inkOrDefault(ink)
	clip := c.Bounds()

	t.pts = t.pts[:0]
	t.drawing = false
	t.segments = 0
	t.skipped = 0
	t.dropped = 0
	if p == nil {
		return
	}

	var current vec.Vec2 // current point (path space)
	var subpath vec.Vec2 // subpath start (path space)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			t.finishSubpath(c, clip, false, ink)
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			t.addSegment(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			t.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], t.addSegment)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			t.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], t.addSegment)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			t.finishSubpath(c, clip, true, ink)
			current = subpath
		}
	}
	t.finishSubpath(c, clip, false, ink)

	l := Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("path traced",
			slog.Int("segments", t.segments),
			slog.Int("skipped", t.skipped),
			slog.Int("dropped", t.dropped))
	}
}

// addSegment appends the cell of b to the current subpath.
// The first segment of a subpath also contributes the cell of a.
func (t *Tracer) addSegment(a, b vec.Vec2) {
	t.drawing = true
	if len(t.pts) == 0 {
		t.pts = append(t.pts, t.cell(a))
	}
	q := t.cell(b)
	if q == t.pts[len(t.pts)-1] {
		return
	}
	t.pts = append(t.pts, q)
	t.segments++
}

// finishSubpath draws the collected cells and starts a new subpath.
func (t *Tracer) finishSubpath(c *Canvas, clip rect.Rect, closed bool, ink byte) {
	defer func() {
		t.pts = t.pts[:0]
		t.drawing = false
	}()

	if !t.drawing || len(t.pts) == 0 {
		return
	}
	if !overlaps(t.pts, clip) {
		t.skipped++
		return
	}
	if closed && len(t.pts) > 2 {
		t.segments++
	}
	t.dropped += drawPolyline(c, t.pts, closed && len(t.pts) > 2, ink)
}

// overlaps reports whether the bounding box of pts meets clip.
func overlaps(pts []image.Point, clip rect.Rect) bool {
	xMin, xMax := pts[0].X, pts[0].X
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return float64(xMax) >= clip.LLx && float64(xMin) < clip.URx &&
		float64(yMax) >= clip.LLy && float64(yMin) < clip.URy
}

// cell maps a point in path space to the cell containing it.
func (t *Tracer) cell(p vec.Vec2) image.Point {
	x := t.CTM[0]*p.X + t.CTM[2]*p.Y + t.CTM[4]
	y := t.CTM[1]*p.X + t.CTM[3]*p.Y + t.CTM[5]
	return image.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for tolerance checks, where translation is irrelevant.
func (t *Tracer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: t.CTM[0]*v.X + t.CTM[2]*v.Y,
		Y: t.CTM[1]*v.X + t.CTM[3]*v.Y,
	}
}

// flatness returns the tolerance used for flattening curves.
func (t *Tracer) flatness() float64 {
	if !(t.Flatness > 0) {
		return defaultFlatness
	}
	return t.Flatness
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the current point, p1 the control point and p2 the endpoint,
// all in path space.
func (t *Tracer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	eDev := t.transformLinear(e)

	n := 1
	errDev := eDev.Length()
	flatness := t.flatness()
	if errDev > flatness {
		n = int(math.Ceil(math.Sqrt(errDev / flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		s := float64(i) / float64(n)
		oms := 1 - s
		pt := p0.Mul(oms * oms).Add(p1.Mul(2 * oms * s)).Add(p2.Mul(s * s))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is the current point, p1 and p2 are the control points and p3 is the
// endpoint, all in path space.
func (t *Tracer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := t.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := t.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * t.flatness()))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		s := float64(i) / float64(n)
		oms := 1 - s
		oms2 := oms * oms
		s2 := s * s
		pt := p0.Mul(oms2 * oms).Add(p1.Mul(3 * oms2 * s)).Add(p2.Mul(3 * oms * s2)).Add(p3.Mul(s2 * s))
		emit(prev, pt)
		prev = pt
	}
}
