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
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestTraceTriangle checks that a closed path with integer vertices draws
// the same cells as the corresponding triangle.
func TestTraceTriangle(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 16, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		Close()

	got := mustCanvas(t, 20, 20)
	NewTracer().Trace(got, p, 0)

	want := mustCanvas(t, 20, 20)
	DrawTriangle(want, 0, 0, 16, 0, 10, 10, 0)

	if !got.Equal(want) {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

// TestTraceCTM checks that scaling by the CTM is the same as scaling the
// path coordinates.
func TestTraceCTM(t *testing.T) {
	square := func(s float64) *path.Data {
		return (&path.Data{}).
			MoveTo(vec.Vec2{X: 0, Y: 0}).
			LineTo(vec.Vec2{X: s, Y: 0}).
			LineTo(vec.Vec2{X: s, Y: s}).
			LineTo(vec.Vec2{X: 0, Y: s}).
			Close()
	}

	got := mustCanvas(t, 20, 20)
	tr := NewTracer()
	tr.CTM = matrix.Scale(2, 2).Translate(3, 4)
	tr.Trace(got, square(5), 'x')

	want := mustCanvas(t, 20, 20)
	DrawPolyline(want, []image.Point{{3, 4}, {13, 4}, {13, 14}, {3, 14}}, true, 'x')

	if !got.Equal(want) {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	shape := mustCanvas(t, 20, 20)
	PathShape{Path: square(5), CTM: tr.CTM, Ink: 'x'}.Draw(shape)
	if !shape.Equal(want) {
		t.Errorf("PathShape: got\n%s\nwant\n%s", shape, want)
	}
}

func TestTraceDegenerate(t *testing.T) {
	c := mustCanvas(t, 10, 10)
	tr := NewTracer()

	// a lone MoveTo draws nothing
	tr.Trace(c, (&path.Data{}).MoveTo(vec.Vec2{X: 3, Y: 3}), 0)
	if n := len(marks(c)); n != 0 {
		t.Errorf("lone MoveTo: got %d cells", n)
	}

	// a zero-length segment marks its cell
	tr.Trace(c, (&path.Data{}).MoveTo(vec.Vec2{X: 3, Y: 3}).LineTo(vec.Vec2{X: 3.5, Y: 3.2}), 0)
	if got := marks(c); len(got) != 1 || c.At(3, 3) == Empty {
		t.Errorf("zero-length segment:\n%s", c)
	}
}

// TestTraceOutside checks that subpaths outside the canvas are skipped,
// while the visible subpaths of the same path are drawn.
func TestTraceOutside(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: -20, Y: -20}).
		LineTo(vec.Vec2{X: -10, Y: -15}).
		LineTo(vec.Vec2{X: -12, Y: -5}).
		Close().
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 8, Y: 1})

	c := mustCanvas(t, 10, 10)
	tr := NewTracer()
	tr.Trace(c, p, 0)

	if tr.skipped != 1 {
		t.Errorf("got %d skipped subpaths, want 1", tr.skipped)
	}
	want := mustCanvas(t, 10, 10)
	DrawLine(want, 1, 1, 8, 1, 0)
	if !c.Equal(want) {
		t.Errorf("got\n%s\nwant\n%s", c, want)
	}
}

// TestTraceCurve checks that a flattened Bézier circle stays close to the
// exact circle, and that its endpoints are drawn.
func TestTraceCurve(t *testing.T) {
	const cx, cy, r = 15.5, 15.5, 12.0
	const k = 0.5522847498307936 * r

	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + r, Y: cy}).
		Close()

	c := mustCanvas(t, 32, 32)
	tr := NewTracer()
	tr.Trace(c, p, 0)

	if tr.segments < 16 {
		t.Errorf("only %d segments for a circle of radius %g", tr.segments, r)
	}
	for q := range c.Marks() {
		d := math.Hypot(float64(q.X)+0.5-cx, float64(q.Y)+0.5-cy)
		if math.Abs(d-r) > 2 {
			t.Errorf("cell %v has distance %.2f from the centre", q, d)
		}
	}
	for _, q := range []image.Point{{27, 15}, {15, 3}, {3, 15}, {15, 27}} {
		if c.At(q.X, q.Y) == Empty {
			t.Errorf("cell %v on the axis not marked", q)
		}
	}
}

func TestTraceQuadratic(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 18}).
		QuadTo(vec.Vec2{X: 10, Y: -10}, vec.Vec2{X: 19, Y: 18})

	c := mustCanvas(t, 21, 20)
	tr := NewTracer()
	tr.Trace(c, p, 0)

	if c.At(1, 18) == Empty || c.At(19, 18) == Empty {
		t.Errorf("endpoints not marked:\n%s", c)
	}
	// the apex of the curve is at y = 4
	if c.At(10, 4) == Empty {
		t.Errorf("apex not marked:\n%s", c)
	}
	if tr.segments < 4 {
		t.Errorf("got %d segments, want at least 4", tr.segments)
	}
}

// TestTraceFlatness checks that a tolerance which is not positive falls
// back to the default instead of dropping the curve.
func TestTraceFlatness(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 38}).
		QuadTo(vec.Vec2{X: 20, Y: -20}, vec.Vec2{X: 38, Y: 38})

	want := mustCanvas(t, 40, 40)
	NewTracer().Trace(want, p, 0)
	if len(marks(want)) == 0 {
		t.Fatal("default tolerance: no cells marked")
	}

	for _, flatness := range []float64{0, -1, math.NaN()} {
		got := mustCanvas(t, 40, 40)
		tr := NewTracer()
		tr.Flatness = flatness
		tr.Trace(got, p, 0)
		if !got.Equal(want) {
			t.Errorf("Flatness=%g: got\n%s\nwant\n%s", flatness, got, want)
		}
	}
}

func TestTraceNilPath(t *testing.T) {
	c := mustCanvas(t, 10, 10)
	tr := NewTracer()
	tr.Trace(c, nil, 0)
	PathShape{}.Draw(c)
	if n := len(marks(c)); n != 0 {
		t.Errorf("nil path marked %d cells", n)
	}
	if tr.segments != 0 || tr.skipped != 0 {
		t.Errorf("nil path: %d segments, %d skipped", tr.segments, tr.skipped)
	}
}
