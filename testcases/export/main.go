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

// Command export writes the scene definitions to JSON, and the rendered
// scenes as text references.
// Run from the cellraster module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/cellraster"
	"seehuhn.de/go/cellraster/testcases"
)

const refDir = "testdata/reference"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cellraster.SetLogger(logger)

	if err := run(); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		return err
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			out.TestCases = append(out.TestCases, toJSON(name, tc))

			c, err := tc.Render()
			if err != nil {
				return err
			}
			txtPath := filepath.Join(refDir, name+".txt")
			if err := os.WriteFile(txtPath, []byte(c.String()), 0644); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	cellraster.Logger().Info("scenes exported",
		"count", len(out.TestCases), "dir", refDir)
	return nil
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Kind   string        `json:"kind"`
	Ink    string        `json:"ink"`
	Pts    [][]int       `json:"pts,omitempty"`
	Radius int           `json:"radius,omitempty"`
	Closed bool          `json:"closed,omitempty"`
	Path   []jsonSegment `json:"path,omitempty"`
	CTM    []float64     `json:"ctm,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, s := range tc.Shapes {
		jtc.Shapes = append(jtc.Shapes, shapeToJSON(s))
	}
	return jtc
}

func shapeToJSON(s cellraster.Shape) jsonShape {
	var js jsonShape
	switch s := s.(type) {
	case cellraster.Line:
		js.Kind = "line"
		js.Ink = inkString(s.Ink)
		js.Pts = [][]int{{s.P0.X, s.P0.Y}, {s.P1.X, s.P1.Y}}
	case cellraster.Circle:
		js.Kind = "circle"
		js.Ink = inkString(s.Ink)
		js.Pts = [][]int{{s.Center.X, s.Center.Y}}
		js.Radius = s.Radius
	case cellraster.Triangle:
		js.Kind = "triangle"
		js.Ink = inkString(s.Ink)
		js.Pts = [][]int{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}, {s.C.X, s.C.Y}}
	case cellraster.Polygon:
		js.Kind = "polygon"
		js.Ink = inkString(s.Ink)
		for _, v := range s.Vertices {
			js.Pts = append(js.Pts, []int{v.X, v.Y})
		}
		js.Closed = s.Closed
	case cellraster.PathShape:
		js.Kind = "path"
		js.Ink = inkString(s.Ink)
		js.Path = pathToJSON(s.Path)
		if s.CTM != (matrix.Matrix{}) {
			js.CTM = s.CTM[:]
		}
	default:
		js.Kind = fmt.Sprintf("%T", s)
	}
	return js
}

func inkString(ink byte) string {
	if ink == 0 {
		ink = cellraster.DefaultInk
	}
	return string(rune(ink))
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
