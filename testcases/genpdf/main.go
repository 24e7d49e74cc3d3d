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

// Command genpdf writes preview images of all scenes.
// For every test case it creates a PDF, a block PNG and a dot PNG.
// Run from the cellraster module root directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/cellraster"
	"seehuhn.de/go/cellraster/preview"
	"seehuhn.de/go/cellraster/testcases"
)

func main() {
	outDir := flag.String("dir", "testdata/preview", "output directory")
	scale := flag.Int("scale", 8, "cell size in pixels/points")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cellraster.SetLogger(logger)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Error("cannot create output directory", "error", err)
		os.Exit(1)
	}

	opt := &preview.Options{Scale: *scale}
	count := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(*outDir, name), opt); err != nil {
				logger.Error("preview failed", "case", name, "error", err)
				os.Exit(1)
			}
			count++
		}
	}
	logger.Info("previews written", "count", count, "dir", *outDir)
}

func generate(tc testcases.TestCase, base string, opt *preview.Options) error {
	c, err := tc.Render()
	if err != nil {
		return err
	}

	if err := preview.WritePDF(base+".pdf", c, opt); err != nil {
		return err
	}
	if err := writeFile(base+".png", func(w io.Writer) error {
		return preview.WritePNG(w, c, opt)
	}); err != nil {
		return err
	}
	return writeFile(base+"_dots.png", func(w io.Writer) error {
		return preview.WriteDotsPNG(w, c, opt)
	})
}

func writeFile(fileName string, write func(io.Writer) error) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(fileName), err)
	}
	return nil
}
