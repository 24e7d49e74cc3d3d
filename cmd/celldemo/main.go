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

// Command celldemo draws the reference scenes one after another on a
// single canvas and prints every frame as text.
//
// Frames go to standard output and, with -o, also to a file. The file is
// truncated at the start of every pass, so with -loop it always holds
// the frames of one complete pass.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"seehuhn.de/go/cellraster"
	"seehuhn.de/go/cellraster/testcases"
)

type config struct {
	filter  string
	outFile string
	delay   time.Duration
	loop    bool
	width   int
	height  int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.filter, "scene", "", "only draw scenes whose name starts with this prefix")
	flag.StringVar(&cfg.outFile, "o", "", "also write the frames to this file")
	flag.DurationVar(&cfg.delay, "delay", time.Second, "pause between frames")
	flag.BoolVar(&cfg.loop, "loop", false, "repeat until interrupted")
	flag.IntVar(&cfg.width, "width", 20, "canvas width in cells")
	flag.IntVar(&cfg.height, "height", 20, "canvas height in cells")
	list := flag.Bool("list", false, "list the scene names and exit")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cellraster.SetLogger(logger)

	scenes := selectScenes(cfg.filter)
	if *list {
		for _, s := range scenes {
			fmt.Println(s.name)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, cfg, scenes, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("celldemo failed", "error", err)
		os.Exit(1)
	}
}

type scene struct {
	name string
	tc   testcases.TestCase
}

// selectScenes returns the scenes in category order, then definition order.
func selectScenes(prefix string) []scene {
	var res []scene
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if strings.HasPrefix(name, prefix) {
				res = append(res, scene{name: name, tc: tc})
			}
		}
	}
	return res
}

func run(ctx context.Context, cfg config, scenes []scene, stdout io.Writer) error {
	if len(scenes) == 0 {
		return fmt.Errorf("no scene matches %q", cfg.filter)
	}

	// All scenes share one canvas, which is cleared before every frame.
	c, err := cellraster.New(cfg.width, cfg.height)
	if err != nil {
		return err
	}

	for {
		if err := pass(ctx, cfg, scenes, c, stdout); err != nil {
			return err
		}
		if !cfg.loop {
			return nil
		}
	}
}

func pass(ctx context.Context, cfg config, scenes []scene, c *cellraster.Canvas, stdout io.Writer) (err error) {
	w := stdout
	if cfg.outFile != "" {
		var f *os.File
		f, err = os.Create(cfg.outFile)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = io.MultiWriter(stdout, f)
	}

	for i, s := range scenes {
		if s.tc.Width > c.Width() || s.tc.Height > c.Height() {
			cellraster.Logger().Warn("scene larger than canvas, clipping",
				"scene", s.name, "width", s.tc.Width, "height", s.tc.Height)
		}
		s.tc.DrawOn(c)

		if _, err := fmt.Fprintln(w, s.name); err != nil {
			return err
		}
		if _, err := c.WriteTo(w); err != nil {
			return err
		}

		if i == len(scenes)-1 && !cfg.loop {
			break
		}
		if err := sleep(ctx, cfg.delay); err != nil {
			return err
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil || d <= 0 {
		return err
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
