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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSelectScenes(t *testing.T) {
	all := selectScenes("")
	if len(all) == 0 {
		t.Fatal("no scenes")
	}

	octants := selectScenes("octant_")
	if len(octants) != 24 {
		t.Errorf("got %d octant scenes, want 24", len(octants))
	}
	for _, s := range octants {
		if !strings.HasPrefix(s.name, "octant_") {
			t.Errorf("unexpected scene %q", s.name)
		}
	}

	if got := selectScenes("no_such_scene"); len(got) != 0 {
		t.Errorf("got %d scenes for unknown prefix", len(got))
	}
}

func TestRunWritesFrames(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "frames.txt")
	cfg := config{
		filter:  "triangle_",
		outFile: outFile,
		width:   20,
		height:  20,
	}

	var stdout bytes.Buffer
	err := run(context.Background(), cfg, selectScenes(cfg.filter), &stdout)
	if err != nil {
		t.Fatal(err)
	}

	fileData, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if stdout.String() != string(fileData) {
		t.Error("file contents differ from standard output")
	}

	rule := "+" + strings.Repeat("-", 20) + "+\n"
	if n := strings.Count(stdout.String(), rule); n != 2*4 {
		t.Errorf("got %d border rules, want %d", n, 2*4)
	}
	if !strings.HasPrefix(stdout.String(), "triangle_right_angle\n"+rule) {
		t.Errorf("unexpected output start:\n%s", stdout.String())
	}
}

func TestRunNoScenes(t *testing.T) {
	cfg := config{filter: "nothing", width: 20, height: 20}
	err := run(context.Background(), cfg, nil, &bytes.Buffer{})
	if err == nil {
		t.Error("expected an error for an empty scene list")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config{delay: 1, loop: true, width: 20, height: 20}
	err := run(ctx, cfg, selectScenes("circle_"), &bytes.Buffer{})
	if err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
