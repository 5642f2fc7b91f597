// seehuhn.de/go/lattice - tiling under linear 2D bases
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

// Command latticedraw renders a lattice scene to PNG or PDF files.
//
// The scene is read from a YAML file (-scene), taken from the built-in
// test cases (-case category/name), or defaults to an isometric
// checkerboard.  With -frames, an animation is written as a sequence of
// numbered PNG files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"seehuhn.de/go/lattice"
	"seehuhn.de/go/lattice/scene"
	"seehuhn.de/go/lattice/testcases"
)

type config struct {
	sceneFile string
	caseName  string
	outputs   []string
	scale     float64
	frames    int
	fps       float64
	dir       string
	dump      bool
}

func main() {
	var (
		sceneFile = flag.String("scene", "", "scene file in YAML format")
		caseName  = flag.String("case", "", "built-in scene, as category/name")
		output    = flag.String("o", "lattice.png", "comma-separated list of output files (.png or .pdf)")
		scale     = flag.Float64("scale", 1, "scale factor for PNG output")
		frames    = flag.Int("frames", 0, "number of animation frames to write (0 for a still image)")
		fps       = flag.Float64("fps", 60, "animation frame rate")
		dir       = flag.String("dir", "frames", "output directory for animation frames")
		dump      = flag.Bool("dump", false, "print the scene in YAML format and exit")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	lattice.SetLogger(logger)

	cfg := &config{
		sceneFile: *sceneFile,
		caseName:  *caseName,
		outputs:   parseOutputs(*output),
		scale:     *scale,
		frames:    *frames,
		fps:       *fps,
		dir:       *dir,
		dump:      *dump,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("latticedraw failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, logger *slog.Logger) error {
	s, err := loadScene(cfg)
	if err != nil {
		return err
	}
	if cfg.dump {
		return s.Encode(os.Stdout)
	}
	if !(cfg.scale > 0) {
		return fmt.Errorf("invalid scale %g", cfg.scale)
	}

	if cfg.frames > 0 {
		return animate(ctx, s, cfg, logger)
	}
	return writeOutputs(ctx, s, cfg, logger)
}

// loadScene returns the scene selected by the command line flags.
func loadScene(cfg *config) (*scene.Scene, error) {
	switch {
	case cfg.caseName != "" && cfg.sceneFile != "":
		return nil, fmt.Errorf("-case and -scene cannot be used together")
	case cfg.caseName != "":
		return lookupCase(cfg.caseName)
	case cfg.sceneFile != "":
		return scene.LoadFile(cfg.sceneFile)
	default:
		return scene.Default(), nil
	}
}

// lookupCase finds a built-in scene by its "category/name" identifier.
func lookupCase(id string) (*scene.Scene, error) {
	category, name, ok := strings.Cut(id, "/")
	if !ok {
		return nil, fmt.Errorf("case %q: expected category/name", id)
	}
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc.Scene, nil
		}
	}
	return nil, fmt.Errorf("case %q not found", id)
}

// parseOutputs splits a comma-separated list of file names.  Each file
// name is kept once, in order of first appearance.
func parseOutputs(list string) []string {
	var res []string
	seen := make(map[string]bool)
	for name := range strings.SplitSeq(list, ",") {
		name = filepath.Clean(strings.TrimSpace(name))
		if name == "." || seen[name] {
			continue
		}
		seen[name] = true
		res = append(res, name)
	}
	return res
}
