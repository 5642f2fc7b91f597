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

package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/lattice/frame"
	"seehuhn.de/go/lattice/pdfcanvas"
	"seehuhn.de/go/lattice/raster"
	"seehuhn.de/go/lattice/scene"
)

// writeOutputs renders a still image of s into every output file.  The
// files are written concurrently, each from its own surface.
func writeOutputs(ctx context.Context, s *scene.Scene, cfg *config, logger *slog.Logger) error {
	if len(cfg.outputs) == 0 {
		return fmt.Errorf("no output files given")
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range cfg.outputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var err error
			switch ext := strings.ToLower(filepath.Ext(name)); ext {
			case ".png":
				err = writePNG(name, s, cfg.scale)
			case ".pdf":
				err = writePDF(name, s)
			default:
				err = fmt.Errorf("unsupported output format %q", ext)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Info("wrote output", "file", name)
			return nil
		})
	}
	return g.Wait()
}

// render draws s at time t into a new raster canvas.
func render(s *scene.Scene, t time.Duration) (*raster.Canvas, error) {
	c := raster.New(int(s.Width), int(s.Height))
	if err := s.Render(c, t); err != nil {
		return nil, err
	}
	return c, nil
}

func writePNG(fileName string, s *scene.Scene, scale float64) error {
	c, err := render(s, 0)
	if err != nil {
		return err
	}
	img := c.Image()
	if scale != 1 {
		w := int(s.Width*scale + 0.5)
		h := int(s.Height*scale + 0.5)
		img = c.Resample(w, h)
	}
	return savePNG(fileName, img)
}

func savePNG(fileName string, img image.Image) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func writePDF(fileName string, s *scene.Scene) error {
	page, err := pdfcanvas.Create(fileName, s.Width, s.Height)
	if err != nil {
		return err
	}
	if err := s.Render(page, 0); err != nil {
		page.Close()
		return err
	}
	return page.Close()
}

// animate writes cfg.frames frames of s as numbered PNG files into
// cfg.dir.  A frame which is identical to the previous one is not
// written again.
func animate(ctx context.Context, s *scene.Scene, cfg *config, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.dir, 0755); err != nil {
		return err
	}

	loop := &frame.Loop{FPS: cfg.fps, MaxFrames: cfg.frames}
	var (
		lastHash uint64
		written  int
	)
	err := loop.Run(ctx, func(f frame.Frame) error {
		if f.Skipped > 0 {
			logger.Debug("frames skipped", "frame", f.Index, "skipped", f.Skipped)
		}
		c, err := render(s, f.Elapsed)
		if err != nil {
			return fmt.Errorf("frame %d: %w", f.Index, err)
		}

		hash := xxhash.Sum64(c.Image().Pix)
		if f.Index > 0 && hash == lastHash {
			logger.Debug("frame unchanged", "frame", f.Index)
			return nil
		}
		lastHash = hash

		name := filepath.Join(cfg.dir, fmt.Sprintf("frame-%04d.png", f.Index))
		if err := savePNG(name, c.Image()); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("wrote animation", "dir", cfg.dir, "frames", cfg.frames, "files", written)
	return nil
}
