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

// Package frame drives animations at a target frame rate.
package frame

import (
	"context"
	"errors"
	"time"
)

// ErrFPS is returned by [Loop.Run] if the target frame rate is not
// positive.
var ErrFPS = errors.New("frame rate must be positive")

// Frame describes one invocation of the drawing callback.
type Frame struct {
	// Index counts the frames drawn before this one.
	Index int

	// Elapsed is the time since the loop started.
	Elapsed time.Duration

	// Skipped is the number of frame intervals which passed without a
	// frame since the previous one.
	Skipped int
}

// Loop calls a drawing function at most once per frame interval.
type Loop struct {
	// FPS is the target number of frames per second.
	FPS float64

	// MaxFrames stops the loop after this many frames.  Zero means no
	// limit.
	MaxFrames int
}

// Interval returns the target time between two frames.
func (l *Loop) Interval() time.Duration {
	if l.FPS <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / l.FPS)
}

// Run draws the first frame immediately and then one frame whenever a
// frame interval has passed.  Intervals which pass while draw is running
// are not made up for; they are reported in [Frame.Skipped].
//
// Run returns when MaxFrames frames have been drawn, when draw returns an
// error, or when ctx is cancelled.  In the last case the context's error
// is returned.
func (l *Loop) Run(ctx context.Context, draw func(Frame) error) error {
	if !(l.FPS > 0) {
		return ErrFPS
	}
	interval := max(l.Interval(), time.Nanosecond)

	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := start
	for idx := 0; l.MaxFrames <= 0 || idx < l.MaxFrames; {
		if err := ctx.Err(); err != nil {
			return err
		}

		skipped := 0
		if idx > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
			now := time.Now()
			var due bool
			due, skipped = Due(last, now, interval)
			if !due {
				continue
			}
			last = last.Add(time.Duration(skipped+1) * interval)
		}

		f := Frame{
			Index:   idx,
			Elapsed: time.Since(start),
			Skipped: skipped,
		}
		if err := draw(f); err != nil {
			return err
		}
		idx++
	}
	return nil
}

// Due reports whether a new frame should be drawn at time now, if the
// previous frame slot started at last.  If so, skipped is the number of
// complete intervals after the first one which have passed.
func Due(last, now time.Time, interval time.Duration) (due bool, skipped int) {
	elapsed := now.Sub(last)
	if interval <= 0 {
		return true, 0
	}
	if elapsed < interval {
		return false, 0
	}
	return true, int(elapsed/interval) - 1
}
