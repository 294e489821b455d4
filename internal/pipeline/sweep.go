package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/animate"
	"github.com/san-kum/contrastviz/internal/metrics"
	"github.com/san-kum/contrastviz/internal/render"
	"github.com/san-kum/contrastviz/internal/space"
	"github.com/san-kum/contrastviz/internal/storage"
)

// prepareDir creates dir and removes frames left by an earlier run, whose
// padding may differ from this one.
func prepareDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	stale, err := animate.FramePaths(dir)
	if err != nil {
		return err
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}

// sweep drives the interpolation, writing one frame per step plus whatever
// extra observers are given, and records frames and metrics on m. It returns
// the final snapshot.
func sweep(ctx context.Context, logger *log.Logger, d *align.Driver, image, text space.Space, steps int, frames *render.FrameWriter, m *storage.Manifest, extra ...align.Observer) (align.Snapshot, error) {
	var gap *metrics.MeanGap
	for _, metric := range metrics.Defaults() {
		if g, ok := metric.(*metrics.MeanGap); ok {
			gap = g
		}
		d.AddMetric(metric)
	}
	d.AddObserver(frames)
	for _, o := range extra {
		d.AddObserver(o)
	}

	every := steps / 10
	if every == 0 {
		every = 1
	}
	var last align.Snapshot
	result, err := d.Run(ctx, image, text, steps, func(s align.Snapshot) error {
		last = s
		if s.Step%every == 0 || s.Final() {
			logger.Debug("frame written", "step", s.Step, "steps", s.Steps, "t", fmt.Sprintf("%.3f", s.T))
		}
		return nil
	})
	m.Frames = len(frames.Written)
	if err != nil {
		return last, err
	}

	m.Metrics = result.Metrics
	if gap != nil {
		m.GapCurve = gap.History()
	}
	return last, nil
}

// finish stamps and saves the manifest. A save failure is only returned when
// the run itself succeeded.
func finish(logger *log.Logger, m *storage.Manifest, runErr error) (*storage.Manifest, error) {
	m.Finished = time.Now()
	if runErr != nil {
		m.Error = runErr.Error()
	}
	if err := storage.Save(m); err != nil {
		if runErr != nil {
			logger.Warn("could not save manifest", "dir", m.Dir, "err", err)
			return m, runErr
		}
		return m, err
	}
	return m, runErr
}
