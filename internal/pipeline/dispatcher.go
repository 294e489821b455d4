package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/config"
)

// Builder constructs the pipeline for one mode.
type Builder func(cfg *config.Config, logger *log.Logger) Pipeline

type Dispatcher struct {
	cfg      *config.Config
	logger   *log.Logger
	builders map[Mode]Builder
}

func NewDispatcher(cfg *config.Config, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	d := &Dispatcher{
		cfg:      cfg,
		logger:   logger,
		builders: make(map[Mode]Builder),
	}

	d.builders[ModeStatic] = func(cfg *config.Config, l *log.Logger) Pipeline { return NewStatic(cfg, l) }
	d.builders[Mode3D] = func(cfg *config.Config, l *log.Logger) Pipeline { return NewThreeD(cfg, l) }
	d.builders[ModeManim] = func(cfg *config.Config, l *log.Logger) Pipeline { return NewManim(cfg, l) }
	d.builders[ModeHTML] = func(cfg *config.Config, l *log.Logger) Pipeline { return NewHTML(cfg, l) }

	return d
}

// Register replaces the builder for a mode.
func (d *Dispatcher) Register(m Mode, b Builder) {
	d.builders[m] = b
}

func (d *Dispatcher) Modes() []Mode {
	modes := make([]Mode, 0, len(d.builders))
	for m := range d.builders {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// Pipeline builds the pipeline for a single mode.
func (d *Dispatcher) Pipeline(m Mode) (Pipeline, error) {
	b, ok := d.builders[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	return b(d.cfg, d.logger.WithPrefix(string(m))), nil
}

// Run executes the pipelines for modes in order. The returned error is
// non-nil only when nothing could be attempted; pipeline failures are in the
// Report.
func (d *Dispatcher) Run(ctx context.Context, modes []Mode) (*Report, error) {
	if d.cfg.Steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", align.ErrInvalidArgument, d.cfg.Steps)
	}

	pipelines := make([]Pipeline, 0, len(modes))
	for _, m := range modes {
		p, err := d.Pipeline(m)
		if err != nil {
			return nil, err
		}
		pipelines = append(pipelines, p)
	}

	// Pre-flight every pipeline so missing tools are reported up front.
	checks := make([]error, len(pipelines))
	for i, p := range pipelines {
		if err := p.Check(); err != nil {
			d.logger.Warn("pipeline will be skipped", "pipeline", p.Name(), "err", err)
			checks[i] = err
		}
	}

	report := &Report{Outcomes: make([]Outcome, 0, len(pipelines))}
	for i, p := range pipelines {
		out := Outcome{Name: p.Name(), Dir: p.Dir()}

		switch {
		case checks[i] != nil:
			out.Err = checks[i]
		case ctx.Err() != nil:
			out.Err = ctx.Err()
		default:
			d.logger.Info("running pipeline", "pipeline", p.Name(), "dir", p.Dir())
			start := time.Now()
			out.Manifest, out.Err = p.Run(ctx)
			out.Duration = time.Since(start)
			if out.Err != nil {
				d.logger.Error("pipeline failed", "pipeline", p.Name(), "err", out.Err)
			} else {
				d.logger.Info("pipeline finished", "pipeline", p.Name(), "elapsed", out.Duration.Round(time.Millisecond))
			}
		}

		report.Outcomes = append(report.Outcomes, out)
	}

	return report, nil
}
