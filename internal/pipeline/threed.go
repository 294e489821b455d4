package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/animate"
	"github.com/san-kum/contrastviz/internal/config"
	"github.com/san-kum/contrastviz/internal/external"
	"github.com/san-kum/contrastviz/internal/render"
	"github.com/san-kum/contrastviz/internal/space"
	"github.com/san-kum/contrastviz/internal/storage"
)

const (
	ThreeDGIF = "contrastive_learning_3d.gif"
	ThreeDMP4 = "contrastive_learning_3d.mp4"
)

// ThreeD renders the eased 3D sweep. The MP4 is best effort and only
// attempted when ffmpeg is enabled and on PATH.
type ThreeD struct {
	cfg    *config.Config
	logger *log.Logger
	dir    string
	ffmpeg *external.FFmpeg
}

func NewThreeD(cfg *config.Config, logger *log.Logger) *ThreeD {
	return &ThreeD{
		cfg:    cfg,
		logger: logger,
		dir:    Dir(cfg.Output, Mode3D),
		ffmpeg: &external.FFmpeg{Binary: cfg.FFmpeg.Binary, Logger: logger},
	}
}

func (p *ThreeD) Name() string { return string(Mode3D) }
func (p *ThreeD) Dir() string  { return p.dir }

func (p *ThreeD) Check() error {
	if _, ok := align.EasingByName(p.cfg.ThreeD.Easing); !ok {
		return fmt.Errorf("unknown easing %q", p.cfg.ThreeD.Easing)
	}
	return nil
}

func (p *ThreeD) Run(ctx context.Context) (*storage.Manifest, error) {
	m := storage.NewManifest(p.Name(), p.dir, p.cfg.Steps, p.cfg.Seed)
	return finish(p.logger, m, p.run(ctx, m))
}

func (p *ThreeD) run(ctx context.Context, m *storage.Manifest) error {
	if err := prepareDir(p.dir); err != nil {
		return err
	}

	easing, ok := align.EasingByName(p.cfg.ThreeD.Easing)
	if !ok {
		return fmt.Errorf("unknown easing %q", p.cfg.ThreeD.Easing)
	}
	driver := align.New(
		align.WithEasing(easing),
		align.WithLift(space.Point{0, p.cfg.ThreeD.Lift, 0}),
	)

	image, text := space.NewGenerator(p.cfg.Seed).Generate3D()
	r := render.NewRenderer3D(space.DefaultCategories(), p.cfg.Render.Width, p.cfg.Render.Height)
	r.Fit(image, text, liftedTargets(image, text, p.cfg.ThreeD.Lift))

	frames := render.NewFrameWriter(p.dir, r.Frame)
	if _, err := sweep(ctx, p.logger, driver, image, text, p.cfg.Steps, frames, m); err != nil {
		return err
	}

	gifPath := filepath.Join(p.dir, ThreeDGIF)
	n, err := animate.GIF(p.dir, gifPath, p.cfg.Render.FPS)
	if err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	p.logger.Info("animation written", "path", gifPath, "frames", n)
	m.AddArtifact(gifPath)

	p.encodeVideo(ctx, m)
	return nil
}

func (p *ThreeD) encodeVideo(ctx context.Context, m *storage.Manifest) {
	if !p.cfg.FFmpeg.Enabled {
		return
	}
	if !p.ffmpeg.Available() {
		p.logger.Warn("ffmpeg not found, skipping mp4", "binary", p.cfg.FFmpeg.Binary)
		return
	}

	pattern := filepath.Join(p.dir, "step_%0"+strconv.Itoa(len(strconv.Itoa(p.cfg.Steps)))+"d.png")
	out := filepath.Join(p.dir, ThreeDMP4)
	if err := p.ffmpeg.Encode(ctx, pattern, out, p.cfg.Render.FPS); err != nil {
		p.logger.Warn("mp4 encoding failed", "err", err)
		return
	}
	m.AddArtifact(out)
}

// liftedTargets returns the raised meeting points so the camera frame
// includes where the sweep ends.
func liftedTargets(image, text space.Space, lift float64) space.Space {
	targets := align.Midpoints(image, text)
	for item, p := range targets {
		targets[item] = p.Add(space.Point{0, lift, 0})
	}
	return targets
}
