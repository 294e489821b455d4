package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/san-kum/contrastviz/internal/config"
	"github.com/san-kum/contrastviz/internal/external"
	"github.com/san-kum/contrastviz/internal/storage"
)

const ManimVideo = "contrastive_learning_manim.mp4"

// Manim hands the animation to the external scene renderer.
type Manim struct {
	cfg      *config.Config
	logger   *log.Logger
	dir      string
	renderer *external.Manim
}

func NewManim(cfg *config.Config, logger *log.Logger) *Manim {
	rc := cfg.Renderer
	return &Manim{
		cfg:    cfg,
		logger: logger,
		dir:    Dir(cfg.Output, ModeManim),
		renderer: &external.Manim{
			Binary:     rc.Binary,
			Script:     rc.Script,
			Scene:      rc.Scene,
			Quality:    rc.Quality,
			OutputName: rc.OutputName,
			Logger:     logger,
		},
	}
}

func (p *Manim) Name() string { return string(ModeManim) }
func (p *Manim) Dir() string  { return p.dir }
func (p *Manim) Check() error { return p.renderer.Check() }

func (p *Manim) Run(ctx context.Context) (*storage.Manifest, error) {
	m := storage.NewManifest(p.Name(), p.dir, p.cfg.Steps, p.cfg.Seed)
	return finish(p.logger, m, p.run(ctx, m))
}

func (p *Manim) run(ctx context.Context, m *storage.Manifest) error {
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return err
	}
	target := filepath.Join(p.dir, ManimVideo)
	if err := p.renderer.Render(ctx, target); err != nil {
		return err
	}
	p.logger.Info("video written", "path", target)
	m.AddArtifact(target)
	return nil
}
