package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/san-kum/contrastviz/internal/config"
	"github.com/san-kum/contrastviz/internal/render"
	"github.com/san-kum/contrastviz/internal/storage"
	"github.com/san-kum/contrastviz/internal/viewer"
)

// HTML writes a viewer that plays the static pipeline's frames in place.
type HTML struct {
	cfg    *config.Config
	logger *log.Logger
	dir    string
}

func NewHTML(cfg *config.Config, logger *log.Logger) *HTML {
	return &HTML{cfg: cfg, logger: logger, dir: Dir(cfg.Output, ModeHTML)}
}

func (p *HTML) Name() string { return string(ModeHTML) }
func (p *HTML) Dir() string  { return p.dir }
func (p *HTML) Check() error { return nil }

// FrameDir is the static frame directory as seen from the viewer.
func (p *HTML) FrameDir() string {
	return "../" + filepath.Base(Dir(p.cfg.Output, ModeStatic)) + "/"
}

func (p *HTML) Run(ctx context.Context) (*storage.Manifest, error) {
	m := storage.NewManifest(p.Name(), p.dir, p.cfg.Steps, p.cfg.Seed)
	return finish(p.logger, m, p.run(ctx, m))
}

func (p *HTML) run(ctx context.Context, m *storage.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	staticDir := Dir(p.cfg.Output, ModeStatic)
	first := filepath.Join(staticDir, render.FrameName(0, p.cfg.Steps))
	if _, err := os.Stat(first); err != nil {
		p.logger.Warn("static frames not found, viewer will show broken images until the static mode runs", "dir", staticDir)
	}

	m.Frames = p.cfg.Steps + 1
	page, err := viewer.Write(p.dir, viewer.Options{
		Frames:   m.Frames,
		FrameDir: p.FrameDir(),
	})
	if err != nil {
		return err
	}
	p.logger.Info("viewer written", "path", page)
	m.AddArtifact(page)
	return nil
}
