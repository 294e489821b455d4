package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/animate"
	"github.com/san-kum/contrastviz/internal/config"
	"github.com/san-kum/contrastviz/internal/render"
	"github.com/san-kum/contrastviz/internal/space"
	"github.com/san-kum/contrastviz/internal/storage"
	"github.com/san-kum/contrastviz/internal/viewer"
)

const (
	CombinedPNG   = "combined_space.png"
	CombinedSVG   = "combined_space.svg"
	CombinedTitle = "Combined Multimodal Space"
	StaticGIF     = "contrastive_learning_animation.gif"
)

// Static renders the 2D frame sequence with its GIF, combined view and
// viewer page.
type Static struct {
	cfg    *config.Config
	logger *log.Logger
	dir    string
}

func NewStatic(cfg *config.Config, logger *log.Logger) *Static {
	return &Static{cfg: cfg, logger: logger, dir: Dir(cfg.Output, ModeStatic)}
}

func (p *Static) Name() string { return string(ModeStatic) }
func (p *Static) Dir() string  { return p.dir }
func (p *Static) Check() error { return nil }

func (p *Static) Run(ctx context.Context) (*storage.Manifest, error) {
	m := storage.NewManifest(p.Name(), p.dir, p.cfg.Steps, p.cfg.Seed)
	return finish(p.logger, m, p.run(ctx, m))
}

func (p *Static) run(ctx context.Context, m *storage.Manifest) error {
	if err := prepareDir(p.dir); err != nil {
		return err
	}

	image, text := space.NewGenerator(p.cfg.Seed).Generate2D()
	r := render.NewRenderer(space.DefaultCategories(), p.cfg.Render.Width, p.cfg.Render.Height)
	r.Fit(image, text)

	trajPath := filepath.Join(p.dir, storage.TrajectoryFile)
	traj, err := storage.NewTrajectoryWriter(trajPath)
	if err != nil {
		return err
	}
	frames := render.NewFrameWriter(p.dir, r.Frame)
	last, err := sweep(ctx, p.logger, align.New(), image, text, p.cfg.Steps, frames, m, traj)
	if closeErr := traj.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	m.AddArtifact(trajPath)

	combined := filepath.Join(p.dir, CombinedPNG)
	if err := render.SavePNG(combined, r.Combined(last.Image, last.Text)); err != nil {
		return fmt.Errorf("combined view: %w", err)
	}
	m.AddArtifact(combined)

	if p.cfg.Render.SVG {
		svgPath := filepath.Join(p.dir, CombinedSVG)
		svg := r.SVG(last.Image, last.Text, CombinedTitle)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return fmt.Errorf("combined svg: %w", err)
		}
		m.AddArtifact(svgPath)
	}

	gifPath := filepath.Join(p.dir, StaticGIF)
	n, err := animate.GIF(p.dir, gifPath, p.cfg.Render.FPS)
	if err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	p.logger.Info("animation written", "path", gifPath, "frames", n)
	m.AddArtifact(gifPath)

	page, err := viewer.Write(p.dir, viewer.Options{Frames: m.Frames})
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	m.AddArtifact(page)
	return nil
}
