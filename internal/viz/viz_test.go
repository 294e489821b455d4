package viz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/config"
	"github.com/san-kum/contrastviz/internal/pipeline"
	"github.com/san-kum/contrastviz/internal/render"
	"github.com/san-kum/contrastviz/internal/space"
	"github.com/san-kum/contrastviz/internal/storage"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Error("expected pixel to be set")
	}
	if c.IsSet(2, 5) {
		t.Error("neighbour should not be set")
	}

	c.Set(-1, 0)
	c.Set(100, 100)

	c.Clear()
	if c.IsSet(3, 5) {
		t.Error("expected canvas to be cleared")
	}
	if strings.Count(c.String(), "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", c.String())
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("pixel %d not set", x)
		}
	}
}

func TestCanvasProjectCorners(t *testing.T) {
	c := NewCanvas(10, 5)
	b := render.Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}

	x, y := c.Project(b, 0, 0)
	if x != 0 || y != 19 {
		t.Errorf("expected bottom-left (0,19), got (%d,%d)", x, y)
	}
	x, y = c.Project(b, 1, 1)
	if x != 19 || y != 0 {
		t.Errorf("expected top-right (19,0), got (%d,%d)", x, y)
	}
}

func TestSparkline(t *testing.T) {
	got := Sparkline([]float64{0, 1, 2, 3}, 4)
	if got != "▁▃▅█" {
		t.Errorf("unexpected sparkline %q", got)
	}
	if Sparkline(nil, 3) != "───" {
		t.Error("expected flat line for no data")
	}
}

func TestGetThemeFallback(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nope").Name != Themes[0].Name {
		t.Error("expected fallback to first theme")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}

func TestSummary(t *testing.T) {
	report := &pipeline.Report{Outcomes: []pipeline.Outcome{
		{Name: "static", Dir: "viz_static", Duration: time.Second, Manifest: &storage.Manifest{GapCurve: []float64{1, 0.5, 0}}},
		{Name: "manim", Dir: "viz_manim", Err: pipeline.ErrMissingDependency},
		{Name: "3d", Dir: "viz_3d", Err: errors.New("disk full")},
	}}

	out := Summary(NewStyles(ThemeMinimal), report)
	for _, want := range []string{"static", "skipped", "disk full", "1/3 pipelines succeeded", "mean image-text gap"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestBanner(t *testing.T) {
	cfg := config.DefaultConfig()
	out := Banner(NewStyles(ThemeOcean), cfg, pipeline.AllModes)
	if !strings.Contains(out, "static, 3d, manim, html") {
		t.Errorf("banner missing modes:\n%s", out)
	}
}

func previewSnapshots(t *testing.T) []align.Snapshot {
	t.Helper()
	image, text := space.NewGenerator(space.DefaultSeed).Generate2D()
	snaps, err := align.New().Snapshots(context.Background(), image, text, 4)
	if err != nil {
		t.Fatalf("snapshots: %v", err)
	}
	return snaps
}

func press(p Preview, key string) (Preview, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "end":
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	case "home":
		msg = tea.KeyMsg{Type: tea.KeyHome}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, cmd := p.Update(msg)
	return m.(Preview), cmd
}

func TestPreviewScrub(t *testing.T) {
	p := NewPreview(previewSnapshots(t), space.DefaultCategories(), 10, "")

	p, _ = press(p, "left")
	if p.Step() != 0 {
		t.Errorf("expected step to stay at 0, got %d", p.Step())
	}

	p, _ = press(p, "right")
	p, _ = press(p, "right")
	if p.Step() != 2 {
		t.Errorf("expected step 2, got %d", p.Step())
	}

	p, _ = press(p, "end")
	if p.Step() != 4 {
		t.Errorf("expected last step, got %d", p.Step())
	}
	p, _ = press(p, "right")
	if p.Step() != 4 {
		t.Errorf("expected step to stay at 4, got %d", p.Step())
	}

	p, _ = press(p, "home")
	if p.Step() != 0 {
		t.Errorf("expected first step, got %d", p.Step())
	}
}

func TestPreviewPlayback(t *testing.T) {
	p := NewPreview(previewSnapshots(t), space.DefaultCategories(), 10, "")

	p, cmd := press(p, " ")
	if !p.Playing() || cmd == nil {
		t.Fatal("expected playback to start with a tick")
	}

	for i := 0; i < 10; i++ {
		m, _ := p.Update(TickMsg(time.Now()))
		p = m.(Preview)
	}
	if p.Step() != 4 {
		t.Errorf("expected playback to stop at the last step, got %d", p.Step())
	}
	if p.Playing() {
		t.Error("expected playback to stop at the end")
	}
}

func TestPreviewStartsOnRequestedTheme(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"minimal", "minimal"},
		{"cyberpunk", "cyberpunk"},
		{"nope", Themes[0].Name},
	}
	for _, tt := range tests {
		p := NewPreview(previewSnapshots(t), space.DefaultCategories(), 10, tt.name)
		if got := p.Theme().Name; got != tt.expected {
			t.Errorf("NewPreview(%q) theme = %q, want %q", tt.name, got, tt.expected)
		}
	}

	p := NewPreview(previewSnapshots(t), space.DefaultCategories(), 10, "minimal")
	p, _ = press(p, "t")
	if p.Theme().Name != Themes[0].Name {
		t.Errorf("cycling from the last theme should wrap, got %q", p.Theme().Name)
	}
}

func TestPreviewThemeAndView(t *testing.T) {
	p := NewPreview(previewSnapshots(t), space.DefaultCategories(), 10, "")
	first := p.Theme().Name

	p, _ = press(p, "t")
	if p.Theme().Name == first {
		t.Error("expected theme to change")
	}

	view := p.View()
	for _, want := range []string{"step 0/4", "Image Embedding Space", "Text Embedding Space", "animals"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	_, cmd := press(p, "q")
	if cmd == nil {
		t.Error("expected quit command")
	}
}
