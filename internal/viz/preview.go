package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/render"
	"github.com/san-kum/contrastviz/internal/space"
)

const (
	panelWidth  = 36
	panelHeight = 12
)

type TickMsg time.Time

// Preview scrubs through a precomputed sweep in the terminal.
type Preview struct {
	snapshots  []align.Snapshot
	categories []space.Category
	bounds     render.Bounds
	step       int
	playing    bool
	fps        int
	theme      int
	styles     Styles
	showHelp   bool
}

// NewPreview starts paused at step 0 on the named theme. Unknown theme names
// fall back to the first theme.
func NewPreview(snapshots []align.Snapshot, categories []space.Category, fps int, theme string) Preview {
	if fps <= 0 {
		fps = 10
	}
	idx := themeIndex(theme)
	p := Preview{
		snapshots:  snapshots,
		categories: categories,
		bounds:     render.UnitBounds,
		fps:        fps,
		theme:      idx,
		styles:     NewStyles(Themes[idx]),
	}
	if len(snapshots) > 0 {
		p.bounds = render.FitBounds(snapshots[0].Image, snapshots[0].Text)
	}
	return p
}

func (p Preview) Step() int     { return p.step }
func (p Preview) Playing() bool { return p.playing }
func (p Preview) Theme() Theme  { return Themes[p.theme] }
func (p Preview) last() int     { return len(p.snapshots) - 1 }
func (p Preview) Init() tea.Cmd { return nil }

func (p Preview) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			p.playing = !p.playing
			if p.playing {
				if p.step == p.last() {
					p.step = 0
				}
				return p, p.tick()
			}
		case "right", "l":
			p.playing = false
			p.step = min(p.step+1, p.last())
		case "left", "h":
			p.playing = false
			p.step = max(p.step-1, 0)
		case "home", "g":
			p.playing = false
			p.step = 0
		case "end", "G":
			p.playing = false
			p.step = max(p.last(), 0)
		case "t":
			p.theme = (p.theme + 1) % len(Themes)
			p.styles = NewStyles(Themes[p.theme])
		case "?":
			p.showHelp = !p.showHelp
		}
	case TickMsg:
		if !p.playing {
			return p, nil
		}
		if p.step >= p.last() {
			p.playing = false
			return p, nil
		}
		p.step++
		return p, p.tick()
	}
	return p, nil
}

func (p Preview) View() string {
	if len(p.snapshots) == 0 {
		return p.styles.Muted.Render("nothing to preview") + "\n"
	}
	s := p.snapshots[p.step]

	image := p.panel("Image Embedding Space", s.Image, true)
	text := p.panel("Text Embedding Space", s.Text, false)

	var b strings.Builder
	b.WriteString(p.styles.Title.Render(fmt.Sprintf("Contrastive Learning Space Alignment  step %d/%d", s.Step, s.Steps)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, image, " ", text, " ", p.gaps(s)))
	b.WriteString("\n")
	b.WriteString(p.styles.Muted.Render(render.Caption(s.Step, s.Steps)))
	b.WriteString("\n")
	b.WriteString(p.styles.ProgressBar(s.Progress(), 2*panelWidth+4))
	fmt.Fprintf(&b, " %3.0f%%\n", 100*s.Progress())

	if p.showHelp {
		b.WriteString(p.styles.KeyHint.Render("space play/pause · ←/→ step · home/end jump · t theme · q quit"))
	} else {
		b.WriteString(p.styles.KeyHint.Render("? help"))
	}
	b.WriteString("\n")
	return b.String()
}

func (p Preview) panel(title string, sp space.Space, square bool) string {
	c := NewCanvas(panelWidth, panelHeight)
	for _, item := range sp.Keys() {
		pt := sp[item]
		if len(pt) < 2 {
			continue
		}
		x, y := c.Project(p.bounds, pt[0], pt[1])
		if square {
			c.Square(x, y)
		} else {
			c.Cross(x, y)
		}
	}
	return p.styles.Panel.Render(p.styles.Title.Render(title) + "\n" + c.String())
}

// gaps lists the mean image-text distance per category.
func (p Preview) gaps(s align.Snapshot) string {
	var b strings.Builder
	b.WriteString(p.styles.Title.Render("Mean gap") + "\n")

	names := make([]string, 0, len(p.categories))
	byName := make(map[string]space.Category, len(p.categories))
	for _, c := range p.categories {
		names = append(names, c.Name)
		byName[c.Name] = c
	}
	sort.Strings(names)

	for _, name := range names {
		c := byName[name]
		sum, n := 0.0, 0
		for _, item := range c.Items {
			if d, ok := s.Gap(item); ok {
				sum += d
				n++
			}
		}
		if n == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s %.3f\n", Swatch(c.Color, fmt.Sprintf("%-9s", name)), sum/float64(n))
	}
	return p.styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}
