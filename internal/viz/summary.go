package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/contrastviz/internal/config"
	"github.com/san-kum/contrastviz/internal/pipeline"
)

// Banner is printed before any pipeline runs.
func Banner(s Styles, cfg *config.Config, modes []pipeline.Mode) string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("contrastviz") + s.Muted.Render("  contrastive learning alignment") + "\n")
	b.WriteString(s.Label.Render("modes") + s.Value.Render(strings.Join(names, ", ")) + "\n")
	b.WriteString(s.Label.Render("steps") + s.Value.Render(fmt.Sprint(cfg.Steps)) + "\n")
	b.WriteString(s.Label.Render("output prefix") + s.Value.Render(cfg.Output) + "\n")
	b.WriteString(s.Label.Render("seed") + s.Value.Render(fmt.Sprint(cfg.Seed)))
	return s.Panel.Render(b.String())
}

// Summary renders one line per pipeline outcome followed by the convergence
// curve, when one was recorded.
func Summary(s Styles, report *pipeline.Report) string {
	var b strings.Builder
	b.WriteString(s.Header.Render("Results") + "\n")

	for _, o := range report.Outcomes {
		status := s.OK.Render("ok     ")
		detail := s.Muted.Render(o.Dir)
		switch {
		case o.Err == nil:
		case errors.Is(o.Err, pipeline.ErrMissingDependency):
			status = s.Warn.Render("skipped")
			detail = s.Muted.Render(o.Err.Error())
		default:
			status = s.Fail.Render("failed ")
			detail = s.Fail.Render(o.Err.Error())
		}
		fmt.Fprintf(&b, "  %s %-7s %8s  %s\n", status, o.Name, o.Duration.Round(time.Millisecond), detail)
	}

	if curve := report.GapCurve(); len(curve) > 1 {
		b.WriteString("\n")
		b.WriteString(s.Graph.Render(ConvergencePlot(curve, 60, 8)))
		b.WriteString("\n")
	}

	failed := len(report.Failed())
	total := len(report.Outcomes)
	line := fmt.Sprintf("%d/%d pipelines succeeded", total-failed, total)
	if failed == 0 {
		b.WriteString("\n" + s.OK.Render(line))
	} else {
		b.WriteString("\n" + s.Fail.Render(line))
	}
	return b.String()
}

// ConvergencePlot charts the mean image-text gap over the sweep.
func ConvergencePlot(curve []float64, width, height int) string {
	return asciigraph.Plot(curve,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption("mean image-text gap per step"),
	)
}
