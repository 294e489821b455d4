package pipeline_test

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/config"
	"github.com/san-kum/contrastviz/internal/pipeline"
	"github.com/san-kum/contrastviz/internal/render"
	"github.com/san-kum/contrastviz/internal/space"
	"github.com/san-kum/contrastviz/internal/storage"
	"github.com/san-kum/contrastviz/internal/viewer"
)

var _ = Describe("Pipelines", func() {
	var cfg *config.Config

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Output = filepath.Join(GinkgoT().TempDir(), "viz")
		cfg.Steps = 4
		cfg.Render.Width = 240
		cfg.Render.Height = 120
		cfg.FFmpeg.Enabled = false
	})

	run := func(modes ...pipeline.Mode) *pipeline.Report {
		report, err := pipeline.NewDispatcher(cfg, log.New(io.Discard)).Run(context.Background(), modes)
		Expect(err).NotTo(HaveOccurred())
		return report
	}

	It("renders the static artifacts", func() {
		report := run(pipeline.ModeStatic)
		Expect(report.ExitCode()).To(Equal(0))

		dir := cfg.Output + "_static"
		for step := 0; step <= cfg.Steps; step++ {
			Expect(filepath.Join(dir, fmt.Sprintf("step_%d.png", step))).To(BeARegularFile())
		}
		for _, name := range []string{
			pipeline.CombinedPNG,
			pipeline.CombinedSVG,
			pipeline.StaticGIF,
			viewer.FileName,
			storage.TrajectoryFile,
			storage.ManifestFile,
		} {
			Expect(filepath.Join(dir, name)).To(BeARegularFile())
		}

		m, err := storage.Load(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Frames).To(Equal(cfg.Steps + 1))
		Expect(m.GapCurve).To(HaveLen(cfg.Steps + 1))
		Expect(m.GapCurve[cfg.Steps]).To(BeNumerically("~", 0, 1e-9))
		Expect(m.Metrics).To(HaveKeyWithValue("convergence_violations", 0.0))
		Expect(report.GapCurve()).To(Equal(m.GapCurve))
	})

	It("draws the combined view from the final aligned step", func() {
		run(pipeline.ModeStatic)
		dir := cfg.Output + "_static"

		image, text := space.NewGenerator(cfg.Seed).Generate2D()
		snaps, err := align.New().Snapshots(context.Background(), image, text, cfg.Steps)
		Expect(err).NotTo(HaveOccurred())
		last := snaps[len(snaps)-1]
		Expect(last.Final()).To(BeTrue())

		r := render.NewRenderer(space.DefaultCategories(), cfg.Render.Width, cfg.Render.Height)
		r.Fit(image, text)

		var aligned, original bytes.Buffer
		Expect(png.Encode(&aligned, r.Combined(last.Image, last.Text))).To(Succeed())
		Expect(png.Encode(&original, r.Combined(image, text))).To(Succeed())

		written, err := os.ReadFile(filepath.Join(dir, pipeline.CombinedPNG))
		Expect(err).NotTo(HaveOccurred())
		Expect(written).To(Equal(aligned.Bytes()))
		Expect(written).NotTo(Equal(original.Bytes()))

		svg, err := os.ReadFile(filepath.Join(dir, pipeline.CombinedSVG))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(svg)).To(Equal(r.SVG(last.Image, last.Text, pipeline.CombinedTitle)))
	})

	It("overwrites frames from an earlier, longer run", func() {
		cfg.Steps = 12
		run(pipeline.ModeStatic)

		cfg.Steps = 4
		run(pipeline.ModeStatic)

		frames, err := filepath.Glob(filepath.Join(cfg.Output+"_static", "step_*.png"))
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(5))
	})

	It("renders the 3d sweep without ffmpeg", func() {
		report := run(pipeline.Mode3D)
		Expect(report.ExitCode()).To(Equal(0))

		dir := cfg.Output + "_3d"
		Expect(filepath.Join(dir, pipeline.ThreeDGIF)).To(BeARegularFile())
		Expect(filepath.Join(dir, pipeline.ThreeDMP4)).NotTo(BeAnExistingFile())

		m, err := storage.Load(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Frames).To(Equal(cfg.Steps + 1))
	})

	It("fails the 3d pipeline on an unknown easing and still runs html", func() {
		cfg.ThreeD.Easing = "bounce"
		report := run(pipeline.Mode3D, pipeline.ModeHTML)

		Expect(report.Outcomes[0].Err).To(HaveOccurred())
		Expect(report.Outcomes[1].OK()).To(BeTrue())
		Expect(report.ExitCode()).To(Equal(1))
	})

	It("points the html viewer at the static frames", func() {
		report := run(pipeline.ModeHTML)
		Expect(report.ExitCode()).To(Equal(0))

		p := pipeline.NewHTML(cfg, log.New(io.Discard))
		Expect(p.FrameDir()).To(Equal("../viz_static/"))

		m := report.Outcomes[0].Manifest
		Expect(m.Frames).To(Equal(cfg.Steps + 1))
		Expect(filepath.Join(cfg.Output+"_html", viewer.FileName)).To(BeARegularFile())
	})
})
