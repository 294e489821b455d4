package pipeline_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/config"
	"github.com/san-kum/contrastviz/internal/pipeline"
	"github.com/san-kum/contrastviz/internal/storage"
)

type fakePipeline struct {
	name     string
	checkErr error
	runErr   error
	ran      *[]string
}

func (f *fakePipeline) Name() string { return f.name }
func (f *fakePipeline) Dir() string  { return "fake_" + f.name }
func (f *fakePipeline) Check() error { return f.checkErr }

func (f *fakePipeline) Run(ctx context.Context) (*storage.Manifest, error) {
	*f.ran = append(*f.ran, f.name)
	if f.runErr != nil {
		return nil, f.runErr
	}
	return storage.NewManifest(f.name, f.Dir(), 1, 1), nil
}

func fake(name string, checkErr, runErr error, ran *[]string) pipeline.Builder {
	return func(*config.Config, *log.Logger) pipeline.Pipeline {
		return &fakePipeline{name: name, checkErr: checkErr, runErr: runErr, ran: ran}
	}
}

var _ = Describe("ParseMode", func() {
	It("expands all into every pipeline in order", func() {
		modes, err := pipeline.ParseMode("all")
		Expect(err).NotTo(HaveOccurred())
		Expect(modes).To(Equal([]pipeline.Mode{pipeline.ModeStatic, pipeline.Mode3D, pipeline.ModeManim, pipeline.ModeHTML}))
	})

	It("accepts a single mode regardless of case", func() {
		modes, err := pipeline.ParseMode(" 3D ")
		Expect(err).NotTo(HaveOccurred())
		Expect(modes).To(ConsistOf(pipeline.Mode3D))
	})

	It("rejects unknown modes", func() {
		_, err := pipeline.ParseMode("vr")
		Expect(err).To(MatchError(pipeline.ErrUnknownMode))
	})
})

var _ = Describe("Dispatcher", func() {
	var (
		cfg    *config.Config
		logger *log.Logger
		ran    []string
		d      *pipeline.Dispatcher
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Output = filepath.Join(GinkgoT().TempDir(), "viz")
		cfg.Steps = 3
		logger = log.New(io.Discard)
		ran = nil
		d = pipeline.NewDispatcher(cfg, logger)
	})

	It("rejects a non-positive step count before touching the filesystem", func() {
		d.Register(pipeline.ModeStatic, fake("static", nil, nil, &ran))
		for _, steps := range []int{0, -1} {
			cfg.Steps = steps
			report, err := d.Run(context.Background(), pipeline.AllModes)
			Expect(err).To(MatchError(align.ErrInvalidArgument))
			Expect(report).To(BeNil())
		}
		Expect(ran).To(BeEmpty())

		dirs, err := filepath.Glob(cfg.Output + "_*")
		Expect(err).NotTo(HaveOccurred())
		Expect(dirs).To(BeEmpty())
	})

	It("keeps going after a pipeline fails", func() {
		boom := errors.New("boom")
		d.Register(pipeline.ModeStatic, fake("static", nil, boom, &ran))
		d.Register(pipeline.Mode3D, fake("3d", nil, nil, &ran))

		report, err := d.Run(context.Background(), []pipeline.Mode{pipeline.ModeStatic, pipeline.Mode3D})
		Expect(err).NotTo(HaveOccurred())
		Expect(ran).To(Equal([]string{"static", "3d"}))
		Expect(report.Outcomes).To(HaveLen(2))
		Expect(report.Outcomes[0].Err).To(MatchError(boom))
		Expect(report.Outcomes[1].OK()).To(BeTrue())
		Expect(report.Failed()).To(HaveLen(1))
		Expect(report.ExitCode()).To(Equal(1))
	})

	It("skips pipelines with missing dependencies and exits with 3", func() {
		missing := errors.Join(pipeline.ErrMissingDependency, errors.New("manim not found"))
		d.Register(pipeline.ModeManim, fake("manim", missing, nil, &ran))
		d.Register(pipeline.ModeHTML, fake("html", nil, nil, &ran))

		report, err := d.Run(context.Background(), []pipeline.Mode{pipeline.ModeManim, pipeline.ModeHTML})
		Expect(err).NotTo(HaveOccurred())
		Expect(ran).To(Equal([]string{"html"}))
		Expect(report.Outcomes[0].Err).To(MatchError(pipeline.ErrMissingDependency))
		Expect(report.ExitCode()).To(Equal(3))
	})

	It("reports 1 when a missing dependency is mixed with a real failure", func() {
		d.Register(pipeline.ModeManim, fake("manim", pipeline.ErrMissingDependency, nil, &ran))
		d.Register(pipeline.ModeHTML, fake("html", nil, pipeline.ErrRendererFailed, &ran))

		report, err := d.Run(context.Background(), []pipeline.Mode{pipeline.ModeManim, pipeline.ModeHTML})
		Expect(err).NotTo(HaveOccurred())
		Expect(report.ExitCode()).To(Equal(1))
	})

	It("does not start pipelines once the context is cancelled", func() {
		d.Register(pipeline.ModeStatic, fake("static", nil, nil, &ran))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		report, err := d.Run(ctx, []pipeline.Mode{pipeline.ModeStatic})
		Expect(err).NotTo(HaveOccurred())
		Expect(ran).To(BeEmpty())
		Expect(report.Outcomes[0].Err).To(MatchError(context.Canceled))
	})

	It("fails on an unregistered mode", func() {
		_, err := d.Run(context.Background(), []pipeline.Mode{"vr"})
		Expect(err).To(MatchError(pipeline.ErrUnknownMode))
	})

	It("reports a missing renderer for the real manim pipeline", func() {
		cfg.Renderer.Binary = "definitely-not-manim"

		report, err := d.Run(context.Background(), []pipeline.Mode{pipeline.ModeManim})
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Outcomes[0].Err).To(MatchError(pipeline.ErrMissingDependency))
		Expect(report.ExitCode()).To(Equal(3))
		Expect(cfg.Output + "_manim").NotTo(BeADirectory())
	})
})
