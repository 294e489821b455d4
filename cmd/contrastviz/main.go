package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/config"
	"github.com/san-kum/contrastviz/internal/external"
	"github.com/san-kum/contrastviz/internal/pipeline"
	"github.com/san-kum/contrastviz/internal/space"
	"github.com/san-kum/contrastviz/internal/storage"
	"github.com/san-kum/contrastviz/internal/viz"
	"github.com/spf13/cobra"
)

const (
	exitFailed     = 1
	exitInvalid    = 2
	exitMissingDep = 3
)

var (
	mode       string
	steps      int
	output     string
	configFile string
	preset     string
	seed       int64
	fps        int
	logLevel   string
	theme      string
	force      bool
)

// exitError carries the process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error {
	return &exitError{code: code, err: err}
}

func main() {
	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		// flag and argument errors from cobra itself
		os.Exit(exitInvalid)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "contrastviz",
		Short:         "visualize contrastive learning aligning image and text embedding spaces",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runViz,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&mode, "mode", "m", config.DefaultMode, "visualization mode: static, 3d, manim, html or all")
	pf.IntVarP(&steps, "steps", "s", config.DefaultSteps, "number of interpolation steps")
	pf.StringVarP(&output, "output", "o", config.DefaultOutput, "output directory prefix")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "random seed for the generated spaces")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "animation frame rate")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&theme, "theme", viz.Themes[0].Name, "terminal color theme")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "scrub through the alignment in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPreview,
	}

	runsCmd := &cobra.Command{
		Use:   "runs [output prefix]",
		Short: "list recorded runs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	depsCmd := &cobra.Command{
		Use:   "deps",
		Short: "check external renderer dependencies",
		Args:  cobra.NoArgs,
		RunE:  checkDeps,
	}

	rootCmd.AddCommand(previewCmd, runsCmd, presetsCmd, configCmd, depsCmd)
	return rootCmd
}

// resolveConfig applies defaults, then the preset, then the config file, then
// any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		config.Apply(cfg, p)
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = fps
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	return logger, nil
}

func runViz(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fail(exitInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return fail(exitInvalid, fmt.Errorf("%w: %v", align.ErrInvalidArgument, err))
	}
	modes, err := pipeline.ParseMode(cfg.Mode)
	if err != nil {
		return fail(exitInvalid, err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return fail(exitInvalid, err)
	}

	styles := viz.NewStyles(viz.GetTheme(theme))
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Banner(styles, cfg, modes))

	report, err := pipeline.NewDispatcher(cfg, logger).Run(cmd.Context(), modes)
	if err != nil {
		return fail(exitInvalid, err)
	}

	fmt.Fprintln(out, viz.Summary(styles, report))

	switch code := report.ExitCode(); code {
	case 0:
		return nil
	case exitMissingDep:
		return fail(code, fmt.Errorf("%d pipeline(s) skipped for missing dependencies", len(report.Failed())))
	default:
		return fail(code, fmt.Errorf("%d pipeline(s) failed", len(report.Failed())))
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fail(exitInvalid, err)
	}

	image, text := space.NewGenerator(cfg.Seed).Generate2D()
	snaps, err := align.New().Snapshots(cmd.Context(), image, text, cfg.Steps)
	if err != nil {
		if errors.Is(err, align.ErrInvalidArgument) {
			return fail(exitInvalid, err)
		}
		return fail(exitFailed, err)
	}

	m := viz.NewPreview(snaps, space.DefaultCategories(), cfg.Render.FPS, theme)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fail(exitFailed, err)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	prefix := config.DefaultOutput
	if len(args) == 1 {
		prefix = args[0]
	} else if cmd.Flags().Changed("output") {
		prefix = output
	}

	runs, err := storage.New(prefix).List()
	if err != nil {
		return fail(exitFailed, err)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tSTARTED\tDURATION\tSTEPS\tFRAMES\tSTATUS\tCONVERGENCE")

	for _, run := range runs {
		status := "ok"
		if run.Error != "" {
			status = "failed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			shortID(run.ID),
			run.Mode,
			run.Started.Format("2006-01-02 15:04:05"),
			run.Duration().Round(time.Millisecond),
			run.Steps,
			run.Frames,
			status,
			viz.Sparkline(run.GapCurve, 20),
		)
	}

	return w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSTEPS\tSIZE\tFPS")
	for _, name := range names {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%dx%d\t%d\n", name, p.Steps, p.Render.Width, p.Render.Height, p.Render.FPS)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !force {
		return fail(exitInvalid, fmt.Errorf("%s already exists (use --force to overwrite)", path))
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fail(exitInvalid, err)
	}
	if err := config.Save(path, cfg); err != nil {
		return fail(exitFailed, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func checkDeps(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fail(exitInvalid, err)
	}
	styles := viz.NewStyles(viz.GetTheme(theme))
	out := cmd.OutOrStdout()

	manim := &external.Manim{
		Binary:     cfg.Renderer.Binary,
		Script:     cfg.Renderer.Script,
		Scene:      cfg.Renderer.Scene,
		Quality:    cfg.Renderer.Quality,
		OutputName: cfg.Renderer.OutputName,
	}
	ffmpeg := &external.FFmpeg{Binary: cfg.FFmpeg.Binary}

	missing := 0
	if err := manim.Check(); err != nil {
		missing++
		fmt.Fprintf(out, "%s %-8s %s\n", styles.Fail.Render("missing"), "manim", err)
	} else {
		fmt.Fprintf(out, "%s %-8s %s\n", styles.OK.Render("ok     "), "manim", cfg.Renderer.Binary)
	}

	if ffmpeg.Available() {
		fmt.Fprintf(out, "%s %-8s %s\n", styles.OK.Render("ok     "), "ffmpeg", cfg.FFmpeg.Binary)
	} else {
		// only needed for the optional 3d mp4
		fmt.Fprintf(out, "%s %-8s %s not found on PATH\n", styles.Warn.Render("absent "), "ffmpeg", cfg.FFmpeg.Binary)
	}

	if missing > 0 {
		return fail(exitMissingDep, fmt.Errorf("%w: manim pipeline cannot run", pipeline.ErrMissingDependency))
	}
	return nil
}
