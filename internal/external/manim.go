// Package external runs the out-of-process renderers: the manim scene
// renderer and ffmpeg. Each run is scoped to a private staging directory so
// a failed invocation leaves nothing behind in the output directory.
package external

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// qualityDirs maps manim's -q flag to the directory it renders into.
var qualityDirs = map[string]string{
	"l": "480p15",
	"m": "720p30",
	"h": "1080p60",
	"p": "1440p60",
	"k": "2160p60",
}

func QualityDir(q string) (string, bool) {
	d, ok := qualityDirs[q]
	return d, ok
}

type Manim struct {
	Binary     string
	Script     string
	Scene      string
	Quality    string
	OutputName string
	Logger     *log.Logger
}

// Check reports ErrMissingDependency when the binary is not on PATH or the
// scene script does not exist.
func (m *Manim) Check() error {
	if _, err := exec.LookPath(m.Binary); err != nil {
		return fmt.Errorf("%w: %s not found on PATH", ErrMissingDependency, m.Binary)
	}
	if _, err := os.Stat(m.Script); err != nil {
		return fmt.Errorf("%w: scene script %s: %v", ErrMissingDependency, m.Script, err)
	}
	if _, ok := qualityDirs[m.Quality]; !ok {
		return fmt.Errorf("unknown renderer quality %q", m.Quality)
	}
	return nil
}

func (m *Manim) Args(mediaDir string) []string {
	args := []string{m.Script}
	if m.Scene != "" {
		args = append(args, m.Scene)
	}
	return append(args,
		"-q"+m.Quality,
		"--disable_caching",
		"--output_file="+m.OutputName,
		"--media_dir", mediaDir,
	)
}

// Render runs the scene and copies the produced video to target. It blocks
// until the process exits; cancelling ctx kills it.
func (m *Manim) Render(ctx context.Context, target string) (err error) {
	stage, cleanup, err := newStage(filepath.Dir(target))
	if err != nil {
		return err
	}
	defer cleanup()
	defer func() {
		if err != nil {
			os.Remove(target)
		}
	}()

	cmd := exec.CommandContext(ctx, m.Binary, m.Args(stage)...)
	stdout := newLineLogger(m.logger(), "stdout")
	stderr := newLineLogger(m.logger(), "stderr")
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	m.logger().Info("starting renderer", "cmd", m.Binary, "args", strings.Join(cmd.Args[1:], " "))
	runErr := cmd.Run()
	stdout.Flush()
	stderr.Flush()
	if runErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrRendererFailed, m.Binary, runErr)
	}

	src, err := m.locate(stage)
	if err != nil {
		return err
	}
	m.logger().Debug("renderer output located", "path", src)
	return copyFile(src, target)
}

func (m *Manim) logger() *log.Logger {
	if m.Logger == nil {
		return log.Default()
	}
	return m.Logger
}

// locate finds the rendered video: first where manim documents it, then the
// first mp4 anywhere under videos/.
func (m *Manim) locate(stage string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(m.Script), filepath.Ext(m.Script))
	expected := filepath.Join(stage, "videos", stem, qualityDirs[m.Quality], m.OutputName+".mp4")
	if _, err := os.Stat(expected); err == nil {
		return expected, nil
	}

	var found string
	root := filepath.Join(stage, "videos")
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".mp4") {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if found != "" {
		return found, nil
	}
	if walkErr != nil && !os.IsNotExist(walkErr) {
		return "", walkErr
	}
	return "", fmt.Errorf("%w: expected %s", ErrNoOutput, expected)
}

func newStage(parent string) (string, func(), error) {
	if err := os.MkdirAll(parent, 0755); err != nil {
		return "", nil, err
	}
	dir, err := os.MkdirTemp(parent, ".stage-")
	if err != nil {
		return "", nil, err
	}
	return dir, func() { os.RemoveAll(dir) }, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
