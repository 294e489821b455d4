package external

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/charmbracelet/log"
)

type FFmpeg struct {
	Binary string
	Logger *log.Logger
}

func (f *FFmpeg) Available() bool {
	_, err := exec.LookPath(f.Binary)
	return err == nil
}

// Encode turns a numbered image sequence into an H.264 video. pattern is an
// ffmpeg input pattern such as dir/step_%03d.png. A partial out file is
// removed on failure.
func (f *FFmpeg) Encode(ctx context.Context, pattern, out string, fps int) error {
	if !f.Available() {
		return fmt.Errorf("%w: %s not found on PATH", ErrMissingDependency, f.Binary)
	}

	logger := f.Logger
	if logger == nil {
		logger = log.Default()
	}

	cmd := exec.CommandContext(ctx, f.Binary,
		"-y",
		"-loglevel", "error",
		"-framerate", strconv.Itoa(fps),
		"-i", pattern,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		out,
	)
	stderr := newLineLogger(logger, "stderr")
	cmd.Stderr = stderr

	logger.Debug("encoding video", "input", pattern, "output", out, "fps", fps)
	err := cmd.Run()
	stderr.Flush()
	if err != nil {
		os.Remove(out)
		return fmt.Errorf("%w: %s: %w", ErrRendererFailed, f.Binary, err)
	}
	return nil
}
