package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/contrastviz/internal/align"
)

// FrameName returns the file name for a step, zero-padded to the width of
// steps so lexical order matches step order.
func FrameName(step, steps int) string {
	return fmt.Sprintf("step_%0*d.png", len(strconv.Itoa(steps)), step)
}

func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func rectOf(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1, y1)
}

// FrameFunc renders a snapshot to an image.
type FrameFunc func(align.Snapshot) image.Image

// FrameWriter is an align.Observer that writes one PNG per snapshot.
type FrameWriter struct {
	Dir     string
	Render  FrameFunc
	Written []string
}

func NewFrameWriter(dir string, fn FrameFunc) *FrameWriter {
	return &FrameWriter{Dir: dir, Render: fn}
}

func (w *FrameWriter) OnSnapshot(s align.Snapshot) error {
	path := filepath.Join(w.Dir, FrameName(s.Step, s.Steps))
	if err := SavePNG(path, w.Render(s)); err != nil {
		return fmt.Errorf("write frame %d: %w", s.Step, err)
	}
	w.Written = append(w.Written, path)
	return nil
}
