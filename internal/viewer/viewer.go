// Package viewer writes the standalone interactive HTML viewer for a run's
// frames.
package viewer

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const FileName = "interactive_viewer.html"

//go:embed viewer.html.tmpl
var pageTemplate string

var page = template.Must(template.New("viewer").Parse(pageTemplate))

type Options struct {
	// Frames is the number of frames, step_0 through step_{Frames-1}.
	Frames int
	// FrameDir is prepended to frame file names; empty means alongside the
	// viewer. It must end in a slash when set.
	FrameDir string
	// Combined is the file name of the combined-space image, relative to
	// FrameDir.
	Combined string
	Title    string
}

type pageData struct {
	Title        string
	Frames       int
	Steps        int
	Digits       int
	FrameDir     string
	FirstFrame   string
	Combined     string
	Descriptions []Description
}

// Write renders the viewer into dir, creating it if needed, and returns the
// path of the written file.
func Write(dir string, opts Options) (string, error) {
	if opts.Frames <= 0 {
		return "", fmt.Errorf("viewer needs at least one frame, got %d", opts.Frames)
	}
	if opts.Title == "" {
		opts.Title = "Contrastive Learning Visualization"
	}
	if opts.Combined == "" {
		opts.Combined = "combined_space.png"
	}
	if opts.FrameDir != "" && !strings.HasSuffix(opts.FrameDir, "/") {
		opts.FrameDir += "/"
	}

	digits := len(strconv.Itoa(opts.Frames - 1))
	data := pageData{
		Title:        opts.Title,
		Frames:       opts.Frames,
		Steps:        opts.Frames - 1,
		Digits:       digits,
		FrameDir:     opts.FrameDir,
		FirstFrame:   opts.FrameDir + fmt.Sprintf("step_%0*d.png", digits, 0),
		Combined:     opts.FrameDir + opts.Combined,
		Descriptions: Descriptions(opts.Frames),
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := page.Execute(f, data); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
