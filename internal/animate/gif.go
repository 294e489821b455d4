// Package animate assembles rendered PNG frames into animations.
package animate

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"sort"
)

const DefaultFPS = 10

// FramePaths lists the step_*.png frames in dir in lexical order, which is
// step order for zero-padded names.
func FramePaths(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "step_*.png"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// GIF encodes the frames in dir into a looping GIF at out. It returns the
// number of frames written.
func GIF(dir, out string, fps int) (int, error) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	paths, err := FramePaths(dir)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no frames found in %s", dir)
	}

	delay := 100 / fps
	if delay < 2 {
		delay = 2
	}

	anim := gif.GIF{LoopCount: 0}
	for _, path := range paths {
		img, err := readPNG(path)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		anim.Image = append(anim.Image, quantize(img))
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		os.Remove(out)
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return len(anim.Image), nil
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	return p
}
