package pipeline

import (
	"fmt"
	"strings"
)

type Mode string

const (
	ModeStatic Mode = "static"
	Mode3D     Mode = "3d"
	ModeManim  Mode = "manim"
	ModeHTML   Mode = "html"
	ModeAll    Mode = "all"
)

// AllModes is the order in which ModeAll runs its pipelines.
var AllModes = []Mode{ModeStatic, Mode3D, ModeManim, ModeHTML}

// ParseMode expands a mode name into the pipelines it selects.
func ParseMode(name string) ([]Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	if m == ModeAll {
		out := make([]Mode, len(AllModes))
		copy(out, AllModes)
		return out, nil
	}
	for _, known := range AllModes {
		if m == known {
			return []Mode{m}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (want static, 3d, manim, html or all)", ErrUnknownMode, name)
}

// Dir returns the output directory for a mode under the given prefix.
func Dir(prefix string, m Mode) string {
	return prefix + "_" + string(m)
}
