package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMode     = "all"
	DefaultSteps    = 100
	DefaultOutput   = "contrastive_viz"
	DefaultSeed     = 42
	DefaultFPS      = 10
	DefaultWidth    = 1200
	DefaultHeight   = 600
	DefaultLogLevel = "info"
)

type Config struct {
	Mode     string         `yaml:"mode"`
	Steps    int            `yaml:"steps"`
	Output   string         `yaml:"output"`
	Seed     int64          `yaml:"seed"`
	LogLevel string         `yaml:"log_level"`
	Render   RenderConfig   `yaml:"render"`
	ThreeD   ThreeDConfig   `yaml:"three_d"`
	Renderer RendererConfig `yaml:"renderer"`
	FFmpeg   FFmpegConfig   `yaml:"ffmpeg"`
}

type RenderConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	FPS    int  `yaml:"fps"`
	SVG    bool `yaml:"svg"`
}

type ThreeDConfig struct {
	Easing string  `yaml:"easing"`
	Lift   float64 `yaml:"lift"`
}

// RendererConfig describes the external animation renderer invocation.
type RendererConfig struct {
	Binary     string `yaml:"binary"`
	Script     string `yaml:"script"`
	Scene      string `yaml:"scene"`
	Quality    string `yaml:"quality"`
	OutputName string `yaml:"output_name"`
}

type FFmpegConfig struct {
	Binary  string `yaml:"binary"`
	Enabled bool   `yaml:"enabled"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:     DefaultMode,
		Steps:    DefaultSteps,
		Output:   DefaultOutput,
		Seed:     DefaultSeed,
		LogLevel: DefaultLogLevel,
		Render: RenderConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
			SVG:    true,
		},
		ThreeD: ThreeDConfig{
			Easing: "in-out-cubic",
			Lift:   0.1,
		},
		Renderer: RendererConfig{
			Binary:     "manim",
			Script:     "contrastive_learning.py",
			Scene:      "ContrastiveLearningAnimation",
			Quality:    "h",
			OutputName: "contrastive_learning",
		},
		FFmpeg: FFmpegConfig{
			Binary:  "ffmpeg",
			Enabled: true,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in the file onto cfg, leaving the rest
// untouched.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values that cannot be corrected later in the run.
func (c *Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if c.Output == "" {
		return fmt.Errorf("output prefix must not be empty")
	}
	if c.Render.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Render.FPS)
	}
	if c.Render.Width < 200 || c.Render.Height < 100 {
		return fmt.Errorf("frame size %dx%d is too small", c.Render.Width, c.Render.Height)
	}
	return nil
}
