package config

var Presets = map[string]*Config{
	"quick": {
		Steps:  10,
		Render: RenderConfig{Width: 800, Height: 400, FPS: 5},
	},
	"default": {
		Steps:  DefaultSteps,
		Render: RenderConfig{Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS},
	},
	"smooth": {
		Steps:  240,
		Render: RenderConfig{Width: DefaultWidth, Height: DefaultHeight, FPS: 24},
	},
	"presentation": {
		Steps:  150,
		Render: RenderConfig{Width: 1920, Height: 960, FPS: 15},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

// Apply copies the preset's sweep and frame settings onto cfg.
func Apply(cfg *Config, preset *Config) {
	if preset == nil {
		return
	}
	if preset.Steps > 0 {
		cfg.Steps = preset.Steps
	}
	if preset.Render.Width > 0 {
		cfg.Render.Width = preset.Render.Width
	}
	if preset.Render.Height > 0 {
		cfg.Render.Height = preset.Render.Height
	}
	if preset.Render.FPS > 0 {
		cfg.Render.FPS = preset.Render.FPS
	}
}
