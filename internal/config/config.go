// Package config handles viewer and renderer configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Mandala  MandalaConfig  `yaml:"mandala"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Map      MapConfig      `yaml:"map"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// MandalaConfig holds the mandala surface settings.
type MandalaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// PixelRatio 0 means detect from the display (viewer) or 1 (headless).
	PixelRatio float64 `yaml:"pixel_ratio"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	HighDPI    bool `yaml:"high_dpi"`
}

// MapConfig holds world map settings.
type MapConfig struct {
	GraticuleStep          float64 `yaml:"graticule_step"` // degrees
	ShowReferenceParallels bool    `yaml:"show_reference_parallels"`
}

// RenderConfig holds headless renderer output settings.
type RenderConfig struct {
	OutputDir string `yaml:"output_dir"`
	Prefix    string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mandala: MandalaConfig{
			Width:      200,
			Height:     200,
			PixelRatio: 0,
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			HighDPI:    true,
		},
		Map: MapConfig{
			GraticuleStep:          15,
			ShowReferenceParallels: true,
		},
		Render: RenderConfig{
			OutputDir: "frames",
			Prefix:    "mandala",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
