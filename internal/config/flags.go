package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagMandalaSize = flag.Int("mandala-size", 0, "Mandala width and height in logical pixels")
	flagPixelRatio  = flag.Float64("pixel-ratio", 0, "Mandala surface pixels per logical pixel")
	flagOut         = flag.String("out", "", "Output directory for rendered images")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagMandalaSize > 0 {
		cfg.Mandala.Width = *flagMandalaSize
		cfg.Mandala.Height = *flagMandalaSize
	}
	if *flagPixelRatio > 0 {
		cfg.Mandala.PixelRatio = *flagPixelRatio
	}
	if *flagOut != "" {
		cfg.Render.OutputDir = *flagOut
	}
}
