package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Mandala defaults
	if cfg.Mandala.Width != 200 || cfg.Mandala.Height != 200 {
		t.Errorf("expected mandala 200x200, got %dx%d", cfg.Mandala.Width, cfg.Mandala.Height)
	}
	if cfg.Mandala.PixelRatio != 0 {
		t.Errorf("expected pixel ratio 0 (auto), got %f", cfg.Mandala.PixelRatio)
	}

	// Graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if !cfg.Graphics.HighDPI {
		t.Error("expected high_dpi to be true by default")
	}

	// Map defaults
	if cfg.Map.GraticuleStep != 15 {
		t.Errorf("expected graticule step 15, got %f", cfg.Map.GraticuleStep)
	}
	if !cfg.Map.ShowReferenceParallels {
		t.Error("expected reference parallels to be shown by default")
	}

	// Render defaults
	if cfg.Render.OutputDir != "frames" {
		t.Errorf("expected output dir 'frames', got %s", cfg.Render.OutputDir)
	}
	if cfg.Render.Prefix != "mandala" {
		t.Errorf("expected prefix 'mandala', got %s", cfg.Render.Prefix)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
mandala:
  width: 320
  height: 240
  pixel_ratio: 2

graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  high_dpi: false

map:
  graticule_step: 30
  show_reference_parallels: false

render:
  output_dir: "out"
  prefix: "lat"

logging:
  level: "debug"
  log_file: "mandala.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mandala.Width != 320 || cfg.Mandala.Height != 240 {
		t.Errorf("expected mandala 320x240, got %dx%d", cfg.Mandala.Width, cfg.Mandala.Height)
	}
	if cfg.Mandala.PixelRatio != 2 {
		t.Errorf("expected pixel ratio 2, got %f", cfg.Mandala.PixelRatio)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.HighDPI {
		t.Error("expected high_dpi to be false")
	}

	if cfg.Map.GraticuleStep != 30 {
		t.Errorf("expected graticule step 30, got %f", cfg.Map.GraticuleStep)
	}
	if cfg.Map.ShowReferenceParallels {
		t.Error("expected reference parallels to be hidden")
	}

	if cfg.Render.OutputDir != "out" || cfg.Render.Prefix != "lat" {
		t.Errorf("expected render out/lat, got %s/%s", cfg.Render.OutputDir, cfg.Render.Prefix)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "mandala.log" {
		t.Errorf("expected log file 'mandala.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("mandala:\n  width: 400\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Unset keys keep their defaults
	if cfg.Mandala.Width != 400 {
		t.Errorf("expected width 400, got %d", cfg.Mandala.Width)
	}
	if cfg.Mandala.Height != 200 {
		t.Errorf("expected default height 200, got %d", cfg.Mandala.Height)
	}
	if cfg.Map.GraticuleStep != 15 {
		t.Errorf("expected default graticule step 15, got %f", cfg.Map.GraticuleStep)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
mandala:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero window", func(c *Config) { c.Graphics.Width = 0 }, "graphics size"},
		{"negative pixel ratio", func(c *Config) { c.Mandala.PixelRatio = -1 }, "pixel_ratio"},
		{"zero graticule", func(c *Config) { c.Map.GraticuleStep = 0 }, "graticule_step"},
		{"wide graticule", func(c *Config) { c.Map.GraticuleStep = 91 }, "graticule_step"},
		{"empty prefix", func(c *Config) { c.Render.Prefix = "" }, "prefix"},
		{"negative mandala size", func(c *Config) { c.Mandala.Width = -5 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("mandala:\n  width: 300\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "mandala size flag",
			setup: func() {
				*flagMandalaSize = 512
			},
			verify: func(cfg *Config) {
				if cfg.Mandala.Width != 512 || cfg.Mandala.Height != 512 {
					t.Errorf("expected mandala 512x512, got %dx%d", cfg.Mandala.Width, cfg.Mandala.Height)
				}
			},
			teardown: func() {
				*flagMandalaSize = 0
			},
		},
		{
			name: "pixel ratio flag",
			setup: func() {
				*flagPixelRatio = 2
			},
			verify: func(cfg *Config) {
				if cfg.Mandala.PixelRatio != 2 {
					t.Errorf("expected pixel ratio 2, got %f", cfg.Mandala.PixelRatio)
				}
			},
			teardown: func() {
				*flagPixelRatio = 0
			},
		},
		{
			name: "out flag",
			setup: func() {
				*flagOut = "/tmp/frames"
			},
			verify: func(cfg *Config) {
				if cfg.Render.OutputDir != "/tmp/frames" {
					t.Errorf("expected output dir /tmp/frames, got %s", cfg.Render.OutputDir)
				}
			},
			teardown: func() {
				*flagOut = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
mandala:
  width: 300
  height: 250
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagPixelRatio = 3
	defer func() {
		*flagConfig = ""
		*flagPixelRatio = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// From the file
	if cfg.Mandala.Width != 300 || cfg.Mandala.Height != 250 {
		t.Errorf("expected mandala 300x250 from file, got %dx%d", cfg.Mandala.Width, cfg.Mandala.Height)
	}
	// From the flag
	if cfg.Mandala.PixelRatio != 3 {
		t.Errorf("expected pixel ratio 3 from flag, got %f", cfg.Mandala.PixelRatio)
	}
	// Untouched default
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", cfg.Graphics.Width)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("map:\n  graticule_step: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for negative graticule step, got nil")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Mandala.Width = 640
	cfg.Render.Prefix = "frame"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config differs:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)
	t.Setenv("APPDATA", tmpDir)

	path, err := Default().Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(path, tmpDir) {
		t.Errorf("expected path under %s, got %s", tmpDir, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}
