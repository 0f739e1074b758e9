// Command mandala-render renders mandalas for one or more latitudes to PNG
// files without opening a window, and prints the derived values.
//
// Usage:
//
//	mandala-render -lats 0,23.44,45 -out frames/ -json
//	mandala-render -save-user-config
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/mandala/internal/config"
	"github.com/Faultbox/mandala/internal/engine/debug"
	"github.com/Faultbox/mandala/internal/logger"
	"github.com/Faultbox/mandala/internal/mandala"
)

var (
	flagLats       latitudes
	flagJSON       = flag.Bool("json", false, "Print results as JSON")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
	flagSaveUser   = flag.Bool("save-user-config", false, "Write the effective config to the user config directory and exit")
)

func init() {
	flag.Var(&flagLats, "lat", "Latitude in degrees (repeatable)")
	flag.Func("lats", "Comma-separated latitudes in degrees", func(s string) error {
		lats, err := parseLatitudes(s)
		if err != nil {
			return err
		}
		flagLats = append(flagLats, lats...)
		return nil
	})
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagSaveConfig != "" || *flagSaveUser {
		path, err := saveConfig(cfg, *flagSaveConfig)
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("path", path))
		return
	}

	lats := flagLats
	if len(lats) == 0 {
		lats = latitudes{0}
	}

	results, err := render(cfg, lats)
	if err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}

	if err := report(os.Stdout, results, *flagJSON); err != nil {
		logger.Error("failed to write results", zap.Error(err))
		os.Exit(1)
	}
}

// saveConfig writes cfg to path, or to the user config directory when
// path is empty, and returns where it went.
func saveConfig(cfg *config.Config, path string) (string, error) {
	if path == "" {
		return cfg.Save()
	}
	return path, cfg.SaveTo(path)
}

// render draws every latitude on one reused Mandala and saves each frame.
func render(cfg *config.Config, lats []float64) ([]result, error) {
	md := mandala.New(mandala.Options{
		Width:      cfg.Mandala.Width,
		Height:     cfg.Mandala.Height,
		PixelRatio: cfg.Mandala.PixelRatio,
	})
	capture := debug.NewScreenshotCapture(cfg.Render.OutputDir, cfg.Render.Prefix)

	results := make([]result, 0, len(lats))
	for _, lat := range lats {
		md.Update(lat)

		res := newResult(md.Values())
		if !md.Surface().Bounds().Empty() {
			path, err := capture.CaptureLatitude(md.Surface(), lat)
			if err != nil {
				return nil, fmt.Errorf("latitude %v: %w", lat, err)
			}
			res.File = path
		}
		results = append(results, res)

		logger.Debug("rendered", zap.Float64("latitude", lat), zap.String("file", res.File))
	}
	return results, nil
}

func report(w io.Writer, results []result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}
