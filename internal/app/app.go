// Package app implements the interactive viewer: a world map in an SDL2
// window where clicking a location shows the mandala for its latitude in
// a popup.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/mandala/internal/config"
	"github.com/Faultbox/mandala/internal/engine/debug"
	"github.com/Faultbox/mandala/internal/engine/input"
	"github.com/Faultbox/mandala/internal/engine/renderer"
	"github.com/Faultbox/mandala/internal/engine/texture"
	"github.com/Faultbox/mandala/internal/engine/ui2d"
	"github.com/Faultbox/mandala/internal/engine/window"
	"github.com/Faultbox/mandala/internal/logger"
	"github.com/Faultbox/mandala/internal/mandala"
	"github.com/Faultbox/mandala/internal/viewer"
	"github.com/Faultbox/mandala/internal/worldmap"
)

var (
	tipColor    = ui2d.RGBA(0xff, 0xff, 0xff, 0xf2)
	markerColor = ui2d.RGBA(0xd0, 0x30, 0x30, 0xff)
	frameColor  = ui2d.RGBA(0xc8, 0xc8, 0xc8, 0xff)
)

// markerSize is the half-length of the crosshair drawn at the clicked point.
const markerSize = 6

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	ui       *ui2d.Renderer
	input    *input.Input
	capture  *debug.ScreenshotCapture

	scene      *viewer.Scene
	pixelRatio float64

	mapTex     *texture.Texture
	mandalaTex *texture.Texture
	cardTex    *texture.Texture
	cardRev    int
	cardLayout [2]float64 // box size the card was rendered for

	screenshotPending bool
	title             string
}

// New creates the window, GL resources and the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Mandala",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		HighDPI:    cfg.Graphics.HighDPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	drawW, drawH := a.window.GetDrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      drawW,
		Height:     drawH,
		ClearColor: ui2d.FromColor(worldmap.LetterboxColor),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	winW, winH := a.window.GetSize()
	a.ui, err = ui2d.New(winW, winH)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create 2D renderer: %w", err)
	}

	a.input = input.New()
	a.capture = debug.NewScreenshotCapture(cfg.Render.OutputDir, cfg.Render.Prefix)

	a.pixelRatio = cfg.Mandala.PixelRatio
	if a.pixelRatio <= 0 {
		a.pixelRatio = a.window.PixelRatio()
	}

	md := mandala.New(mandala.Options{
		Width:      cfg.Mandala.Width,
		Height:     cfg.Mandala.Height,
		PixelRatio: a.pixelRatio,
		Logger:     logger.Named("mandala"),
	})
	a.scene = viewer.NewScene(md, winW, winH, a.log)
	a.title = a.scene.Title()
	a.mandalaTex = texture.FromRGBA(md.Surface())

	a.log.Info("viewer initialized", zap.Float64("pixel_ratio", a.pixelRatio))
	return a, nil
}

// Run starts the main loop. It returns when the window is closed or ESC
// is pressed.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		// 2. Sync GPU copies of anything that changed
		a.syncTextures()

		// 3. Render
		a.render()
		if a.screenshotPending {
			a.screenshotPending = false
			a.saveWindow()
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	for _, t := range []*texture.Texture{a.mapTex, a.mandalaTex, a.cardTex} {
		if t != nil {
			t.Delete()
		}
	}
	if a.ui != nil {
		a.ui.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.ui.Resize(event.Width, event.Height)
			a.renderer.Resize(a.window.GetDrawableSize())
			a.scene.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_F12:
				a.saveMandala()
			case sdl.SCANCODE_F11:
				a.screenshotPending = true
			case sdl.SCANCODE_F10:
				a.toggleDebugLog()
			}

		case input.EventMouseDown:
			switch event.Button {
			case input.ButtonLeft:
				a.scene.Click(float64(event.MouseX), float64(event.MouseY))
			case input.ButtonRight:
				a.scene.Dismiss()
			}
		}
	}

	if title := a.scene.Title(); title != a.title {
		a.window.SetTitle(title)
		a.title = title
	}
}

// toggleDebugLog switches between debug logging and the configured level.
func (a *App) toggleDebugLog() {
	if logger.Level() == "debug" {
		logger.SetLevel(a.cfg.Logging.Level)
	} else {
		logger.SetLevel("debug")
	}
	a.log.Info("log level changed", zap.String("level", logger.Level()))
}

func (a *App) syncTextures() {
	if a.scene.TakeMapDirty() {
		w, h := a.ui.GetScreenSize()
		img := worldmap.Render(worldmap.Options{
			Width:                  w,
			Height:                 h,
			PixelRatio:             a.window.PixelRatio(),
			GraticuleStep:          a.cfg.Map.GraticuleStep,
			ShowReferenceParallels: a.cfg.Map.ShowReferenceParallels,
		})
		if a.mapTex == nil {
			a.mapTex = texture.FromRGBA(img)
		} else {
			a.mapTex.Update(img)
		}
	}

	if a.scene.TakeMandalaDirty() {
		// Same surface, same size: an in-place upload.
		a.mandalaTex.Update(a.scene.Mandala().Surface())
	}

	l, ok := a.scene.Layout()
	if !ok {
		return
	}
	p := a.scene.Popup()
	size := [2]float64{l.Box.W, l.Box.H}
	if a.cardTex != nil && a.cardRev == p.Revision() && a.cardLayout == size {
		return
	}
	img := p.RenderCard(l, a.pixelRatio)
	if a.cardTex == nil {
		a.cardTex = texture.FromRGBA(img)
	} else {
		a.cardTex.Update(img)
	}
	a.cardRev = p.Revision()
	a.cardLayout = size
}

func (a *App) render() {
	a.renderer.Begin()
	a.ui.Begin()

	w, h := a.ui.GetScreenSize()
	if a.mapTex != nil {
		a.ui.DrawImage(0, 0, float32(w), float32(h), a.mapTex.ID)
	}

	if l, ok := a.scene.Layout(); ok {
		p := a.scene.Projection().ToScreen(a.scene.Popup().LatLng())
		x, y := float32(p.X), float32(p.Y)
		a.ui.DrawLine(x-markerSize, y, x+markerSize, y, 2, markerColor)
		a.ui.DrawLine(x, y-markerSize, x, y+markerSize, 2, markerColor)

		t := l.Tip
		a.ui.DrawTriangle(
			float32(t[0].X), float32(t[0].Y),
			float32(t[1].X), float32(t[1].Y),
			float32(t[2].X), float32(t[2].Y),
			tipColor,
		)
		a.ui.DrawImage(float32(l.Box.X), float32(l.Box.Y), float32(l.Box.W), float32(l.Box.H), a.cardTex.ID)
		if a.scene.Mandala().Rendered() {
			c := l.Content
			a.ui.DrawImage(float32(c.X), float32(c.Y), float32(c.W), float32(c.H), a.mandalaTex.ID)
			a.ui.DrawRectOutline(float32(c.X), float32(c.Y), float32(c.W), float32(c.H), 1, frameColor)
		}
	}

	a.ui.End()
	a.renderer.End()
}

func (a *App) saveMandala() {
	md := a.scene.Mandala()
	if !md.Rendered() {
		a.log.Info("nothing to save yet, click the map first")
		return
	}
	path, err := a.capture.CaptureLatitude(md.Surface(), md.Values().LatitudeDeg)
	if err != nil {
		a.log.Warn("failed to save mandala", zap.Error(err))
		return
	}
	a.log.Info("mandala saved", zap.String("path", path))
}

func (a *App) saveWindow() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Warn("failed to save screenshot", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}
