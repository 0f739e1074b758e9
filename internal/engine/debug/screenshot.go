// Package debug provides image capture utilities for the viewer and the
// headless renderer.
package debug

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fogleman/gg"
)

// ScreenshotCapture writes PNG files into one directory under a common
// filename prefix.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// CaptureFromPixels saves raw RGBA pixel data under a timestamped name.
// The rows are flipped vertically since OpenGL has origin at bottom-left.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipRows(pixels, width, height)
	if err != nil {
		return "", err
	}
	return sc.CaptureFromImage(img)
}

// CaptureFromImage saves img under a timestamped name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	return sc.save(img, sc.GenerateFilename())
}

// CaptureLatitude saves img as <prefix>_<latitude>.png.
func (sc *ScreenshotCapture) CaptureLatitude(img image.Image, latitudeDeg float64) (string, error) {
	return sc.save(img, sc.LatitudeFilename(latitudeDeg))
}

// GenerateFilename generates a timestamped filename without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	return sc.path(fmt.Sprintf("%s_%s.png", sc.prefix, timestamp))
}

// LatitudeFilename returns the path CaptureLatitude writes to.
func (sc *ScreenshotCapture) LatitudeFilename(latitudeDeg float64) string {
	lat := strconv.FormatFloat(latitudeDeg, 'f', -1, 64)
	return sc.path(fmt.Sprintf("%s_%s.png", sc.prefix, lat))
}

func (sc *ScreenshotCapture) path(name string) string {
	if sc.outputDir != "" {
		return filepath.Join(sc.outputDir, name)
	}
	return name
}

func (sc *ScreenshotCapture) save(img image.Image, filename string) (string, error) {
	if img.Bounds().Empty() {
		return "", fmt.Errorf("image %v is empty", img.Bounds())
	}
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := gg.SavePNG(filename, img); err != nil {
		return "", fmt.Errorf("saving %s: %w", filename, err)
	}
	return filename, nil
}

// FlipRows copies bottom-up RGBA rows into a top-down image.
func FlipRows(pixels []byte, width, height int) (*image.RGBA, error) {
	if width < 0 || height < 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}
