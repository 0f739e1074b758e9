package debug

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fogleman/gg"
)

func TestFlipRows(t *testing.T) {
	// Two rows, bottom row first: bottom red, top blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	if _, err := FlipRows(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected error for short pixel data")
	}
	if _, err := FlipRows(nil, -1, 2); err == nil {
		t.Error("expected error for negative width")
	}
}

func TestLatitudeFilename(t *testing.T) {
	sc := NewScreenshotCapture("out", "mandala")

	tests := []struct {
		lat  float64
		want string
	}{
		{0, "mandala_0.png"},
		{23.44, "mandala_23.44.png"},
		{-45, "mandala_-45.png"},
	}

	for _, tt := range tests {
		if got := sc.LatitudeFilename(tt.lat); got != filepath.Join("out", tt.want) {
			t.Errorf("LatitudeFilename(%v) = %s, want %s", tt.lat, got, tt.want)
		}
	}
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("", "shot")
	sc.now = func() time.Time {
		return time.Date(2024, 6, 21, 12, 30, 5, 0, time.UTC)
	}

	if got := sc.GenerateFilename(); got != "shot_2024-06-21_12-30-05.000.png" {
		t.Errorf("GenerateFilename() = %s", got)
	}
}

func TestCaptureLatitude(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	sc := NewScreenshotCapture(dir, "mandala")

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{0, 0, 255, 255})

	path, err := sc.CaptureLatitude(img, 12.5)
	if err != nil {
		t.Fatalf("CaptureLatitude failed: %v", err)
	}
	if path != filepath.Join(dir, "mandala_12.5.png") {
		t.Errorf("unexpected path %s", path)
	}

	loaded, err := gg.LoadPNG(path)
	if err != nil {
		t.Fatalf("reading back PNG: %v", err)
	}
	if loaded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", loaded.Bounds(), img.Bounds())
	}
	r, g, b, a := loaded.At(1, 2).RGBA()
	if r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("pixel (1,2) = %v %v %v %v, want opaque blue", r, g, b, a)
	}
}

func TestCaptureEmptyImage(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "mandala")
	if _, err := sc.CaptureFromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "window")

	path, err := sc.CaptureFromPixels(make([]byte, 2*2*4), 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot missing: %v", err)
	}
}
