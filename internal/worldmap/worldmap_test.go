package worldmap

import (
	"image"
	"image/color"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Faultbox/mandala/internal/solar"
)

func TestProjectionRoundTrip(t *testing.T) {
	proj := NewProjection(720, 360)

	tests := []LatLng{
		{0, 0},
		{90, -180},
		{-90, 180},
		{23.44, -45.5},
		{-66.56, 120},
	}

	for _, ll := range tests {
		p := proj.ToScreen(ll)
		got, ok := proj.ToLatLng(p.X, p.Y)
		if !ok {
			t.Errorf("%v: screen point %v reported outside the map", ll, p)
			continue
		}
		if !scalar.EqualWithinAbs(got.Lat, ll.Lat, 1e-9) || !scalar.EqualWithinAbs(got.Lng, ll.Lng, 1e-9) {
			t.Errorf("round trip %v -> %v -> %v", ll, p, got)
		}
	}
}

func TestProjectionKnownPoints(t *testing.T) {
	proj := NewProjection(720, 360)

	if proj.Scale() != 2 {
		t.Fatalf("Scale() = %v, want 2", proj.Scale())
	}

	tests := []struct {
		x, y float64
		want LatLng
	}{
		{360, 180, LatLng{0, 0}},
		{0, 0, LatLng{90, -180}},
		{720, 360, LatLng{-90, 180}},
		{540, 90, LatLng{45, 90}},
	}

	for _, tt := range tests {
		got, ok := proj.ToLatLng(tt.x, tt.y)
		if !ok || got != tt.want {
			t.Errorf("ToLatLng(%v, %v) = %v, %v; want %v", tt.x, tt.y, got, ok, tt.want)
		}
	}
}

func TestProjectionLetterbox(t *testing.T) {
	// Wider than 2:1: bars left and right.
	proj := NewProjection(800, 360)
	x, y, w, h := proj.Bounds()
	if x != 40 || y != 0 || w != 720 || h != 360 {
		t.Errorf("Bounds() = %v %v %v %v, want 40 0 720 360", x, y, w, h)
	}

	if _, ok := proj.ToLatLng(20, 100); ok {
		t.Error("click in the left bar should be outside the map")
	}
	if ll, ok := proj.ToLatLng(400, 180); !ok || ll != (LatLng{0, 0}) {
		t.Errorf("center = %v, %v; want 0, 0", ll, ok)
	}

	// Taller than 2:1: bars top and bottom.
	proj = NewProjection(360, 400)
	if _, y, _, h := proj.Bounds(); y != 110 || h != 180 {
		t.Errorf("Bounds() y=%v h=%v, want 110 180", y, h)
	}
	if _, ok := proj.ToLatLng(180, 50); ok {
		t.Error("click in the top bar should be outside the map")
	}
}

func TestProjectionEmptyView(t *testing.T) {
	proj := NewProjection(0, 0)
	if _, ok := proj.ToLatLng(0, 0); ok {
		t.Error("empty view should have no map")
	}
	proj = NewProjection(-10, 50)
	if proj.Scale() != 0 {
		t.Errorf("negative view scale = %v, want 0", proj.Scale())
	}
}

func TestGraticule(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{15, 25 + 13},
		{30, 13 + 7},
		{50, 9 + 5}, // edges added where the step does not divide evenly
		{0, 4},
		{-5, 4},
	}

	for _, tt := range tests {
		if got := len(Graticule(tt.step)); got != tt.want {
			t.Errorf("Graticule(%v) has %d lines, want %d", tt.step, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	img := Render(Options{
		Width:                  720,
		Height:                 360,
		GraticuleStep:          15,
		ShowReferenceParallels: true,
	})

	if img.Bounds() != image.Rect(0, 0, 720, 360) {
		t.Fatalf("bounds = %v", img.Bounds())
	}

	// Between grid lines at 7.5°N, 7.5°E.
	if got := img.RGBAAt(375, 165); got != OceanColor {
		t.Errorf("ocean pixel = %v, want %v", got, OceanColor)
	}
	// On the equator, inside a dash.
	if got := img.RGBAAt(375, 180); !near(got, EquatorColor, 2) {
		t.Errorf("equator pixel = %v, want %v", got, EquatorColor)
	}
}

func TestRenderLetterboxAndRatio(t *testing.T) {
	img := Render(Options{Width: 400, Height: 100, PixelRatio: 2, GraticuleStep: 15})

	if img.Bounds() != image.Rect(0, 0, 800, 200) {
		t.Fatalf("bounds = %v, want 800x200", img.Bounds())
	}
	// Map is 200x100 screen units centered, so x < 100 is letterbox.
	if got := img.RGBAAt(20, 100); got != LetterboxColor {
		t.Errorf("letterbox pixel = %v, want %v", got, LetterboxColor)
	}
}

func TestRenderEmpty(t *testing.T) {
	img := Render(Options{Width: 0, Height: 100})
	if !img.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", img.Bounds())
	}
}

func TestParallelColor(t *testing.T) {
	want := map[string]color.RGBA{
		"Antarctic Circle":    PolarColor,
		"Tropic of Capricorn": TropicColor,
		"Equator":             EquatorColor,
		"Tropic of Cancer":    TropicColor,
		"Arctic Circle":       PolarColor,
	}

	for _, p := range solar.ReferenceParallels() {
		if got := ParallelColor(p); got != want[p.Name] {
			t.Errorf("ParallelColor(%s) = %v, want %v", p.Name, got, want[p.Name])
		}
	}
}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff <= tol && diff >= -tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
