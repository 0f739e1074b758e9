// Package viewer holds the interactive viewer's state: the map
// projection, the popup and the mandala it shows. It has no window or GPU
// dependencies; internal/app renders it.
package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/mandala/internal/mandala"
	"github.com/Faultbox/mandala/internal/popup"
	"github.com/Faultbox/mandala/internal/worldmap"
)

const appName = "Mandala"

// Scene is the viewer state without any GPU resources: the map
// projection, the popup and the mandala it shows.
type Scene struct {
	mandala *mandala.Mandala
	popup   *popup.Popup
	proj    worldmap.Projection
	viewW   float64
	viewH   float64
	log     *zap.Logger

	mandalaDirty bool
	mapDirty     bool
}

// NewScene creates the scene for a view size in screen units. The popup
// starts closed at (0, 0).
func NewScene(md *mandala.Mandala, viewW, viewH int, log *zap.Logger) *Scene {
	w, h := md.Size()
	s := &Scene{
		mandala: md,
		popup:   popup.New(w, h),
		log:     log,
	}
	s.Resize(viewW, viewH)
	return s
}

// Resize refits the map to a new view size.
func (s *Scene) Resize(viewW, viewH int) {
	s.viewW, s.viewH = float64(viewW), float64(viewH)
	s.proj = worldmap.NewProjection(s.viewW, s.viewH)
	s.mapDirty = true
}

// Projection returns the current map projection.
func (s *Scene) Projection() worldmap.Projection {
	return s.proj
}

// Mandala returns the renderer.
func (s *Scene) Mandala() *mandala.Mandala {
	return s.mandala
}

// Popup returns the popup.
func (s *Scene) Popup() *popup.Popup {
	return s.popup
}

// Click handles a primary click at screen position (x, y). Clicks on the
// popup close mark close it, other clicks on the popup are ignored. A
// click on the map re-renders the mandala for its latitude and moves the
// popup there, opening it on the first click. It reports whether the
// mandala was updated.
func (s *Scene) Click(x, y float64) bool {
	if l, ok := s.Layout(); ok {
		switch l.HitTest(x, y) {
		case popup.HitClose:
			s.popup.Close()
			return false
		case popup.HitBox:
			return false
		}
	}

	ll, ok := s.proj.ToLatLng(x, y)
	if !ok {
		return false
	}

	s.mandala.Update(ll.Lat)
	s.mandalaDirty = true

	s.popup.SetLatLng(ll)
	if !s.popup.IsOpen() {
		s.popup.Open()
	}
	s.popup.Update(s.mandala.Values())

	s.log.Debug("map clicked",
		zap.Stringer("latlng", ll),
		zap.Float64("azimuth", s.mandala.Values().NorthAzimuthDeg),
	)
	return true
}

// Dismiss closes the popup.
func (s *Scene) Dismiss() {
	s.popup.Close()
}

// Title is the window title for the current state: the clicked
// coordinates while the popup is open, the bare name otherwise.
func (s *Scene) Title() string {
	if !s.popup.IsOpen() {
		return appName
	}
	return appName + " - " + s.popup.LatLng().String()
}

// Layout returns the popup layout when the popup is open.
func (s *Scene) Layout() (popup.Layout, bool) {
	if !s.popup.IsOpen() {
		return popup.Layout{}, false
	}
	return s.popup.Rect(s.proj, s.viewW, s.viewH), true
}

// TakeMandalaDirty reports whether the mandala surface changed since the
// last call.
func (s *Scene) TakeMandalaDirty() bool {
	dirty := s.mandalaDirty
	s.mandalaDirty = false
	return dirty
}

// TakeMapDirty reports whether the map needs to be re-rasterized since the
// last call.
func (s *Scene) TakeMapDirty() bool {
	dirty := s.mapDirty
	s.mapDirty = false
	return dirty
}
