package core

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Sink receives the per-frame outputs of the journey. Hosts (a window, a
// terminal) implement it; the simulation never talks to a renderer directly.
type Sink interface {
	SetCameraPosition(pos mgl64.Vec3)
	SetFogFar(far float64)
	SetFogColor(c color.Color)
	SetParticlePositions(points []mgl64.Vec3)
	SetOverlayVisible(visible bool)
}

// ProgressSource reports the normalized scroll position for the current
// frame. ok is false while the source has no usable value yet.
type ProgressSource interface {
	Progress() (progress float64, ok bool)
}

// ProgressFunc adapts a plain function to ProgressSource.
type ProgressFunc func() (float64, bool)

// Progress calls f.
func (f ProgressFunc) Progress() (float64, bool) { return f() }

// Size describes the pixel or cell dimensions of a host surface.
type Size struct {
	W int
	H int
}

// Aspect returns W/H, or 1 for an empty surface.
func (s Size) Aspect() float64 {
	if s.W <= 0 || s.H <= 0 {
		return 1
	}
	return float64(s.W) / float64(s.H)
}
