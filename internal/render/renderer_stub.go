//go:build !ebiten

package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"lowtter/internal/scene"
)

// Renderer is a placeholder for headless builds; the terminal host draws
// through tty.Composer instead.
type Renderer struct {
	overlay bool
}

// NewRenderer returns a renderer that discards everything but the overlay
// state.
func NewRenderer(scene.Layout, float64) *Renderer { return &Renderer{} }

// SetCameraPosition is a no-op in the headless build.
func (r *Renderer) SetCameraPosition(mgl64.Vec3) {}

// SetFogFar is a no-op in the headless build.
func (r *Renderer) SetFogFar(float64) {}

// SetFogColor is a no-op in the headless build.
func (r *Renderer) SetFogColor(color.Color) {}

// SetParticlePositions is a no-op in the headless build.
func (r *Renderer) SetParticlePositions([]mgl64.Vec3) {}

// SetOverlayVisible records the overlay state.
func (r *Renderer) SetOverlayVisible(visible bool) { r.overlay = visible }

// OverlayVisible reports the last overlay state.
func (r *Renderer) OverlayVisible() bool { return r.overlay }

// Draw is a no-op in the headless build.
func (r *Renderer) Draw(any, float64) {}
