//go:build !ebiten

package ui

// Overlay tracks banner visibility in headless builds; drawing is done by
// the terminal host.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// SetVisible shows or hides the welcome banner.
func (o *Overlay) SetVisible(visible bool) { o.visible = visible }

// Visible reports whether the banner is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, float64, bool) {}
