//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lowtter/internal/core"
)

const hudLineHeight = 15

// HUD renders the parameter panel along the right edge. H toggles it.
type HUD struct {
	provider core.ParameterProvider
	width    int
	visible  bool
	lines    []string
	panel    *ebiten.Image
}

// NewHUD constructs a HUD for the provided parameters and panel width.
func NewHUD(provider core.ParameterProvider, width int, visible bool) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{provider: provider, width: width, visible: visible}
}

// Update handles the toggle key and refreshes the cached lines.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible || h.provider == nil {
		return
	}
	h.lines = FormatSnapshot(h.provider.Parameters())
}

// Draw paints the panel with an extra status line at the bottom.
func (h *HUD) Draw(screen *ebiten.Image, status string) {
	if h == nil || !h.visible || h.width <= 0 {
		return
	}
	b := screen.Bounds()
	height := b.Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		text.Draw(h.panel, line, face, 8, 20+i*hudLineHeight, color.White)
	}
	if status != "" {
		text.Draw(h.panel, status, face, 8, height-12, cyan)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.Dx()-h.width), 0)
	screen.DrawImage(h.panel, op)
}
