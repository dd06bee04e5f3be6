//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	cyan  = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Overlay draws the fixed captions over the scene: the title block, the
// welcome banner while submerged, and the loading line before the scroll
// source is ready.
type Overlay struct {
	visible bool
	banner  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// SetVisible shows or hides the welcome banner.
func (o *Overlay) SetVisible(visible bool) { o.visible = visible }

// Visible reports whether the banner is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, elapsed float64, loading bool) {
	face := basicfont.Face7x13
	text.Draw(screen, spaced(Title), face, 40, 44, cyan)
	text.Draw(screen, Subtitle, face, 40, 64, color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff})

	b := screen.Bounds()
	if loading {
		w := len(LoadingText) * 7
		text.Draw(screen, LoadingText, face, (b.Dx()-w)/2, b.Dy()/2, white)
		return
	}
	if !o.visible {
		return
	}

	// Render the banner once at 1x and scale it up; basicfont has one size.
	if o.banner == nil {
		w := len(Welcome) * 7
		o.banner = ebiten.NewImage(w, 16)
		text.Draw(o.banner, Welcome, face, 0, 12, cyan)
	}
	const scale = 3
	bw := float64(o.banner.Bounds().Dx() * scale)
	bh := float64(o.banner.Bounds().Dy() * scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(b.Dx())-bw)/2, (float64(b.Dy())-bh)/2)
	op.ColorScale.ScaleAlpha(float32(FadeAlpha(elapsed)))
	screen.DrawImage(o.banner, op)
}

func spaced(s string) string {
	out := make([]rune, 0, len(s)*2)
	for i, r := range s {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}
