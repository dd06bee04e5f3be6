//go:build ebiten

package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lowtter/internal/journey"
	"lowtter/internal/render"
	"lowtter/internal/ui"
)

// wheelPixels is how far one wheel notch scrolls.
const wheelPixels = 60

// Game adapts a journey session to the ebiten.Game interface.
type Game struct {
	world    *World
	session  *Session
	renderer *render.Renderer
	overlay  *ui.Overlay
	hud      *ui.HUD

	tps     int
	ticks   int
	elapsed float64
	last    journey.FrameReport
}

// New constructs a Game for the provided world. session must have been
// started with renderer as its sink.
func New(world *World, session *Session, renderer *render.Renderer) *Game {
	return &Game{
		world:    world,
		session:  session,
		renderer: renderer,
		overlay:  ui.NewOverlay(),
		hud:      ui.NewHUD(world, 300, world.Config.HUD),
		tps:      world.Config.TPS,
	}
}

// Update handles input and advances the journey by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	c := g.world.Controls
	if _, dy := ebiten.Wheel(); dy != 0 {
		c.Scroll(-dy * wheelPixels)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		c.Scroll(8)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		c.Scroll(-8)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		c.ScrollPages(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		c.ScrollPages(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		c.ScrollBy(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		c.ScrollBy(1)
	}

	c.Update()
	g.ticks++
	g.elapsed = float64(g.ticks) / float64(g.tps)
	g.last = g.session.Frame(g.elapsed)
	g.overlay.SetVisible(g.renderer.OverlayVisible())
	g.hud.Update()
	return nil
}

// Draw renders the scene, the captions and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.elapsed)
	g.overlay.Draw(screen, g.elapsed, !g.world.Controls.Ready())
	status := fmt.Sprintf("z %.1f  %s", g.last.State.CameraPos.Z(), medium(g.last.State.Immersed))
	g.hud.Draw(screen, status)
}

// Layout follows the window size; the height is the scroll viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.world.Controls.SetViewport(outsideHeight)
	return outsideWidth, outsideHeight
}

func medium(immersed bool) string {
	if immersed {
		return "underwater"
	}
	return "air"
}
