package tty

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"lowtter/internal/core"
	"lowtter/internal/render"
	"lowtter/internal/scene"
	"lowtter/internal/ui"
)

var (
	black       = color.RGBA{A: 0xff}
	waterDrop   = color.RGBA{R: 0x00, G: 0x40, B: 0x40, A: 0xff}
	rockColor   = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	groundColor = color.RGBA{R: 0x0c, G: 0x0c, B: 0x0c, A: 0xff}
	planetColor = color.RGBA{R: 0x2a, G: 0x4d, B: 0x5c, A: 0xff}
	titleColor  = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	subColor    = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
)

// Composer is the terminal scene sink. The director pushes camera, fog,
// particle and overlay updates into it; Draw rasterises them onto a Canvas.
type Composer struct {
	layout    scene.Layout
	projector *render.Projector
	fog       render.Fog

	camera  mgl64.Vec3
	hasCam  bool
	points  []mgl64.Vec3
	overlay bool
}

var _ core.Sink = (*Composer)(nil)

// NewComposer returns a composer for layout.
func NewComposer(layout scene.Layout, fogNear float64) *Composer {
	return &Composer{
		layout:    layout,
		projector: render.NewProjector(45, 0.1, 1000),
		fog:       render.Fog{Near: fogNear, Far: 120, Color: color.Black},
	}
}

// SetCameraPosition implements core.Sink.
func (c *Composer) SetCameraPosition(pos mgl64.Vec3) {
	c.camera = pos
	c.hasCam = true
}

// SetFogFar implements core.Sink.
func (c *Composer) SetFogFar(far float64) { c.fog.Far = far }

// SetFogColor implements core.Sink.
func (c *Composer) SetFogColor(col color.Color) { c.fog.Color = col }

// SetParticlePositions implements core.Sink.
func (c *Composer) SetParticlePositions(points []mgl64.Vec3) { c.points = points }

// SetOverlayVisible implements core.Sink.
func (c *Composer) SetOverlayVisible(visible bool) { c.overlay = visible }

// OverlayVisible reports the last overlay state.
func (c *Composer) OverlayVisible() bool { return c.overlay }

// Fog returns the fog currently applied.
func (c *Composer) Fog() render.Fog { return c.fog }

// Camera returns the last camera position and whether one was received.
func (c *Composer) Camera() (mgl64.Vec3, bool) { return c.camera, c.hasCam }

// Draw rasterises the scene at elapsed seconds. loading replaces the scene
// captions with the loading line.
func (c *Composer) Draw(canvas *Canvas, elapsed float64, loading bool) {
	horizon := black
	if c.fog.Color != nil {
		horizon = render.Fog{Color: c.fog.Color}.Apply(black, math.Inf(1))
	}
	canvas.Clear(black)
	w, h := canvas.Pixels()
	c.projector.Update(c.camera, core.Size{W: w, H: h})

	c.drawStars(canvas)
	if c.hasCam {
		c.drawGround(canvas, horizon)
		c.drawProps(canvas, elapsed)
		c.drawWaterfall(canvas)
	}
	c.drawCaptions(canvas, elapsed, loading)
}

func (c *Composer) drawStars(canvas *Canvas) {
	for _, s := range c.layout.Stars {
		x, y, _, ok := c.projector.Project(c.camera.Add(s.Position))
		if !ok || !c.projector.Visible(x, y, 0) {
			continue
		}
		v := uint8(0x40 + 0x80*math.Min(s.Size, 1))
		canvas.Set(int(x), int(y), color.RGBA{R: v, G: v, B: v, A: 0xff})
	}
}

// drawGround fills every pixel row below the horizon with fogged ground.
func (c *Composer) drawGround(canvas *Canvas, horizon color.RGBA) {
	w, h := canvas.Pixels()
	for y := 0; y < h; y++ {
		// Invert the projection for a row: depth where the ground plane
		// meets the view ray through this row.
		ndc := 1 - 2*(float64(y)+0.5)/float64(h)
		tanHalf := float64(h) / 2 / c.projector.PixelSize(1, 1)
		slope := ndc * tanHalf
		if slope >= 0 {
			continue
		}
		depth := (c.layout.GroundY - c.camera.Y()) / slope
		col := c.fog.Apply(groundColor, depth)
		if depth > 1000 {
			col = horizon
		}
		for x := 0; x < w; x++ {
			canvas.Set(x, y, col)
		}
	}
}

func (c *Composer) drawProps(canvas *Canvas, elapsed float64) {
	if x, y, d, ok := c.projector.Project(c.layout.PlanetAt(elapsed)); ok {
		r := c.projector.PixelSize(c.layout.Planet.Radius, d)
		if c.projector.Visible(x, y, r) {
			canvas.FillDisc(x, y, r, c.fog.Apply(planetColor, d))
		}
	}
	for _, rock := range c.layout.Rocks {
		x, y, d, ok := c.projector.Project(rock.Position)
		if !ok {
			continue
		}
		r := c.projector.PixelSize(rock.Scale, d)
		if r < 0.5 || !c.projector.Visible(x, y, r) {
			continue
		}
		canvas.FillDisc(x, y, r, c.fog.Apply(rockColor, d))
	}
	for i, lb := range c.layout.Labels {
		x, y, d, ok := c.projector.Project(c.layout.LabelAt(i, elapsed))
		if !ok || !c.projector.Visible(x, y, 0) {
			continue
		}
		n := len([]rune(lb.Text))
		canvas.PutText(int(x)-n/2, int(y)/2, lb.Text, c.fog.Apply(lb.Color, d))
	}
}

func (c *Composer) drawWaterfall(canvas *Canvas) {
	for _, p := range c.points {
		x, y, d, ok := c.projector.Project(p)
		if !ok || !c.projector.Visible(x, y, 0) {
			continue
		}
		k := 1 - c.fog.Factor(d)
		drop := color.RGBA{G: uint8(float64(waterDrop.G) * k), B: uint8(float64(waterDrop.B) * k), A: 0xff}
		canvas.Add(int(x), int(y), drop)
	}
}

func (c *Composer) drawCaptions(canvas *Canvas, elapsed float64, loading bool) {
	_, rows := canvas.Cells()
	canvas.PutText(2, 1, ui.Title, titleColor)
	canvas.PutText(2, 2, ui.Subtitle, subColor)
	if loading {
		canvas.PutCentered(rows/2, ui.LoadingText, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		return
	}
	if c.overlay {
		a := ui.FadeAlpha(elapsed)
		v := uint8(0xff * a)
		canvas.PutCentered(rows/2, ui.Welcome, color.RGBA{G: v, B: v, A: 0xff})
	}
}
