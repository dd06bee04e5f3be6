//go:build ebiten

package render

import (
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"lowtter/internal/core"
	"lowtter/internal/scene"
)

// Quads per DrawTriangles call; four vertices each must fit a uint16 index.
const maxQuadsPerBatch = 16000

var (
	waterColor  = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	rockColor   = color.RGBA{R: 0x15, G: 0x15, B: 0x15, A: 0xff}
	groundColor = color.RGBA{R: 0x05, G: 0x05, B: 0x05, A: 0xff}
	planetBase  = color.RGBA{R: 0x2a, G: 0x4d, B: 0x5c, A: 0xff}
	planetLit   = color.RGBA{R: 0x6f, G: 0xc8, B: 0xd8, A: 0xff}
)

// Renderer draws the journey scene into an ebiten image. It implements
// core.Sink: the director pushes camera, fog and particle updates into it
// and Draw paints whatever was last received.
type Renderer struct {
	layout    scene.Layout
	projector *Projector
	fog       Fog

	camera  mgl64.Vec3
	hasCam  bool
	points  []mgl64.Vec3
	overlay bool

	water    *WaterShader
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	depths   []float64
	screenXY []float32
	rgb      []float32
	props    []prop
}

type propKind uint8

const (
	propRock propKind = iota
	propPlanet
	propLabel
)

type prop struct {
	kind  propKind
	index int
	x, y  float64
	depth float64
}

// NewRenderer builds a renderer for layout with the given fog near plane.
func NewRenderer(layout scene.Layout, fogNear float64) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	water, err := NewWaterShader()
	if err != nil {
		log.Printf("underwater effect disabled: %v", err)
	}
	return &Renderer{
		layout:    layout,
		projector: NewProjector(45, 0.1, 1000),
		fog:       Fog{Near: fogNear, Far: 120, Color: color.Black},
		water:     water,
		white:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// SetCameraPosition implements core.Sink.
func (r *Renderer) SetCameraPosition(pos mgl64.Vec3) {
	r.camera = pos
	r.hasCam = true
}

// SetFogFar implements core.Sink.
func (r *Renderer) SetFogFar(far float64) { r.fog.Far = far }

// SetFogColor implements core.Sink.
func (r *Renderer) SetFogColor(c color.Color) { r.fog.Color = c }

// SetParticlePositions implements core.Sink. The slice is read during the
// next Draw only.
func (r *Renderer) SetParticlePositions(points []mgl64.Vec3) { r.points = points }

// SetOverlayVisible implements core.Sink.
func (r *Renderer) SetOverlayVisible(visible bool) { r.overlay = visible }

// OverlayVisible reports the last overlay state pushed by the director.
func (r *Renderer) OverlayVisible() bool { return r.overlay }

// HasCamera reports whether a camera position has been received yet.
func (r *Renderer) HasCamera() bool { return r.hasCam }

// Draw paints the scene at elapsed seconds. Underwater frames are drawn
// offscreen and composited through the water shader.
func (r *Renderer) Draw(screen *ebiten.Image, elapsed float64) {
	b := screen.Bounds()
	target := screen
	if r.overlay && r.water != nil {
		target = r.water.Target(b)
	}
	target.Fill(color.Black)
	r.projector.Update(r.camera, core.Size{W: b.Dx(), H: b.Dy()})

	r.drawStars(target)
	if r.hasCam {
		r.drawGround(target)
		r.drawProps(target, elapsed)
		r.drawWaterfall(target)
	}
	if target != screen {
		r.water.Apply(screen, elapsed, r.fog.Color)
	}
}

func (r *Renderer) drawStars(screen *ebiten.Image) {
	r.beginBatch()
	for _, s := range r.layout.Stars {
		// Stars sit at infinity; only the camera orientation matters.
		x, y, depth, ok := r.projector.Project(r.camera.Add(s.Position))
		if !ok || !r.projector.Visible(x, y, 2) {
			continue
		}
		fade := float32(1 - depth/300)
		if fade < 0.2 {
			fade = 0.2
		}
		r.addQuad(float32(x), float32(y), float32(s.Size), fade, fade, fade, 1)
		if r.batchFull() {
			r.flush(screen, ebiten.BlendSourceOver)
		}
	}
	r.flush(screen, ebiten.BlendSourceOver)
}

func (r *Renderer) drawGround(screen *ebiten.Image) {
	y := r.layout.GroundY
	nearZ := r.camera.Z() - 0.5
	farZ := -200.0
	if nearZ <= farZ {
		return
	}
	corners := [4]mgl64.Vec3{{-100, y, nearZ}, {100, y, nearZ}, {100, y, farZ}, {-100, y, farZ}}
	r.beginBatch()
	for _, c := range corners {
		x, sy, depth, ok := r.projector.Project(c)
		if !ok {
			return
		}
		col := r.fog.Apply(groundColor, depth)
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: float32(x), DstY: float32(sy), SrcX: 1, SrcY: 1,
			ColorR: float32(col.R) / 255, ColorG: float32(col.G) / 255, ColorB: float32(col.B) / 255, ColorA: 1,
		})
	}
	r.indices = append(r.indices, 0, 1, 2, 0, 2, 3)
	r.flush(screen, ebiten.BlendSourceOver)
}

func (r *Renderer) drawProps(screen *ebiten.Image, elapsed float64) {
	r.props = r.props[:0]
	for i, rock := range r.layout.Rocks {
		if x, y, d, ok := r.projector.Project(rock.Position); ok {
			r.props = append(r.props, prop{kind: propRock, index: i, x: x, y: y, depth: d})
		}
	}
	if x, y, d, ok := r.projector.Project(r.layout.PlanetAt(elapsed)); ok {
		r.props = append(r.props, prop{kind: propPlanet, x: x, y: y, depth: d})
	}
	for i := range r.layout.Labels {
		if x, y, d, ok := r.projector.Project(r.layout.LabelAt(i, elapsed)); ok {
			r.props = append(r.props, prop{kind: propLabel, index: i, x: x, y: y, depth: d})
		}
	}
	sort.Slice(r.props, func(i, j int) bool { return r.props[i].depth > r.props[j].depth })

	for _, p := range r.props {
		switch p.kind {
		case propRock:
			rock := r.layout.Rocks[p.index]
			rad := float32(r.projector.PixelSize(rock.Scale, p.depth))
			if rad < 0.5 || !r.projector.Visible(p.x, p.y, float64(rad)) {
				continue
			}
			vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), rad, r.fog.Apply(rockColor, p.depth), true)
		case propPlanet:
			rad := float32(r.projector.PixelSize(r.layout.Planet.Radius, p.depth))
			if !r.projector.Visible(p.x, p.y, float64(rad)) {
				continue
			}
			vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), rad, r.fog.Apply(planetBase, p.depth), true)
			// Lit from the point light above and to the right.
			vector.DrawFilledCircle(screen, float32(p.x)+rad*0.25, float32(p.y)-rad*0.3, rad*0.55, r.fog.Apply(planetLit, p.depth), true)
		case propLabel:
			lb := r.layout.Labels[p.index]
			if !r.projector.Visible(p.x, p.y, 200) {
				continue
			}
			col := r.fog.Apply(lb.Color, p.depth)
			w := len(lb.Text) * 7
			text.Draw(screen, lb.Text, basicfont.Face7x13, int(p.x)-w/2, int(p.y), col)
		}
	}
}

func (r *Renderer) drawWaterfall(screen *ebiten.Image) {
	n := len(r.points)
	if n == 0 {
		return
	}
	if cap(r.depths) < n {
		r.depths = make([]float64, n)
		r.screenXY = make([]float32, 2*n)
		r.rgb = make([]float32, 3*n)
	}
	r.depths = r.depths[:n]
	r.screenXY = r.screenXY[:2*n]
	r.rgb = r.rgb[:3*n]

	for i, p := range r.points {
		x, y, d, ok := r.projector.Project(p)
		if !ok || !r.projector.Visible(x, y, 4) {
			d = -1
		}
		r.depths[i] = d
		r.screenXY[2*i] = float32(x)
		r.screenXY[2*i+1] = float32(y)
	}
	wr, wg, wb := rgbF(waterColor)
	fillFoggedRGB(r.rgb, r.depths, wr, wg, wb, r.fog)

	r.beginBatch()
	for i, d := range r.depths {
		if d <= 0 {
			continue
		}
		size := float32(r.projector.PixelSize(0.15, d))
		if size < 1 {
			size = 1
		}
		r.addQuad(r.screenXY[2*i], r.screenXY[2*i+1], size, r.rgb[3*i], r.rgb[3*i+1], r.rgb[3*i+2], 1)
		if r.batchFull() {
			r.flush(screen, ebiten.BlendLighter)
		}
	}
	r.flush(screen, ebiten.BlendLighter)
}

func (r *Renderer) beginBatch() {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

func (r *Renderer) batchFull() bool {
	return len(r.vertices) >= maxQuadsPerBatch*4
}

func (r *Renderer) addQuad(cx, cy, size, cr, cg, cb, ca float32) {
	h := size / 2
	base := uint16(len(r.vertices))
	for _, c := range [4][2]float32{{-h, -h}, {h, -h}, {h, h}, {-h, h}} {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: cx + c[0], DstY: cy + c[1],
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	r.indices = append(r.indices, base, base+1, base+2, base, base+2, base+3)
}

func (r *Renderer) flush(screen *ebiten.Image, blend ebiten.Blend) {
	if len(r.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{Blend: blend}
	screen.DrawTriangles(r.vertices, r.indices, r.white, op)
	r.beginBatch()
}
