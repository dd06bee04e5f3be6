package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"lowtter/internal/core"
)

// Projector maps world positions to surface coordinates for a camera that
// looks straight down -Z, the way the journey camera always does.
type Projector struct {
	fovY      float64
	near, far float64

	size  core.Size
	view  mgl64.Mat4
	proj  mgl64.Mat4
	scale float64
}

// NewProjector returns a projector with a vertical field of view in degrees.
func NewProjector(fovYDeg, near, far float64) *Projector {
	p := &Projector{fovY: mgl64.DegToRad(fovYDeg), near: near, far: far}
	p.Update(mgl64.Vec3{}, core.Size{W: 1, H: 1})
	return p
}

// Update sets the camera position and surface size for the next frame.
func (p *Projector) Update(eye mgl64.Vec3, size core.Size) {
	p.size = size
	p.view = mgl64.LookAtV(eye, eye.Add(mgl64.Vec3{0, 0, -1}), mgl64.Vec3{0, 1, 0})
	p.proj = mgl64.Perspective(p.fovY, size.Aspect(), p.near, p.far)
	p.scale = float64(size.H) / (2 * math.Tan(p.fovY/2))
}

// Size returns the current surface size.
func (p *Projector) Size() core.Size { return p.size }

// Project returns surface coordinates and view depth of world. ok is false
// for points outside the near/far range; points beside the frustum are
// returned with ok set and left for the caller to cull.
func (p *Projector) Project(world mgl64.Vec3) (x, y, depth float64, ok bool) {
	v := p.view.Mul4x1(world.Vec4(1))
	depth = -v.Z()
	if depth < p.near || depth > p.far {
		return 0, 0, depth, false
	}
	clip := p.proj.Mul4x1(v)
	w := clip.W()
	if w <= 0 {
		return 0, 0, depth, false
	}
	x = (clip.X()/w + 1) / 2 * float64(p.size.W)
	y = (1 - clip.Y()/w) / 2 * float64(p.size.H)
	return x, y, depth, true
}

// PixelSize returns the on-surface size of a world length at depth.
func (p *Projector) PixelSize(worldSize, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return worldSize * p.scale / depth
}

// Visible reports whether (x, y) lies on the surface, with margin slack.
func (p *Projector) Visible(x, y, margin float64) bool {
	return x >= -margin && y >= -margin && x < float64(p.size.W)+margin && y < float64(p.size.H)+margin
}
