package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fog is linear distance fog with a smoothstep ramp between Near and Far.
type Fog struct {
	Near  float64
	Far   float64
	Color color.Color
}

// Factor returns how much of the fog colour replaces an object at depth:
// 0 before Near, 1 beyond Far.
func (f Fog) Factor(depth float64) float64 {
	if f.Far <= f.Near {
		if depth >= f.Far {
			return 1
		}
		return 0
	}
	t := (depth - f.Near) / (f.Far - f.Near)
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// Apply blends c toward the fog colour for an object at depth.
func (f Fog) Apply(c color.Color, depth float64) color.RGBA {
	src, _ := colorful.MakeColor(c)
	fog := colorful.Color{}
	if f.Color != nil {
		fog, _ = colorful.MakeColor(f.Color)
	}
	r, g, b := src.BlendRgb(fog, f.Factor(depth)).Clamped().RGB255()
	_, _, _, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: uint8(a >> 8)}
}

// rgbF converts c to straight float components in [0,1].
func rgbF(c color.Color) (r, g, b float32) {
	if c == nil {
		return 0, 0, 0
	}
	cr, cg, cb, ca := c.RGBA()
	if ca == 0 {
		return 0, 0, 0
	}
	return float32(cr) / float32(ca), float32(cg) / float32(ca), float32(cb) / float32(ca)
}

// fillFoggedRGB blends the (r, g, b) source toward the fog colour for each
// depth and writes straight RGB triples into buf. It allocates nothing so it
// can run over every particle each frame.
func fillFoggedRGB(buf []float32, depths []float64, r, g, b float32, f Fog) {
	fr, fg, fb := rgbF(f.Color)
	for i, d := range depths {
		k := float32(f.Factor(d))
		base := i * 3
		buf[base+0] = r + (fr-r)*k
		buf[base+1] = g + (fg-g)*k
		buf[base+2] = b + (fb-b)*k
	}
}
