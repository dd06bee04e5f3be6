//go:build ebiten

package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// waterShaderSource ripples and tints the finished frame while the camera
// is underwater.
var waterShaderSource = []byte(`//kage:unit pixels

package main

var Time float
var Tint vec3
var Strength float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	wobble := vec2(sin(srcPos.y/14+Time*2), cos(srcPos.x/18+Time*1.5)) * 2 * Strength
	c := imageSrc0At(srcPos + wobble)
	return vec4(mix(c.rgb, c.rgb*0.75+Tint*0.25, Strength), c.a)
}
`)

// WaterShader renders the scene offscreen and composites it through the
// underwater shader.
type WaterShader struct {
	shader *ebiten.Shader
	buf    *ebiten.Image
}

// NewWaterShader compiles the shader.
func NewWaterShader() (*WaterShader, error) {
	s, err := ebiten.NewShader(waterShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compile water shader: %w", err)
	}
	return &WaterShader{shader: s}, nil
}

// Target returns an offscreen image of size b, reused across frames.
func (w *WaterShader) Target(b image.Rectangle) *ebiten.Image {
	if w.buf == nil || w.buf.Bounds().Dx() != b.Dx() || w.buf.Bounds().Dy() != b.Dy() {
		if w.buf != nil {
			w.buf.Dispose()
		}
		w.buf = ebiten.NewImage(b.Dx(), b.Dy())
	}
	w.buf.Clear()
	return w.buf
}

// Apply draws the offscreen image onto dst through the shader.
func (w *WaterShader) Apply(dst *ebiten.Image, elapsed float64, tint color.Color) {
	tr, tg, tb := rgbF(tint)
	b := w.buf.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Time":     float32(elapsed),
		"Tint":     []float32{tr, tg, tb},
		"Strength": float32(1),
	}
	op.Images[0] = w.buf
	dst.DrawRectShader(b.Dx(), b.Dy(), w.shader, op)
}
