package scene

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"

	"lowtter/pkg/core"
)

// Floater gives an object a slow vertical bob with a little noise-driven
// sideways drift. Offsets stay within about ±0.1*intensity vertically and
// ±0.2*intensity sideways.
type Floater struct {
	speed     float64
	intensity float64
	phase     float64
	noise     *perlin.Perlin
}

// NewFloater returns a floater with its own phase and noise field.
func NewFloater(speed, intensity float64, rng *core.RNG) Floater {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return Floater{
		speed:     speed,
		intensity: intensity,
		phase:     rng.Uniform(0, 1000),
		noise:     perlin.NewPerlin(2, 2, 3, int64(rng.IntN(math.MaxInt32))),
	}
}

// Offset returns the displacement at elapsed seconds.
func (f Floater) Offset(elapsed float64) mgl64.Vec3 {
	if f.noise == nil || f.intensity == 0 {
		return mgl64.Vec3{}
	}
	t := f.phase + elapsed
	y := math.Sin(t/4*f.speed) / 10 * f.intensity
	x := clampUnit(f.noise.Noise1D(t/8*f.speed)) * 0.2 * f.intensity
	return mgl64.Vec3{x, y, 0}
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
