package journey

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// State is everything the scene needs for one frame. It is recomputed from
// scratch every frame and never patched.
type State struct {
	CameraPos mgl64.Vec3
	FogFar    float64
	FogColor  Color
	Immersed  bool
}

// Mapper turns scroll progress and elapsed time into a State. It keeps no
// state between calls.
type Mapper struct {
	cfg Config
}

// NewMapper returns a Mapper for cfg.
func NewMapper(cfg Config) Mapper {
	if cfg.ImmersionHysteresis < 0 {
		cfg.ImmersionHysteresis = 0
	}
	return Mapper{cfg: cfg}
}

// Config returns the mapping constants.
func (m Mapper) Config() Config { return m.cfg }

// Map computes the state for progress (clamped to [0,1]) at elapsed seconds.
func (m Mapper) Map(progress, elapsed float64) State {
	z := m.CameraZ(progress)
	return m.build(z, elapsed, m.Immersed(z))
}

// MapFrom is Map with the hysteresis band applied relative to the previous
// frame's immersion. With a zero band it is identical to Map.
func (m Mapper) MapFrom(prevImmersed bool, progress, elapsed float64) State {
	z := m.CameraZ(progress)
	immersed := m.Immersed(z)
	if prevImmersed && !immersed && z < m.cfg.ImmersionThreshold+m.cfg.ImmersionHysteresis {
		immersed = true
	}
	return m.build(z, elapsed, immersed)
}

// CameraZ returns the camera depth for progress.
func (m Mapper) CameraZ(progress float64) float64 {
	return Lerp(m.cfg.CameraZStart, m.cfg.CameraZEnd, Clamp01(progress))
}

// CameraY returns the bobbing camera height at elapsed seconds.
func (m Mapper) CameraY(elapsed float64) float64 {
	return m.cfg.CameraBaseY + m.cfg.BobAmplitude*math.Sin(elapsed*m.cfg.BobFrequency)
}

// Immersed reports whether cameraZ is past the waterline. The comparison is
// strict: a camera exactly on the threshold is dry.
func (m Mapper) Immersed(cameraZ float64) bool {
	return cameraZ < m.cfg.ImmersionThreshold
}

func (m Mapper) build(z, elapsed float64, immersed bool) State {
	s := State{
		CameraPos: mgl64.Vec3{0, m.CameraY(elapsed), z},
		Immersed:  immersed,
		FogFar:    m.cfg.FogFarDry,
		FogColor:  m.cfg.FogColorDry,
	}
	if immersed {
		s.FogFar = m.cfg.FogFarWet
		s.FogColor = m.cfg.FogColorWet
	}
	return s
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
