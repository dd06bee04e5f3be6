package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"lowtter/pkg/core"
)

// PlungeGenerator is a downward pitch sweep over a burst of noise.
type PlungeGenerator struct {
	sr    beep.SampleRate
	pos   int
	noise *core.RNG
}

// NewPlungeGenerator creates a plunge generator.
func NewPlungeGenerator(sr beep.SampleRate) *PlungeGenerator {
	return &PlungeGenerator{sr: sr, noise: core.NewRNG(11)}
}

func (g *PlungeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 40 + 360*math.Exp(-t*6)
		env := math.Min(t/0.01, 1) * math.Exp(-t*4)
		splash := g.noise.Centered(2) * math.Exp(-t*12)
		sample := env * (0.4*math.Sin(2*math.Pi*freq*t) + 0.3*splash)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PlungeGenerator) Err() error { return nil }

// SurfaceGenerator is a short rising chirp with a bubbly tremolo.
type SurfaceGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewSurfaceGenerator creates a surface generator.
func NewSurfaceGenerator(sr beep.SampleRate) *SurfaceGenerator {
	return &SurfaceGenerator{sr: sr}
}

func (g *SurfaceGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 220 + 660*t/0.4
		trem := 0.6 + 0.4*math.Sin(2*math.Pi*18*t)
		env := math.Min(t/0.02, 1) * math.Exp(-t*5)
		sample := 0.3 * env * trem * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SurfaceGenerator) Err() error { return nil }

// RumbleGenerator is endless low-passed noise. Its level may be changed
// from any goroutine while the speaker is streaming it.
type RumbleGenerator struct {
	sr    beep.SampleRate
	noise *core.RNG
	lp    float64
	alpha float64
	level atomic.Uint64
}

// NewRumbleGenerator creates a rumble generator with a fixed noise seed.
func NewRumbleGenerator(sr beep.SampleRate, seed int64) *RumbleGenerator {
	rc := 1 / (2 * math.Pi * 180)
	dt := 1 / float64(sr)
	return &RumbleGenerator{
		sr:    sr,
		noise: core.NewRNG(seed),
		alpha: dt / (rc + dt),
	}
}

// SetLevel sets the output gain, clamped to [0,1].
func (g *RumbleGenerator) SetLevel(level float64) {
	if math.IsNaN(level) || level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	g.level.Store(math.Float64bits(level))
}

// Level returns the current gain.
func (g *RumbleGenerator) Level() float64 {
	return math.Float64frombits(g.level.Load())
}

func (g *RumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	gain := 0.5 * g.Level()
	for i := range samples {
		g.lp += g.alpha * (g.noise.Centered(2) - g.lp)
		sample := math.Max(-1, math.Min(1, gain*g.lp*4))
		samples[i][0] = sample
		samples[i][1] = sample
	}
	return len(samples), true
}

func (g *RumbleGenerator) Err() error { return nil }
