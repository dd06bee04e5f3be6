package particles

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	corepkg "lowtter/internal/core"
	"lowtter/pkg/core"
)

var (
	// ErrInvalidCount is returned when the particle count is not positive.
	ErrInvalidCount = errors.New("particle count must be positive")
	// ErrInvalidRange is returned when YMin is not below YMax.
	ErrInvalidRange = errors.New("y range is empty")
)

// Stream is a fixed-size buffer of falling particles. Each particle keeps
// the x and z it was allocated with; only y moves. Particles that drop below
// YMin are put back at YResetHigh, so the buffer is never resized.
type Stream struct {
	cfg   Config
	pos   []mgl64.Vec3
	ticks uint64
}

// New allocates cfg.Count particles spread uniformly across the sheet.
// A nil rng seeds from zero.
func New(cfg Config, rng *core.RNG) (*Stream, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("particles: count %d: %w", cfg.Count, ErrInvalidCount)
	}
	if !finite(cfg.YMin) || !finite(cfg.YMax) || cfg.YMin >= cfg.YMax {
		return nil, fmt.Errorf("particles: y_min %.2f >= y_max %.2f: %w", cfg.YMin, cfg.YMax, ErrInvalidRange)
	}
	cfg.normalize()
	if rng == nil {
		rng = core.NewRNG(0)
	}
	s := &Stream{cfg: cfg, pos: make([]mgl64.Vec3, cfg.Count)}
	for i := range s.pos {
		s.pos[i] = mgl64.Vec3{
			rng.Uniform(-cfg.XHalfWidth, cfg.XHalfWidth),
			rng.Uniform(0, cfg.YMax),
			cfg.ZFixed,
		}
	}
	return s, nil
}

// Tick advances every particle by one fixed step.
func (s *Stream) Tick() {
	fall := s.cfg.FallSpeed
	floor := s.cfg.YMin
	top := s.cfg.YResetHigh
	for i := range s.pos {
		y := s.pos[i][1] - fall
		if y < floor {
			y = top
		}
		s.pos[i][1] = y
	}
	s.ticks++
}

// Snapshot returns the particle positions after the latest Tick. The slice
// aliases the stream's buffer and must not be modified or retained past the
// next Tick.
func (s *Stream) Snapshot() []mgl64.Vec3 { return s.pos }

// Len returns the particle count.
func (s *Stream) Len() int { return len(s.pos) }

// Ticks returns how many times Tick has run.
func (s *Stream) Ticks() uint64 { return s.ticks }

// Config returns the effective configuration, after normalisation.
func (s *Stream) Config() Config { return s.cfg }

// Parameters describes the stream for the HUD.
func (s *Stream) Parameters() corepkg.ParameterSnapshot {
	c := s.cfg
	return corepkg.ParameterSnapshot{Groups: []corepkg.ParameterGroup{{
		Name: "Waterfall",
		Params: []corepkg.Parameter{
			corepkg.IntParam("particles", "Particles", len(s.pos)),
			corepkg.FloatParam("fall_speed", "Fall speed", c.FallSpeed),
			corepkg.FloatParam("x_half_width", "Half width", c.XHalfWidth),
			corepkg.FloatParam("y_min", "Floor", c.YMin),
			corepkg.FloatParam("y_max", "Spawn ceiling", c.YMax),
			corepkg.FloatParam("y_reset", "Reset height", c.YResetHigh),
			corepkg.FloatParam("z_fixed", "Depth", c.ZFixed),
		},
	}}}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
