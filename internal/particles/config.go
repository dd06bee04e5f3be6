package particles

import (
	"math"
	"strconv"
)

// Config describes the waterfall volume and fall rate.
type Config struct {
	Count      int     `env:"COUNT"`
	FallSpeed  float64 `env:"FALL_SPEED"`
	XHalfWidth float64 `env:"X_HALF_WIDTH"`
	YMin       float64 `env:"Y_MIN"`
	YMax       float64 `env:"Y_MAX"`
	YResetHigh float64 `env:"Y_RESET_HIGH"`
	ZFixed     float64 `env:"Z_FIXED"`
}

// DefaultConfig returns the standard waterfall: ten thousand drops in a
// fifteen unit wide sheet at z=-60, falling 0.6 units per tick.
func DefaultConfig() Config {
	return Config{
		Count:      10000,
		FallSpeed:  0.6,
		XHalfWidth: 7.5,
		YMin:       -10,
		YMax:       40,
		YResetHigh: 40,
		ZFixed:     -60,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values are ignored and the defaults kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overlays the recognised keys of kv onto c.
func (c *Config) Apply(kv map[string]string) {
	if kv == nil {
		return
	}
	if v, ok := kv["particles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Count = parsed
		}
	}
	floats := map[string]*float64{
		"fall_speed":   &c.FallSpeed,
		"x_half_width": &c.XHalfWidth,
		"y_min":        &c.YMin,
		"y_max":        &c.YMax,
		"y_reset":      &c.YResetHigh,
		"z_fixed":      &c.ZFixed,
	}
	for key, dst := range floats {
		v, ok := kv[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
	c.normalize()
}

// normalize repairs values that would let particles leave [YMin, YResetHigh]:
// the fall speed and half width are made positive and finite, and the reset
// height is raised to YMax.
func (c *Config) normalize() {
	def := DefaultConfig()
	if !finite(c.FallSpeed) {
		c.FallSpeed = def.FallSpeed
	}
	c.FallSpeed = math.Abs(c.FallSpeed)
	if !finite(c.XHalfWidth) {
		c.XHalfWidth = def.XHalfWidth
	}
	c.XHalfWidth = math.Abs(c.XHalfWidth)
	if !finite(c.YResetHigh) || c.YResetHigh < c.YMax {
		c.YResetHigh = c.YMax
	}
}
