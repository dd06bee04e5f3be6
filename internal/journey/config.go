package journey

import "strconv"

// Config holds the scroll-to-scene mapping constants.
type Config struct {
	CameraZStart float64 `env:"CAMERA_Z_START"`
	CameraZEnd   float64 `env:"CAMERA_Z_END"`
	CameraBaseY  float64 `env:"CAMERA_BASE_Y"`
	BobAmplitude float64 `env:"BOB_AMPLITUDE"`
	BobFrequency float64 `env:"BOB_FREQUENCY"`

	ImmersionThreshold float64 `env:"IMMERSION_THRESHOLD"`
	// ImmersionHysteresis widens the exit edge: once submerged the camera
	// must come back past threshold+hysteresis. Zero disables it.
	ImmersionHysteresis float64 `env:"IMMERSION_HYSTERESIS"`

	FogNear     float64 `env:"FOG_NEAR"`
	FogFarDry   float64 `env:"FOG_FAR_DRY"`
	FogFarWet   float64 `env:"FOG_FAR_WET"`
	FogColorDry Color   `env:"FOG_COLOR_DRY"`
	FogColorWet Color   `env:"FOG_COLOR_WET"`
}

// DefaultConfig returns the standard journey: the camera travels from z=35
// to z=-85 and dives into the waterfall once past z=-55.
func DefaultConfig() Config {
	return Config{
		CameraZStart:       35,
		CameraZEnd:         -85,
		CameraBaseY:        8,
		BobAmplitude:       0.1,
		BobFrequency:       2,
		ImmersionThreshold: -55,
		FogNear:            10,
		FogFarDry:          100,
		FogFarWet:          20,
		FogColorDry:        Black,
		FogColorWet:        DarkCyan,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overlays the recognised keys of kv onto c. Unparsable values are
// ignored.
func (c *Config) Apply(kv map[string]string) {
	if kv == nil {
		return
	}
	floats := map[string]*float64{
		"camera_z_start":       &c.CameraZStart,
		"camera_z_end":         &c.CameraZEnd,
		"camera_base_y":        &c.CameraBaseY,
		"bob_amplitude":        &c.BobAmplitude,
		"bob_frequency":        &c.BobFrequency,
		"immersion_threshold":  &c.ImmersionThreshold,
		"immersion_hysteresis": &c.ImmersionHysteresis,
		"fog_near":             &c.FogNear,
		"fog_far_dry":          &c.FogFarDry,
		"fog_far_wet":          &c.FogFarWet,
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
	if v, ok := kv["fog_color_dry"]; ok {
		if parsed, err := ParseColor(v); err == nil {
			c.FogColorDry = parsed
		}
	}
	if v, ok := kv["fog_color_wet"]; ok {
		if parsed, err := ParseColor(v); err == nil {
			c.FogColorWet = parsed
		}
	}
	if c.ImmersionHysteresis < 0 {
		c.ImmersionHysteresis = 0
	}
}
