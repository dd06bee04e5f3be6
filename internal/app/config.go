package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"lowtter/internal/journey"
	"lowtter/internal/particles"
	"lowtter/internal/scene"
	"lowtter/internal/scroll"
)

// EnvPrefix prefixes every environment variable the shell reads.
const EnvPrefix = "LOWTTER_"

// ErrInvalidConfig reports a shell option that cannot run.
var ErrInvalidConfig = errors.New("app: invalid config")

// Config represents every tunable of a run. Values are layered: defaults,
// then environment, then flags, then -set overrides.
type Config struct {
	Seed    int64  `env:"SEED"`
	TPS     int    `env:"TPS"`
	Width   int    `env:"WIDTH"`
	Height  int    `env:"HEIGHT"`
	Mute    bool   `env:"MUTE"`
	HUD     bool   `env:"HUD"`
	LogFile string `env:"LOG_FILE"`

	Scroll    scroll.Config    `envPrefix:"SCROLL_"`
	Journey   journey.Config   `envPrefix:"JOURNEY_"`
	Particles particles.Config `envPrefix:"PARTICLES_"`
	Scene     scene.Config     `envPrefix:"SCENE_"`

	overrides kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Seed:      42,
		TPS:       60,
		Width:     1280,
		Height:    720,
		Scroll:    scroll.DefaultConfig(),
		Journey:   journey.DefaultConfig(),
		Particles: particles.DefaultConfig(),
		Scene:     scene.DefaultConfig(),
	}
}

// LoadEnv overlays LOWTTER_* environment variables onto c.
func (c *Config) LoadEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Current field
// values become the flag defaults, so call LoadEnv first.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the scene and particle layout")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable audio")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel at start")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append log output to this file")

	fs.Float64Var(&c.Scroll.Pages, "pages", c.Scroll.Pages, "document height in viewports")
	fs.Float64Var(&c.Scroll.Damping, "damping", c.Scroll.Damping, "scroll smoothing time in seconds")

	p := &c.Particles
	fs.IntVar(&p.Count, "particles", p.Count, "waterfall particle count")
	fs.Float64Var(&p.FallSpeed, "fall-speed", p.FallSpeed, "particle fall per tick")
	fs.Float64Var(&p.XHalfWidth, "x-half-width", p.XHalfWidth, "half width of the waterfall sheet")
	fs.Float64Var(&p.YMin, "y-min", p.YMin, "height at which particles recycle")
	fs.Float64Var(&p.YMax, "y-max", p.YMax, "top of the initial particle band")
	fs.Float64Var(&p.YResetHigh, "y-reset", p.YResetHigh, "height recycled particles restart at")
	fs.Float64Var(&p.ZFixed, "z-fixed", p.ZFixed, "depth of the waterfall sheet")

	j := &c.Journey
	fs.Float64Var(&j.CameraZStart, "camera-z-start", j.CameraZStart, "camera depth at the top of the page")
	fs.Float64Var(&j.CameraZEnd, "camera-z-end", j.CameraZEnd, "camera depth at the bottom of the page")
	fs.Float64Var(&j.ImmersionThreshold, "immersion-threshold", j.ImmersionThreshold, "camera depth below which the camera is underwater")
	fs.Float64Var(&j.ImmersionHysteresis, "immersion-hysteresis", j.ImmersionHysteresis, "extra depth needed to surface again")
	fs.Float64Var(&j.FogFarDry, "fog-far-dry", j.FogFarDry, "fog far distance above water")
	fs.Float64Var(&j.FogFarWet, "fog-far-wet", j.FogFarWet, "fog far distance underwater")
	fs.TextVar(&j.FogColorDry, "fog-color-dry", j.FogColorDry, "fog colour above water (#rrggbb)")
	fs.TextVar(&j.FogColorWet, "fog-color-wet", j.FogColorWet, "fog colour underwater (#rrggbb)")

	fs.Var(&c.overrides, "set", "parameter override in key=value form (repeatable)")
}

// ApplyOverrides folds the collected -set values into c.
func (c *Config) ApplyOverrides() {
	c.Apply(c.overrides.Map())
}

// FromMap returns the defaults with the recognised keys of kv applied.
func FromMap(kv map[string]string) *Config {
	c := NewConfig()
	c.Apply(kv)
	return c
}

// Apply overlays the recognised keys of kv onto c. Unknown keys and values
// that fail to parse are ignored.
func (c *Config) Apply(kv map[string]string) {
	if v, ok := kv["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := kv["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	c.Scroll.Apply(kv)
	c.Journey.Apply(kv)
	c.Particles.Apply(kv)
}

// Validate rejects options no host can run with.
func (c *Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// kvList collects repeatable key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l kvList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
