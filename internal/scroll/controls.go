package scroll

import (
	"math"
	"strconv"

	"github.com/charmbracelet/harmonica"
)

// Config describes the scrollable document the journey is laid out on.
type Config struct {
	// Pages is the document height in viewports.
	Pages float64 `env:"PAGES"`
	// Damping is the smoothing time in seconds; zero follows input directly.
	Damping float64 `env:"DAMPING"`
}

// DefaultConfig returns six pages with a 0.2 s smoothing time.
func DefaultConfig() Config {
	return Config{Pages: 6, Damping: 0.2}
}

// Apply overlays the recognised keys of kv onto c.
func (c *Config) Apply(kv map[string]string) {
	if v, ok := kv["pages"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 1 {
			c.Pages = parsed
		}
	}
	if v, ok := kv["damping"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Damping = parsed
		}
	}
}

const settleEpsilon = 1e-5

// Controls tracks a damped scroll offset in [0,1]. Input moves the target
// immediately; Update eases the visible offset toward it once per tick.
type Controls struct {
	cfg      Config
	spring   harmonica.Spring
	smooth   bool
	viewport float64

	target   float64
	offset   float64
	velocity float64
}

// New returns controls stepping at tps ticks per second.
func New(cfg Config, tps int) *Controls {
	if cfg.Pages < 1 {
		cfg.Pages = 1
	}
	if tps <= 0 {
		tps = 60
	}
	c := &Controls{cfg: cfg}
	if cfg.Damping > 0 {
		c.smooth = true
		c.spring = harmonica.NewSpring(harmonica.FPS(tps), 1/cfg.Damping, 1.0)
	}
	return c
}

// SetViewport records the visible height in pixels or rows. The controls
// report no progress until it is positive.
func (c *Controls) SetViewport(height int) {
	c.viewport = float64(height)
}

// Ready reports whether a viewport has been set.
func (c *Controls) Ready() bool { return c.viewport > 0 }

// Scroll moves the target by delta pixels (positive scrolls further in).
func (c *Controls) Scroll(delta float64) {
	if !c.Ready() || c.cfg.Pages <= 1 {
		return
	}
	c.ScrollBy(delta / (c.viewport * (c.cfg.Pages - 1)))
}

// ScrollBy moves the target by a fraction of the whole document.
func (c *Controls) ScrollBy(fraction float64) {
	if math.IsNaN(fraction) {
		return
	}
	c.target = clamp01(c.target + fraction)
}

// ScrollPages moves the target by whole viewports.
func (c *Controls) ScrollPages(pages float64) {
	if c.cfg.Pages <= 1 {
		return
	}
	c.ScrollBy(pages / (c.cfg.Pages - 1))
}

// Jump sets target and offset without easing.
func (c *Controls) Jump(offset float64) {
	c.target = clamp01(offset)
	c.offset = c.target
	c.velocity = 0
}

// Update advances the easing by one tick.
func (c *Controls) Update() {
	if !c.smooth {
		c.offset = c.target
		return
	}
	if c.offset == c.target && c.velocity == 0 {
		return
	}
	c.offset, c.velocity = c.spring.Update(c.offset, c.velocity, c.target)
	if math.Abs(c.offset-c.target) < settleEpsilon && math.Abs(c.velocity) < settleEpsilon {
		c.offset = c.target
		c.velocity = 0
	}
}

// Offset returns the eased offset in [0,1].
func (c *Controls) Offset() float64 { return clamp01(c.offset) }

// Target returns the offset the controls are easing toward.
func (c *Controls) Target() float64 { return c.target }

// Range maps the offset into a sub-range of the document: 0 before from,
// 1 after from+distance, linear in between.
func (c *Controls) Range(from, distance float64) float64 {
	if distance <= 0 {
		if c.Offset() >= from {
			return 1
		}
		return 0
	}
	return clamp01((c.Offset() - from) / distance)
}

// Progress implements core.ProgressSource over the whole document.
func (c *Controls) Progress() (float64, bool) {
	if !c.Ready() {
		return 0, false
	}
	return c.Range(0, 1), true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
