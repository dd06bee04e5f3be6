package particles

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"lowtter/pkg/core"
)

func newTestStream(t *testing.T, cfg Config) *Stream {
	t.Helper()
	s, err := New(cfg, core.NewRNG(42))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
		want error
	}{
		{"zero count", func(c *Config) { c.Count = 0 }, ErrInvalidCount},
		{"negative count", func(c *Config) { c.Count = -3 }, ErrInvalidCount},
		{"equal range", func(c *Config) { c.YMin = 40 }, ErrInvalidRange},
		{"inverted range", func(c *Config) { c.YMin = 50 }, ErrInvalidRange},
		{"nan y_min", func(c *Config) { c.YMin = math.NaN() }, ErrInvalidRange},
		{"nan y_max", func(c *Config) { c.YMax = math.NaN() }, ErrInvalidRange},
		{"infinite y_max", func(c *Config) { c.YMax = math.Inf(1) }, ErrInvalidRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)
			s, err := New(cfg, nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if s != nil {
				t.Fatal("stream must be nil on error")
			}
		})
	}
}

func TestInitialLayout(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestStream(t, cfg)
	if s.Len() != cfg.Count {
		t.Fatalf("len = %d, want %d", s.Len(), cfg.Count)
	}
	for i, p := range s.Snapshot() {
		if p.X() < -cfg.XHalfWidth || p.X() >= cfg.XHalfWidth {
			t.Fatalf("particle %d x=%v outside sheet", i, p.X())
		}
		if p.Y() < 0 || p.Y() >= cfg.YMax {
			t.Fatalf("particle %d y=%v outside spawn band", i, p.Y())
		}
		if p.Z() != cfg.ZFixed {
			t.Fatalf("particle %d z=%v, want %v", i, p.Z(), cfg.ZFixed)
		}
	}
}

func TestSameSeedSameLayout(t *testing.T) {
	a := newTestStream(t, DefaultConfig())
	b := newTestStream(t, DefaultConfig())
	if !slices.Equal(a.Snapshot(), b.Snapshot()) {
		t.Fatal("equal seeds must produce equal layouts")
	}
}

func TestTickKeepsInvariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 2000
	s := newTestStream(t, cfg)
	initial := slices.Clone(s.Snapshot())

	for tick := 0; tick < 500; tick++ {
		s.Tick()
		for i, p := range s.Snapshot() {
			if p.Y() < cfg.YMin || p.Y() > cfg.YResetHigh {
				t.Fatalf("tick %d particle %d y=%v outside [%v, %v]", tick, i, p.Y(), cfg.YMin, cfg.YResetHigh)
			}
			if p.X() != initial[i].X() || p.Z() != initial[i].Z() {
				t.Fatalf("tick %d particle %d moved sideways: %v -> %v", tick, i, initial[i], p)
			}
		}
	}
	if s.Ticks() != 500 {
		t.Fatalf("ticks = %d, want 500", s.Ticks())
	}
}

func TestTickKeepsInvariantsForOddFallSpeeds(t *testing.T) {
	cases := []struct {
		name string
		set  func(*Config)
	}{
		{"negative map value", func(c *Config) { c.Apply(map[string]string{"fall_speed": "-0.6"}) }},
		{"nan map value", func(c *Config) { c.Apply(map[string]string{"fall_speed": "NaN"}) }},
		{"infinite map value", func(c *Config) { c.Apply(map[string]string{"fall_speed": "+Inf"}) }},
		{"negative field", func(c *Config) { c.FallSpeed = -0.6 }},
		{"nan field", func(c *Config) { c.FallSpeed = math.NaN() }},
		{"nan reset height", func(c *Config) { c.YResetHigh = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Count = 50
			tc.set(&cfg)
			s := newTestStream(t, cfg)
			top := s.Config().YResetHigh
			for step := 0; step < 200; step++ {
				s.Tick()
				for i, p := range s.Snapshot() {
					if !(p.Y() >= cfg.YMin && p.Y() <= top) {
						t.Fatalf("step %d particle %d y=%v outside [%v, %v]", step, i, p.Y(), cfg.YMin, top)
					}
				}
			}
		})
	}
}

func TestTickRecyclesToResetHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 3
	s := newTestStream(t, cfg)
	buf := s.Snapshot()
	buf[0][1] = cfg.YMin + 0.1 // crosses the floor this tick
	buf[1][1] = cfg.YMin + 1.0
	buf[2][1] = 10

	s.Tick()

	if got := s.Snapshot()[0].Y(); got != cfg.YResetHigh {
		t.Fatalf("recycled y = %v, want exactly %v", got, cfg.YResetHigh)
	}
	if got := s.Snapshot()[1].Y(); got < cfg.YMin || got == cfg.YResetHigh {
		t.Fatalf("particle above the floor should not recycle, y = %v", got)
	}
	if got := s.Snapshot()[2].Y(); !mgl64.FloatEqual(got, 9.4) {
		t.Fatalf("y = %v, want 9.4", got)
	}
}

func TestTickAdvancesEachCall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 1
	s := newTestStream(t, cfg)
	s.Snapshot()[0][1] = 20

	s.Tick()
	s.Tick()

	if got := s.Snapshot()[0].Y(); !mgl64.FloatEqual(got, 18.8) {
		t.Fatalf("two ticks should fall 1.2, y = %v", got)
	}
}

func TestResetHeightNormalised(t *testing.T) {
	cfg := DefaultConfig()
	cfg.YMax = 50
	cfg.YResetHigh = 40
	s := newTestStream(t, cfg)
	if s.Config().YResetHigh != 50 {
		t.Fatalf("reset height = %v, want raised to y_max 50", s.Config().YResetHigh)
	}
	for i := 0; i < 200; i++ {
		s.Tick()
	}
	for _, p := range s.Snapshot() {
		if p.Y() > 50 || p.Y() < cfg.YMin {
			t.Fatalf("y=%v escaped [%v, 50]", p.Y(), cfg.YMin)
		}
	}
}

func TestTickDoesNotAllocate(t *testing.T) {
	s := newTestStream(t, DefaultConfig())
	allocs := testing.AllocsPerRun(50, s.Tick)
	if allocs != 0 {
		t.Fatalf("Tick allocated %.1f times per run", allocs)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"particles":    "250",
		"fall_speed":   "1.5",
		"x_half_width": "-3",
		"y_min":        "bogus",
	})
	if c.Count != 250 || c.FallSpeed != 1.5 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.XHalfWidth != 3 {
		t.Fatalf("half width = %v, want 3", c.XHalfWidth)
	}
	if c.YMin != DefaultConfig().YMin {
		t.Fatalf("bad value should keep default, got %v", c.YMin)
	}
}

func TestParametersSnapshot(t *testing.T) {
	s := newTestStream(t, DefaultConfig())
	p, ok := s.Parameters().Lookup("particles")
	if !ok || p.Value != "10000" {
		t.Fatalf("particles parameter = %+v, %v", p, ok)
	}
}
