package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"lowtter/pkg/core"
)

// Rock is a dark boulder scattered over the ground plane.
type Rock struct {
	Position mgl64.Vec3
	Scale    float64
	// Rotation holds pitch and yaw in radians.
	Rotation mgl64.Vec2
}

// Star is a background point on a distant shell.
type Star struct {
	Position mgl64.Vec3
	Size     float64
}

// Planet is the textured sphere hanging over the valley.
type Planet struct {
	Center mgl64.Vec3
	Radius float64
	Float  Floater
}

// Label is a floating caption placed in the scene.
type Label struct {
	Text     string
	Position mgl64.Vec3
	Color    color.RGBA
	Float    Floater
}

// Layout is the static decoration of the journey. It is generated once and
// only read afterwards.
type Layout struct {
	Rocks   []Rock
	Stars   []Star
	Planet  Planet
	Labels  []Label
	GroundY float64
}

// Config controls prop counts and spread.
type Config struct {
	RockCount   int     `env:"ROCK_COUNT"`
	RockSpreadX float64 `env:"ROCK_SPREAD_X"`
	RockSpreadZ float64 `env:"ROCK_SPREAD_Z"`
	RockY       float64 `env:"ROCK_Y"`
	StarCount   int     `env:"STAR_COUNT"`
	StarRadius  float64 `env:"STAR_RADIUS"`
	StarDepth   float64 `env:"STAR_DEPTH"`
	GroundY     float64 `env:"GROUND_Y"`
}

// DefaultConfig returns forty rocks and five thousand stars.
func DefaultConfig() Config {
	return Config{
		RockCount:   40,
		RockSpreadX: 80,
		RockSpreadZ: 150,
		RockY:       -4.5,
		StarCount:   5000,
		StarRadius:  100,
		StarDepth:   50,
		GroundY:     -5,
	}
}

var (
	labelCyan = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	labelGold = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

// Build lays out the scene from rng. The same seed always yields the same
// layout.
func Build(cfg Config, rng *core.RNG) Layout {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	rockRNG := rng.Derive()
	starRNG := rng.Derive()
	floatRNG := rng.Derive()

	l := Layout{GroundY: cfg.GroundY}

	l.Rocks = make([]Rock, max(cfg.RockCount, 0))
	for i := range l.Rocks {
		l.Rocks[i] = Rock{
			Position: mgl64.Vec3{
				rockRNG.Centered(cfg.RockSpreadX),
				cfg.RockY,
				rockRNG.Centered(cfg.RockSpreadZ),
			},
			Scale:    rockRNG.Uniform(0.5, 2.0),
			Rotation: mgl64.Vec2{rockRNG.Uniform(0, math.Pi), rockRNG.Uniform(0, math.Pi)},
		}
	}

	l.Stars = make([]Star, max(cfg.StarCount, 0))
	for i := range l.Stars {
		// Uniform direction on the sphere, then a radius inside the shell.
		u := starRNG.Uniform(-1, 1)
		theta := starRNG.Uniform(0, 2*math.Pi)
		s := math.Sqrt(1 - u*u)
		r := cfg.StarRadius + starRNG.Uniform(0, cfg.StarDepth)
		l.Stars[i] = Star{
			Position: mgl64.Vec3{r * s * math.Cos(theta), r * u, r * s * math.Sin(theta)},
			Size:     starRNG.Uniform(0.5, 1.5),
		}
	}

	l.Planet = Planet{
		Center: mgl64.Vec3{0, 10, -15},
		Radius: 7,
		Float:  NewFloater(2, 0.5, floatRNG),
	}
	l.Labels = []Label{
		{Text: "Step 1: Discover", Position: mgl64.Vec3{-8, 6, 10}, Color: labelCyan, Float: NewFloater(1, 1, floatRNG)},
		{Text: "Step 2: Win-Win Engine", Position: mgl64.Vec3{8, 5, -15}, Color: labelGold, Float: NewFloater(1, 1, floatRNG)},
	}
	return l
}

// PlanetAt returns the planet centre at elapsed seconds.
func (l Layout) PlanetAt(elapsed float64) mgl64.Vec3 {
	return l.Planet.Center.Add(l.Planet.Float.Offset(elapsed))
}

// LabelAt returns the position of label i at elapsed seconds.
func (l Layout) LabelAt(i int, elapsed float64) mgl64.Vec3 {
	lb := l.Labels[i]
	return lb.Position.Add(lb.Float.Offset(elapsed))
}
