package journey

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraZEndpoints(t *testing.T) {
	m := NewMapper(DefaultConfig())
	cases := []struct {
		progress float64
		want     float64
	}{
		{0, 35},
		{0.5, -25},
		{1, -85},
		{-0.5, 35},
		{1.7, -85},
		{math.NaN(), 35},
	}
	for _, tc := range cases {
		if got := m.Map(tc.progress, 0).CameraPos.Z(); got != tc.want {
			t.Errorf("progress %v: cameraZ = %v, want %v", tc.progress, got, tc.want)
		}
	}
}

func TestCameraZMonotonic(t *testing.T) {
	m := NewMapper(DefaultConfig())
	prev := math.Inf(1)
	for i := 0; i <= 1000; i++ {
		z := m.Map(float64(i)/1000, 0).CameraPos.Z()
		if z > prev {
			t.Fatalf("cameraZ rose at step %d: %v > %v", i, z, prev)
		}
		prev = z
	}
}

func TestCameraBobbing(t *testing.T) {
	m := NewMapper(DefaultConfig())
	if y := m.Map(0.3, 0).CameraPos.Y(); y != 8 {
		t.Fatalf("y at t=0 = %v, want 8", y)
	}
	peak := math.Pi / 4 // sin(2t) == 1
	if y := m.Map(0.3, peak).CameraPos.Y(); !mgl64.FloatEqual(y, 8.1) {
		t.Fatalf("y at peak = %v, want 8.1", y)
	}
	a := m.Map(0, 1.3).CameraPos.Y()
	b := m.Map(1, 1.3).CameraPos.Y()
	if a != b {
		t.Fatalf("bobbing must not depend on progress: %v vs %v", a, b)
	}
	if x := m.Map(0.9, 2).CameraPos.X(); x != 0 {
		t.Fatalf("x = %v, want 0", x)
	}
}

func TestImmersionBoundary(t *testing.T) {
	m := NewMapper(DefaultConfig())
	if m.Immersed(-55) {
		t.Fatal("cameraZ -55 must be dry")
	}
	if !m.Immersed(-55.01) {
		t.Fatal("cameraZ -55.01 must be submerged")
	}

	dry := m.Map(0.75, 0)
	if dry.CameraPos.Z() != -55 || dry.Immersed {
		t.Fatalf("progress 0.75: %+v, want dry at z=-55", dry)
	}
	wet := m.Map(0.7501, 0)
	if !wet.Immersed {
		t.Fatalf("progress 0.7501 (z=%v) should be submerged", wet.CameraPos.Z())
	}
}

func TestFogFollowsImmersion(t *testing.T) {
	m := NewMapper(DefaultConfig())
	dry := m.Map(0.2, 0)
	if dry.FogFar != 100 || dry.FogColor != Black {
		t.Fatalf("dry fog = %v %v, want 100 black", dry.FogFar, dry.FogColor)
	}
	wet := m.Map(0.95, 0)
	if wet.FogFar != 20 || wet.FogColor != DarkCyan {
		t.Fatalf("wet fog = %v %v, want 20 #002222", wet.FogFar, wet.FogColor)
	}
}

func TestMapIsStateless(t *testing.T) {
	m := NewMapper(DefaultConfig())
	first := m.Map(0.6, 3.2)
	m.Map(0.99, 10)
	m.Map(0.01, 0)
	if again := m.Map(0.6, 3.2); again != first {
		t.Fatalf("same inputs gave %+v then %+v", first, again)
	}
}

func TestMapFromWithoutBandMatchesMap(t *testing.T) {
	m := NewMapper(DefaultConfig())
	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		for _, prev := range []bool{false, true} {
			if got, want := m.MapFrom(prev, p, 0.5), m.Map(p, 0.5); got != want {
				t.Fatalf("progress %v prev %v: MapFrom %+v != Map %+v", p, prev, got, want)
			}
		}
	}
}

func TestMapFromHysteresis(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImmersionHysteresis = 5
	m := NewMapper(cfg)

	// z = -52: dry on entry, still wet on the way back out.
	if m.MapFrom(false, 0.725, 0).Immersed {
		t.Fatal("entering: z=-52 is above the waterline")
	}
	if !m.MapFrom(true, 0.725, 0).Immersed {
		t.Fatal("leaving: z=-52 is inside the hysteresis band")
	}
	// z = -49 is past the band.
	if m.MapFrom(true, 0.7, 0).Immersed {
		t.Fatal("leaving: z=-49 is past the band and must be dry")
	}
	if s := m.MapFrom(true, 0.725, 0); s.FogFar != cfg.FogFarWet {
		t.Fatalf("fog should follow the held immersion, got far=%v", s.FogFar)
	}
}

func TestNegativeHysteresisIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImmersionHysteresis = -10
	m := NewMapper(cfg)
	if !m.MapFrom(true, 0.76, 0).Immersed {
		t.Fatal("z=-56.2 must be submerged")
	}
	if m.MapFrom(true, 0.74, 0).Immersed {
		t.Fatal("negative band must behave like no band")
	}
}

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(35, -85, 0.25); got != 5 {
		t.Fatalf("Lerp = %v, want 5", got)
	}
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.4) != 0.4 {
		t.Fatal("Clamp01 bounds")
	}
}
