package ui

import (
	"math"
	"slices"
	"testing"

	"lowtter/internal/core"
)

func TestFadeAlpha(t *testing.T) {
	cases := []struct {
		t, want float64
	}{
		{0, 0.4},
		{0.5, 0.7},
		{1, 1},
		{1.5, 0.7},
		{2, 0.4},
		{-3, 0.4},
	}
	for _, tc := range cases {
		if got := FadeAlpha(tc.t); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("FadeAlpha(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestFormatSnapshot(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Fog", Params: []core.Parameter{core.FloatParam("fog_far_dry", "Far (air)", 100)}},
		{Name: "Waterfall", Params: []core.Parameter{core.IntParam("particles", "Particles", 10)}},
	}}
	want := []string{
		"Fog",
		"  Far (air)      100",
		"",
		"Waterfall",
		"  Particles      10",
	}
	if got := FormatSnapshot(snap); !slices.Equal(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}
