package journey

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#002222")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != DarkCyan {
		t.Fatalf("got %v, want %v", c, DarkCyan)
	}
	if c.String() != "#002222" {
		t.Fatalf("String = %q", c.String())
	}
	if _, err := ParseColor("teal"); err == nil {
		t.Fatal("expected error for non-hex colour")
	}
	var u Color
	if err := u.UnmarshalText([]byte("#fff")); err != nil || u != (Color{255, 255, 255}) {
		t.Fatalf("UnmarshalText #fff = %v, %v", u, err)
	}
	if err := u.UnmarshalText([]byte("nope")); err == nil || errors.Unwrap(err) == nil {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := DarkCyan.RGBA()
	if r != 0 || g != 0x2222 || b != 0x2222 || a != 0xffff {
		t.Fatalf("RGBA = %x %x %x %x", r, g, b, a)
	}
}

func TestConfigFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"immersion_threshold":  "-40",
		"fog_far_wet":          "12.5",
		"fog_color_wet":        "#113344",
		"fog_color_dry":        "not-a-colour",
		"immersion_hysteresis": "-2",
		"camera_z_end":         "x",
	})
	if c.ImmersionThreshold != -40 || c.FogFarWet != 12.5 {
		t.Fatalf("float overrides not applied: %+v", c)
	}
	if c.FogColorWet != (Color{0x11, 0x33, 0x44}) {
		t.Fatalf("wet colour = %v", c.FogColorWet)
	}
	if c.FogColorDry != Black {
		t.Fatalf("bad colour should keep default, got %v", c.FogColorDry)
	}
	if c.ImmersionHysteresis != 0 {
		t.Fatalf("negative hysteresis should clamp to 0, got %v", c.ImmersionHysteresis)
	}
	if c.CameraZEnd != -85 {
		t.Fatalf("bad float should keep default, got %v", c.CameraZEnd)
	}
}

func TestMapperParameters(t *testing.T) {
	snap := NewMapper(DefaultConfig()).Parameters()
	p, ok := snap.Lookup("fog_color_wet")
	if !ok || p.Value != "#002222" {
		t.Fatalf("fog_color_wet = %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("immersion_threshold"); !ok {
		t.Fatal("missing immersion_threshold")
	}
}
