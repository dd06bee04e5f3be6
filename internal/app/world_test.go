package app

import (
	"bytes"
	"image/color"
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type nullSink struct {
	overlay []bool
	camera  mgl64.Vec3
}

func (s *nullSink) SetCameraPosition(pos mgl64.Vec3) { s.camera = pos }
func (s *nullSink) SetFogFar(float64) {}
func (s *nullSink) SetFogColor(color.Color) {}
func (s *nullSink) SetParticlePositions([]mgl64.Vec3) {}
func (s *nullSink) SetOverlayVisible(visible bool) { s.overlay = append(s.overlay, visible) }

func smallConfig() Config {
	c := NewConfig()
	c.Particles.Count = 64
	c.Scene.StarCount = 16
	c.Scroll.Damping = 0
	return *c
}

func TestNewWorldDeterministic(t *testing.T) {
	a, err := NewWorld(smallConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	b, err := NewWorld(smallConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if !slices.Equal(a.Stream.Snapshot(), b.Stream.Snapshot()) {
		t.Fatal("equal seeds must place particles identically")
	}
	if a.Layout.Rocks[0] != b.Layout.Rocks[0] {
		t.Fatal("equal seeds must lay out rocks identically")
	}
}

func TestNewWorldRejectsBadConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Particles.Count = 0
	if _, err := NewWorld(cfg); err == nil {
		t.Fatal("expected an error for an empty waterfall")
	}
	cfg = smallConfig()
	cfg.TPS = 0
	if _, err := NewWorld(cfg); err == nil {
		t.Fatal("expected an error for zero tps")
	}
}

func TestSessionLogsEdges(t *testing.T) {
	w, err := NewWorld(smallConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	var buf bytes.Buffer
	logger, closeLog, err := NewLogger("", &buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer closeLog()

	sink := &nullSink{}
	s := w.Start(sink, nil, logger)
	defer s.Close()

	for i := 0; i < 3; i++ {
		if r := s.Frame(0); r.Applied {
			t.Fatal("frame before the viewport is known must not apply")
		}
	}
	w.Controls.SetViewport(720)
	w.Controls.Jump(1)
	s.Frame(0.1)
	w.Controls.Jump(0)
	s.Frame(0.2)

	if !slices.Equal(sink.overlay, []bool{true, false}) {
		t.Fatalf("overlay calls = %v, want [true false]", sink.overlay)
	}
	out := buf.String()
	if !strings.Contains(out, "crossed the waterline") || !strings.Contains(out, "surfaced") {
		t.Fatalf("log = %q", out)
	}
	if n := strings.Count(out, "waiting for the scroll source"); n != 1 {
		t.Fatalf("waiting logged %d times, want once", n)
	}
}

func TestWorldParameters(t *testing.T) {
	w, err := NewWorld(smallConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	snap := w.Parameters()
	for _, key := range []string{"pages", "camera_z_start", "particles", "fog_color_wet"} {
		if _, ok := snap.Lookup(key); !ok {
			t.Errorf("missing parameter %q", key)
		}
	}
	if p, _ := snap.Lookup("particles"); p.Value != "64" {
		t.Fatalf("particles = %q, want 64", p.Value)
	}
}

func TestNewSoundMuted(t *testing.T) {
	cfg := smallConfig()
	cfg.Mute = true
	if NewSound(cfg, nil) != nil {
		t.Fatal("muted config must not open audio")
	}
}
