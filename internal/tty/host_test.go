package tty

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"lowtter/internal/journey"
	"lowtter/internal/particles"
	"lowtter/internal/scene"
	"lowtter/internal/scroll"
	"lowtter/internal/ui"
	rng "lowtter/pkg/core"
)

type fixture struct {
	screen   tcell.SimulationScreen
	composer *Composer
	controls *scroll.Controls
	director *journey.Director
	host     *Host
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	layoutCfg := scene.DefaultConfig()
	layoutCfg.StarCount = 50
	layout := scene.Build(layoutCfg, rng.NewRNG(3))

	pcfg := particles.DefaultConfig()
	pcfg.Count = 200
	stream, err := particles.New(pcfg, rng.NewRNG(3))
	if err != nil {
		t.Fatalf("particles: %v", err)
	}

	jcfg := journey.DefaultConfig()
	composer := NewComposer(layout, jcfg.FogNear)
	controls := scroll.New(scroll.Config{Pages: 6}, 60)
	director := journey.NewDirector(journey.NewMapper(jcfg), stream, controls, composer)
	host := NewHost(screen, composer, controls, director, 60)
	return &fixture{screen: screen, composer: composer, controls: controls, director: director, host: host}
}

func rowText(c *Canvas, row int) string {
	cols, _ := c.Cells()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _ := c.Cell(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestHostKeysDriveScroll(t *testing.T) {
	f := newFixture(t)
	if !f.controls.Ready() {
		t.Fatal("controls should take the screen height as viewport")
	}

	f.host.HandleEvent(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	if got := f.controls.Target(); math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("target after page down = %v, want 0.2", got)
	}
	f.host.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	want := 0.2 - 3.0/(24*5)
	if got := f.controls.Target(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("target after wheel up = %v, want %v", got, want)
	}
	f.host.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if f.controls.Target() != 1 {
		t.Fatalf("end should reach the bottom, target = %v", f.controls.Target())
	}
}

func TestHostQuitKeys(t *testing.T) {
	f := newFixture(t)
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		if f.host.HandleEvent(ev) {
			t.Fatalf("%v should quit", ev.Name())
		}
	}
	if !f.host.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Fatal("unbound key should not quit")
	}
}

func TestHostResize(t *testing.T) {
	f := newFixture(t)
	f.screen.SetSize(100, 30)
	f.host.HandleEvent(tcell.NewEventResize(100, 30))
	if cols, rows := f.host.Canvas().Cells(); cols != 100 || rows != 30 {
		t.Fatalf("canvas = %dx%d, want 100x30", cols, rows)
	}
}

func TestHostDivesAndShowsWelcome(t *testing.T) {
	f := newFixture(t)
	f.host.Draw(0)
	if !strings.Contains(rowText(f.host.Canvas(), 1), ui.Title) {
		t.Fatalf("title row = %q", rowText(f.host.Canvas(), 1))
	}

	f.controls.Jump(1)
	report := f.director.Frame(0.5)
	if !report.Applied || !report.Edge || !report.State.Immersed {
		t.Fatalf("frame at the bottom = %+v, want an immersion edge", report)
	}
	if !f.composer.OverlayVisible() {
		t.Fatal("composer should show the overlay")
	}
	if f.composer.Fog().Far != 20 {
		t.Fatalf("fog far = %v, want 20", f.composer.Fog().Far)
	}

	f.host.Draw(0.5)
	if row := rowText(f.host.Canvas(), 12); !strings.Contains(row, ui.Welcome) {
		t.Fatalf("centre row = %q, want welcome banner", row)
	}

	f.controls.Jump(0)
	report = f.director.Frame(1)
	if !report.Edge || report.State.Immersed || f.composer.OverlayVisible() {
		t.Fatalf("frame at the top = %+v, want a surfacing edge", report)
	}
}

func TestHostLoadingWithoutViewport(t *testing.T) {
	f := newFixture(t)
	f.controls.SetViewport(0)
	report := f.director.Frame(0)
	if report.Applied {
		t.Fatal("journey must not apply before the viewport is known")
	}
	if _, ok := f.composer.Camera(); ok {
		t.Fatal("camera should not be set yet")
	}
	f.host.Draw(0)
	if row := rowText(f.host.Canvas(), 12); !strings.Contains(row, ui.LoadingText) {
		t.Fatalf("centre row = %q, want loading text", row)
	}
}

func TestHostTickAdvancesParticles(t *testing.T) {
	f := newFixture(t)
	before := f.director.Stream().Ticks()
	f.host.Tick()
	if f.director.Stream().Ticks() != before+1 {
		t.Fatalf("ticks = %d, want %d", f.director.Stream().Ticks(), before+1)
	}
	if !f.host.Last().Applied {
		t.Fatal("first tick should apply the journey")
	}
}
