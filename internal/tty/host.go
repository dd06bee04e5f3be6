package tty

import (
	"context"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"lowtter/internal/core"
	"lowtter/internal/journey"
	"lowtter/internal/scroll"
	"lowtter/internal/ui"
)

// wheelRows is how far one wheel notch scrolls, in rows.
const wheelRows = 3

var hudColor = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}

// Framer advances the journey by one frame. *journey.Director satisfies it.
type Framer interface {
	Frame(elapsed float64) journey.FrameReport
}

// Host runs the journey in a terminal. It owns the event loop: input moves
// the scroll controls, and each tick advances the director and redraws.
type Host struct {
	screen   tcell.Screen
	canvas   *Canvas
	composer *Composer
	controls *scroll.Controls
	framer   Framer
	step     *core.FixedStep
	params   core.ParameterProvider

	showHUD bool
	last    journey.FrameReport
}

// NewHost wires a host around an initialised screen. composer must be the
// sink framer was built with.
func NewHost(screen tcell.Screen, composer *Composer, controls *scroll.Controls, framer Framer, tps int) *Host {
	h := &Host{
		screen:   screen,
		canvas:   NewCanvas(0, 0),
		composer: composer,
		controls: controls,
		framer:   framer,
		step:     core.NewFixedStep(tps),
	}
	h.resize()
	return h
}

// SetParameters sets the provider shown in the side panel.
func (h *Host) SetParameters(p core.ParameterProvider, visible bool) {
	h.params = p
	h.showHUD = visible
}

// Canvas exposes the framebuffer.
func (h *Host) Canvas() *Canvas { return h.canvas }

// Last returns the report of the most recent frame.
func (h *Host) Last() journey.FrameReport { return h.last }

func (h *Host) resize() {
	cols, rows := h.screen.Size()
	h.canvas.Resize(cols, rows)
	h.controls.SetViewport(rows)
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			h.controls.Scroll(1)
		case tcell.KeyUp:
			h.controls.Scroll(-1)
		case tcell.KeyPgDn:
			h.controls.ScrollPages(1)
		case tcell.KeyPgUp:
			h.controls.ScrollPages(-1)
		case tcell.KeyHome:
			h.controls.ScrollBy(-1)
		case tcell.KeyEnd:
			h.controls.ScrollBy(1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'j':
				h.controls.Scroll(1)
			case 'k':
				h.controls.Scroll(-1)
			case ' ':
				h.controls.ScrollPages(1)
			case 'h':
				h.showHUD = !h.showHUD
			}
		}
	case *tcell.EventMouse:
		btn := ev.Buttons()
		if btn&tcell.WheelDown != 0 {
			h.controls.Scroll(wheelRows)
		}
		if btn&tcell.WheelUp != 0 {
			h.controls.Scroll(-wheelRows)
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return true
}

// Tick advances every due frame and redraws once.
func (h *Host) Tick() {
	n := h.step.Due()
	elapsed := h.step.Elapsed()
	for i := 0; i < n; i++ {
		h.controls.Update()
		h.last = h.framer.Frame(elapsed)
	}
	h.Draw(elapsed)
}

// Draw renders the current state to the screen.
func (h *Host) Draw(elapsed float64) {
	h.composer.Draw(h.canvas, elapsed, !h.controls.Ready())
	if h.showHUD && h.params != nil {
		cols, rows := h.canvas.Cells()
		lines := ui.FormatSnapshot(h.params.Parameters())
		x := cols - 34
		for i, line := range lines {
			if i+1 >= rows {
				break
			}
			h.canvas.PutText(x, i+1, line, hudColor)
		}
	}
	h.canvas.Flush(h.screen)
}

// Run polls input and ticks until ctx ends or the user quits.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.step.Step())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Tick()
		}
	}
}
