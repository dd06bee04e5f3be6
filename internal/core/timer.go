package core

import "time"

// FixedStep paces frame ticks at a steady rate for hosts that do not run
// their own loop. It also tracks the elapsed time handed to the journey.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	start       time.Time
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Due reports how many ticks have accumulated since the previous call. The
// count is capped so a stalled terminal does not trigger a burst of catch-up
// ticks.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.start = now
		f.last = now
		return 1
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < 4 {
		f.accumulator -= f.step
		n++
	}
	if n == 4 {
		f.accumulator = 0
	}
	return n
}

// Elapsed returns seconds since the first Due call.
func (f *FixedStep) Elapsed() float64 {
	if f.start.IsZero() {
		return 0
	}
	return f.last.Sub(f.start).Seconds()
}
