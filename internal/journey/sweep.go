package journey

// Sample is one row of a progress sweep.
type Sample struct {
	Progress float64
	State    State
}

// Transition marks a progress value at which immersion flipped.
type Transition struct {
	Progress float64
	Immersed bool
}

// Sweep maps progress from 0 to 1 in steps increments and back down again,
// carrying immersion from frame to frame the way a live run does. samples
// covers the way down only; transitions covers the full round trip.
func (m Mapper) Sweep(steps int, elapsed float64) (samples []Sample, transitions []Transition) {
	if steps < 1 {
		steps = 1
	}
	samples = make([]Sample, 0, steps+1)
	prev := false
	visit := func(i int, record bool) {
		p := float64(i) / float64(steps)
		s := m.MapFrom(prev, p, elapsed)
		if record {
			samples = append(samples, Sample{Progress: p, State: s})
		}
		if s.Immersed != prev {
			transitions = append(transitions, Transition{Progress: p, Immersed: s.Immersed})
			prev = s.Immersed
		}
	}
	for i := 0; i <= steps; i++ {
		visit(i, true)
	}
	for i := steps - 1; i >= 0; i-- {
		visit(i, false)
	}
	return samples, transitions
}
