package journey

import (
	"math"

	"lowtter/internal/core"
	"lowtter/internal/particles"
)

// FrameReport summarises what one Frame call did.
type FrameReport struct {
	// Applied is false when the progress source had nothing usable and the
	// camera, fog and overlay were left untouched.
	Applied bool
	State   State
	Edge    bool
}

// Director runs one journey frame at a time: it ticks the waterfall, maps
// scroll progress to camera and fog, and forwards immersion edges. The host
// owns the loop and calls Frame once per rendered frame.
type Director struct {
	mapper   Mapper
	notifier *Notifier
	stream   *particles.Stream
	source   core.ProgressSource
	sink     core.Sink

	last    State
	hasLast bool
}

// NewDirector wires the frame pipeline. stream and source may be nil; a nil
// stream skips the particle update and a nil source skips the journey update.
func NewDirector(mapper Mapper, stream *particles.Stream, source core.ProgressSource, sink core.Sink) *Director {
	return &Director{
		mapper:   mapper,
		notifier: NewNotifier(),
		stream:   stream,
		source:   source,
		sink:     sink,
	}
}

// Notifier exposes the immersion notifier so callers can subscribe.
func (d *Director) Notifier() *Notifier { return d.notifier }

// Mapper returns the mapper in use.
func (d *Director) Mapper() Mapper { return d.mapper }

// Stream returns the particle stream, if any.
func (d *Director) Stream() *particles.Stream { return d.stream }

// Last returns the most recently applied state.
func (d *Director) Last() (State, bool) { return d.last, d.hasLast }

// Frame advances the journey by one frame at elapsed seconds.
func (d *Director) Frame(elapsed float64) FrameReport {
	if d.stream != nil {
		d.stream.Tick()
		if d.sink != nil {
			d.sink.SetParticlePositions(d.stream.Snapshot())
		}
	}

	if d.source == nil {
		return FrameReport{}
	}
	progress, ok := d.source.Progress()
	if !ok || math.IsNaN(progress) || math.IsInf(progress, 0) {
		return FrameReport{}
	}

	state := d.mapper.MapFrom(d.notifier.Immersed(), progress, elapsed)
	if d.sink != nil {
		d.sink.SetCameraPosition(state.CameraPos)
		d.sink.SetFogFar(state.FogFar)
		d.sink.SetFogColor(state.FogColor)
	}
	d.last = state
	d.hasLast = true

	ev, edge := d.notifier.Observe(state.Immersed)
	if edge && d.sink != nil {
		d.sink.SetOverlayVisible(ev.Immersed)
	}
	return FrameReport{Applied: true, State: state, Edge: edge}
}
