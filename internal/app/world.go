package app

import (
	"fmt"
	"log"

	"lowtter/internal/audio"
	"lowtter/internal/core"
	"lowtter/internal/journey"
	"lowtter/internal/particles"
	"lowtter/internal/scene"
	"lowtter/internal/scroll"
	rng "lowtter/pkg/core"
)

// rumbleReach is the distance at which the waterfall falls silent.
const rumbleReach = 100

// World holds everything a host needs except the sink: the scene layout,
// the particle stream, the scroll controls and the mapper.
type World struct {
	Config   Config
	Layout   scene.Layout
	Stream   *particles.Stream
	Controls *scroll.Controls
	Mapper   journey.Mapper
}

// NewWorld builds a world from cfg. The same seed always yields the same
// layout and particle placement.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := rng.NewRNG(cfg.Seed)
	layout := scene.Build(cfg.Scene, r.Derive())
	stream, err := particles.New(cfg.Particles, r.Derive())
	if err != nil {
		return nil, fmt.Errorf("build waterfall: %w", err)
	}
	return &World{
		Config:   cfg,
		Layout:   layout,
		Stream:   stream,
		Controls: scroll.New(cfg.Scroll, cfg.TPS),
		Mapper:   journey.NewMapper(cfg.Journey),
	}, nil
}

// Parameters merges every component's tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	scrollGroup := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Scroll",
		Params: []core.Parameter{
			core.FloatParam("pages", "Pages", w.Config.Scroll.Pages),
			core.FloatParam("damping", "Damping", w.Config.Scroll.Damping),
			core.FloatParam("offset", "Offset", round3(w.Controls.Offset())),
		},
	}}}
	return core.Merge(scrollGroup, w.Mapper.Parameters(), w.Stream.Parameters())
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}

// Session is a running journey: a director bound to a sink, plus the
// optional sound manager and logger that follow its edges.
type Session struct {
	World    *World
	Director *journey.Director
	Sound    *audio.SoundManager
	Logger   *log.Logger

	waiting bool
}

// Start binds the world to sink. sound and logger may be nil.
func (w *World) Start(sink core.Sink, sound *audio.SoundManager, logger *log.Logger) *Session {
	d := journey.NewDirector(w.Mapper, w.Stream, w.Controls, sink)
	s := &Session{World: w, Director: d, Sound: sound, Logger: logger}
	d.Notifier().Subscribe(s.onImmersion)
	if sound != nil {
		sound.StartRumble()
	}
	return s
}

func (s *Session) onImmersion(ev journey.ImmersionEvent) {
	if s.Logger != nil {
		if ev.Immersed {
			s.Logger.Printf("journey: crossed the waterline at offset %.3f", s.World.Controls.Offset())
		} else {
			s.Logger.Printf("journey: surfaced at offset %.3f", s.World.Controls.Offset())
		}
	}
	if s.Sound != nil {
		s.Sound.OnImmersion(ev)
	}
}

// Frame advances the director and keeps the rumble level in step with the
// camera.
func (s *Session) Frame(elapsed float64) journey.FrameReport {
	report := s.Director.Frame(elapsed)
	if !report.Applied {
		if !s.waiting && s.Logger != nil {
			s.Logger.Print("journey: waiting for the scroll source")
		}
		s.waiting = true
		return report
	}
	s.waiting = false
	if s.Sound != nil {
		z := report.State.CameraPos.Z()
		s.Sound.SetRumbleLevel(audio.RumbleLevel(z, s.World.Stream.Config().ZFixed, rumbleReach))
	}
	return report
}

// Close stops audio.
func (s *Session) Close() {
	if s.Sound != nil {
		s.Sound.Cleanup()
	}
}

// NewSound returns an initialised sound manager, or nil when muted or when
// no audio device is available.
func NewSound(cfg Config, logger *log.Logger) *audio.SoundManager {
	if cfg.Mute {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		if logger != nil {
			logger.Printf("audio disabled: %v", err)
		}
		return nil
	}
	return sm
}
