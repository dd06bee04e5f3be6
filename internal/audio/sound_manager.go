package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"lowtter/internal/journey"
)

const (
	sampleRate = beep.SampleRate(44100)
	cueLength  = 600 * time.Millisecond
)

// SoundManager plays the journey's audio: a one-shot cue on each immersion
// edge and a looping waterfall rumble whose level follows the camera.
// Every method is safe to call before Initialize or after Cleanup; they
// simply do nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rumble      *beep.Ctrl
	rumbleGen   *RumbleGenerator
	initialized bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:     &beep.Mixer{},
		rumbleGen: NewRumbleGenerator(sampleRate, 7),
	}
}

// Initialize opens the speaker. A failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.rumble != nil {
		sm.rumble.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.rumble = nil
	sm.initialized = false
}

// Initialized reports whether the speaker is open.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayPlunge plays the falling splash used when the camera goes under.
func (sm *SoundManager) PlayPlunge() {
	sm.play(beep.Take(sampleRate.N(cueLength), NewPlungeGenerator(sampleRate)), 0.8)
}

// PlaySurface plays the rising chirp used when the camera comes back up.
func (sm *SoundManager) PlaySurface() {
	sm.play(beep.Take(sampleRate.N(400*time.Millisecond), NewSurfaceGenerator(sampleRate)), 0.6)
}

// OnImmersion maps an immersion edge to its cue.
func (sm *SoundManager) OnImmersion(ev journey.ImmersionEvent) {
	if ev.Immersed {
		sm.PlayPlunge()
		return
	}
	sm.PlaySurface()
}

func (sm *SoundManager) play(s beep.Streamer, vol float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(newVolume(s, vol))
	speaker.Unlock()
}

// StartRumble begins the looping waterfall noise. It is a no-op while
// already playing.
func (sm *SoundManager) StartRumble() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.rumble != nil && !sm.rumble.Paused {
		return
	}
	ctrl := &beep.Ctrl{Streamer: sm.rumbleGen}
	sm.rumble = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopRumble pauses the waterfall noise.
func (sm *SoundManager) StopRumble() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.rumble == nil {
		return
	}
	speaker.Lock()
	sm.rumble.Paused = true
	speaker.Unlock()
}

// SetRumbleLevel sets the rumble gain in [0,1].
func (sm *SoundManager) SetRumbleLevel(level float64) {
	sm.rumbleGen.SetLevel(level)
}

// RumbleLevel returns the rumble gain for a camera at cameraZ listening to
// a waterfall at sourceZ: 1 at the falls, fading to 0 at reach units away.
func RumbleLevel(cameraZ, sourceZ, reach float64) float64 {
	if reach <= 0 {
		return 0
	}
	d := math.Abs(cameraZ - sourceZ)
	if d >= reach {
		return 0
	}
	k := 1 - d/reach
	return k * k
}

// math.Log2(0) is -Inf, so zero volume is expressed as silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
