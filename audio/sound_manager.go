package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/text-animator/effect"
	"github.com/lixenwraith/text-animator/engine"
	"github.com/lixenwraith/text-animator/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays animation cues through a single mixer on the speaker
// Every method is safe to call before Initialize or after Cleanup, it then does nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      map[Cue]int
	log         *zap.Logger
}

var _ engine.Observer = (*SoundManager)(nil)

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		played: make(map[Cue]int),
		log:    log,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Cleanup silences the mixer, beep has no speaker close so the device stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// SetMuted suppresses cues without releasing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(c Cue, k effect.Kind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := CreateCue(c, k, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[c]++
}

// Played returns how many times c reached the mixer
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[c]
}

// cueForTransition picks the cue for a state change, ok is false for silent changes
func cueForTransition(from, to engine.State) (Cue, bool) {
	switch {
	case to == engine.Running:
		return CueSweep, true
	case from == engine.Running && to == engine.Paused:
		return CueClick, true
	case to == engine.Stopped && from != engine.Stopped:
		return CueClick, true
	default:
		return 0, false
	}
}

// StateChanged plays the transition cue
func (sm *SoundManager) StateChanged(from, to engine.State) {
	if c, ok := cueForTransition(from, to); ok {
		sm.Play(c, effect.Rotation)
	}
}

// EffectChanged rings the effect bell
func (sm *SoundManager) EffectChanged(k effect.Kind) {
	sm.Play(CueEffect, k)
}

// CycleCompleted plays the chime
func (sm *SoundManager) CycleCompleted(n uint64) {
	sm.Play(CueChime, effect.Rotation)
}
