package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue volumes, linear gain in [0, 1]
const (
	MasterVolume = 0.6
	ClickVolume  = 0.35
	ChimeVolume  = 0.5
	SweepVolume  = 0.4
)

// Click cue, played on pause and stop
const (
	ClickDuration  = 30 * time.Millisecond
	ClickAttack    = 2 * time.Millisecond
	ClickRelease   = 20 * time.Millisecond
	ClickFrequency = 1200.0
)

// Sweep cue, two rising notes on start and resume
const (
	SweepNoteDuration = 70 * time.Millisecond
	SweepAttack       = 5 * time.Millisecond
	SweepRelease      = 40 * time.Millisecond
	SweepLowHz        = 523.25
	SweepHighHz       = 783.99
)

// Effect cue, one bell note per effect pitched on a pentatonic scale
const (
	EffectCueDuration = 250 * time.Millisecond
	EffectCueAttack   = 5 * time.Millisecond
	EffectCueRelease  = 200 * time.Millisecond
)

// EffectCueHz indexes by effect kind
var EffectCueHz = [...]float64{440.00, 493.88, 554.37, 659.25, 739.99}

// Cycle chime, played whenever the frame index wraps to zero
const (
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote2Duration = 280 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 200 * time.Millisecond
	ChimeNote1Hz       = 987.77
	ChimeNote2Hz       = 1318.51
)
