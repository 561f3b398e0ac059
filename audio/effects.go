package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/text-animator/effect"
	"github.com/lixenwraith/text-animator/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a finite periodic wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of the given length
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream and cuts it at duration
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = max(total-att, 0)
	}

	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: total - rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain, zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sine returns a library sine tone, falling back to the local oscillator on a bad frequency
func sine(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, d, WaveSine, rate)
	}
	return beep.Take(rate.N(d), tone)
}

// Cue identifies a sound cue
type Cue uint8

const (
	CueClick Cue = iota
	CueSweep
	CueEffect
	CueChime
)

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CueSweep:
		return "sweep"
	case CueEffect:
		return "effect"
	case CueChime:
		return "chime"
	default:
		return "unknown"
	}
}

// CreateClick is a short square tick
func CreateClick(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.ClickFrequency, parameter.ClickDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ClickDuration, parameter.ClickAttack, parameter.ClickRelease, rate)
	return newVolume(shaped, parameter.ClickVolume*parameter.MasterVolume)
}

// CreateSweep plays two rising notes
func CreateSweep(rate beep.SampleRate) beep.Streamer {
	d := parameter.SweepNoteDuration
	low := NewEnvelope(sine(rate, parameter.SweepLowHz, d), d, parameter.SweepAttack, parameter.SweepRelease, rate)
	high := NewEnvelope(sine(rate, parameter.SweepHighHz, d), d, parameter.SweepAttack, parameter.SweepRelease, rate)
	return newVolume(beep.Seq(low, high), parameter.SweepVolume*parameter.MasterVolume)
}

// CreateEffectCue rings a bell pitched for the effect
func CreateEffectCue(rate beep.SampleRate, k effect.Kind) beep.Streamer {
	if !k.Valid() {
		k = effect.Rotation
	}
	d := parameter.EffectCueDuration
	freq := parameter.EffectCueHz[k]

	fund := NewEnvelope(sine(rate, freq, d), d, parameter.EffectCueAttack, parameter.EffectCueRelease, rate)
	over := NewEnvelope(NewOscillator(freq*2, d, WaveTriangle, rate), d, parameter.EffectCueAttack, parameter.EffectCueRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, parameter.ChimeVolume*parameter.MasterVolume)
}

// CreateChime is the two-note cycle chime
func CreateChime(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(parameter.ChimeNote1Hz, parameter.ChimeNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.ChimeNote1Duration, parameter.ChimeAttack, parameter.ChimeNote1Release, rate)

	n2 := NewOscillator(parameter.ChimeNote2Hz, parameter.ChimeNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.ChimeNote2Duration, parameter.ChimeAttack, parameter.ChimeNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), parameter.ChimeVolume*parameter.MasterVolume)
}

// CreateCue builds the streamer for c, k selects the pitch of CueEffect
func CreateCue(c Cue, k effect.Kind, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueClick:
		return CreateClick(rate)
	case CueSweep:
		return CreateSweep(rate)
	case CueEffect:
		return CreateEffectCue(rate, k)
	case CueChime:
		return CreateChime(rate)
	default:
		return nil
	}
}
