package app

import (
	"time"

	"github.com/lixenwraith/text-animator/effect"
	"github.com/lixenwraith/text-animator/engine"
	"github.com/lixenwraith/text-animator/render"
)

// Hint returns the key reminder shown for a run state
func Hint(s engine.State) string {
	switch s {
	case engine.Running:
		return "M to pause"
	case engine.Paused:
		return "M to resume"
	default:
		return "Press SPACE to start"
	}
}

// rateSmoothing weights the newest interval in the running average
const rateSmoothing = 0.2

// TickRate measures presented ticks per second from frame timestamps
// Static frames reset the measurement, the next run starts fresh
type TickRate struct {
	last time.Time
	rate float64
}

// Observe records f and returns the smoothed rate, zero until two running frames were seen
func (r *TickRate) Observe(f *engine.Frame) float64 {
	if f.Static {
		*r = TickRate{}
		return 0
	}
	if !r.last.IsZero() {
		if dt := f.Time.Sub(r.last); dt > 0 {
			inst := float64(time.Second) / float64(dt)
			if r.rate == 0 {
				r.rate = inst
			} else {
				r.rate += (inst - r.rate) * rateSmoothing
			}
		}
	}
	r.last = f.Time
	return r.rate
}

// HUD builds the status information for a frame
func HUD(f *engine.Frame, muted bool, rate float64) render.HUD {
	h := render.HUD{
		Text:        f.Text,
		Effect:      f.State.Effect.Title(),
		EffectIndex: int(f.State.Effect),
		EffectCount: len(effect.Kinds),
		State:       f.State.State.String(),
		Hint:        Hint(f.State.State),
		Frame:       f.State.Index,
		Muted:       muted,
		Rate:        rate,
	}
	if f.Layout != nil {
		h.FontSize = f.Layout.FontSize
	}
	return h
}
