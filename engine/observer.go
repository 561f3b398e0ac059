package engine

import "github.com/lixenwraith/text-animator/effect"

// Observer receives loop notifications on the loop goroutine
// Implementations must return quickly, the next tick waits for them
type Observer interface {
	StateChanged(from, to State)
	EffectChanged(k effect.Kind)
	CycleCompleted(n uint64)
}

// NopObserver implements Observer with no-ops, embed it to handle a subset
type NopObserver struct{}

func (NopObserver) StateChanged(from, to State) {}
func (NopObserver) EffectChanged(k effect.Kind) {}
func (NopObserver) CycleCompleted(n uint64)     {}
