package engine

import (
	"fmt"

	"github.com/lixenwraith/text-animator/effect"
)

// State is the animation run state
type State uint8

const (
	Stopped State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Trigger is an input to the state machine
type Trigger uint8

const (
	TriggerStart Trigger = iota
	TriggerPause
	TriggerResume
	TriggerStop
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerPause:
		return "pause"
	case TriggerResume:
		return "resume"
	case TriggerStop:
		return "stop"
	default:
		return fmt.Sprintf("Trigger(%d)", uint8(t))
	}
}

// transitions is the complete graph, missing entries are invalid
// Start on Running is accepted as a no-op
var transitions = map[State]map[Trigger]State{
	Stopped: {
		TriggerStart: Running,
		TriggerStop:  Stopped,
	},
	Running: {
		TriggerStart: Running,
		TriggerPause: Paused,
		TriggerStop:  Stopped,
	},
	Paused: {
		TriggerStart:  Running,
		TriggerResume: Running,
		TriggerStop:   Stopped,
	},
}

// next resolves the target state for a trigger
func next(from State, t Trigger) (State, error) {
	to, ok := transitions[from][t]
	if !ok {
		return from, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, t, from)
	}
	return to, nil
}

// FrameState is a snapshot of the loop-owned animation state
type FrameState struct {
	Index  int
	Effect effect.Kind
	State  State
}
