package engine

import (
	"errors"
	"testing"
)

func TestTransitions(t *testing.T) {
	tests := []struct {
		from    State
		trigger Trigger
		want    State
		wantErr bool
	}{
		{Stopped, TriggerStart, Running, false},
		{Stopped, TriggerPause, Stopped, true},
		{Stopped, TriggerResume, Stopped, true},
		{Stopped, TriggerStop, Stopped, false},
		{Running, TriggerStart, Running, false},
		{Running, TriggerPause, Paused, false},
		{Running, TriggerResume, Running, true},
		{Running, TriggerStop, Stopped, false},
		{Paused, TriggerStart, Running, false},
		{Paused, TriggerPause, Paused, true},
		{Paused, TriggerResume, Running, false},
		{Paused, TriggerStop, Stopped, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_"+tt.trigger.String(), func(t *testing.T) {
			got, err := next(tt.from, tt.trigger)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("Expected ErrInvalidTransition, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("next(%s, %s) = %s, want %s", tt.from, tt.trigger, got, tt.want)
			}
		})
	}
}

func TestInvalidTransitionKeepsState(t *testing.T) {
	a := newTestAnimator(t)
	a.SetFrame(60)
	if err := a.Pause(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition, got %v", err)
	}
	if a.State() != Stopped || a.Frame() != 60 {
		t.Errorf("Rejected trigger changed state: %+v", a.Snapshot())
	}
}

func TestStateStrings(t *testing.T) {
	if State(9).String() != "State(9)" || Trigger(9).String() != "Trigger(9)" {
		t.Error("Unexpected fallback strings")
	}
}
