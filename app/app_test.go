package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/text-animator/config"
	"github.com/lixenwraith/text-animator/effect"
	"github.com/lixenwraith/text-animator/engine"
	"github.com/lixenwraith/text-animator/layout"
	"github.com/lixenwraith/text-animator/logger"
	"github.com/lixenwraith/text-animator/parameter"
)

func parse(t *testing.T, args ...string) (Settings, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	// Point at a file that does not exist unless the test overrides it
	args = append([]string{"-config", filepath.Join(t.TempDir(), "none.toml")}, args...)
	return ParseFlags(fs, args)
}

func TestParseFlagsDefaults(t *testing.T) {
	s, err := parse(t)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if s.Config != config.Default() {
		t.Errorf("Expected defaults, got %+v", s.Config)
	}
	if s.TextGiven {
		t.Error("Default text should open the prompt")
	}
}

func TestParseFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	body := "font_size = 48\neffect = \"wave\"\ntext = \"From File\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := parse(t, "-config", path, "-effect", "bounce", "-delay", "20")
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if s.Config.FontSize != 48 {
		t.Errorf("File value lost: font size %d", s.Config.FontSize)
	}
	if s.Config.EffectKind() != effect.Bounce {
		t.Errorf("Flag should win over file, effect %s", s.Config.Effect)
	}
	if s.Config.FrameDelayMs != 20 {
		t.Errorf("Delay = %d", s.Config.FrameDelayMs)
	}
	if !s.TextGiven || s.Config.Text != "From File" {
		t.Errorf("Text from file should count as given: %+v", s)
	}
}

func TestParseFlagsText(t *testing.T) {
	s, err := parse(t, "-text", "HELLO WORLD")
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if !s.TextGiven || s.Config.Text != "HELLO WORLD" {
		t.Errorf("Unexpected settings %+v", s)
	}
}

func TestParseFlagsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad effect", []string{"-effect", "sparkle"}},
		{"zero size", []string{"-size", "0"}},
		{"bad color", []string{"-color", "16"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		state engine.State
		want  string
	}{
		{engine.Running, "M to pause"},
		{engine.Paused, "M to resume"},
		{engine.Stopped, "Press SPACE to start"},
	}
	for _, tt := range tests {
		if got := Hint(tt.state); got != tt.want {
			t.Errorf("Hint(%s) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestHUDFromFrame(t *testing.T) {
	f := &engine.Frame{
		State:  engine.FrameState{Index: 120, Effect: effect.Spiral, State: engine.Paused},
		Layout: layout.Compute("HELLO", 80, parameter.MaxTextWidth),
		Text:   "HELLO",
	}

	h := HUD(f, true, 25)
	if h.Text != "HELLO" || h.FontSize != 80 || h.Frame != 120 {
		t.Errorf("Unexpected HUD %+v", h)
	}
	if h.Effect != "Spiral" || h.EffectIndex != 2 || h.EffectCount != 5 {
		t.Errorf("Unexpected effect fields %+v", h)
	}
	if h.State != "paused" || h.Hint != "M to resume" || !h.Muted || h.Rate != 25 {
		t.Errorf("Unexpected state fields %+v", h)
	}

	f.Layout = nil
	if HUD(f, false, 0).FontSize != 0 {
		t.Error("Missing layout should leave the size unset")
	}
}

func TestTickRate(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	frame := func(at time.Duration, static bool) *engine.Frame {
		return &engine.Frame{Time: start.Add(at), Static: static}
	}

	var r TickRate
	if got := r.Observe(frame(0, false)); got != 0 {
		t.Errorf("First frame rate = %v, want 0", got)
	}
	for i := 1; i <= 5; i++ {
		if got := r.Observe(frame(time.Duration(i)*40*time.Millisecond, false)); math.Abs(got-25) > 1e-9 {
			t.Fatalf("Steady 40ms ticks gave %v fps, want 25", got)
		}
	}

	// A slower interval moves the average part of the way
	got := r.Observe(frame(280*time.Millisecond, false))
	if got >= 25 || got <= 12.5 {
		t.Errorf("Smoothed rate after an 80ms gap = %v, want between 12.5 and 25", got)
	}

	if got := r.Observe(frame(300*time.Millisecond, true)); got != 0 {
		t.Errorf("Static frame rate = %v, want 0", got)
	}
	if got := r.Observe(frame(10*time.Second, false)); got != 0 {
		t.Errorf("Rate after a pause should restart, got %v", got)
	}
}

func TestSessionContextCarriesLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Sound = false

	s, err := NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	defer s.Close()

	if l, ok := logger.FromContext(s.Context(context.Background())); !ok || l != s.Log {
		t.Error("Session context should carry the session logger")
	}
}

func TestSessionWithoutSound(t *testing.T) {
	cfg := config.Default()
	cfg.Sound = false
	cfg.Text = "HELLO WORLD"

	var frames int
	s, err := NewSession(cfg, engine.SinkFunc(func(*engine.Frame) { frames++ }))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	defer s.Close()

	if !s.Muted() {
		t.Error("Disabled sound should show as muted")
	}
	if s.Anim.Text() != "HELLO WORLD" || s.Anim.Effect() != effect.Rotation {
		t.Errorf("Animator not configured from settings")
	}

	s.Loop.Submit(engine.TriggerCommand(engine.TriggerStart))
	s.Loop.Step()
	if frames != 1 {
		t.Errorf("Expected one frame presented, got %d", frames)
	}
}
