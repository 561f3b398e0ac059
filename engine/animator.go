package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/text-animator/effect"
	"github.com/lixenwraith/text-animator/layout"
	"github.com/lixenwraith/text-animator/parameter"
	"github.com/lixenwraith/text-animator/render"
)

// Options configures a new Animator, zero values select defaults
type Options struct {
	Text     string
	FontSize int
	MaxWidth float64
	Effect   effect.Kind
	Logger   *zap.Logger
}

// Animator owns text, layout, frame index, effect and run state
// It is not safe for concurrent use, Loop serialises access through its mailbox
type Animator struct {
	text     string
	fontSize int
	maxWidth float64
	layout   *layout.Layout

	frame  int
	effect effect.Kind
	state  State

	buf []render.DrawCommand
	log *zap.Logger
}

// NewAnimator creates a stopped animator at frame 0
// Empty text falls back to parameter.DefaultText
func NewAnimator(opts Options) (*Animator, error) {
	a := &Animator{
		fontSize: parameter.DefaultFontSize,
		maxWidth: parameter.MaxTextWidth,
		log:      opts.Logger,
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}

	if opts.FontSize != 0 {
		if err := validateFontSize(opts.FontSize); err != nil {
			return nil, err
		}
		a.fontSize = opts.FontSize
	}
	if opts.MaxWidth != 0 {
		if opts.MaxWidth < 0 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWidth, opts.MaxWidth)
		}
		a.maxWidth = opts.MaxWidth
	}
	if !opts.Effect.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, opts.Effect)
	}
	a.effect = opts.Effect

	text := opts.Text
	if strings.TrimSpace(text) == "" {
		text = parameter.DefaultText
	}
	if _, err := a.SetText(text); err != nil {
		return nil, err
	}

	return a, nil
}

func validateFontSize(px int) error {
	if px <= 0 || px > parameter.MaxFontSize {
		return fmt.Errorf("%w: %dpx not in [1,%d]", ErrInvalidFontSize, px, parameter.MaxFontSize)
	}
	return nil
}

// relayout replaces the layout wholesale
func (a *Animator) relayout() {
	a.layout = layout.Compute(a.text, a.fontSize, a.maxWidth)
	a.log.Debug("relayout",
		zap.Int("slots", a.layout.Len()),
		zap.Int("lines", len(a.layout.Lines)),
		zap.Int("font_size", a.fontSize),
		zap.Float64("max_width", a.maxWidth))
}

// SetText trims and lays out new text, the run state is kept
func (a *Animator) SetText(text string) (*layout.Layout, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return a.layout, ErrEmptyText
	}
	a.text = trimmed
	a.relayout()
	return a.layout, nil
}

// SetFontSize lays out the current text at a new size
func (a *Animator) SetFontSize(px int) error {
	if err := validateFontSize(px); err != nil {
		return err
	}
	a.fontSize = px
	a.relayout()
	return nil
}

// SetMaxWidth lays out the current text for a new wrap width
func (a *Animator) SetMaxWidth(width float64) error {
	if width <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, width)
	}
	a.maxWidth = width
	a.relayout()
	return nil
}

// SelectEffect switches the effect used by the next Tick
func (a *Animator) SelectEffect(k effect.Kind) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownEffect, k)
	}
	a.effect = k
	return nil
}

// Tick renders the current frame without touching any state besides the scratch buffer
// The returned slice is reused by the next Tick
func (a *Animator) Tick() []render.DrawCommand {
	a.buf = effect.RenderInto(a.buf, a.effect, a.layout, a.frame)
	return a.buf
}

// AdvanceFrame steps the frame index and returns the new value
func (a *Animator) AdvanceFrame() int {
	a.frame = (a.frame + parameter.FrameStep) % parameter.FrameCycle
	return a.frame
}

// SetFrame jumps to a frame index, wrapped into [0, FrameCycle)
func (a *Animator) SetFrame(frame int) {
	frame %= parameter.FrameCycle
	if frame < 0 {
		frame += parameter.FrameCycle
	}
	a.frame = frame
}

// apply runs one trigger through the transition table
func (a *Animator) apply(t Trigger) error {
	to, err := next(a.state, t)
	if err != nil {
		return err
	}
	if a.state == Stopped && to == Running {
		a.frame = 0
	}
	if to != a.state {
		a.log.Debug("state transition",
			zap.Stringer("trigger", t),
			zap.Stringer("from", a.state),
			zap.Stringer("to", to),
			zap.Int("frame", a.frame))
	}
	a.state = to
	return nil
}

// Start runs from Stopped (frame 0) or Paused (frame kept)
func (a *Animator) Start() error { return a.apply(TriggerStart) }

// Pause freezes the current frame
func (a *Animator) Pause() error { return a.apply(TriggerPause) }

// Resume continues from the frozen frame
func (a *Animator) Resume() error { return a.apply(TriggerResume) }

// Stop halts from any state
func (a *Animator) Stop() error { return a.apply(TriggerStop) }

// Toggle pauses when running, otherwise starts or resumes
func (a *Animator) Toggle() error {
	switch a.state {
	case Running:
		return a.Pause()
	case Paused:
		return a.Resume()
	default:
		return a.Start()
	}
}

// Snapshot returns the current frame state
func (a *Animator) Snapshot() FrameState {
	return FrameState{Index: a.frame, Effect: a.effect, State: a.state}
}

func (a *Animator) State() State           { return a.state }
func (a *Animator) Frame() int             { return a.frame }
func (a *Animator) Effect() effect.Kind    { return a.effect }
func (a *Animator) Text() string           { return a.text }
func (a *Animator) FontSize() int          { return a.fontSize }
func (a *Animator) MaxWidth() float64      { return a.maxWidth }
func (a *Animator) Layout() *layout.Layout { return a.layout }
