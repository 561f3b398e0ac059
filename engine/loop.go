package engine

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/text-animator/effect"
	"github.com/lixenwraith/text-animator/layout"
	"github.com/lixenwraith/text-animator/logger"
	"github.com/lixenwraith/text-animator/parameter"
	"github.com/lixenwraith/text-animator/render"
)

// Command mutates the animator on the loop goroutine at the start of a tick
type Command func(a *Animator) error

// Frame is handed to the sink once per rendered tick
// Commands is reused by the next tick, sinks copy what they keep
type Frame struct {
	Commands []render.DrawCommand
	State    FrameState
	Layout   *layout.Layout
	Text     string
	Time     time.Time

	// Static is set for the single frozen frame presented outside Running
	Static bool
}

// Sink receives rendered frames
type Sink interface {
	Present(f *Frame)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(f *Frame)

func (fn SinkFunc) Present(f *Frame) { fn(f) }

// LoopConfig configures a Loop, zero values select defaults
type LoopConfig struct {
	Delay     time.Duration
	QueueSize int
	Clock     Clock
	Logger    *zap.Logger

	// OnError receives errors returned by submitted commands
	OnError func(err error)
}

// Loop is the single-goroutine scheduler driving an Animator
// External code never touches the animator directly while Run is active, it submits Commands
type Loop struct {
	anim      *Animator
	sink      Sink
	observers []Observer

	delay   time.Duration
	clock   Clock
	log     *zap.Logger
	onError func(err error)

	mailbox chan Command
	wake    chan struct{}

	frame  Frame
	dirty  bool
	cycles uint64

	ticks   atomic.Uint64
	dropped atomic.Uint64
	running atomic.Bool
}

// NewLoop creates a loop around anim presenting into sink
func NewLoop(anim *Animator, sink Sink, cfg LoopConfig) *Loop {
	if cfg.Delay <= 0 {
		cfg.Delay = parameter.FrameDelay
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = parameter.CommandQueueSize
	}
	if cfg.Clock == nil {
		cfg.Clock = NewTimeProvider()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Loop{
		anim:    anim,
		sink:    sink,
		delay:   cfg.Delay,
		clock:   cfg.Clock,
		log:     cfg.Logger,
		onError: cfg.OnError,
		mailbox: make(chan Command, cfg.QueueSize),
		wake:    make(chan struct{}, 1),
		dirty:   true,
	}
}

// AddObserver registers an observer, must be called before Run
func (l *Loop) AddObserver(o Observer) {
	l.observers = append(l.observers, o)
}

// Submit queues a command for the next tick without blocking
// Returns false when the mailbox is full and the command was dropped
func (l *Loop) Submit(cmd Command) bool {
	select {
	case l.mailbox <- cmd:
	default:
		l.dropped.Add(1)
		l.log.Warn("command dropped, mailbox full", zap.Int("capacity", cap(l.mailbox)))
		return false
	}
	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// drain applies every queued command, each as a whole
func (l *Loop) drain() {
	for {
		select {
		case cmd := <-l.mailbox:
			if err := cmd(l.anim); err != nil {
				l.log.Warn("command rejected", zap.Error(err))
				if l.onError != nil {
					l.onError(err)
				}
			}
		default:
			return
		}
	}
}

// Step executes one tick: apply queued commands, render, advance
// Returns whether a successor tick should be scheduled, decided after the commands are applied
func (l *Loop) Step() bool {
	before := l.anim.Snapshot()
	layoutBefore := l.anim.Layout()

	l.drain()

	after := l.anim.Snapshot()
	if after.State != before.State {
		l.dirty = true
		for _, o := range l.observers {
			o.StateChanged(before.State, after.State)
		}
	}
	if after.Effect != before.Effect {
		l.dirty = true
		for _, o := range l.observers {
			o.EffectChanged(after.Effect)
		}
	}
	if l.anim.Layout() != layoutBefore {
		l.dirty = true
	}

	if after.State != Running {
		if l.dirty {
			l.present(after, true)
			l.dirty = false
		}
		return false
	}

	l.present(after, false)
	l.dirty = false
	l.ticks.Add(1)

	if l.anim.AdvanceFrame() == 0 {
		l.cycles++
		for _, o := range l.observers {
			o.CycleCompleted(l.cycles)
		}
	}

	return l.anim.State() == Running
}

// present renders the current frame into the sink
// A stopped animation presents an empty frame
func (l *Loop) present(fs FrameState, static bool) {
	cmds := l.frame.Commands[:0]
	if fs.State != Stopped {
		cmds = l.anim.Tick()
	}

	l.frame = Frame{
		Commands: cmds,
		State:    fs,
		Layout:   l.anim.Layout(),
		Text:     l.anim.Text(),
		Time:     l.clock.Now(),
		Static:   static,
	}
	if l.sink != nil {
		l.sink.Present(&l.frame)
	}
}

// Run drives ticks until ctx is cancelled
// While Running a tick fires every delay; otherwise the loop sleeps until a command arrives
// Commands submitted while a tick is scheduled wait for that tick
// A logger carried by ctx takes over the lifecycle logs
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	log := l.log
	if cl, ok := logger.FromContext(ctx); ok {
		log = cl.Named("loop")
	}
	log.Info("loop started", zap.Duration("delay", l.delay))
	defer func() {
		log.Info("loop stopped",
			zap.Uint64("ticks", l.ticks.Load()),
			zap.Uint64("cycles", l.cycles),
			zap.Uint64("dropped", l.dropped.Load()))
	}()

	// Nil while no tick is scheduled, a nil channel never fires
	tick := l.clock.After(0)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-tick:
			tick = nil
			if l.Step() {
				tick = l.clock.After(l.delay)
			}

		case <-l.wake:
			if tick != nil {
				continue
			}
			if l.Step() {
				tick = l.clock.After(l.delay)
			}
		}
	}
}

// Ticks returns the number of rendered running ticks
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Dropped returns the number of commands rejected by a full mailbox
func (l *Loop) Dropped() uint64 {
	return l.dropped.Load()
}

// Commands for Submit

// SetTextCommand replaces the text
func SetTextCommand(text string) Command {
	return func(a *Animator) error {
		_, err := a.SetText(text)
		return err
	}
}

// SetFontSizeCommand replaces the font size
func SetFontSizeCommand(px int) Command {
	return func(a *Animator) error { return a.SetFontSize(px) }
}

// SelectEffectCommand switches the effect
func SelectEffectCommand(k effect.Kind) Command {
	return func(a *Animator) error { return a.SelectEffect(k) }
}

// TriggerCommand applies a state trigger
func TriggerCommand(t Trigger) Command {
	return func(a *Animator) error { return a.apply(t) }
}

// ToggleCommand pauses or resumes
func ToggleCommand() Command {
	return func(a *Animator) error { return a.Toggle() }
}

// ReplaceTextCommand sets new text and stops, the animation waits for an explicit start
func ReplaceTextCommand(text string) Command {
	return func(a *Animator) error {
		if err := a.Stop(); err != nil {
			return err
		}
		_, err := a.SetText(text)
		return err
	}
}
