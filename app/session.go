package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/lixenwraith/text-animator/audio"
	"github.com/lixenwraith/text-animator/config"
	"github.com/lixenwraith/text-animator/core"
	"github.com/lixenwraith/text-animator/engine"
	"github.com/lixenwraith/text-animator/logger"
)

// Session owns the animator, its loop and the optional sound manager
type Session struct {
	Log   *zap.Logger
	Anim  *engine.Animator
	Loop  *engine.Loop
	Sound *audio.SoundManager

	closers []func()
}

// NewSession builds a session presenting into sink
// Audio failures are logged and the session continues silently
func NewSession(cfg config.Config, sink engine.Sink) (*Session, error) {
	log, closeLog, err := logger.Setup(logger.Options{Debug: cfg.Debug, Dir: cfg.LogDir})
	if err != nil {
		return nil, err
	}
	s := &Session{Log: log, closers: []func(){closeLog}}
	core.SetCrashLogger(log)

	s.Anim, err = engine.NewAnimator(engine.Options{
		Text:     cfg.Text,
		FontSize: cfg.FontSize,
		MaxWidth: cfg.MaxWidth,
		Effect:   cfg.EffectKind(),
		Logger:   log,
	})
	if err != nil {
		s.Close()
		return nil, err
	}

	s.Loop = engine.NewLoop(s.Anim, sink, engine.LoopConfig{
		Delay:  cfg.FrameDelay(),
		Logger: log,
		OnError: func(err error) {
			log.Debug("command error", zap.Error(err))
		},
	})

	s.Sound = audio.NewSoundManager(log)
	switch {
	case !cfg.Sound:
		s.Sound.SetMuted(true)
	case s.Sound.Initialize() != nil:
		log.Warn("audio unavailable, continuing without sound")
		s.Sound.SetMuted(true)
	default:
		s.closers = append(s.closers, s.Sound.Cleanup)
	}
	s.Loop.AddObserver(s.Sound)

	log.Info("session ready",
		zap.String("effect", cfg.EffectKind().String()),
		zap.Int("font_size", cfg.FontSize),
		zap.Duration("delay", cfg.FrameDelay()))
	return s, nil
}

// Context returns ctx carrying the session logger
func (s *Session) Context(ctx context.Context) context.Context {
	return logger.NewContext(ctx, s.Log)
}

// Muted reports whether cues are suppressed
func (s *Session) Muted() bool {
	return s.Sound.Muted()
}

// Close releases audio and flushes the log, in reverse order of acquisition
func (s *Session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
