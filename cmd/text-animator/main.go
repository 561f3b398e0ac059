package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/text-animator/app"
	"github.com/lixenwraith/text-animator/config"
	"github.com/lixenwraith/text-animator/core"
	"github.com/lixenwraith/text-animator/engine"
	"github.com/lixenwraith/text-animator/logger"
	"github.com/lixenwraith/text-animator/modes"
	"github.com/lixenwraith/text-animator/render"
)

const cursorBlink = 500 * time.Millisecond

func main() {
	// Panic Recovery: Ensure terminal is reset even if the animator crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	settings, err := app.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "text-animator: %v\n", err)
		os.Exit(2)
	}
	cfg := settings.Config

	// tcell reads the colour capability from the environment
	switch cfg.ColorMode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashReset(screen.Fini)
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, cfg.CellWidth, cfg.CellHeight)

	var (
		session *app.Session
		rate    app.TickRate
	)
	// Frames arrive on the loop goroutine only
	sink := engine.SinkFunc(func(f *engine.Frame) {
		renderer.Draw(f.Commands, app.HUD(f, session.Muted(), rate.Observe(f)))
	})

	session, err = app.NewSession(cfg, sink)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(session.Context(ctx))
	defer cancel()
	log := logger.L(ctx)

	input := modes.NewInputHandler(session.Loop, renderer, log)
	input.SetSound(session.Sound)

	// Auto-start with a given text, otherwise ask for one first
	if settings.TextGiven {
		session.Loop.Submit(engine.TriggerCommand(engine.TriggerStart))
	} else {
		input.BeginTextEntry(true)
	}

	loopDone := make(chan error, 1)
	core.Go(func() {
		loopDone <- session.Loop.Run(ctx)
	})

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses its own goroutine as it blocks on the terminal
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	blink := time.NewTicker(cursorBlink)
	defer blink.Stop()

	for running := true; running; {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				renderer.Resize()
				continue
			}
			running = input.HandleEvent(ev)

		case <-blink.C:
			input.BlinkCursor()

		case <-ctx.Done():
			running = false
		}
	}

	cancel()
	if err := <-loopDone; err != nil && !errors.Is(err, context.Canceled) {
		log.Error("loop exited", zap.Error(err))
	}
	log.Info("exit",
		zap.Uint64("ticks", session.Loop.Ticks()),
		zap.Uint64("dropped", session.Loop.Dropped()))
}
