package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/text-animator/app"
	"github.com/lixenwraith/text-animator/core"
	"github.com/lixenwraith/text-animator/engine"
	"github.com/lixenwraith/text-animator/parameter"
)

// ticksPerSecond converts a frame delay to ebiten's update rate, never below one
func ticksPerSecond(delay time.Duration) int {
	if delay <= 0 {
		return ebiten.DefaultTPS
	}
	return max(int(time.Second/delay), 1)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	// No terminal to restore
	core.SetCrashReset(func() {})

	settings, err := app.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "text-animator-gui: %v\n", err)
		os.Exit(2)
	}
	cfg := settings.Config

	g, err := newGame(cfg.FrameDelay())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load fonts: %v\n", err)
		os.Exit(1)
	}
	defer g.glyphs.Close()
	defer g.ui.Close()

	session, err := app.NewSession(cfg, g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()
	g.attach(session)

	if settings.TextGiven {
		session.Loop.Submit(engine.TriggerCommand(engine.TriggerStart))
	} else {
		g.input.BeginTextEntry(true)
	}

	// One update per frame delay, Step runs on every update
	ebiten.SetTPS(ticksPerSecond(cfg.FrameDelay()))
	ebiten.SetWindowSize(parameter.WorldWidth, parameter.WorldHeight)
	ebiten.SetWindowTitle("Text Animator")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		session.Log.Error("window closed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "text-animator-gui: %v\n", err)
		os.Exit(1)
	}
	session.Log.Info("exit", zap.Uint64("ticks", session.Loop.Ticks()))
}
