// Package app wires configuration, logging, the animation loop and audio for the frontends.
package app

import (
	"flag"
	"fmt"

	"github.com/lixenwraith/text-animator/config"
)

// DefaultConfigPath is read when -config is not given, a missing file is fine
const DefaultConfigPath = "text-animator.toml"

// Settings is the resolved configuration plus what the command line asked for
type Settings struct {
	Config config.Config

	// TextGiven is set when the text came from the command line or the config file
	TextGiven bool
}

// ParseFlags loads the config file and applies the flags that were set on top of it
func ParseFlags(fs *flag.FlagSet, args []string) (Settings, error) {
	def := config.Default()

	path := fs.String("config", DefaultConfigPath, "TOML config file")
	text := fs.String("text", def.Text, "text to animate, skips the entry prompt")
	size := fs.Int("size", def.FontSize, "font size in pixels")
	eff := fs.String("effect", def.Effect, "effect: rotation, wave, spiral, bounce, pulse")
	width := fs.Float64("width", def.MaxWidth, "wrap width in pixels")
	delay := fs.Int("delay", def.FrameDelayMs, "frame delay in milliseconds")
	color := fs.String("color", def.ColorMode, "color mode: auto, truecolor, 256")
	sound := fs.Bool("sound", def.Sound, "play audio cues")
	debug := fs.Bool("debug", def.Debug, "write a debug log")
	logDir := fs.String("log-dir", def.LogDir, "directory for the debug log")

	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return Settings{}, err
	}
	textGiven := cfg.Text != def.Text

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			cfg.Text = *text
			textGiven = true
		case "size":
			cfg.FontSize = *size
		case "effect":
			cfg.Effect = *eff
		case "width":
			cfg.MaxWidth = *width
		case "delay":
			cfg.FrameDelayMs = *delay
		case "color":
			cfg.ColorMode = *color
		case "sound":
			cfg.Sound = *sound
		case "debug":
			cfg.Debug = *debug
		case "log-dir":
			cfg.LogDir = *logDir
		}
	})

	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("flags: %w", err)
	}
	return Settings{Config: cfg, TextGiven: textGiven}, nil
}
