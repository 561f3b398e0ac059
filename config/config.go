// Package config loads the animator settings from TOML and validates them.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/text-animator/effect"
	"github.com/lixenwraith/text-animator/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Color modes accepted by ColorMode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the complete runtime configuration
type Config struct {
	Text         string  `toml:"text"`
	FontSize     int     `toml:"font_size"`
	Effect       string  `toml:"effect"`
	MaxWidth     float64 `toml:"max_width"`
	FrameDelayMs int     `toml:"frame_delay_ms"`
	ColorMode    string  `toml:"color_mode"`
	Sound        bool    `toml:"sound"`
	Debug        bool    `toml:"debug"`
	LogDir       string  `toml:"log_dir"`
	CellWidth    float64 `toml:"cell_width"`
	CellHeight   float64 `toml:"cell_height"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Text:         parameter.DefaultText,
		FontSize:     parameter.DefaultFontSize,
		Effect:       effect.Rotation.String(),
		MaxWidth:     parameter.MaxTextWidth,
		FrameDelayMs: int(parameter.FrameDelay / time.Millisecond),
		ColorMode:    ColorAuto,
		Sound:        true,
		LogDir:       "logs",
		CellWidth:    parameter.DefaultCellWidth,
		CellHeight:   parameter.DefaultCellHeight,
	}
}

// Load decodes path over Default, an empty path or a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config: %w", err)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if len([]rune(c.Text)) > parameter.MaxTextLength {
		return fmt.Errorf("%w: text longer than %d characters", ErrInvalidConfig, parameter.MaxTextLength)
	}
	if c.FontSize <= 0 || c.FontSize > parameter.MaxFontSize {
		return fmt.Errorf("%w: font_size %d outside 1..%d", ErrInvalidConfig, c.FontSize, parameter.MaxFontSize)
	}
	if _, err := effect.Parse(c.Effect); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.MaxWidth <= 0 {
		return fmt.Errorf("%w: max_width must be positive", ErrInvalidConfig)
	}
	if c.FrameDelayMs <= 0 || c.FrameDelayMs > int(parameter.MaxFrameDelay/time.Millisecond) {
		return fmt.Errorf("%w: frame_delay_ms %d outside 1..%d", ErrInvalidConfig,
			c.FrameDelayMs, parameter.MaxFrameDelay.Milliseconds())
	}
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: color_mode %q", ErrInvalidConfig, c.ColorMode)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size must be positive", ErrInvalidConfig)
	}
	return nil
}

// FrameDelay returns the tick delay as a duration
func (c Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}

// EffectKind resolves the configured effect, falling back to rotation
func (c Config) EffectKind() effect.Kind {
	k, err := effect.Parse(c.Effect)
	if err != nil {
		return effect.Rotation
	}
	return k
}
