package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/text-animator/parameter"
)

// HUD is the status information drawn around the canvas
type HUD struct {
	Text     string
	FontSize int
	Effect   string

	// EffectIndex picks the accent hue
	EffectIndex int
	EffectCount int

	State string
	Hint  string
	Frame int
	Muted bool

	// Rate is the measured ticks per second, zero when unknown
	Rate float64
}

// Prompt is the text entry overlay
type Prompt struct {
	Active bool
	Buffer string
	Cursor bool
}

// StatusText shortens text for the status panel with a trailing ellipsis
func StatusText(text string) string {
	runes := []rune(text)
	if len(runes) <= parameter.StatusTextLength {
		return text
	}
	return string(runes[:parameter.StatusTextLength]) + "..."
}

// Counters formats the frame index and tick rate for the status line
func (h HUD) Counters() string {
	if h.Rate <= 0 {
		return fmt.Sprintf("frame %3d", h.Frame)
	}
	return fmt.Sprintf("frame %3d │ %.1f fps", h.Frame, h.Rate)
}

// fit truncates s to width display cells
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// accentColor is the effect badge colour, evenly spaced hues in a perceptual space
func accentColor(index, count int) RGB {
	if count <= 0 {
		count = 1
	}
	c := colorful.Hcl(float64(index)*360.0/float64(count), 0.55, 0.75).Clamped()
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

// stateColor is the state badge background
func stateColor(state string) RGB {
	var c colorful.Color
	switch state {
	case "running":
		c = colorful.Color{R: 0.35, G: 0.8, B: 0.4}
	case "paused":
		c = colorful.Color{R: 1.0, G: 0.75, B: 0.2}
	default:
		c = colorful.Color{R: 0.55, G: 0.55, B: 0.6}
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

// barColor fades the status bar background from the accent into the canvas background
func barColor(accent RGB, t float64) RGB {
	a := colorful.Color{R: float64(accent.R) / 255, G: float64(accent.G) / 255, B: float64(accent.B) / 255}
	bg := colorful.Color{R: float64(RgbBackground.R) / 255, G: float64(RgbBackground.G) / 255, B: float64(RgbBackground.B) / 255}
	r, g, b := a.BlendLab(bg, 0.7+0.3*t).Clamped().RGB255()
	return RGB{r, g, b}
}
