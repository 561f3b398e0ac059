package render

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	helpText = " 1-5 size  a-e effect  SPACE start  M pause/resume  N new text  ^S sound  Q quit"

	// Relative size beyond which pulsed glyphs switch attributes
	boldRatio = 1.15
	dimRatio  = 0.85

	promptTitle = "Enter text, ENTER when done"
	promptHelp  = "Backspace to delete | ESC for default"
	promptWidth = 56
)

// TerminalRenderer draws frames onto a tcell screen
// Row 0 holds key help, the last row the status bar, the rest is canvas
type TerminalRenderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	proj   *Projector

	width, height int

	cmds   []DrawCommand
	hud    HUD
	prompt Prompt
}

// NewTerminalRenderer creates a renderer projecting world pixels with the given cell size
func NewTerminalRenderer(screen tcell.Screen, cellW, cellH float64) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		proj:   NewProjector(cellW, cellH),
	}
	r.resize()
	return r
}

// resize recomputes the canvas from the screen size
func (r *TerminalRenderer) resize() {
	r.width, r.height = r.screen.Size()
	r.proj.Resize(0, 1, r.width, max(r.height-2, 0))
}

// Resize handles a screen resize and redraws the last frame
func (r *TerminalRenderer) Resize() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resize()
	r.screen.Sync()
	r.redraw()
}

// Draw replaces the current frame, cmds is copied
func (r *TerminalRenderer) Draw(cmds []DrawCommand, hud HUD) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = append(r.cmds[:0], cmds...)
	r.hud = hud
	r.redraw()
}

// SetPrompt shows or hides the text entry overlay
func (r *TerminalRenderer) SetPrompt(p Prompt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompt = p
	r.redraw()
}

// SetMuted updates the audio badge without waiting for a frame
func (r *TerminalRenderer) SetMuted(muted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hud.Muted = muted
	r.redraw()
}

// Projector exposes the world to cell mapping
func (r *TerminalRenderer) Projector() *Projector {
	return r.proj
}

func (r *TerminalRenderer) redraw() {
	bg := tcell.StyleDefault.Background(RgbBackground.TCell())
	r.screen.Fill(' ', bg)

	r.drawGlyphs(bg)
	r.drawText(0, 0, r.width, helpText, bg.Foreground(RgbHelpText.TCell()))
	r.drawStatusBar(bg)
	if r.prompt.Active {
		r.drawPrompt(bg)
	}

	r.screen.Show()
}

// drawGlyphs paints commands in order, later commands cover earlier ones
func (r *TerminalRenderer) drawGlyphs(bg tcell.Style) {
	base := float64(r.hud.FontSize)
	for _, c := range r.cmds {
		col, row, ok := r.proj.Cell(c.X, c.Y)
		if !ok || !r.proj.Fits(c.Char, col) {
			continue
		}

		style := bg.Foreground(c.Color.TCell())
		if base > 0 {
			switch size := float64(c.FontSize); {
			case size >= base*boldRatio:
				style = style.Bold(true)
			case size <= base*dimRatio:
				style = style.Dim(true)
			}
		}
		r.screen.SetContent(col, row, c.Char, nil, style)
	}
}

// drawText writes s from x, clipped to width cells, and returns the next column
func (r *TerminalRenderer) drawText(x, y, width int, s string, style tcell.Style) int {
	if y < 0 || y >= r.height {
		return x
	}
	limit := min(x+width, r.width)
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// badge draws a padded label on a coloured background
func (r *TerminalRenderer) badge(x, y int, label string, fg, bgc RGB, base tcell.Style) int {
	style := base.Foreground(fg.TCell()).Background(bgc.TCell()).Bold(true)
	return r.drawText(x, y, r.width-x, " "+label+" ", style)
}

func (r *TerminalRenderer) drawStatusBar(bg tcell.Style) {
	y := r.height - 1
	if y <= 0 {
		return
	}
	h := r.hud

	accent := accentColor(h.EffectIndex, h.EffectCount)
	for x := 0; x < r.width; x++ {
		t := float64(x) / float64(max(r.width-1, 1))
		r.screen.SetContent(x, y, ' ', nil, bg.Background(barColor(accent, t).TCell()))
	}

	x := 0
	if h.Muted {
		x = r.badge(x, y, "MUTE", RgbStatusText, RgbAudioMuted, bg)
	} else {
		x = r.badge(x, y, "♪", RgbStatusText, RgbAudioUnmuted, bg)
	}
	x = r.badge(x, y, stateLabel(h.State), RgbStatusText, stateColor(h.State), bg)
	x = r.badge(x, y, h.Effect, RgbStatusText, accent, bg)

	info := fmt.Sprintf(" %s │ %dpx │ %s │ %s", StatusText(h.Text), h.FontSize, h.Counters(), h.Hint)
	infoStyle := bg.Foreground(RgbInfoText.TCell()).Background(barColor(accent, 0.5).TCell())
	r.drawText(x, y, r.width-x, fit(info, r.width-x), infoStyle)
}

func (r *TerminalRenderer) drawPrompt(bg tcell.Style) {
	w := min(promptWidth, r.width-2)
	if w <= 4 || r.height < 5 {
		return
	}
	x0 := (r.width - w) / 2
	y0 := r.height/2 - 2

	box := bg.Background(RgbPromptBox.TCell())
	for y := y0; y < y0+5; y++ {
		for x := x0; x < x0+w; x++ {
			r.screen.SetContent(x, y, ' ', nil, box)
		}
	}

	center := func(y int, s string, style tcell.Style) {
		s = fit(s, w-2)
		r.drawText(x0+(w-runewidth.StringWidth(s))/2, y, w, s, style)
	}
	center(y0, promptTitle, box.Foreground(RgbPromptHint.TCell()).Italic(true))

	// Keep the tail visible while typing past the box
	buf := r.prompt.Buffer
	for runewidth.StringWidth(buf) > w-4 {
		_, size := utf8.DecodeRuneInString(buf)
		buf = buf[size:]
	}
	end := r.drawText(x0+2, y0+2, w-3, buf, box.Foreground(RgbPromptText.TCell()).Bold(true))
	if r.prompt.Cursor {
		r.drawText(end, y0+2, 1, "_", box.Foreground(RgbCursor.TCell()).Bold(true))
	}

	center(y0+4, promptHelp, box.Foreground(RgbHelpText.TCell()))
}

func stateLabel(state string) string {
	switch state {
	case "running":
		return "ANIMATING"
	case "paused":
		return "PAUSED"
	default:
		return "STOPPED"
	}
}
