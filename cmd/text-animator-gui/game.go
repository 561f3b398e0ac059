package main

import (
	"fmt"
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lixenwraith/text-animator/app"
	"github.com/lixenwraith/text-animator/engine"
	"github.com/lixenwraith/text-animator/modes"
	"github.com/lixenwraith/text-animator/parameter"
	"github.com/lixenwraith/text-animator/render"
)

const (
	uiFontSize     = 16
	uiMargin       = 12
	promptBoxW     = 560
	promptBoxH     = 150
	promptTitle    = "Enter text, ENTER when done"
	promptHelp     = "Backspace to delete | ESC for default"
	helpLine       = "1-5 size   a-e effect   SPACE start   M pause/resume   N new text   Ctrl+S sound   Q quit"
	cursorBlinkDur = 500 * time.Millisecond
)

// game drives the loop from ebiten's update tick, one Step per tick
type game struct {
	session *app.Session
	input   *modes.InputHandler
	keys    keyReader
	log     *zap.Logger

	glyphs *faceCache
	ui     *faceCache

	blinkEvery int
	ticks      int

	rate app.TickRate

	mu     sync.Mutex
	cmds   []render.DrawCommand
	hud    render.HUD
	prompt render.Prompt
}

func newGame(delay time.Duration) (*game, error) {
	glyphs, err := newGlyphFaces()
	if err != nil {
		return nil, err
	}
	ui, err := newUIFaces()
	if err != nil {
		return nil, err
	}
	return &game{
		glyphs:     glyphs,
		ui:         ui,
		blinkEvery: max(int(cursorBlinkDur/delay), 1),
		log:        zap.NewNop(),
	}, nil
}

// attach binds the session once it exists, the session needs the game as its sink
func (g *game) attach(s *app.Session) {
	g.session = s
	g.log = s.Log
	g.input = modes.NewInputHandler(s.Loop, g, s.Log)
	g.input.SetSound(s.Sound)
}

// Present implements engine.Sink
func (g *game) Present(f *engine.Frame) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cmds = append(g.cmds[:0], f.Commands...)
	g.hud = app.HUD(f, g.session.Muted(), g.rate.Observe(f))
}

// SetPrompt implements modes.View
func (g *game) SetPrompt(p render.Prompt) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompt = p
}

// SetMuted implements modes.View
func (g *game) SetMuted(muted bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hud.Muted = muted
}

func (g *game) Update() error {
	for _, k := range g.keys.Read() {
		if !g.input.HandleKey(k) {
			return ebiten.Termination
		}
	}

	g.ticks++
	if g.ticks%g.blinkEvery == 0 {
		g.input.BlinkCursor()
	}

	g.session.Loop.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	screen.Fill(rgba(render.RgbBackground))
	g.drawGlyphs(screen)
	g.drawHUD(screen)
	if g.prompt.Active {
		g.drawPrompt(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return parameter.WorldWidth, parameter.WorldHeight
}

// toScreen maps world pixels, origin centre and y up, to image pixels
func toScreen(x, y float64) (int, int) {
	return parameter.WorldWidth/2 + int(math.Round(x)), parameter.WorldHeight/2 - int(math.Round(y))
}

func (g *game) drawGlyphs(screen *ebiten.Image) {
	for _, c := range g.cmds {
		face, err := g.glyphs.Face(c.FontSize)
		if err != nil {
			g.log.Warn("glyph face", zap.Error(err))
			continue
		}
		x, y := toScreen(c.X, c.Y)
		text.Draw(screen, string(c.Char), face, centeredDot(face, c.Char, x), y, rgba(c.Color))
	}
}

func (g *game) drawHUD(screen *ebiten.Image) {
	face, err := g.ui.Face(uiFontSize)
	if err != nil {
		return
	}
	h := g.hud

	text.Draw(screen, helpLine, face, uiMargin, uiMargin+uiFontSize, rgba(render.RgbHelpText))

	audio := "sound on"
	if h.Muted {
		audio = "muted"
	}
	status := fmt.Sprintf("TEXT: %s   SIZE: %dpx   EFFECT: %s   %s   %s   [%s]",
		render.StatusText(h.Text), h.FontSize, h.Effect, h.Counters(), h.Hint, audio)
	text.Draw(screen, status, face, uiMargin, parameter.WorldHeight-uiMargin, rgba(render.RgbInfoText))
}

func (g *game) drawPrompt(screen *ebiten.Image) {
	face, err := g.ui.Face(uiFontSize)
	if err != nil {
		return
	}
	big, err := g.glyphs.Face(uiFontSize * 2)
	if err != nil {
		return
	}

	x0 := float32(parameter.WorldWidth-promptBoxW) / 2
	y0 := float32(parameter.WorldHeight-promptBoxH) / 2
	vector.DrawFilledRect(screen, x0, y0, promptBoxW, promptBoxH, rgba(render.RgbPromptBox), false)

	cx := parameter.WorldWidth / 2
	top := int(y0)
	text.Draw(screen, promptTitle, face, cx-stringWidth(face, promptTitle)/2, top+30, rgba(render.RgbPromptHint))

	buf := g.prompt.Buffer
	if g.prompt.Cursor {
		buf += "_"
	}
	text.Draw(screen, buf, big, cx-stringWidth(big, buf)/2, top+85, rgba(render.RgbPromptText))

	text.Draw(screen, promptHelp, face, cx-stringWidth(face, promptHelp)/2, top+130, rgba(render.RgbHelpText))
}

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
