package modes

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/text-animator/effect"
	"github.com/lixenwraith/text-animator/engine"
	"github.com/lixenwraith/text-animator/parameter"
	"github.com/lixenwraith/text-animator/render"
)

// Mode is the input mode
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeTextEntry
)

func (m Mode) String() string {
	if m == ModeTextEntry {
		return "text-entry"
	}
	return "normal"
}

// Submitter queues commands for the animation loop
type Submitter interface {
	Submit(cmd engine.Command) bool
}

// View is the part of a frontend the input handler drives directly
type View interface {
	SetPrompt(p render.Prompt)
	SetMuted(muted bool)
}

// SoundToggle mutes and unmutes cues
type SoundToggle interface {
	SetMuted(muted bool)
	Muted() bool
}

// InputHandler processes user input events
// It is used from a single goroutine, the frontend's event loop
type InputHandler struct {
	loop  Submitter
	view  View
	sound SoundToggle
	log   *zap.Logger

	mode      Mode
	entry     *TextEntry
	cursor    bool
	autoStart bool
}

// NewInputHandler creates a new input handler in normal mode
func NewInputHandler(loop Submitter, view View, log *zap.Logger) *InputHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InputHandler{
		loop:  loop,
		view:  view,
		log:   log,
		entry: NewTextEntry(parameter.MaxTextLength),
	}
}

// SetSound attaches the cue player toggled by Ctrl+S
func (h *InputHandler) SetSound(s SoundToggle) {
	h.sound = s
}

// Mode returns the current input mode
func (h *InputHandler) Mode() Mode {
	return h.mode
}

// BeginTextEntry opens the prompt, autoStart starts the animation once the text is committed
func (h *InputHandler) BeginTextEntry(autoStart bool) {
	h.mode = ModeTextEntry
	h.autoStart = autoStart
	h.entry.Reset()
	h.cursor = true
	h.showPrompt()
}

// BlinkCursor toggles the prompt cursor, a no-op outside text entry
func (h *InputHandler) BlinkCursor() {
	if h.mode != ModeTextEntry {
		return
	}
	h.cursor = !h.cursor
	h.showPrompt()
}

// HandleEvent processes a tcell event and returns false if the program should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventKey); ok {
		return h.HandleKey(FromTcell(ev))
	}
	return true
}

// HandleKey processes one keypress and returns false if the program should exit
func (h *InputHandler) HandleKey(k Key) bool {
	switch k.Code {
	case KeyCtrlC:
		return false
	case KeyCtrlS:
		h.toggleSound()
		return true
	}

	if h.mode == ModeTextEntry {
		h.handleTextEntry(k)
		return true
	}
	return h.handleNormalMode(k)
}

func (h *InputHandler) handleNormalMode(k Key) bool {
	if k.Code != KeyRune {
		return true
	}

	if px, ok := parameter.FontSizePresets[k.Rune]; ok {
		h.submit(engine.SetFontSizeCommand(px))
		return true
	}
	if kind, ok := effect.FromKey(k.Rune); ok {
		h.submit(engine.SelectEffectCommand(kind))
		return true
	}

	switch k.Rune {
	case ' ':
		h.submit(engine.TriggerCommand(engine.TriggerStart))
	case 'm', 'M':
		h.submit(engine.ToggleCommand())
	case 'n', 'N':
		// Blank the canvas while the prompt is open
		h.submit(engine.TriggerCommand(engine.TriggerStop))
		h.BeginTextEntry(false)
	case 'q', 'Q':
		return false
	}
	return true
}

func (h *InputHandler) handleTextEntry(k Key) {
	switch k.Code {
	case KeyRune:
		if !h.entry.Insert(k.Rune) {
			return
		}
	case KeyBackspace:
		if !h.entry.Backspace() {
			return
		}
	case KeyEnter:
		h.commit(h.entry.Result())
		return
	case KeyEscape:
		h.commit(parameter.DefaultText)
		return
	default:
		return
	}
	h.cursor = true
	h.showPrompt()
}

// commit replaces the text and leaves text entry
// A new text waits for SPACE unless the entry was opened with autoStart
func (h *InputHandler) commit(text string) {
	h.submit(engine.ReplaceTextCommand(text))
	if h.autoStart {
		h.submit(engine.TriggerCommand(engine.TriggerStart))
	}
	h.log.Debug("text committed", zap.String("text", text), zap.Bool("auto_start", h.autoStart))

	h.mode = ModeNormal
	h.autoStart = false
	h.entry.Reset()
	h.view.SetPrompt(render.Prompt{})
}

func (h *InputHandler) showPrompt() {
	h.view.SetPrompt(render.Prompt{
		Active: true,
		Buffer: h.entry.Text(),
		Cursor: h.cursor,
	})
}

func (h *InputHandler) toggleSound() {
	if h.sound == nil {
		return
	}
	muted := !h.sound.Muted()
	h.sound.SetMuted(muted)
	h.view.SetMuted(muted)
}

func (h *InputHandler) submit(cmd engine.Command) {
	if !h.loop.Submit(cmd) {
		h.log.Warn("input dropped, loop busy", zap.Stringer("mode", h.mode))
	}
}
