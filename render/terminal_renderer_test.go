package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestRenderer(t *testing.T, w, h int) (*TerminalRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return NewTerminalRenderer(screen, 8, 16), screen
}

func rowText(screen tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(mainc)
	}
	return sb.String()
}

var testHUD = HUD{
	Text:        "HELLO WORLD",
	FontSize:    64,
	Effect:      "3D Rotation",
	EffectCount: 5,
	State:       "running",
	Hint:        "M to pause",
}

func TestTerminalRendererDrawsGlyph(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)

	r.Draw([]DrawCommand{{Char: 'H', Color: RGB{242, 36, 36}, FontSize: 64}}, testHUD)

	// Canvas rows 1..22, centre at 40,12
	mainc, _, style, _ := screen.GetContent(40, 12)
	if mainc != 'H' {
		t.Fatalf("Expected 'H' at canvas centre, got %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(242, 36, 36) {
		t.Errorf("Unexpected foreground %v", fg)
	}
	if bg != RgbBackground.TCell() {
		t.Errorf("Unexpected background %v", bg)
	}
}

func TestTerminalRendererLaterCommandsWin(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)

	r.Draw([]DrawCommand{
		{Char: 'B', Color: RGB{10, 10, 10}, FontSize: 64, Layer: 3},
		{Char: 'F', Color: RGB{200, 10, 10}, FontSize: 64},
	}, testHUD)

	mainc, _, _, _ := screen.GetContent(40, 12)
	if mainc != 'F' {
		t.Errorf("Front copy should cover depth layer, got %q", mainc)
	}
}

func TestTerminalRendererPulseAttributes(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)

	r.Draw([]DrawCommand{
		{Char: 'L', X: -16, FontSize: 83},
		{Char: 'N', X: 0, FontSize: 64},
		{Char: 'S', X: 16, FontSize: 45},
	}, testHUD)

	tests := []struct {
		col  int
		bold bool
		dim  bool
	}{
		{38, true, false},
		{40, false, false},
		{42, false, true},
	}
	for _, tt := range tests {
		_, _, style, _ := screen.GetContent(tt.col, 12)
		_, _, attrs := style.Decompose()
		if (attrs&tcell.AttrBold != 0) != tt.bold || (attrs&tcell.AttrDim != 0) != tt.dim {
			t.Errorf("Column %d attrs %v, want bold=%v dim=%v", tt.col, attrs, tt.bold, tt.dim)
		}
	}
}

func TestTerminalRendererClipsOffCanvas(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)

	r.Draw([]DrawCommand{
		{Char: 'X', X: 10000, FontSize: 64},
		{Char: 'Y', Y: 10000, FontSize: 64},
	}, testHUD)

	for y := 1; y < 23; y++ {
		if strings.ContainsAny(rowText(screen, y, 80), "XY") {
			t.Fatalf("Off-canvas glyph drawn on row %d", y)
		}
	}
}

func TestTerminalRendererStatusBar(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)

	hud := testHUD
	hud.Text = "A rather long line of text"
	r.Draw(nil, hud)

	status := rowText(screen, 23, 80)
	for _, want := range []string{"ANIMATING", "3D Rotation", "A rather long l...", "64px"} {
		if !strings.Contains(status, want) {
			t.Errorf("Status bar missing %q: %q", want, status)
		}
	}
	if help := rowText(screen, 0, 80); !strings.Contains(help, "SPACE start") {
		t.Errorf("Help row missing key hints: %q", help)
	}

	hud.State = "paused"
	r.Draw(nil, hud)
	if status := rowText(screen, 23, 80); !strings.Contains(status, "PAUSED") {
		t.Errorf("Status bar should show PAUSED: %q", status)
	}

	r.SetMuted(true)
	if status := rowText(screen, 23, 80); !strings.HasPrefix(status, " MUTE ") {
		t.Errorf("Status bar should lead with mute badge: %q", status)
	}
}

func TestTerminalRendererCounters(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)

	hud := testHUD
	hud.Frame = 120
	r.Draw(nil, hud)
	status := rowText(screen, 23, 80)
	if !strings.Contains(status, "frame 120") {
		t.Errorf("Status bar missing frame index: %q", status)
	}
	if strings.Contains(status, "fps") {
		t.Errorf("Unknown rate should not be shown: %q", status)
	}

	hud.Rate = 25
	r.Draw(nil, hud)
	if status := rowText(screen, 23, 80); !strings.Contains(status, "25.0 fps") {
		t.Errorf("Status bar missing tick rate: %q", status)
	}
}

func TestTerminalRendererPrompt(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	r.Draw(nil, testHUD)

	r.SetPrompt(Prompt{Active: true, Buffer: "Gopher", Cursor: true})

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(screen, y, 80), "Gopher_") {
			found = true
		}
	}
	if !found {
		t.Error("Prompt buffer with cursor not drawn")
	}

	r.SetPrompt(Prompt{})
	for y := 0; y < 24; y++ {
		if strings.Contains(rowText(screen, y, 80), "Gopher") {
			t.Fatal("Prompt should be hidden")
		}
	}
}

func TestTerminalRendererResize(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)

	screen.SetSize(40, 10)
	r.Resize()

	x, y, cols, rows := r.Projector().Bounds()
	if x != 0 || y != 1 || cols != 40 || rows != 8 {
		t.Errorf("Canvas after resize = (%d,%d,%d,%d), want (0,1,40,8)", x, y, cols, rows)
	}
}
