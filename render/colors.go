package render

import "github.com/gdamore/tcell/v2"

// Palette for the terminal frontend
var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbHelpText   = RGB{150, 150, 150} // Gray key help
	RgbStatusText = RGB{0, 0, 0}       // Badge text
	RgbInfoText   = RGB{220, 220, 220} // Status details
	RgbPromptText = RGB{255, 255, 255}
	RgbPromptHint = RGB{255, 200, 0} // Yellow, as the entry screen hint
	RgbPromptBox  = RGB{40, 42, 58}
	RgbCursor     = RGB{255, 165, 0}

	RgbAudioMuted   = RGB{220, 60, 60}
	RgbAudioUnmuted = RGB{60, 200, 90}
)

// TCell converts to a tcell colour, tcell downsamples when truecolor is disabled
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
