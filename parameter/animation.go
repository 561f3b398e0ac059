package parameter

import "time"

// Frame Timing
const (
	// FrameCycle is the number of frame indices in one animation loop
	FrameCycle = 360

	// FrameStep is the frame index advance per tick, a full cycle every 90 ticks
	FrameStep = 4

	// FrameDelay is the fixed delay between scheduled ticks
	FrameDelay = 40 * time.Millisecond

	// MaxFrameDelay bounds configured delays, a window frontend needs at least one update per second
	MaxFrameDelay = time.Second

	// CommandQueueSize is the capacity of the loop mailbox
	CommandQueueSize = 64
)

// Color Model
const (
	// Saturation and Value are fixed for all effects, only hue animates
	Saturation = 0.85
	Value      = 0.95
)

// Layout Metrics
// No font metrics are consulted, advance and line height are estimated from the font size
const (
	CharWidthRatio  = 0.6
	LineHeightRatio = 1.2

	// BaselineRatio shifts glyphs down so the drawn text sits centred on its slot
	BaselineRatio = 0.35

	// MaxTextWidth is the wrap width of the centre area between the side panels
	MaxTextWidth = 550.0
)

// Font Size
const (
	DefaultFontSize = 64
	MaxFontSize     = 512
)

// FontSizePresets maps preset keys to font sizes in pixels
var FontSizePresets = map[rune]int{
	'1': 32,
	'2': 48,
	'3': 64,
	'4': 80,
	'5': 96,
}

// Text
const (
	// DefaultText substitutes empty input
	DefaultText = "Your Name Here"

	// MaxTextLength limits text entry in runes
	MaxTextLength = 50

	// StatusTextLength truncates the text shown in the status panel
	StatusTextLength = 15
)

// Rotation Effect
const (
	// DepthLayers is the number of extrusion copies drawn behind the front glyph
	DepthLayers = 10

	DepthScale     = 0.8
	DepthSquash    = 0.45
	DepthPhaseStep = 0.18
	DepthShadeMax  = 0.7
)

// Wave Effect
const (
	WaveSpeed     = 3
	WavePhaseStep = 30
	WaveAmplitude = 30.0
	WaveHueStep   = 15
)

// Spiral Effect
const (
	SpiralSpeed       = 2
	SpiralAngleStep   = 25
	SpiralRadius      = 20.0
	SpiralRadiusSwing = 15.0
	SpiralRadiusStep  = 30
	SpiralHueStep     = 20
)

// Bounce Effect
const (
	BounceSpeed     = 4
	BouncePhaseStep = 20
	BounceHeight    = 50.0
)

// Pulse Effect
const (
	PulseHueSpeed  = 2
	PulseHueStep   = 15
	PulseSpeed     = 3
	PulsePhaseStep = 25
	PulseAmount    = 0.3
)

// World Canvas
const (
	// WorldWidth and WorldHeight are the canvas dimensions in pixels, origin at centre, y up
	WorldWidth  = 1200
	WorldHeight = 600

	// DefaultCellWidth and DefaultCellHeight project world pixels onto terminal cells
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)
