package render

// DrawCommand places one glyph on the world canvas
// Coordinates are world pixels, origin at the canvas centre, y pointing up
type DrawCommand struct {
	Char     rune
	X, Y     float64
	Color    RGB
	FontSize int

	// Layer is the extrusion depth, 0 is the front copy
	Layer int
}
