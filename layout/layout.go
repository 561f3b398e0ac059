// Package layout places the characters of a text on the world canvas.
//
// Widths are estimated from the font size alone: every character advances
// CharWidthRatio*size and every line takes LineHeightRatio*size. No font
// metrics are read, so the result is deterministic for a given input.
package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/text-animator/parameter"
)

// GlyphSlot is the fixed base position of one character, spaces included
type GlyphSlot struct {
	Char rune
	X, Y float64
}

// IsSpace reports whether the slot only reserves spacing
func (s GlyphSlot) IsSpace() bool {
	return s.Char == ' '
}

// Layout is the wrapped and centred result of one layout pass
// It is replaced wholesale on text or size change, never mutated
type Layout struct {
	Slots []GlyphSlot
	Lines []string

	FontSize   int
	MaxWidth   float64
	CharWidth  float64
	LineHeight float64
}

// Len returns the number of slots
func (l *Layout) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Slots)
}

// Empty reports whether the layout has no slots
func (l *Layout) Empty() bool {
	return l.Len() == 0
}

// LineWidth returns the estimated width of a line
func (l *Layout) LineWidth(line string) float64 {
	return float64(utf8.RuneCountInString(line)) * l.CharWidth
}

// Compute wraps text into lines no wider than maxWidth and centres the block on the origin
// A single word wider than maxWidth is placed alone on its own line and never split
func Compute(text string, fontSize int, maxWidth float64) *Layout {
	charW := float64(fontSize) * parameter.CharWidthRatio
	lineH := float64(fontSize) * parameter.LineHeightRatio

	l := &Layout{
		FontSize:   fontSize,
		MaxWidth:   maxWidth,
		CharWidth:  charW,
		LineHeight: lineH,
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return l
	}

	l.Lines = wrap(words, charW, maxWidth)

	total := 0
	for _, line := range l.Lines {
		total += utf8.RuneCountInString(line)
	}
	l.Slots = make([]GlyphSlot, 0, total)

	totalHeight := float64(len(l.Lines)) * lineH
	startY := totalHeight/2 - lineH/2

	for lineIdx, line := range l.Lines {
		y := startY - float64(lineIdx)*lineH
		lineWidth := l.LineWidth(line)
		startX := -lineWidth/2 + charW/2

		charIdx := 0
		for _, ch := range line {
			l.Slots = append(l.Slots, GlyphSlot{
				Char: ch,
				X:    startX + float64(charIdx)*charW,
				Y:    y,
			})
			charIdx++
		}
	}

	return l
}

// wrap greedily packs words into lines joined by single spaces
func wrap(words []string, charW, maxWidth float64) []string {
	lines := make([]string, 0, 4)
	var current strings.Builder
	currentWidth := 0.0

	for _, word := range words {
		wordWidth := float64(utf8.RuneCountInString(word)) * charW

		testWidth := currentWidth + wordWidth
		if current.Len() > 0 {
			testWidth += charW
		}

		if testWidth <= maxWidth || current.Len() == 0 {
			if current.Len() > 0 {
				current.WriteByte(' ')
				currentWidth += charW
			}
			current.WriteString(word)
			currentWidth += wordWidth
			continue
		}

		lines = append(lines, current.String())
		current.Reset()
		current.WriteString(word)
		currentWidth = wordWidth
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
