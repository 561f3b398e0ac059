package main

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// faceCache holds one face per pixel size, pulsing text asks for many sizes
type faceCache struct {
	mu    sync.Mutex
	font  *sfnt.Font
	faces map[int]font.Face
}

func newFaceCache(ttf []byte) (*faceCache, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &faceCache{font: f, faces: make(map[int]font.Face)}, nil
}

func newGlyphFaces() (*faceCache, error) { return newFaceCache(gobold.TTF) }
func newUIFaces() (*faceCache, error)    { return newFaceCache(goregular.TTF) }

// Face returns the face for size pixels at 72 DPI, sizes below 1 are raised to 1
func (c *faceCache) Face(size int) (font.Face, error) {
	size = max(size, 1)

	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.faces[size]; ok {
		return f, nil
	}

	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %dpx: %w", size, err)
	}
	c.faces[size] = f
	return f, nil
}

// Len returns the number of cached faces
func (c *faceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.faces)
}

// Close releases every face
func (c *faceCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for size, f := range c.faces {
		f.Close()
		delete(c.faces, size)
	}
}

// centeredDot returns the text origin that centres r horizontally on x
func centeredDot(face font.Face, r rune, x int) int {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return x
	}
	return x - adv.Round()/2
}

// stringWidth measures s in whole pixels
func stringWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}
