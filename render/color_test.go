package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestHSVToRGB255(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    RGB
	}{
		{"White", 0, 0, 1, RGB{255, 255, 255}},
		{"Black", 0.5, 1, 0, RGB{0, 0, 0}},
		{"Red", 0, 1, 1, RGB{255, 0, 0}},
		{"Green", 1.0 / 3.0, 1, 1, RGB{0, 255, 0}},
		{"Blue", 2.0 / 3.0, 1, 1, RGB{0, 0, 255}},
		{"Grey truncates", 0.7, 0, 0.5, RGB{127, 127, 127}},
		// 0.95*255 = 242.25, 0.95*0.15*255 = 36.3375
		{"Effect red", 0, 0.85, 0.95, RGB{242, 36, 36}},
		{"Hue one wraps to red", 1.0, 1, 1, RGB{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSVToRGB255(tt.h, tt.s, tt.v)
			if got != tt.want {
				t.Errorf("HSVToRGB255(%v,%v,%v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

// TestHSVMatchesColorful cross-checks the six-sector conversion against go-colorful
// Truncation may differ by one where the reference lands a hair under an integer
func TestHSVMatchesColorful(t *testing.T) {
	for step := 0; step < 360; step++ {
		h := float64(step) / 360.0
		for _, sv := range [][2]float64{{0.85, 0.95}, {1, 1}, {0.3, 0.6}} {
			got := HSVToRGB255(h, sv[0], sv[1])
			ref := colorful.Hsv(h*360.0, sv[0], sv[1])

			channels := [3][2]float64{
				{float64(got.R), ref.R * 255},
				{float64(got.G), ref.G * 255},
				{float64(got.B), ref.B * 255},
			}
			for c, pair := range channels {
				if diff := pair[0] - float64(int(pair[1])); diff < -1 || diff > 1 {
					t.Fatalf("h=%v s=%v v=%v channel %d: got %v, colorful %v", h, sv[0], sv[1], c, pair[0], pair[1])
				}
			}
		}
	}
}

func TestShadeClamps(t *testing.T) {
	c := RGB{200, 100, 0}

	tests := []struct {
		name   string
		factor float64
		want   RGB
	}{
		{"Identity", 1.0, RGB{200, 100, 0}},
		{"Half truncates", 0.5, RGB{100, 50, 0}},
		{"Darken", 0.4615, RGB{92, 46, 0}},
		{"Overflow clamps", 2.0, RGB{255, 200, 0}},
		{"Negative clamps", -1.0, RGB{0, 0, 0}},
		{"Zero", 0, RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shade(c, tt.factor); got != tt.want {
				t.Errorf("Shade(%v, %v) = %v, want %v", c, tt.factor, got, tt.want)
			}
		})
	}
}
