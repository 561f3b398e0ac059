package render

// RGB stores explicit 8-bit color channels, decoupled from any backend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8, truncating in range
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// HSVToRGB255 converts h, s, v in [0,1] to 8-bit channels
// Channels are truncated, not rounded, so frames stay pixel-identical across renderers
func HSVToRGB255(h, s, v float64) RGB {
	r, g, b := hsvToRGB(h, s, v)
	return RGB{
		R: clamp(r * 255.0),
		G: clamp(g * 255.0),
		B: clamp(b * 255.0),
	}
}

// hsvToRGB is the six-sector conversion, s == 0 yields grey
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	if s == 0.0 {
		return v, v, v
	}
	i := int(h * 6.0)
	f := h*6.0 - float64(i)
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))

	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// Shade multiplies all channels by factor, clamping into [0,255] instead of wrapping
func Shade(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}
