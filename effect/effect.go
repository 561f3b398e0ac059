// Package effect turns a layout and a frame index into draw commands.
//
// Every effect is a pure function of its inputs. Hue and phase derive from the
// frame index and the slot index i; whitespace slots keep their index but emit
// nothing. Saturation and value are fixed, only hue animates.
package effect

import (
	"math"

	"github.com/lixenwraith/text-animator/layout"
	"github.com/lixenwraith/text-animator/parameter"
	"github.com/lixenwraith/text-animator/render"
)

// Func appends the commands of one frame to dst and returns the extended slice
type Func func(dst []render.DrawCommand, l *layout.Layout, frame int) []render.DrawCommand

// table is the fixed dispatch, indexed by Kind
var table = [kindCount]Func{
	Rotation: RenderRotation,
	Wave:     RenderWave,
	Spiral:   RenderSpiral,
	Bounce:   RenderBounce,
	Pulse:    RenderPulse,
}

// Render returns a fresh command slice for the frame
func Render(k Kind, l *layout.Layout, frame int) []render.DrawCommand {
	return RenderInto(nil, k, l, frame)
}

// RenderInto reuses dst's backing array, unknown kinds fall back to rotation
func RenderInto(dst []render.DrawCommand, k Kind, l *layout.Layout, frame int) []render.DrawCommand {
	dst = dst[:0]
	if l.Empty() {
		return dst
	}
	if !k.Valid() {
		k = Rotation
	}
	return table[k](dst, l, frame)
}

// CommandCount returns how many commands a frame of kind k produces for l
func CommandCount(k Kind, l *layout.Layout) int {
	n := 0
	for _, s := range l.Slots {
		if !s.IsSpace() {
			n++
		}
	}
	if k == Rotation {
		n *= parameter.DepthLayers + 1
	}
	return n
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// slotCount guards hue division on empty text
func slotCount(l *layout.Layout) float64 {
	return float64(max(1, l.Len()))
}

// cyclicHue maps an integer degree offset to [0,1)
func cyclicHue(deg int) float64 {
	return float64(mod(deg, 360)) / 360.0
}

// mod is the non-negative remainder
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// unitHue wraps a fractional hue into [0,1)
func unitHue(h float64) float64 {
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	return h
}

func color(hue float64) render.RGB {
	return render.HSVToRGB255(hue, parameter.Saturation, parameter.Value)
}

func baseline(size int) float64 {
	return float64(size) * parameter.BaselineRatio
}

// rotationHue is the slot hue shifted by the frame's position in the cycle
func rotationHue(i int, count float64, frame int) float64 {
	return unitHue(float64(i)/count + float64(mod(frame, 360))/360.0)
}

// RenderRotation extrudes each glyph into depth layers orbiting its slot
// Layers are emitted back to front so the front copy overwrites the rest
func RenderRotation(dst []render.DrawCommand, l *layout.Layout, frame int) []render.DrawCommand {
	angle := radians(float64(frame))
	count := slotCount(l)
	yShift := baseline(l.FontSize)

	for i, s := range l.Slots {
		if s.IsSpace() {
			continue
		}
		base := color(rotationHue(i, count, frame))
		phase := float64(i) * parameter.DepthPhaseStep
		cos, sin := math.Cos(angle+phase), math.Sin(angle+phase)

		for depth := parameter.DepthLayers; depth >= 0; depth-- {
			d := float64(depth)
			shade := 1.0 - (d/float64(parameter.DepthLayers+3))*parameter.DepthShadeMax
			dst = append(dst, render.DrawCommand{
				Char:     s.Char,
				X:        s.X + d*cos*parameter.DepthScale,
				Y:        s.Y + d*sin*parameter.DepthScale*parameter.DepthSquash - yShift,
				Color:    render.Shade(base, shade),
				FontSize: l.FontSize,
				Layer:    depth,
			})
		}
	}
	return dst
}

// RenderWave moves glyphs along a travelling sine wave
func RenderWave(dst []render.DrawCommand, l *layout.Layout, frame int) []render.DrawCommand {
	yShift := baseline(l.FontSize)

	for i, s := range l.Slots {
		if s.IsSpace() {
			continue
		}
		hue := cyclicHue(frame + i*parameter.WaveHueStep)
		dy := math.Sin(radians(float64(frame*parameter.WaveSpeed+i*parameter.WavePhaseStep))) * parameter.WaveAmplitude

		dst = append(dst, render.DrawCommand{
			Char:     s.Char,
			X:        s.X,
			Y:        s.Y + dy - yShift,
			Color:    color(hue),
			FontSize: l.FontSize,
		})
	}
	return dst
}

// RenderSpiral circles each glyph around its slot with a breathing radius
func RenderSpiral(dst []render.DrawCommand, l *layout.Layout, frame int) []render.DrawCommand {
	yShift := baseline(l.FontSize)

	for i, s := range l.Slots {
		if s.IsSpace() {
			continue
		}
		hue := cyclicHue(frame + i*parameter.SpiralHueStep)
		angle := radians(float64(frame*parameter.SpiralSpeed + i*parameter.SpiralAngleStep))
		radius := parameter.SpiralRadius +
			math.Sin(radians(float64(frame+i*parameter.SpiralRadiusStep)))*parameter.SpiralRadiusSwing

		dst = append(dst, render.DrawCommand{
			Char:     s.Char,
			X:        s.X + math.Cos(angle)*radius,
			Y:        s.Y + math.Sin(angle)*radius - yShift,
			Color:    color(hue),
			FontSize: l.FontSize,
		})
	}
	return dst
}

// bounceOffset is never negative, glyphs only leave their slot upward
func bounceOffset(i, frame int) float64 {
	phase := mod(frame*parameter.BounceSpeed+i*parameter.BouncePhaseStep, 360)
	return math.Abs(math.Sin(radians(float64(phase)))) * parameter.BounceHeight
}

// RenderBounce hops glyphs with a static rainbow across the text
func RenderBounce(dst []render.DrawCommand, l *layout.Layout, frame int) []render.DrawCommand {
	count := slotCount(l)
	yShift := baseline(l.FontSize)

	for i, s := range l.Slots {
		if s.IsSpace() {
			continue
		}
		hue := unitHue(float64(i) / count)

		dst = append(dst, render.DrawCommand{
			Char:     s.Char,
			X:        s.X,
			Y:        s.Y + bounceOffset(i, frame) - yShift,
			Color:    color(hue),
			FontSize: l.FontSize,
		})
	}
	return dst
}

// pulseSize scales the base size by 1 ± PulseAmount, rounding half to even
func pulseSize(base, i, frame int) int {
	pulse := 1.0 + math.Sin(radians(float64(frame*parameter.PulseSpeed+i*parameter.PulsePhaseStep)))*parameter.PulseAmount
	return int(math.RoundToEven(float64(base) * pulse))
}

// RenderPulse cycles hue quickly and animates the glyph size itself
func RenderPulse(dst []render.DrawCommand, l *layout.Layout, frame int) []render.DrawCommand {
	for i, s := range l.Slots {
		if s.IsSpace() {
			continue
		}
		hue := cyclicHue(frame*parameter.PulseHueSpeed + i*parameter.PulseHueStep)
		size := pulseSize(l.FontSize, i, frame)

		dst = append(dst, render.DrawCommand{
			Char:     s.Char,
			X:        s.X,
			Y:        s.Y - baseline(size),
			Color:    color(hue),
			FontSize: size,
		})
	}
	return dst
}
