package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit channel color as written to terminal cells
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8 channel
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// FromFloat builds an RGB from normalized [0,1] channels
func FromFloat(r, g, b float64) RGB {
	return RGB{clamp(r * 255.0), clamp(g * 255.0), clamp(b * 255.0)}
}

// FromColorful converts a go-colorful color, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Lerp interpolates between two colors, t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		clamp(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		clamp(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		clamp(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Gradient blends two colors perceptually (Luv) rather than per-channel,
// used for the headline sweep where naive RGB lerp goes muddy
func Gradient(a, b RGB, t float64) RGB {
	ca := colorful.Color{R: float64(a.R) / 255.0, G: float64(a.G) / 255.0, B: float64(a.B) / 255.0}
	cb := colorful.Color{R: float64(b.R) / 255.0, G: float64(b.G) / 255.0, B: float64(b.B) / 255.0}
	return FromColorful(ca.BlendLuv(cb, t))
}

// Scale multiplies all channels by s
func Scale(c RGB, s float64) RGB {
	return RGB{
		clamp(float64(c.R) * s),
		clamp(float64(c.G) * s),
		clamp(float64(c.B) * s),
	}
}

// Grayscale converts to luma-weighted gray
func Grayscale(c RGB) RGB {
	l := clamp(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
	return RGB{l, l, l}
}

// ToTcell converts to a tcell color value
func (c RGB) ToTcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
