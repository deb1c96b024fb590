package page

import (
	"math"
	"math/rand"

	"terraglow/constant"
	"terraglow/geo"
	"terraglow/render"
	"terraglow/vmath"
)

// Fallback is the static approximation of the globe composition: scattered
// speckle dots, fixed curved connector paths, and percentage-positioned city
// markers. Built once when the fallback is entered, never animated
type Fallback struct {
	dots    []fallbackDot
	arcs    [][]vmath.Vec3 // z unused, screen-fraction space
	markers []vmath.Vec3
}

type fallbackDot struct {
	fx, fy     float64
	brightness float64
}

// NewFallback scatters the speckle and picks connector pairs with the same
// inclusion probability the live arcs use
func NewFallback(rng *rand.Rand) *Fallback {
	f := &Fallback{}

	f.dots = make([]fallbackDot, constant.FallbackDotCount)
	for i := range f.dots {
		f.dots[i] = fallbackDot{
			fx:         rng.Float64(),
			fy:         rng.Float64(),
			brightness: constant.ParticleBrightnessMin + rng.Float64()*(constant.ParticleBrightnessMax-constant.ParticleBrightnessMin),
		}
	}

	f.markers = make([]vmath.Vec3, len(geo.Cities))
	for i, c := range geo.Cities {
		f.markers[i] = markerFraction(c)
	}

	for i := 0; i < len(f.markers); i++ {
		for j := i + 1; j < len(f.markers); j++ {
			if rng.Float64() >= constant.ArcKeepProbability {
				continue
			}
			f.arcs = append(f.arcs, fallbackArc(f.markers[i], f.markers[j]))
		}
	}
	return f
}

// markerFraction maps lat/lon onto the unit viewport, equirectangular
func markerFraction(c geo.Coordinate) vmath.Vec3 {
	return vmath.Vec3{
		X: (c.Lon + 180.0) / 360.0,
		Y: (90.0 - c.Lat) / 180.0,
	}
}

// fallbackArc bows the connector upward in screen space, higher for longer
// spans, mirroring the live control-point lift
func fallbackArc(a, b vmath.Vec3) []vmath.Vec3 {
	mid := vmath.V3Midpoint(a, b)
	span := vmath.V3Dist(a, b)
	control := vmath.Vec3{X: mid.X, Y: mid.Y - constant.ArcLiftFactor*span*0.6}
	return vmath.SampleQuadratic(a, control, b, constant.ArcSegments)
}

var (
	fallbackDotColor = render.RGB{255, 255, 255}
	fallbackArcColor = render.RGB{90, 160, 255}
)

// Draw paints the composition into the viewport
func (f *Fallback) Draw(buf *render.Buffer, vp render.Rect) {
	toCell := func(fx, fy float64) (int, int) {
		// Inset so markers never land on the viewport border
		x := vp.X + 2 + int(fx*float64(vp.W-5))
		y := vp.Y + 1 + int(fy*float64(vp.H-3))
		return x, y
	}

	for _, d := range f.dots {
		x, y := toCell(d.fx, d.fy)
		c := render.Scale(fallbackDotColor, d.brightness*0.45)
		buf.SetFgOnly(x, y, '·', c)
	}

	for _, arc := range f.arcs {
		for _, p := range arc {
			x, y := toCell(p.X, math.Max(0, p.Y))
			buf.Set(x, y, 0, render.RGBBlack, render.Scale(fallbackArcColor, 0.5), render.BlendAdd, 0.6)
		}
	}

	for _, m := range f.markers {
		x, y := toCell(m.X, m.Y)
		buf.SetFgOnly(x, y, '●', render.RGB{255, 200, 110})
	}
}
