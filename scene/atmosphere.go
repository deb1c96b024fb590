package scene

import (
	"math"

	"terraglow/constant"
)

// Atmosphere holds the single time uniform driving the rim-glow pulse
// The visible output is a pure function of this scalar and view angle
type Atmosphere struct {
	elapsed float64
}

// SetTime writes the current elapsed clock seconds, once per animation tick
func (a *Atmosphere) SetTime(t float64) {
	a.elapsed = t
}

// Time returns the last written elapsed value
func (a *Atmosphere) Time() float64 {
	return a.elapsed
}

// PulseFactor is the slow breathing term: 0.8 + 0.2·sin(t·0.5)
// Period 2π/0.5 ≈ 12.57s
func (a *Atmosphere) PulseFactor() float64 {
	return PulseFactorAt(a.elapsed)
}

// PulseFactorAt evaluates the pulse term for an arbitrary time
func PulseFactorAt(t float64) float64 {
	return 0.8 + 0.2*math.Sin(t*constant.AtmosPulseFreq)
}

// RimIntensity evaluates the glow strength for a fragment whose surface
// normal makes viewDot with the view axis:
//
//	pow(0.7 - dot(n, view), 2) · pulse
//
// The bias term goes negative on the visible face (dot near 1), which the
// square folds back small; the silhouette (dot near 0) dominates. Glow is
// applied additively on the back shell only, so it rims the silhouette
// rather than washing the globe face
func RimIntensity(viewDot, t float64) float64 {
	d := constant.AtmosRimBias - viewDot
	return d * d * PulseFactorAt(t)
}

// RimColor returns the tinted glow channels and alpha for an intensity,
// all normalized [0,1]
func RimColor(intensity float64) (r, g, b, alpha float64) {
	return constant.AtmosTintR * intensity,
		constant.AtmosTintG * intensity,
		constant.AtmosTintB * intensity,
		constant.AtmosAlphaFactor * intensity
}
