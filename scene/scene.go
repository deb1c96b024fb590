// Package scene owns the globe's visual layers and their per-frame state:
// the particle shell, the city arc connectors, the marker dots, and the
// atmosphere time uniform. Geometry is built once per mount and never
// resampled; only the per-layer rotation angles and the atmosphere clock
// mutate afterward.
package scene

import (
	"math/rand"

	"terraglow/constant"
	"terraglow/geo"
	"terraglow/vmath"
)

// Scene is one mounted globe instance. Layers rotate at independent fixed
// rates; the rotation state lives here, not on individual points, so a
// single driver advances everything in a known order
type Scene struct {
	Particles *ParticleField
	Arcs      []Arc
	Markers   []vmath.Vec3
	Atmos     Atmosphere

	ParticleAngle float64
	ArcAngle      float64
	MarkerAngle   float64
}

// Build constructs all layers from scratch. Called once per mount, possibly
// off the render loop; the result is owned by exactly one page instance.
// The rand source is injected so tests can pin geometry
func Build(rng *rand.Rand) *Scene {
	return &Scene{
		Particles: GenerateParticleField(rng, constant.ParticleCount,
			constant.ParticleInnerRadius, constant.ParticleRadiusJitter),
		Arcs:    BuildArcs(rng, geo.Cities, constant.ArcRadius),
		Markers: PlaceMarkers(geo.Cities, constant.MarkerRadius),
	}
}
