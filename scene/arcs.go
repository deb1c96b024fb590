package scene

import (
	"math/rand"

	"terraglow/constant"
	"terraglow/geo"
	"terraglow/vmath"
)

// Arc is one curved connector between two city points
// Points is the fixed tessellation used for rendering
type Arc struct {
	Start   vmath.Vec3
	End     vmath.Vec3
	Control vmath.Vec3
	Points  []vmath.Vec3
}

// BuildArcs selects a sparse random subset of city pairs and builds a
// quadratic bezier connector for each. Every unordered pair is kept
// independently with ArcKeepProbability; the set is fixed for the lifetime
// of the mounted scene
func BuildArcs(rng *rand.Rand, coords []geo.Coordinate, radius float64) []Arc {
	var arcs []Arc
	for i := 0; i < len(coords); i++ {
		for j := i + 1; j < len(coords); j++ {
			if rng.Float64() >= constant.ArcKeepProbability {
				continue
			}
			arcs = append(arcs, buildArc(coords[i], coords[j], radius))
		}
	}
	return arcs
}

// buildArc lifts the chord midpoint along its own normal so longer chords
// produce higher arcs: |control| = radius + ArcLiftFactor·|end-start|
func buildArc(a, b geo.Coordinate, radius float64) Arc {
	start := geo.Project(a, radius)
	end := geo.Project(b, radius)

	chord := vmath.V3Dist(start, end)
	control := vmath.V3Scale(
		vmath.V3Normalize(vmath.V3Midpoint(start, end)),
		radius+constant.ArcLiftFactor*chord,
	)

	return Arc{
		Start:   start,
		End:     end,
		Control: control,
		Points:  vmath.SampleQuadratic(start, control, end, constant.ArcSegments),
	}
}
