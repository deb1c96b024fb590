package scene

import (
	"terraglow/geo"
	"terraglow/vmath"
)

// PlaceMarkers projects each city at marker radius, slightly outside the
// particle shell and arc endpoints
func PlaceMarkers(coords []geo.Coordinate, radius float64) []vmath.Vec3 {
	markers := make([]vmath.Vec3, len(coords))
	for i, c := range coords {
		markers[i] = geo.Project(c, radius)
	}
	return markers
}
