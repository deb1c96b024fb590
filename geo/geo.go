// Package geo maps geographic coordinates onto the visualization sphere.
package geo

import (
	"math"

	"terraglow/vmath"
)

// Coordinate is a named latitude/longitude pair in degrees
// Latitude in [-90,90], longitude in [-180,180]
type Coordinate struct {
	Name string
	Lat  float64
	Lon  float64
}

// Cities are the fixed link endpoints shown on the globe
// Treated as configuration, not user input
var Cities = []Coordinate{
	{Name: "New York", Lat: 40.7128, Lon: -74.0060},
	{Name: "London", Lat: 51.5074, Lon: -0.1278},
	{Name: "Tokyo", Lat: 35.6762, Lon: 139.6503},
	{Name: "Sydney", Lat: -33.8688, Lon: 151.2093},
	{Name: "Dubai", Lat: 25.2048, Lon: 55.2708},
	{Name: "Singapore", Lat: 1.3521, Lon: 103.8198},
	{Name: "San Francisco", Lat: 37.7749, Lon: -122.4194},
	{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777},
}

// Project converts a coordinate to a Cartesian point on a sphere of the given
// radius. Layers built at different radii stay radially aligned for the same
// coordinate because the formula is shared
func Project(c Coordinate, radius float64) vmath.Vec3 {
	lat := c.Lat * math.Pi / 180.0
	lon := c.Lon * math.Pi / 180.0
	return vmath.Vec3{
		X: radius * math.Cos(lat) * math.Cos(lon),
		Y: radius * math.Sin(lat),
		Z: radius * math.Cos(lat) * math.Sin(lon),
	}
}
