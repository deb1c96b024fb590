package vmath

// QuadraticPoint evaluates a quadratic bezier through (start, control, end) at t
// B(t) = (1-t)²·start + 2t(1-t)·control + t²·end
func QuadraticPoint(start, control, end Vec3, t float64) Vec3 {
	u := 1.0 - t
	a := u * u
	b := 2.0 * u * t
	c := t * t
	return Vec3{
		X: a*start.X + b*control.X + c*end.X,
		Y: a*start.Y + b*control.Y + c*end.Y,
		Z: a*start.Z + b*control.Z + c*end.Z,
	}
}

// SampleQuadratic tessellates the curve into segments+1 evenly spaced samples
// First sample is exactly start, last is exactly end
func SampleQuadratic(start, control, end Vec3, segments int) []Vec3 {
	if segments < 1 {
		return []Vec3{start, end}
	}
	points := make([]Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		points[i] = QuadraticPoint(start, control, end, float64(i)/float64(segments))
	}
	points[0] = start
	points[segments] = end
	return points
}
