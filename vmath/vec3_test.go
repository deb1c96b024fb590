package vmath

import (
	"math"
	"testing"
)

func TestV3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
	}{
		{"Unit X", Vec3{1, 0, 0}},
		{"Diagonal", Vec3{1, 1, 1}},
		{"Large", Vec3{300, -400, 120}},
		{"Small", Vec3{0.001, 0.002, -0.003}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := V3Normalize(tt.in)
			mag := V3Mag(n)
			if math.Abs(mag-1.0) > 1e-12 {
				t.Errorf("Expected unit magnitude, got %v", mag)
			}
		})
	}
}

func TestV3NormalizeZero(t *testing.T) {
	n := V3Normalize(Vec3{})
	if n != (Vec3{}) {
		t.Errorf("Expected zero vector unchanged, got %+v", n)
	}
}

func TestRotateYPreservesMagnitude(t *testing.T) {
	v := Vec3{1.2, -0.4, 2.1}
	for _, angle := range []float64{0, 0.5, math.Pi, 4.7} {
		r := RotateY(v, angle)
		if math.Abs(V3Mag(r)-V3Mag(v)) > 1e-12 {
			t.Errorf("Rotation by %v changed magnitude: %v vs %v", angle, V3Mag(r), V3Mag(v))
		}
		if r.Y != v.Y {
			t.Errorf("RotateY moved the Y component: %v vs %v", r.Y, v.Y)
		}
	}
}

func TestV3Dist(t *testing.T) {
	d := V3Dist(Vec3{1, 2, 3}, Vec3{1, 2, 8})
	if math.Abs(d-5.0) > 1e-12 {
		t.Errorf("Expected distance 5, got %v", d)
	}
}
