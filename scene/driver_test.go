package scene

import (
	"math"
	"math/rand"
	"testing"

	"terraglow/constant"
	"terraglow/geo"
)

func TestAdvanceIncrements(t *testing.T) {
	s := Build(rand.New(rand.NewSource(1)))

	const frames = 100
	for i := 0; i < frames; i++ {
		s.Advance(float64(i) / 30.0)
	}

	if math.Abs(s.ParticleAngle-frames*constant.ParticleSpin) > 1e-12 {
		t.Errorf("Expected particle angle %v, got %v", frames*constant.ParticleSpin, s.ParticleAngle)
	}
	if math.Abs(s.ArcAngle-frames*constant.ArcSpin) > 1e-12 {
		t.Errorf("Expected arc angle %v, got %v", frames*constant.ArcSpin, s.ArcAngle)
	}
	if math.Abs(s.MarkerAngle-frames*constant.MarkerSpin) > 1e-12 {
		t.Errorf("Expected marker angle %v, got %v", frames*constant.MarkerSpin, s.MarkerAngle)
	}

	// Arcs drift at half the particle rate, markers stay locked
	if math.Abs(s.ArcAngle*2-s.ParticleAngle) > 1e-12 {
		t.Errorf("Expected arc angle at half particle rate: %v vs %v", s.ArcAngle, s.ParticleAngle)
	}
	if s.MarkerAngle != s.ParticleAngle {
		t.Errorf("Expected markers locked to particles: %v vs %v", s.MarkerAngle, s.ParticleAngle)
	}
}

func TestAdvanceWritesAtmosphereTime(t *testing.T) {
	s := Build(rand.New(rand.NewSource(1)))
	s.Advance(4.25)
	if s.Atmos.Time() != 4.25 {
		t.Errorf("Expected atmosphere time 4.25, got %v", s.Atmos.Time())
	}
}

// Geometry is built once; advancing frames must never resample it
func TestAdvanceDoesNotMutateGeometry(t *testing.T) {
	s := Build(rand.New(rand.NewSource(2)))
	p0 := s.Particles.Points[0]
	var a0 Arc
	if len(s.Arcs) > 0 {
		a0 = s.Arcs[0]
	}

	for i := 0; i < 500; i++ {
		s.Advance(float64(i))
	}

	if s.Particles.Points[0] != p0 {
		t.Error("Advance mutated particle geometry")
	}
	if len(s.Arcs) > 0 {
		if s.Arcs[0].Start != a0.Start || s.Arcs[0].Control != a0.Control {
			t.Error("Advance mutated arc geometry")
		}
	}
}

func TestPlaceMarkers(t *testing.T) {
	markers := PlaceMarkers(geo.Cities, constant.MarkerRadius)
	if len(markers) != len(geo.Cities) {
		t.Fatalf("Expected %d markers, got %d", len(geo.Cities), len(markers))
	}
	for i, m := range markers {
		mag := math.Sqrt(m.X*m.X + m.Y*m.Y + m.Z*m.Z)
		if math.Abs(mag-constant.MarkerRadius) > 1e-9 {
			t.Errorf("Marker %d at radius %v, expected %v", i, mag, constant.MarkerRadius)
		}
	}
}
