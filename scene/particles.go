package scene

import (
	"math"
	"math/rand"

	"terraglow/constant"
	"terraglow/vmath"
)

// Particle is one speckle of the stylized continents layer
type Particle struct {
	Pos        vmath.Vec3
	Brightness float64 // grayscale, applied identically to all channels
	Size       float64
}

// ParticleField is a fixed-count point cloud over a spherical shell
// Generated once per scene build; only the shared rotation angle mutates afterward
type ParticleField struct {
	Points []Particle
}

// GenerateParticleField samples count points uniformly over the shell
// [innerRadius, innerRadius+jitter]. phi = acos(2u-1) keeps the distribution
// uniform over the surface; naive uniform angles would cluster at the poles
func GenerateParticleField(rng *rand.Rand, count int, innerRadius, jitter float64) *ParticleField {
	points := make([]Particle, count)
	for i := range points {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		radius := innerRadius + rng.Float64()*jitter

		sinPhi := math.Sin(phi)
		points[i] = Particle{
			Pos: vmath.Vec3{
				X: radius * sinPhi * math.Cos(theta),
				Y: radius * math.Cos(phi),
				Z: radius * sinPhi * math.Sin(theta),
			},
			Brightness: constant.ParticleBrightnessMin + rng.Float64()*(constant.ParticleBrightnessMax-constant.ParticleBrightnessMin),
			Size:       constant.ParticleSizeMin + rng.Float64()*(constant.ParticleSizeMax-constant.ParticleSizeMin),
		}
	}
	return &ParticleField{Points: points}
}
