package scene

import "terraglow/constant"

// Advance is the per-frame animation tick. It rotates each layer by its
// fixed increment about the vertical axis and feeds the elapsed clock into
// the atmosphere uniform. Arcs turn at half the particle rate for a subtle
// parallax; markers stay locked to the particles so city dots track the
// surface speckle. No allocation, safe at any refresh rate
func (s *Scene) Advance(elapsed float64) {
	s.ParticleAngle += constant.ParticleSpin
	s.ArcAngle += constant.ArcSpin
	s.MarkerAngle += constant.MarkerSpin
	s.Atmos.SetTime(elapsed)
}
