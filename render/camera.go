package render

import (
	"terraglow/constant"
)

// Camera is a damped orbit around the globe origin. Panning is not modeled;
// zoom is a clamped distance along the view axis
type Camera struct {
	Distance float64
	Yaw      float64
	Pitch    float64

	yawVel   float64
	pitchVel float64
}

// NewCamera returns a camera at the mount distance
func NewCamera() *Camera {
	return &Camera{Distance: constant.CameraDefaultDistance}
}

// Nudge adds orbital velocity; motion decays under damping
func (c *Camera) Nudge(dYaw, dPitch float64) {
	c.yawVel += dYaw
	c.pitchVel += dPitch
}

// Zoom moves the camera along the view axis, clamped to [3,8]
func (c *Camera) Zoom(delta float64) {
	c.Distance += delta
	if c.Distance < constant.CameraMinDistance {
		c.Distance = constant.CameraMinDistance
	}
	if c.Distance > constant.CameraMaxDistance {
		c.Distance = constant.CameraMaxDistance
	}
}

// Update applies one frame of damped orbital motion
func (c *Camera) Update() {
	c.Yaw += c.yawVel
	c.Pitch += c.pitchVel

	// Keep the pole from flipping over the top
	const pitchLimit = 1.2
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
		c.pitchVel = 0
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
		c.pitchVel = 0
	}

	c.yawVel *= constant.CameraDamping
	c.pitchVel *= constant.CameraDamping
}
