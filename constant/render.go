package constant

import "time"

// Frame loop
const (
	// DefaultFPS is the target frame rate when config does not override it
	DefaultFPS = 30

	// InputQueueSize is the buffered capacity of the input event channel
	InputQueueSize = 64
)

// Camera
const (
	// Zoom distance is clamped to [CameraMinDistance, CameraMaxDistance]
	CameraMinDistance = 3.0
	CameraMaxDistance = 8.0

	// CameraDefaultDistance is the mount distance
	CameraDefaultDistance = 5.0

	// CameraFocalLength drives the perspective divide
	CameraFocalLength = 4.0

	// CameraDamping is the per-frame orbital velocity retention factor
	CameraDamping = 0.92

	// CameraNudge is the velocity added per arrow keypress (rad/frame)
	CameraNudge = 0.004

	// CameraZoomStep is the distance change per zoom keypress
	CameraZoomStep = 0.25

	// CellAspect compensates terminal cells being ~twice as tall as wide
	CellAspect = 2.0
)

// Capability detection
const (
	// FallbackDeadline is the hard ceiling for the 3D scene to become ready;
	// when it fires the static fallback is forced
	FallbackDeadline = 5000 * time.Millisecond
)

// FallbackDotCount is the speckle density of the static composition
const FallbackDotCount = 220
