package constant

// Particle field
const (
	// ParticleCount is the fixed size of the point cloud forming the globe surface
	ParticleCount = 8000

	// ParticleInnerRadius is the base shell radius for particle sampling
	ParticleInnerRadius = 2.0

	// ParticleRadiusJitter is the uniform radial spread added to the base radius
	ParticleRadiusJitter = 0.1

	// Particle brightness is grayscale, drawn uniformly from [BrightnessMin, BrightnessMax)
	ParticleBrightnessMin = 0.3
	ParticleBrightnessMax = 1.0

	// Per-particle size, drawn uniformly from [SizeMin, SizeMax)
	ParticleSizeMin = 0.01
	ParticleSizeMax = 0.03
)

// Arc layer
const (
	// ArcRadius is the shell radius for arc endpoints
	ArcRadius = 2.1

	// ArcKeepProbability is the chance each unordered city pair gets a connector
	ArcKeepProbability = 0.4

	// ArcSegments is the fixed bezier tessellation density (ArcSegments+1 samples)
	ArcSegments = 30

	// ArcLiftFactor scales chord length into control-point lift above the shell
	ArcLiftFactor = 0.5
)

// MarkerRadius sits outside both the particle shell and the arcs so city dots
// read as sitting on top of the globe
const MarkerRadius = 2.15

// Per-frame rotation increments about the vertical axis (radians)
const (
	ParticleSpin = 0.001
	ArcSpin      = 0.0005 // half the particle rate for parallax
	MarkerSpin   = 0.001  // locked to the particle rate
)

// Atmosphere shading
const (
	// AtmosPulseFreq drives the rim pulse: 0.8 + 0.2*sin(t*AtmosPulseFreq)
	// Full pulse period is 2π/AtmosPulseFreq ≈ 12.57s
	AtmosPulseFreq = 0.5

	// AtmosRimBias offsets the view-angle term: pow(AtmosRimBias - dot(n,view), 2)
	AtmosRimBias = 0.7

	// AtmosAlphaFactor scales intensity into cell alpha
	AtmosAlphaFactor = 0.6

	// Rim tint, normalized channels
	AtmosTintR = 0.6
	AtmosTintG = 0.6
	AtmosTintB = 0.7

	// AtmosShellScale is the glow shell radius relative to the globe silhouette
	AtmosShellScale = 1.18
)
