package constant

// Ambient audio
const (
	// AudioSampleRate for the beep speaker
	AudioSampleRate = 44100

	// AudioDroneFreq is the ambient drone base frequency (Hz)
	AudioDroneFreq = 55.0

	// AudioDroneGain keeps the drone well under conversation level
	AudioDroneGain = 0.04
)
