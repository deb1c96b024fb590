// Package audio is the optional ambient layer: a quiet sine drone whose
// level follows the atmosphere pulse. Initialization failure is non-fatal;
// the page runs silent.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"terraglow/constant"
)

// Ambient owns the speaker session
type Ambient struct {
	running bool
}

// droneStreamer synthesizes the drone on demand. pulse is sampled per
// buffer fill, cheap enough to follow the atmosphere in real time
type droneStreamer struct {
	phase    float64
	phaseInc float64
	pulse    func() float64
}

func (d *droneStreamer) Stream(samples [][2]float64) (int, bool) {
	gain := constant.AudioDroneGain * d.pulse()
	for i := range samples {
		v := math.Sin(2*math.Pi*d.phase) * gain
		samples[i][0] = v
		samples[i][1] = v
		d.phase += d.phaseInc
		if d.phase >= 1.0 {
			d.phase -= 1.0
		}
	}
	return len(samples), true
}

func (d *droneStreamer) Err() error { return nil }

// Start brings up the speaker and begins the drone. pulse must be safe to
// call from the speaker goroutine
func Start(pulse func() float64) (*Ambient, error) {
	sr := beep.SampleRate(constant.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	speaker.Play(&droneStreamer{
		phaseInc: constant.AudioDroneFreq / float64(constant.AudioSampleRate),
		pulse:    pulse,
	})
	return &Ambient{running: true}, nil
}

// Stop tears the speaker down. Safe on nil receiver so callers need no
// audio-enabled branch
func (a *Ambient) Stop() {
	if a == nil || !a.running {
		return
	}
	a.running = false
	speaker.Close()
}
