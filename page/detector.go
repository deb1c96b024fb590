package page

import (
	"sync"
	"time"
)

// Detector arbitrates the three-way race between screen probing, the async
// scene build, and the hard deadline. Every completion path re-checks the
// current state under the lock before applying its effect, so a late build
// success can never re-mount over an already shown fallback
type Detector struct {
	mu     sync.Mutex
	mode   Mode
	timer  *time.Timer
	onMode func(Mode)
}

// NewDetector starts in Probing with the deadline armed. onMode fires on
// every transition, outside the lock; it may be nil
func NewDetector(deadline time.Duration, onMode func(Mode)) *Detector {
	d := &Detector{onMode: onMode}
	d.timer = time.AfterFunc(deadline, d.deadlineFired)
	return d
}

// Mode returns the current state
func (d *Detector) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// SceneReady records that the scene build finished. Returns true when the
// scene should be mounted; false means the decision already went to the
// fallback and the built geometry must be discarded
func (d *Detector) SceneReady() bool {
	d.mu.Lock()
	if d.mode != ModeProbing {
		d.mu.Unlock()
		return false
	}
	d.mode = ModeLive
	notify := d.onMode
	d.mu.Unlock()

	if notify != nil {
		notify(ModeLive)
	}
	return true
}

// Fail forces the fallback. Used for screen acquisition errors and scene
// build failures; both degrade identically and silently
func (d *Detector) Fail() {
	d.settle()
}

// deadlineFired is the hard ceiling. It demotes Probing and, deliberately,
// a Live scene as well: the timer is never cancelled on mount success, so a
// renderer that came up slow still ends on the fallback after the window
func (d *Detector) deadlineFired() {
	d.settle()
}

func (d *Detector) settle() {
	d.mu.Lock()
	if d.mode == ModeFallback {
		d.mu.Unlock()
		return
	}
	d.mode = ModeFallback
	notify := d.onMode
	d.mu.Unlock()

	if notify != nil {
		notify(ModeFallback)
	}
}

// Stop cancels the deadline timer. Must run on unmount so the timer cannot
// fire into a dead page
func (d *Detector) Stop() {
	d.timer.Stop()
}
