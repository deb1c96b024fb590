// Package status is a lock-free metrics surface for the footer HUD.
// The frame loop writes, the chrome reads; no locks on either side.
package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 as bits
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Registry is the central metrics facade
// The loop caches a pointer during init; update paths write directly to atomics
type Registry struct {
	Frames   atomic.Int64 // frames rendered since mount
	FPS      AtomicFloat  // achieved frame rate, smoothed
	Arcs     atomic.Int64 // arcs selected at scene build
	ModeCode atomic.Int32 // current render mode ordinal
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{}
}
