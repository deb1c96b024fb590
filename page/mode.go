package page

// Mode is the process-wide render decision. Transitions are monotone:
// Probing → Live or Fallback, Live → Fallback. Fallback is terminal
type Mode int32

const (
	ModeProbing Mode = iota
	ModeLive
	ModeFallback
)

func (m Mode) String() string {
	switch m {
	case ModeProbing:
		return "probing"
	case ModeLive:
		return "live"
	case ModeFallback:
		return "fallback"
	}
	return "unknown"
}
