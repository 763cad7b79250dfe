// internal/player/state.go
package player

// State represents the output state of the backend.
//
//	┌──────────┐      Play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │◀─┐
//	└──────────┘                 └──────────┘  │
//	     ▲                          │     │    │ Play (replaces stream)
//	     │ Stop               Pause │     └────┘
//	     │                          ▼
//	     │                     ┌──────────┐
//	     └─────────────────────│  Paused  │
//	           Stop            └──────────┘
//	                                │ Resume
//	                                ▼
//	                             Playing
//
// Pause from Stopped/Paused and Resume from Stopped/Playing are ignored.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// HasStream returns true if a stream is attached (Playing or Paused).
func (s State) HasStream() bool {
	return s == Playing || s == Paused
}
