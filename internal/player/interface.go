// internal/player/interface.go
package player

// Interface is the audio backend contract used by the playback controller.
//
// Load and Play may fail; the other commands cannot. Load prepares a stream
// without touching what is currently audible, so a failed Load or Play leaves
// the previous track playing.
type Interface interface {
	Load(path string) error
	Play() error
	Pause()
	Resume()
	Stop()
	SetVolume(level float64)
	IsActive() bool
	Close()
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
