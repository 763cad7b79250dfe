package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the output gain (0.0 to 1.0).
// The level is kept for streams started later.
func (p *Player) SetVolume(level float64) {
	p.level = max(0, min(level, 1))

	if p.volume != nil {
		speaker.Lock()
		p.applyVolume()
		speaker.Unlock()
	}
}

// Volume returns the current output gain (0.0 to 1.0).
func (p *Player) Volume() float64 {
	return p.level
}

// applyVolume copies the stored level onto the volume effect.
// Callers hold the speaker lock once the effect is playing.
func (p *Player) applyVolume() {
	p.volume.Volume = levelToVolume(p.level)
	p.volume.Silent = p.level <= 0
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale with base 2:
// 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent).
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
