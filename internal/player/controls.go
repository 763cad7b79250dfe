package player

import (
	"github.com/gopxl/beep/v2/speaker"
)

// Stop silences output and discards the audible stream.
// The speaker stays open for the next Play.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}
	p.release()
	p.state = Stopped
}

// release detaches and closes the audible stream, if any.
func (p *Player) release() {
	if p.current == nil {
		return
	}
	speaker.Clear()
	p.current.close()
	p.current = nil
	p.ctrl = nil
	p.volume = nil
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}
