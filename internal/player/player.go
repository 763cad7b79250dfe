// Package player drives audio output through beep's speaker.
//
// A Player holds at most one audible stream, looped forever. New streams are
// decoded into a pending slot first and only replace the audible one once
// everything needed to play them has succeeded.
package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// ErrNothingLoaded is returned by Play when no stream was loaded.
var ErrNothingLoaded = errors.New("no track loaded")

// stream is a decoded file and the handle it reads from.
type stream struct {
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
}

func (s *stream) close() {
	if s == nil {
		return
	}
	_ = s.streamer.Close()
	// Most decoders close the file themselves; a second close is harmless.
	_ = s.file.Close()
}

type Player struct {
	state   State
	pending *stream
	current *stream
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	level   float64

	speakerReady bool
	speakerRate  beep.SampleRate
}

// New creates a stopped player at full volume.
// The speaker is opened on the first Play.
func New() *Player {
	return &Player{
		state: Stopped,
		level: 1,
	}
}

// Load decodes path into the pending slot, replacing any earlier pending stream.
// Nothing audible changes until Play.
func (p *Player) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	p.pending.close()
	p.pending = &stream{path: path, file: f, streamer: streamer, format: format}
	return nil
}

// Play starts the pending stream, looping forever, and stops whatever was
// playing before. On error the previous stream keeps playing.
func (p *Player) Play() error {
	next := p.pending
	if next == nil {
		return ErrNothingLoaded
	}

	if err := p.initSpeaker(next.format); err != nil {
		return fmt.Errorf("open audio output: %w", err)
	}

	looped, err := beep.Loop2(next.streamer)
	if err != nil {
		return fmt.Errorf("loop %s: %w", filepath.Base(next.path), err)
	}

	// Resample if the track's sample rate differs from the speaker's
	var out beep.Streamer = looped
	if next.format.SampleRate != p.speakerRate {
		out = beep.Resample(4, next.format.SampleRate, p.speakerRate, looped)
	}

	p.release()

	p.pending = nil
	p.current = next
	p.ctrl = &beep.Ctrl{Streamer: out, Paused: false}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.applyVolume()
	p.state = Playing

	speaker.Play(p.volume)
	return nil
}

// IsActive reports whether audio is currently being produced.
// It never blocks on the audio thread.
func (p *Player) IsActive() bool {
	return p.state == Playing
}

// State returns the current output state.
func (p *Player) State() State { return p.state }

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.Stop()
	p.pending.close()
	p.pending = nil
	if p.speakerReady {
		speaker.Close()
		p.speakerReady = false
	}
}

func (p *Player) initSpeaker(format beep.Format) error {
	if p.speakerReady {
		return nil
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.speakerRate = format.SampleRate
	p.speakerReady = true
	return nil
}
