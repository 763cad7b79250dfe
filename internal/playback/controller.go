// Package playback owns what is playing and how loud.
//
// The Controller is the only component that talks to the audio backend. It is
// driven synchronously from the session loop and never observes the backend's
// end-of-track signal: a selected track loops until something else is selected
// or playback is stopped.
package playback

import (
	"math"
	"time"

	"github.com/llehouerou/looper/internal/catalog"
	"github.com/llehouerou/looper/internal/errmsg"
	"github.com/llehouerou/looper/internal/player"
	"github.com/llehouerou/looper/internal/tags"
)

// Error is returned when a track cannot be started. The controller state is
// unchanged when it is returned.
type Error struct {
	Track catalog.Track
	Err   error
}

func (e *Error) Error() string {
	return errmsg.FormatWith(errmsg.OpPlaybackStart, e.Track.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// VolumeRange bounds the output gain.
type VolumeRange struct {
	Default float64
	Step    float64
	Min     float64
	Max     float64
}

// clamp keeps v inside the range and trims float noise from repeated steps.
func (r VolumeRange) clamp(v float64) float64 {
	v = math.Round(v*1e6) / 1e6
	return max(r.Min, min(v, r.Max))
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now for start timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller is the Idle/Playing/Paused state machine over one audio backend.
type Controller struct {
	backend player.Interface
	tags    tags.Reader
	now     func() time.Time
	vol     VolumeRange

	state     State
	track     catalog.Track
	startedAt time.Time
	duration  time.Duration
	volume    float64
	active    bool
}

// New creates an idle controller and applies the default volume to backend.
// reader may be nil, in which case durations are unknown.
func New(backend player.Interface, reader tags.Reader, vol VolumeRange, opts ...Option) *Controller {
	c := &Controller{
		backend: backend,
		tags:    reader,
		now:     time.Now,
		vol:     vol,
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.volume = vol.clamp(vol.Default)
	backend.SetVolume(c.volume)
	return c
}

// Select starts looping track, replacing whatever was active.
// On failure the previous state is kept and a *Error is returned.
func (c *Controller) Select(track catalog.Track) error {
	if err := c.backend.Load(track.Path); err != nil {
		return &Error{Track: track, Err: err}
	}
	if err := c.backend.Play(); err != nil {
		return &Error{Track: track, Err: err}
	}

	c.state = StatePlaying
	c.track = track
	c.startedAt = c.now()
	c.duration = c.durationHint(track.Path)
	c.active = true
	return nil
}

// TogglePause switches between Playing and Paused. It does nothing when Idle.
func (c *Controller) TogglePause() {
	switch c.state {
	case StatePlaying:
		c.backend.Pause()
		c.state = StatePaused
	case StatePaused:
		c.backend.Resume()
		c.state = StatePlaying
	case StateIdle:
		// Nothing to toggle
	}
}

// Stop discards the active track and returns to Idle.
func (c *Controller) Stop() {
	if c.state == StateIdle {
		return
	}
	c.backend.Stop()
	c.state = StateIdle
	c.track = catalog.Track{}
	c.startedAt = time.Time{}
	c.duration = 0
}

// AdjustVolume adds delta to the volume, clamps it to the configured range
// and applies it to the backend immediately. It returns the new volume.
func (c *Controller) AdjustVolume(delta float64) float64 {
	c.volume = c.vol.clamp(c.volume + delta)
	c.backend.SetVolume(c.volume)
	return c.volume
}

// Poll asks the backend whether it is producing audio. It never blocks and
// does not change state; the loop calls it once per frame so end-of-track
// handling can be added here later.
func (c *Controller) Poll() bool {
	c.active = c.backend.IsActive()
	return c.active
}

// State returns the current playback state.
func (c *Controller) State() State { return c.state }

// Track returns the active track, if any.
func (c *Controller) Track() (catalog.Track, bool) {
	return c.track, c.state.IsActive()
}

// IsPlaying reports whether path is the active track.
func (c *Controller) IsPlaying(path string) bool {
	return c.state.IsActive() && c.track.Path == path
}

// Volume returns the current volume.
func (c *Controller) Volume() float64 { return c.volume }

// Range returns the configured volume bounds.
func (c *Controller) Range() VolumeRange { return c.vol }

// Duration returns the active track's length, or 0 when unknown.
func (c *Controller) Duration() time.Duration { return c.duration }

// BackendActive returns the result of the last Poll.
func (c *Controller) BackendActive() bool { return c.active }

func (c *Controller) durationHint(path string) time.Duration {
	if c.tags == nil {
		return 0
	}
	md, _ := c.tags.Read(path)
	return max(md.Duration, 0)
}
