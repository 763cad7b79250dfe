// Package playerbar renders the one-line status bar: what is playing and the
// volume gauge.
package playerbar

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/looper/internal/playback"
	"github.com/llehouerou/looper/internal/ui/render"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"

	// GaugeCells is the fixed width of the volume bar.
	GaugeCells = 20
	fullCell   = "█"
	emptyCell  = "░"

	nothingPlaying = "Nothing playing"
)

// State holds everything needed to render the status bar.
type State struct {
	Playing  bool
	Paused   bool
	Name     string
	Duration time.Duration // 0 when unknown
	Volume   float64       // 0..1
}

// Styles colors the parts of the bar. The zero value renders plain text.
type Styles struct {
	Text       lipgloss.Style
	GaugeFull  lipgloss.Style
	GaugeEmpty lipgloss.Style
}

// NewState reads the controller.
func NewState(c *playback.Controller) State {
	s := State{Volume: c.Volume()}
	track, ok := c.Track()
	if !ok {
		return s
	}
	s.Playing = c.State() == playback.StatePlaying
	s.Paused = c.State() == playback.StatePaused
	s.Name = track.Name
	s.Duration = c.Duration()
	return s
}

// Label returns the left part of the bar, before truncation.
func (s State) Label() string {
	if !s.Playing && !s.Paused {
		return nothingPlaying
	}
	symbol := playSymbol
	if s.Paused {
		symbol = pauseSymbol
	}
	label := symbol + " " + s.Name
	if s.Duration > 0 {
		label += " (" + formatDuration(s.Duration) + ")"
	}
	return label
}

// Render returns the status bar padded to width. The label is truncated so
// the gauge always fits; if even the gauge does not fit, it is dropped.
func Render(s State, width int, st Styles) string {
	pct, _ := volumeParts(s.Volume)
	gaugeWidth := lipgloss.Width(pct) + GaugeCells
	labelWidth := width - gaugeWidth - 2

	if labelWidth < 1 {
		return st.Text.Render(render.TruncateAndPad(s.Label(), width))
	}
	return st.Text.Render(render.TruncateAndPad(s.Label(), labelWidth)) +
		"  " + volumeGauge(s.Volume, st)
}

// volumeGauge renders "NNN% " followed by GaugeCells block characters, the
// filled share proportional to volume.
func volumeGauge(volume float64, st Styles) string {
	pct, filled := volumeParts(volume)
	return st.Text.Render(pct) +
		st.GaugeFull.Render(strings.Repeat(fullCell, filled)) +
		st.GaugeEmpty.Render(strings.Repeat(emptyCell, GaugeCells-filled))
}

func volumeParts(volume float64) (pct string, filled int) {
	volume = max(0, min(volume, 1))
	// Epsilon absorbs float noise such as 0.35*20 = 6.999...
	filled = min(int(math.Floor(volume*GaugeCells+1e-9)), GaugeCells)
	pct = fmt.Sprintf("%3d%% ", int(math.Round(volume*100)))
	return pct, filled
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
