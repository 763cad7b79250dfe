// Package styles builds the lipgloss styles used by the player screen.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/looper/internal/config"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Highlights, from config
	SelectionFG lipgloss.Color
	SelectionBG lipgloss.Color
	PlayingFG   lipgloss.Color
	PlayingBG   lipgloss.Color

	// Chrome
	FgMuted lipgloss.Color // help line, empty gauge cells
	Accent  lipgloss.Color // status line and filled gauge cells, the selection background
	Error   lipgloss.Color // alert border and title

	// HasColor is false on terminals without color support; highlights
	// then fall back to reverse video and bold.
	HasColor bool

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Header     lipgloss.Style // bold, reverse
	Row        lipgloss.Style
	Cursor     lipgloss.Style // selection highlight
	Playing    lipgloss.Style // currently playing track
	Status     lipgloss.Style
	GaugeFull  lipgloss.Style
	GaugeEmpty lipgloss.Style
	Help       lipgloss.Style
	Alert      lipgloss.Style // bordered box
	AlertTitle lipgloss.Style
}

// New creates a theme from resolved config colors. hasColor is checked
// once by the caller and never re-queried.
func New(p config.Palette, hasColor bool) *Theme {
	return &Theme{
		SelectionFG: lipgloss.Color(p.SelectionFG),
		SelectionBG: lipgloss.Color(p.SelectionBG),
		PlayingFG:   lipgloss.Color(p.PlayingFG),
		PlayingBG:   lipgloss.Color(p.PlayingBG),
		FgMuted:     lipgloss.Color("#808080"),
		Accent:      lipgloss.Color(p.SelectionBG),
		Error:       lipgloss.Color("#ff5555"),
		HasColor:    hasColor,
	}
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	s := &Styles{
		Header:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Row:        lipgloss.NewStyle(),
		Status:     lipgloss.NewStyle().Bold(true),
		GaugeFull:  lipgloss.NewStyle(),
		GaugeEmpty: lipgloss.NewStyle(),
		Help:       lipgloss.NewStyle(),
		Alert: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1),
		AlertTitle: lipgloss.NewStyle().Bold(true),
	}

	if !t.HasColor {
		s.Cursor = lipgloss.NewStyle().Reverse(true).Bold(true)
		s.Playing = lipgloss.NewStyle().Bold(true).Underline(true)
		return s
	}

	s.Cursor = lipgloss.NewStyle().
		Foreground(t.SelectionFG).
		Background(t.SelectionBG).
		Bold(true)
	s.Playing = lipgloss.NewStyle().
		Foreground(t.PlayingFG).
		Background(t.PlayingBG).
		Bold(true)
	s.Status = s.Status.Foreground(t.Accent)
	s.GaugeFull = s.GaugeFull.Foreground(t.Accent)
	s.GaugeEmpty = s.GaugeEmpty.Foreground(t.FgMuted)
	s.Help = s.Help.Foreground(t.FgMuted)
	s.Alert = s.Alert.BorderForeground(t.Error)
	s.AlertTitle = s.AlertTitle.Foreground(t.Error)
	return s
}
