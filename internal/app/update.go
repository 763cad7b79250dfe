package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/looper/internal/keymap"
)

// Update handles one message and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.playback.Poll()
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	action := m.keys.Resolve(msg.String())

	if m.alert != "" {
		// ctrl+c always leaves; anything else only acknowledges the alert
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		m.alert = ""
		return nil
	}

	switch action {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionMoveUp:
		m.cursor.Up(m.catalog.Len())
	case keymap.ActionMoveDown:
		m.cursor.Down(m.catalog.Len())
	default:
		m.handlePlaybackKey(action)
	}
	return nil
}

func (m *Model) handlePlaybackKey(action keymap.Action) {
	step := m.playback.Range().Step

	switch action { //nolint:exhaustive // navigation handled by caller
	case keymap.ActionSelect:
		if err := m.playback.Select(m.catalog.At(m.cursor.Pos())); err != nil {
			m.alert = err.Error()
		}
	case keymap.ActionPlayPause:
		m.playback.TogglePause()
	case keymap.ActionStop:
		m.playback.Stop()
	case keymap.ActionVolumeDown:
		m.playback.AdjustVolume(-step)
	case keymap.ActionVolumeUp:
		m.playback.AdjustVolume(step)
	}
}
