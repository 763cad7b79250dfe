package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing, providing helpers to simulate
// user interactions and inspect state.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness creates a test harness and sends an initial window size.
func NewHarness(m tea.Model, width, height int) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	h.Resize(width, height)
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered frame.
func (h *Harness) View() string {
	return h.model.View()
}

// PlainView returns the rendered frame with ANSI codes removed.
func (h *Harness) PlainView() string {
	return StripANSI(h.model.View())
}

// Resize sends a tea.WindowSizeMsg.
func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// SendMsg sends any message to the model and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key as runes ("q", "k", " ").
func (h *Harness) SendKey(key string) tea.Cmd {
	if key == " " {
		return h.SendSpecialKey(tea.KeySpace)
	}
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, arrows, etc.).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// IsQuit reports whether cmd is tea.Quit.
func IsQuit(cmd tea.Cmd) bool {
	_, ok := ExecuteCmd(cmd).(tea.QuitMsg)
	return ok
}
