package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string // as reported by tea.KeyMsg.String()
	Help        string   // key label shown in the help line
	Description string
}

// All contains every binding, in help-line order.
var All = []Binding{
	{ActionMoveUp, []string{"up", "k"}, "↑/k", "up"},
	{ActionMoveDown, []string{"down", "j"}, "↓/j", "down"},
	{ActionSelect, []string{"enter"}, "enter", "loop"},
	{ActionPlayPause, []string{" "}, "space", "pause"},
	{ActionStop, []string{"s"}, "s", "stop"},
	{ActionVolumeDown, []string{"left"}, "←", "vol-"},
	{ActionVolumeUp, []string{"right"}, "→", "vol+"},
	{ActionQuit, []string{"q", "esc", "ctrl+c"}, "q", "quit"},
}

// KeyMap exposes the bindings to bubbles/help.
type KeyMap struct {
	bindings []key.Binding
}

// NewKeyMap builds help bindings from bs.
func NewKeyMap(bs []Binding) KeyMap {
	km := KeyMap{bindings: make([]key.Binding, 0, len(bs))}
	for _, b := range bs {
		km.bindings = append(km.bindings, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.Help, b.Description),
		))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return km.bindings
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.bindings}
}
