// Package keymap defines the fixed key bindings and action dispatch.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit Action = "quit"

	// Navigation actions
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"

	// Playback actions
	ActionSelect     Action = "select"     // enter - loop the track under the cursor
	ActionPlayPause  Action = "play_pause" // space
	ActionStop       Action = "stop"       // s
	ActionVolumeDown Action = "volume_down"
	ActionVolumeUp   Action = "volume_up"
)
