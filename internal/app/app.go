// Package app is the interactive session: a bubbletea model that renders the
// track list and dispatches one key at a time to the playback controller.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/looper/internal/catalog"
	"github.com/llehouerou/looper/internal/keymap"
	"github.com/llehouerou/looper/internal/playback"
	"github.com/llehouerou/looper/internal/ui/cursor"
	"github.com/llehouerou/looper/internal/ui/styles"
)

// Used until the first tea.WindowSizeMsg arrives.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Model is the session state. The catalog is fixed for the session; cursor,
// alert and terminal size are mutated only by Update.
type Model struct {
	catalog  *catalog.Catalog
	playback *playback.Controller
	keys     *keymap.Resolver
	helpKeys keymap.KeyMap
	help     help.Model
	theme    *styles.Theme

	cursor cursor.Cursor
	width  int
	height int
	alert  string // pending playback error, dismissed by the next key
}

// New creates a session over a non-empty catalog.
func New(cat *catalog.Catalog, ctrl *playback.Controller, theme *styles.Theme) Model {
	h := help.New()
	h.ShortSeparator = "  "
	if !theme.HasColor {
		h.Styles = help.Styles{}
	}
	return Model{
		catalog:  cat,
		playback: ctrl,
		keys:     keymap.NewResolver(keymap.All),
		helpKeys: keymap.NewKeyMap(keymap.All),
		help:     h,
		theme:    theme,
		cursor:   cursor.New(),
	}
}

// Init schedules nothing: the session only reacts to keys and resizes.
func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the index of the highlighted track.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Alert returns the pending error message, if any.
func (m Model) Alert() string {
	return m.alert
}

func (m Model) size() (width, height int) {
	width, height = m.width, m.height
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}
	return width, height
}
