package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/looper/internal/ui/overlay"
	"github.com/llehouerou/looper/internal/ui/playerbar"
	"github.com/llehouerou/looper/internal/ui/render"
)

const (
	// header, blank, blank, status, blank, help
	chromeRows = 6
	indent     = "  "
	rowIndent  = "   "
	rowMargin  = 6
)

type rowKind int

const (
	rowNormal rowKind = iota
	rowCursor
	rowPlaying
)

// View renders one frame from current state.
func (m Model) View() string {
	width, height := m.size()

	lines := make([]string, 0, height)
	lines = append(lines, m.renderHeader(width), "")
	lines = append(lines, m.renderRows(width, visibleRows(height))...)
	lines = append(lines, "", m.renderStatus(width), "", m.renderHelp(width))
	frame := strings.Join(lines, "\n")

	if m.alert != "" {
		frame = overlay.Center(frame, m.renderAlert(width), width, height)
	}
	return frame
}

func visibleRows(height int) int {
	return max(height-chromeRows, 1)
}

func headerText(dir string, n int) string {
	return fmt.Sprintf("%s%s  (%s tracks)", indent, dir, humanize.Comma(int64(n)))
}

func (m Model) renderHeader(width int) string {
	text := render.Truncate(headerText(m.catalog.Title(), m.catalog.Len()), width)
	return m.theme.S().Header.Render(render.Center(text, width))
}

// renderRows always returns exactly visible lines so the status bar stays
// anchored to the bottom.
func (m Model) renderRows(width, visible int) []string {
	s := m.theme.S()
	nameWidth := max(width-rowMargin, 1)
	start, end := m.cursor.VisibleRange(m.catalog.Len(), visible)

	rows := make([]string, 0, visible)
	for i := start; i < end; i++ {
		name := render.TruncateAndPad(m.catalog.At(i).Name, nameWidth)
		style := s.Row
		switch m.rowKind(i) {
		case rowCursor:
			style = s.Cursor
		case rowPlaying:
			style = s.Playing
		case rowNormal:
		}
		rows = append(rows, rowIndent+style.Render(name))
	}
	for len(rows) < visible {
		rows = append(rows, "")
	}
	return rows
}

// rowKind picks the highlight for row i; the cursor wins over playing.
func (m Model) rowKind(i int) rowKind {
	switch {
	case i == m.cursor.Pos():
		return rowCursor
	case m.playback.IsPlaying(m.catalog.At(i).Path):
		return rowPlaying
	default:
		return rowNormal
	}
}

func (m Model) renderStatus(width int) string {
	s := m.theme.S()
	st := playerbar.Styles{
		Text:       s.Status,
		GaugeFull:  s.GaugeFull,
		GaugeEmpty: s.GaugeEmpty,
	}
	return indent + playerbar.Render(playerbar.NewState(m.playback), max(width-2*len(indent), 1), st)
}

func (m Model) renderHelp(width int) string {
	h := m.help
	h.Width = max(width-len(indent), 1)
	return indent + m.theme.S().Help.Render(h.View(m.helpKeys))
}

func (m Model) renderAlert(width int) string {
	s := m.theme.S()
	inner := max(min(width-8, 60), 10)
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.AlertTitle.Render("Playback error"),
		"",
		lipgloss.NewStyle().Width(inner).Render(render.Sanitize(m.alert)),
		"",
		"Press any key to continue",
	)
	return s.Alert.Render(body)
}
