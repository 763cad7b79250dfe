// Package cursor provides the wrapping list cursor and its scroll window.
package cursor

// topBias places the cursor about a fifth of the way down the viewport
// when the list has to scroll.
const topBias = 5

// Cursor tracks the highlighted index of a list.
// The list length and viewport height are passed to methods rather than stored,
// since they can change between frames.
type Cursor struct {
	pos int
}

// New creates a cursor on the first item.
func New() Cursor {
	return Cursor{}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Up moves one item up, wrapping from the first item to the last.
func (c *Cursor) Up(listLen int) {
	c.Move(-1, listLen)
}

// Down moves one item down, wrapping from the last item to the first.
func (c *Cursor) Down(listLen int) {
	c.Move(1, listLen)
}

// Move moves the cursor by delta positions, wrapping around both ends.
// If listLen is 0, this is a no-op.
func (c *Cursor) Move(delta, listLen int) {
	if listLen <= 0 {
		return
	}
	c.pos = wrap(c.pos+delta, listLen)
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen <= 0 {
		return 0, 0
	}
	height = max(height, 1)
	start = Offset(c.pos, listLen, height)
	end = min(start+height, listLen)
	return start, end
}

// Offset maps a cursor position to the first visible index of a viewport.
//
// Lists that fit return 0. Longer lists put the cursor near the top fifth
// of the viewport, clamped so the window never runs past either end.
// A non-positive height counts as one row.
func Offset(pos, listLen, height int) int {
	height = max(height, 1)
	if listLen <= height {
		return 0
	}
	ideal := pos - height/topBias
	return clamp(ideal, listLen-height)
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
