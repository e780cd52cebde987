// Package cursor holds the cursor position and the scroll window over
// visual rows.
package cursor

// Cursor is a character index plus the column vertical movement tries to
// return to.
type Cursor struct {
	Index  int // sole source of truth for the position
	Sticky int // desired column, refreshed by horizontal moves and inserts
}

// Direction selects the axis of a cursor move.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}
