package cursor

import "github.com/bethropolis/quill/internal/logger"

// Viewport is the window of visual rows currently on screen.
type Viewport struct {
	Scroll int // first visible row
	Width  int // wrap width
	Height int // visible rows
}

// NewViewport creates a viewport scrolled to the top.
func NewViewport(width, height int) Viewport {
	v := Viewport{}
	v.Resize(width, height)
	return v
}

// Resize changes the dimensions without touching Scroll.
func (v *Viewport) Resize(width, height int) {
	v.Width = max(width, 1)
	v.Height = max(height, 0)
}

// rows is the height used for scroll arithmetic; a zero-height viewport
// still tracks one row so the cursor row stays addressable.
func (v *Viewport) rows() int {
	return max(v.Height, 1)
}

// Last returns the last visible row.
func (v *Viewport) Last() int {
	return v.Scroll + v.rows() - 1
}

// Contains reports whether row is visible.
func (v *Viewport) Contains(row int) bool {
	return row >= v.Scroll && row <= v.Last()
}

// Follow shifts Scroll by the minimal amount that makes row visible,
// leaving it on the edge it crossed. It reports whether Scroll changed.
func (v *Viewport) Follow(row int) bool {
	switch {
	case row < v.Scroll:
		logger.DebugTagf("viewport", "scroll up %d -> %d", v.Scroll, row)
		v.Scroll = row
	case row > v.Last():
		next := row - v.rows() + 1
		logger.DebugTagf("viewport", "scroll down %d -> %d", v.Scroll, next)
		v.Scroll = next
	default:
		return false
	}
	return true
}

// Clamp keeps Scroll inside a sequence of total rows.
func (v *Viewport) Clamp(total int) {
	if v.Scroll >= total {
		v.Scroll = max(total-1, 0)
	}
}

// Visible returns the half-open row range on screen, clipped to total.
func (v *Viewport) Visible(total int) (start, end int) {
	start = min(v.Scroll, total)
	end = min(v.Scroll+v.Height, total)
	return start, end
}

// Screen converts an absolute row to a screen-relative one.
func (v *Viewport) Screen(row int) int {
	return row - v.Scroll
}
