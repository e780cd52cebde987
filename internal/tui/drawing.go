package tui

import (
	"fmt"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/prompt"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// minGutterDigits keeps the gutter from resizing for short files.
const minGutterDigits = 3

// Area is the split of the screen into text area, status line and prompt
// line.
type Area struct {
	Gutter      int // gutter width including its padding column
	Width       int // text area width
	Height      int // text area height
	StatusY     int
	PromptY     int
	ScreenWidth int
}

// ComputeArea splits a width x height screen for a document of lineCount
// lines.
func ComputeArea(width, height, lineCount int, gutter bool) Area {
	a := Area{ScreenWidth: width}
	if gutter {
		a.Gutter = GutterWidth(lineCount)
		if a.Gutter >= width {
			a.Gutter = 0
		}
	}
	a.Width = max(width-a.Gutter, 1)
	a.Height = max(height-config.StatusBarHeight-config.PromptHeight, 0)
	a.StatusY = a.Height
	a.PromptY = a.Height + config.StatusBarHeight
	return a
}

// GutterWidth returns the gutter width needed for lineCount lines.
func GutterWidth(lineCount int) int {
	digits := len(fmt.Sprint(lineCount))
	return max(digits, minGutterDigits) + 1
}

// cellWidth is the number of screen cells r occupies.
func cellWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	w := uniseg.StringWidth(string(r))
	if w < 1 {
		return 1
	}
	return w
}

// DrawBuffer paints the visible rows of buf into the text area.
func (t *TUI) DrawBuffer(buf *core.Buffer, a Area) {
	rows := buf.VisibleRows()
	current, _ := buf.LineCol()

	for y := 0; y < a.Height; y++ {
		t.fillRow(y, a.ScreenWidth, t.styles.Text)
		if y >= len(rows) {
			continue
		}
		row := rows[y]

		if a.Gutter > 0 && !row.Continued {
			style := t.styles.Gutter
			if row.Line == current {
				style = t.styles.GutterCurrent
			}
			statusbar.DrawString(t.screen, 0, y, a.Gutter-1, fmt.Sprintf("%*d", a.Gutter-1, row.Line+1), style)
		}

		x := a.Gutter
		for _, r := range row.Text {
			w := cellWidth(r)
			if x+w > a.ScreenWidth {
				break
			}
			if r == '\t' || r < ' ' {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, t.styles.Text)
			x += w
		}
	}
}

// cursorCell converts the cursor's rune column on its screen row to a
// screen column.
func cursorCell(buf *core.Buffer, a Area) (x, y int) {
	col, row := buf.CursorPosition()
	rows := buf.VisibleRows()
	x = a.Gutter
	if row >= 0 && row < len(rows) {
		runes := []rune(rows[row].Text)
		for i := 0; i < col && i < len(runes); i++ {
			x += cellWidth(runes[i])
		}
		if col > len(runes) {
			x += col - len(runes)
		}
	}
	return x, row
}

// DrawCursor places the terminal cursor on the buffer cursor.
func (t *TUI) DrawCursor(buf *core.Buffer, a Area) {
	x, y := cursorCell(buf, a)
	if y < 0 || y >= a.Height || x >= a.ScreenWidth {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(x, y)
}

// DrawPrompt paints the ':' prompt on the prompt line and places the
// cursor in it.
func (t *TUI) DrawPrompt(p *prompt.Prompt, a Area) {
	t.clearPromptLine(a)
	runes := []rune(p.String())
	x := statusbar.DrawString(t.screen, 0, a.PromptY, a.ScreenWidth, ":", t.styles.Prompt)
	cursorX := x
	for i, r := range runes {
		if i == p.Cursor() {
			cursorX = x
		}
		w := cellWidth(r)
		if x+w > a.ScreenWidth {
			break
		}
		t.screen.SetContent(x, a.PromptY, r, nil, t.styles.Prompt)
		x += w
	}
	if p.Cursor() == len(runes) {
		cursorX = x
	}
	if cursorX < a.ScreenWidth {
		t.screen.ShowCursor(cursorX, a.PromptY)
	} else {
		t.screen.HideCursor()
	}
}

// ClearPrompt blanks the prompt line.
func (t *TUI) ClearPrompt(a Area) {
	t.clearPromptLine(a)
}

func (t *TUI) clearPromptLine(a Area) {
	t.fillRow(a.PromptY, a.ScreenWidth, t.styles.Text)
}

// fillRow blanks the first width cells of row y with style.
func (t *TUI) fillRow(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}
