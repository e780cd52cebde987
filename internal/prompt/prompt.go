// Package prompt implements the single-line ':' command prompt.
package prompt

import "strings"

// Prompt is an editable line with a cursor and a submission history.
type Prompt struct {
	text    []rune
	cx      int
	history []string
	pos     int // index into history while browsing; len(history) means the draft
	draft   string
}

// New returns an empty prompt.
func New() *Prompt {
	return &Prompt{}
}

// Insert adds r at the cursor.
func (p *Prompt) Insert(r rune) {
	p.text = append(p.text, 0)
	copy(p.text[p.cx+1:], p.text[p.cx:])
	p.text[p.cx] = r
	p.cx++
}

// Backspace removes the rune before the cursor. It reports false when the
// line is empty.
func (p *Prompt) Backspace() bool {
	if len(p.text) == 0 {
		return false
	}
	if p.cx == 0 {
		return true
	}
	p.text = append(p.text[:p.cx-1], p.text[p.cx:]...)
	p.cx--
	return true
}

// Left moves the cursor one rune left.
func (p *Prompt) Left() {
	if p.cx > 0 {
		p.cx--
	}
}

// Right moves the cursor one rune right.
func (p *Prompt) Right() {
	if p.cx < len(p.text) {
		p.cx++
	}
}

// Parse splits the line into whitespace separated arguments, records it
// in the history and clears it. An empty line yields nil.
func (p *Prompt) Parse() []string {
	line := string(p.text)
	p.Reset()

	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	if n := len(p.history); n == 0 || p.history[n-1] != line {
		p.history = append(p.history, line)
	}
	p.pos = len(p.history)
	return args
}

// Prev replaces the line with the previous history entry. The line being
// edited is kept as a draft.
func (p *Prompt) Prev() bool {
	if p.pos == 0 {
		return false
	}
	if p.pos == len(p.history) {
		p.draft = string(p.text)
	}
	p.pos--
	p.set(p.history[p.pos])
	return true
}

// Next moves forward through the history. Stepping past the newest entry
// restores the draft.
func (p *Prompt) Next() bool {
	if p.pos >= len(p.history) {
		return false
	}
	p.pos++
	if p.pos == len(p.history) {
		p.set(p.draft)
	} else {
		p.set(p.history[p.pos])
	}
	return true
}

func (p *Prompt) set(s string) {
	p.text = []rune(s)
	p.cx = len(p.text)
}

// Reset clears the line and stops browsing the history.
func (p *Prompt) Reset() {
	p.text = p.text[:0]
	p.cx = 0
	p.draft = ""
	p.pos = len(p.history)
}

// History returns the submitted lines, oldest first.
func (p *Prompt) History() []string {
	return p.history
}

// String returns the current line.
func (p *Prompt) String() string {
	return string(p.text)
}

// Cursor returns the cursor position in runes.
func (p *Prompt) Cursor() int {
	return p.cx
}
