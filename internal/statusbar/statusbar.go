package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	StyleError     tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorTeal).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorTeal).Bold(true),
		StyleError:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar holds what the status line shows.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	fileName   string
	isModified bool
	line, col  int
	index      int
	count      int
	mode       string

	tempMessage     string
	tempIsError     bool
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
		count:  1,
	}
}

// SetFileInfo updates the file name and modified flag.
func (sb *StatusBar) SetFileInfo(name string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.fileName = name
	sb.isModified = modified
}

// SetBufferInfo updates which buffer is shown, as index of count.
func (sb *StatusBar) SetBufferInfo(index, count int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.index = index
	sb.count = count
}

// SetCursorInfo updates the logical cursor position, zero based.
func (sb *StatusBar) SetCursorInfo(line, col int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.line = line
	sb.col = col
}

// SetEditorMode updates the displayed mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(fmt.Sprintf(format, args...), false)
}

// SetError displays err for the configured duration.
func (sb *StatusBar) SetError(err error) {
	sb.setMessage(err.Error(), true)
}

func (sb *StatusBar) setMessage(msg string, isError bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = msg
	sb.tempIsError = isError
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns the status line text and style, expiring an old message.
func (sb *StatusBar) Text() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			if sb.tempIsError {
				return sb.tempMessage, sb.config.StyleError
			}
			return sb.tempMessage, sb.config.StyleMessage
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	name := sb.fileName
	if name == "" {
		name = "[No Name]"
	}
	style := sb.config.StyleDefault
	if sb.isModified {
		name += " [+]"
		style = sb.config.StyleModified
	}
	text := fmt.Sprintf("%s  %d/%d  %d:%d", name, sb.index+1, sb.count, sb.line+1, sb.col+1)
	if sb.mode != "" {
		text += " -- " + sb.mode
	}
	return text, style
}

// Draw renders the status bar on row y.
func (sb *StatusBar) Draw(screen tcell.Screen, y, width int) {
	if width <= 0 {
		return
	}
	text, style := sb.Text()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	DrawString(screen, 0, y, width, text, style)
}

// DrawString draws text from column x, clipped at width, and returns the
// column after the last cell drawn.
func DrawString(screen tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += clusterWidth
	}
	return x
}
