package tui

import (
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// Styles are the styles used to paint the text area and prompt.
type Styles struct {
	Text          tcell.Style
	Gutter        tcell.Style
	GutterCurrent tcell.Style
	Prompt        tcell.Style
}

// StylesFromColors builds Styles from resolved theme colours.
func StylesFromColors(c config.Colors) Styles {
	text := tcell.StyleDefault.Foreground(c.Text)
	return Styles{
		Text:          text,
		Gutter:        text.Foreground(c.Gutter),
		GutterCurrent: text.Foreground(c.GutterCurrent).Bold(true),
		Prompt:        text.Foreground(c.Prompt),
	}
}

// StatusConfig builds the status bar configuration from theme colours.
func StatusConfig(c config.Colors) statusbar.Config {
	cfg := statusbar.DefaultConfig()
	base := tcell.StyleDefault.Foreground(c.StatusFg).Background(c.StatusBg)
	cfg.StyleDefault = base
	cfg.StyleModified = base.Bold(true)
	cfg.StyleMessage = base.Bold(true)
	return cfg
}
