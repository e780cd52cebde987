package editor

import (
	"github.com/atotto/clipboard"
	"github.com/bethropolis/quill/internal/logger"
)

// Clipboard is where yanked text goes and pasted text comes from.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the desktop clipboard. When no clipboard utility is
// available it keeps text in an in-process register instead.
type SystemClipboard struct {
	register string
}

func (c *SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return c.register, nil
	}
	return clipboard.ReadAll()
}

func (c *SystemClipboard) WriteAll(text string) error {
	c.register = text
	if clipboard.Unsupported {
		logger.Debugf("editor: no system clipboard, kept %d bytes in register", len(text))
		return nil
	}
	return clipboard.WriteAll(text)
}

// Register is an in-process clipboard.
type Register struct {
	Text string
}

func (r *Register) ReadAll() (string, error) { return r.Text, nil }

func (r *Register) WriteAll(text string) error {
	r.Text = text
	return nil
}
