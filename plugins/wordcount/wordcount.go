// Package wordcount adds a :wc command reporting lines, words and bytes
// of the active buffer.
package wordcount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/quill/internal/plugin"
)

var _ plugin.Plugin = (*WordCount)(nil)

// WordCount is the :wc plugin.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates the plugin.
func New() *WordCount {
	return &WordCount{}
}

// Name returns "wordcount".
func (p *WordCount) Name() string {
	return "wordcount"
}

// Initialize registers the wc command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown does nothing.
func (p *WordCount) Shutdown() error {
	return nil
}

// Stats are the counts shown by :wc.
type Stats struct {
	Lines, Words, Bytes int
}

// Count computes Stats for text. lines is the document's line count, so
// an empty document still has one line.
func Count(text string, lines int) Stats {
	return Stats{
		Lines: lines,
		Words: len(strings.Fields(text)),
		Bytes: len(text),
	}
}

func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return errors.New("wordcount plugin not initialized")
	}
	if len(args) > 0 {
		return errors.New("wc takes no argument")
	}
	s := Count(p.api.BufferText(), p.api.BufferLineCount())
	p.api.SetStatusMessage("Lines: %d, Words: %d, Bytes: %d", s.Lines, s.Words, s.Bytes)
	return nil
}
