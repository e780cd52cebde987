// Package plugintest provides an in-memory plugin.EditorAPI for tests.
package plugintest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/plugin"
)

var _ plugin.EditorAPI = (*API)(nil)

// API records what plugins do. Post queues functions until RunPosted.
type API struct {
	mu sync.Mutex

	Text     string
	Path     string
	Modified bool
	SaveErr  error
	Saves    int
	Messages []string
	Config   map[string]map[string]any
	Commands map[string]plugin.CommandFunc
	Events   *event.Manager

	posted []func()
}

// New creates an API over an empty unnamed buffer.
func New() *API {
	return &API{
		Config:   make(map[string]map[string]any),
		Commands: make(map[string]plugin.CommandFunc),
		Events:   event.NewManager(),
	}
}

func (a *API) BufferText() string { return a.Text }

func (a *API) BufferLineCount() int { return strings.Count(a.Text, "\n") + 1 }

func (a *API) BufferFilePath() string { return a.Path }

func (a *API) IsBufferModified() bool { return a.Modified }

func (a *API) SaveBuffer() error {
	if a.SaveErr != nil {
		return a.SaveErr
	}
	a.Saves++
	a.Modified = false
	return nil
}

func (a *API) SubscribeEvent(t event.Type, h event.Handler) {
	a.Events.Subscribe(t, h)
}

func (a *API) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if _, ok := a.Commands[name]; ok {
		return fmt.Errorf("command %q: %w", name, plugin.ErrDuplicate)
	}
	a.Commands[name] = fn
	return nil
}

func (a *API) SetStatusMessage(format string, args ...any) {
	a.Messages = append(a.Messages, fmt.Sprintf(format, args...))
}

func (a *API) PluginConfigValue(pluginName, key string) (any, bool) {
	v, ok := a.Config[pluginName][key]
	return v, ok
}

func (a *API) Post(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.posted = append(a.posted, fn)
}

// Pending returns how many posted functions are queued.
func (a *API) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.posted)
}

// RunPosted runs and clears the queued functions.
func (a *API) RunPosted() {
	a.mu.Lock()
	posted := a.posted
	a.posted = nil
	a.mu.Unlock()
	for _, fn := range posted {
		fn()
	}
}
