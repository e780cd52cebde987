package plugin

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/quill/internal/logger"
)

// ErrDuplicate is returned when a plugin or command name is taken.
var ErrDuplicate = errors.New("already registered")

// Manager handles plugin registration, lifecycle and the commands plugins
// add to the prompt.
type Manager struct {
	mu       sync.RWMutex
	plugins  map[string]Plugin
	order    []string
	commands map[string]CommandFunc
}

// NewManager creates an empty plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins:  make(map[string]Plugin),
		commands: make(map[string]CommandFunc),
	}
}

// Register adds a plugin. It must be called before InitializePlugins.
func (m *Manager) Register(p Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := p.Name()
	if name == "" {
		return errors.New("plugin registration failed: empty name")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin %q: %w", name, ErrDuplicate)
	}
	m.plugins[name] = p
	m.order = append(m.order, name)
	logger.Debugf("plugin: registered %q", name)
	return nil
}

// InitializePlugins initialises plugins in registration order. A failing
// plugin is logged and skipped.
func (m *Manager) InitializePlugins(api EditorAPI) {
	for _, p := range m.list() {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("plugin: initializing %q: %v", p.Name(), err)
			continue
		}
		logger.Infof("plugin: initialized %q", p.Name())
	}
}

// ShutdownPlugins shuts plugins down in reverse registration order.
func (m *Manager) ShutdownPlugins() {
	plugins := m.list()
	for i := len(plugins) - 1; i >= 0; i-- {
		if err := plugins[i].Shutdown(); err != nil {
			logger.Errorf("plugin: shutting down %q: %v", plugins[i].Name(), err)
		}
	}
}

func (m *Manager) list() []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.plugins[name])
	}
	return out
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.plugins[name]
	return p, ok
}

// RegisterCommand adds a prompt command. Names are case sensitive and
// may not contain spaces.
func (m *Manager) RegisterCommand(name string, fn CommandFunc) error {
	if name == "" || strings.ContainsAny(name, " \t") || fn == nil {
		return fmt.Errorf("invalid plugin command %q", name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.commands[name]; exists {
		return fmt.Errorf("command %q: %w", name, ErrDuplicate)
	}
	m.commands[name] = fn
	logger.Debugf("plugin: command %q registered", name)
	return nil
}

// Command looks up a plugin command. It is nil-safe.
func (m *Manager) Command(name string) (CommandFunc, bool) {
	if m == nil {
		return nil, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn, ok := m.commands[name]
	return fn, ok
}

// CommandNames returns the registered command names, sorted.
func (m *Manager) CommandNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.commands))
	for name := range m.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
