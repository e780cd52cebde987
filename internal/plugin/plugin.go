// Package plugin defines the interface built-in extensions implement and
// the narrow editor API they are given.
package plugin

import (
	"github.com/bethropolis/quill/internal/event"
)

// CommandFunc runs a plugin command with the prompt arguments that
// followed its name.
type CommandFunc func(args []string) error

// EditorAPI is what plugins may touch. Every method must be called from
// the main loop; goroutines hand work back with Post.
type EditorAPI interface {
	// Active buffer, read-only.
	BufferText() string
	BufferLineCount() int
	BufferFilePath() string
	IsBufferModified() bool

	// SaveBuffer writes the active buffer to its path.
	SaveBuffer() error

	SubscribeEvent(eventType event.Type, handler event.Handler)
	RegisterCommand(name string, cmdFunc CommandFunc) error
	SetStatusMessage(format string, args ...any)

	// PluginConfigValue returns key from the plugin's [plugins.<name>] table.
	PluginConfigValue(pluginName, key string) (any, bool)

	// Post queues fn to run on the main loop.
	Post(fn func())
}

// Plugin is implemented by every extension.
type Plugin interface {
	// Name returns the unique identifier of the plugin.
	Name() string

	// Initialize is called once at startup, before the first redraw.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor exits.
	Shutdown() error
}
