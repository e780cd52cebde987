package app

import (
	"fmt"
	"slices"

	"github.com/bethropolis/quill/internal/command"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/gdamore/tcell/v2"
)

// editorAPI implements plugin.EditorAPI on top of the App.
type editorAPI struct {
	app *App
}

var _ plugin.EditorAPI = (*editorAPI)(nil)

func newEditorAPI(a *App) *editorAPI {
	return &editorAPI{app: a}
}

func (api *editorAPI) BufferText() string {
	return api.app.editor.Active().Buf.Text()
}

func (api *editorAPI) BufferLineCount() int {
	return api.app.editor.Active().Buf.Document().LineCount()
}

func (api *editorAPI) BufferFilePath() string {
	return api.app.editor.Active().Name
}

func (api *editorAPI) IsBufferModified() bool {
	return api.app.editor.Active().Buf.IsModified()
}

func (api *editorAPI) SaveBuffer() error {
	_, err := api.app.editor.Write("")
	return err
}

func (api *editorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// RegisterCommand adds a prompt command. Built-in command names cannot
// be taken.
func (api *editorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if slices.Contains(command.Names(), name) {
		return fmt.Errorf("command %q is built in: %w", name, plugin.ErrDuplicate)
	}
	return api.app.pluginManager.RegisterCommand(name, cmdFunc)
}

func (api *editorAPI) SetStatusMessage(format string, args ...any) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
}

func (api *editorAPI) PluginConfigValue(pluginName, key string) (any, bool) {
	table, ok := api.app.cfg.Plugins[pluginName]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}

// Post wakes the main loop with an interrupt event carrying fn.
func (api *editorAPI) Post(fn func()) {
	if err := api.app.tuiManager.GetScreen().PostEvent(tcell.NewEventInterrupt(fn)); err != nil {
		logger.Warnf("app: dropping posted plugin work: %v", err)
	}
}
