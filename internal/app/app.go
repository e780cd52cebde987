package app

import (
	"fmt"
	"runtime/debug"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/editor"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/modehandler"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/bethropolis/quill/internal/tui"
	"github.com/bethropolis/quill/plugins/autosave"
	"github.com/bethropolis/quill/plugins/wordcount"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the components and main loop of the editor.
type App struct {
	tuiManager    *tui.TUI
	editor        *editor.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	modeHandler   *modehandler.ModeHandler
	pluginManager *plugin.Manager
	cfg           *config.Config
	area          tui.Area
}

// NewApp creates the application on the terminal and opens files.
func NewApp(cfg *config.Config, files []string) (*App, error) {
	colors := cfg.Theme.Colors()
	tuiManager, err := tui.New(tui.StylesFromColors(colors))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, tuiManager, files)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

func newApp(cfg *config.Config, tuiManager *tui.TUI, files []string) (*App, error) {
	eventManager := event.NewManager()
	statusBar := statusbar.New(tui.StatusConfig(cfg.Theme.Colors()))

	width, height := tuiManager.Size()
	area := tui.ComputeArea(width, height, 1, cfg.Editor.Gutter)
	ed := editor.NewEditor(area.Width, area.Height,
		editor.WithEvents(eventManager),
		editor.WithBufferOptions(core.WithMaxHistory(cfg.Editor.MaxHistory)),
	)

	a := &App{
		tuiManager:    tuiManager,
		editor:        ed,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		cfg:           cfg,
		area:          area,
	}
	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         ed,
		InputProcessor: input.NewInputProcessor(),
		StatusBar:      statusBar,
		Plugins:        a.pluginManager,
	})
	a.subscribe()
	a.registerPlugins()

	for _, path := range files {
		if err := ed.Open(path); err != nil {
			a.pluginManager.ShutdownPlugins()
			return nil, err
		}
	}
	return a, nil
}

// registerPlugins registers the built-in plugins and initialises them.
func (a *App) registerPlugins() {
	for _, p := range []plugin.Plugin{wordcount.New(), autosave.New()} {
		if err := a.pluginManager.Register(p); err != nil {
			logger.Errorf("app: %v", err)
		}
	}
	a.pluginManager.InitializePlugins(newEditorAPI(a))
}

// Run starts the main loop and returns when the user quits. A panic
// restores the terminal before it propagates.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()
	defer func() {
		if r := recover(); r != nil {
			a.tuiManager.Close()
			logger.Errorf("app: panic: %v\n%s", r, debug.Stack())
			panic(r)
		}
	}()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go a.tuiManager.GetScreen().ChannelEvents(events, quit)

	a.statusBar.SetTemporaryMessage("quill - Ctrl+S save | Ctrl+E command | Esc quit")
	a.redraw()
	a.eventManager.Dispatch(event.TypeAppReady, nil)

	for ev := range events {
		a.handleEvent(ev)
		if a.modeHandler.ShouldQuit() {
			a.eventManager.Dispatch(event.TypeAppQuit, nil)
			if names := a.editor.Modified(); len(names) > 0 {
				logger.Warnf("app: exiting with unsaved changes in %v", names)
			}
			logger.Infof("app: exiting")
			return nil
		}
		a.redraw()
	}
	return nil
}

// handleEvent applies one terminal event.
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
	case *tcell.EventKey:
		a.modeHandler.HandleKeyEvent(ev)
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
		}
	}
}

// fitArea recomputes the screen split and resizes the buffers if the text
// area changed. The gutter grows with the active file's line count.
func (a *App) fitArea() {
	width, height := a.tuiManager.Size()
	lines := a.editor.Active().Buf.Document().LineCount()
	area := tui.ComputeArea(width, height, lines, a.cfg.Editor.Gutter)
	if area.Width != a.area.Width || area.Height != a.area.Height {
		logger.DebugTagf("draw", "text area %dx%d -> %dx%d", a.area.Width, a.area.Height, area.Width, area.Height)
		a.editor.Resize(area.Width, area.Height)
	}
	a.area = area
	a.modeHandler.SetPageSize(area.Height)
}
