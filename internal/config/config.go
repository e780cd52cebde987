package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Theme  ThemeConfig   `toml:"theme"`

	// Plugins holds one table per plugin, e.g. [plugins.autosave].
	Plugins map[string]map[string]any `toml:"plugins"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	MaxHistory int  `toml:"max_history"` // undo snapshots kept per buffer
	Gutter     bool `toml:"gutter"`
}

// ThemeConfig holds colour names understood by tcell.GetColor, such as
// "yellow" or "#ffaa00". Empty means the terminal default.
type ThemeConfig struct {
	Text          string `toml:"text"`
	Gutter        string `toml:"gutter"`
	GutterCurrent string `toml:"gutter_current"`
	StatusFg      string `toml:"status_fg"`
	StatusBg      string `toml:"status_bg"`
	Prompt        string `toml:"prompt"`
}

// Colors is a ThemeConfig resolved to tcell colours.
type Colors struct {
	Text, Gutter, GutterCurrent tcell.Color
	StatusFg, StatusBg          tcell.Color
	Prompt                      tcell.Color
}

// Colors resolves the colour names. Unknown names fall back to the
// terminal default and are logged.
func (t ThemeConfig) Colors() Colors {
	return Colors{
		Text:          color("text", t.Text),
		Gutter:        color("gutter", t.Gutter),
		GutterCurrent: color("gutter_current", t.GutterCurrent),
		StatusFg:      color("status_fg", t.StatusFg),
		StatusBg:      color("status_bg", t.StatusBg),
		Prompt:        color("prompt", t.Prompt),
	}
}

func color(key, name string) tcell.Color {
	if name == "" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		logger.Warnf("config: theme.%s: unknown colour %q", key, name)
	}
	return c
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			MaxHistory: DefaultMaxHistory,
			Gutter:     DefaultGutter,
		},
		Theme: ThemeConfig{
			Gutter:        "gray",
			GutterCurrent: "yellow",
			StatusFg:      "black",
			StatusBg:      "teal",
			Prompt:        "white",
		},
		Plugins: make(map[string]map[string]any),
	}
}

// DefaultPath returns the config file location under the user config
// directory, or "" when that directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFile decodes filePath over cfg, so keys missing from the file keep
// their current values. A missing file is not an error. It returns the
// keys it did not recognise.
func loadFile(filePath string, cfg *Config) ([]string, error) {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.MaxHistory < 2 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Plugins == nil {
		c.Plugins = make(map[string]map[string]any)
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds the configuration from defaults, the config file and flag
// overrides, in that order. configFilePath empty means DefaultPath.
// Unrecognised keys are returned so they can be logged once the logger is
// up.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}
	var undecoded []string
	if path != "" {
		var err error
		undecoded, err = loadFile(path, cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, undecoded, nil
}
