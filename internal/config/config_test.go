package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("quill", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	_, err := f.Parse(args)
	require.NoError(t, err)
	return f
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, undecoded, err := Load(filepath.Join(t.TempDir(), "none.toml"), nil)
	require.NoError(t, err)
	assert.Empty(t, undecoded)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
level = "debug"
disabled_tags = ["layout"]

[editor]
max_history = 50
gutter = false

[theme]
text = "silver"

[extra]
key = 1
`)
	cfg, undecoded, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"layout"}, cfg.Logger.DisabledTags)
	assert.Equal(t, 50, cfg.Editor.MaxHistory)
	assert.False(t, cfg.Editor.Gutter)
	assert.Empty(t, cfg.Logger.EnabledTags, "missing keys keep defaults")
	assert.Equal(t, "silver", cfg.Theme.Text)
	assert.Equal(t, "yellow", cfg.Theme.GutterCurrent)
	assert.Contains(t, undecoded, "extra.key")
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeConfig(t, "[editor\nmax_history = ")
	_, _, err := Load(path, nil)
	assert.Error(t, err)
}

func TestValidateResetsBadValues(t *testing.T) {
	path := writeConfig(t, "[logger]\nlevel = \"\"\n[editor]\nmax_history = 1\n")
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, "[logger]\nlevel = \"warn\"\n[editor]\nmax_history = 50\n")
	flags := newTestFlags(t,
		"-loglevel", "debug",
		"-log-tags", "history, layout,",
		"-maxhistory", "20",
		"-nogutter",
		"a.txt", "b.txt",
	)
	assert.Equal(t, []string{"a.txt", "b.txt"}, flags.fs.Args())

	cfg, _, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"history", "layout"}, cfg.Logger.EnabledTags)
	assert.Equal(t, 20, cfg.Editor.MaxHistory)
	assert.False(t, cfg.Editor.Gutter)
}

func TestUnsetFlagsKeepFileValues(t *testing.T) {
	path := writeConfig(t, "[editor]\nmax_history = 50\n")
	cfg, _, err := Load(path, newTestFlags(t))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Editor.MaxHistory)
	assert.True(t, cfg.Editor.Gutter)
}

func TestThemeColors(t *testing.T) {
	colors := ThemeConfig{Text: "red", StatusBg: "#102030", Prompt: "no-such-colour"}.Colors()

	assert.Equal(t, tcell.ColorRed, colors.Text)
	assert.Equal(t, tcell.NewRGBColor(0x10, 0x20, 0x30), colors.StatusBg)
	assert.Equal(t, tcell.ColorDefault, colors.Prompt)
	assert.Equal(t, tcell.ColorDefault, colors.Gutter)
}

func TestPluginTables(t *testing.T) {
	path := writeConfig(t, `
[plugins.autosave]
enabled = true
interval = "30s"
`)
	cfg, undecoded, err := Load(path, nil)
	require.NoError(t, err)
	assert.Empty(t, undecoded)
	assert.Equal(t, map[string]any{"enabled": true, "interval": "30s"}, cfg.Plugins["autosave"])
}
