// Package logger wraps log/slog with printf-style helpers and
// tag/package/file filtering.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel is the minimum level to log ("debug", "info", "warn", "error").
	LogLevel string `toml:"level"`

	// LogFilePath is the output log file. Empty disables logging, "-" means stderr.
	LogFilePath string `toml:"file"`

	// EnabledTags only logs tagged messages with these tags (if non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags drops messages with these tags. Overrides EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// EnabledPackages only logs records from these packages (if non-empty).
	// A package is the immediate directory name of the source file, e.g. "history".
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages drops records from these packages.
	DisabledPackages []string `toml:"disabled_packages"`

	// EnabledFiles only logs records from these base file names (if non-empty).
	EnabledFiles []string `toml:"enabled_files"`
	// DisabledFiles drops records from these base file names.
	DisabledFiles []string `toml:"disabled_files"`

	level            slog.Level
	enabledTags      map[string]struct{}
	disabledTags     map[string]struct{}
	enabledPackages  map[string]struct{}
	disabledPackages map[string]struct{}
	enabledFiles     map[string]struct{}
	disabledFiles    map[string]struct{}
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{LogLevel: "info"}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// process turns the string lists into lookup sets.
func (c *Config) process() {
	c.level = ParseLevel(c.LogLevel)
	c.enabledTags = toSet(c.EnabledTags)
	c.disabledTags = toSet(c.DisabledTags)
	c.enabledPackages = toSet(c.EnabledPackages)
	c.disabledPackages = toSet(c.DisabledPackages)
	c.enabledFiles = toSet(c.EnabledFiles)
	c.disabledFiles = toSet(c.DisabledFiles)
}

// toSet lowercases items into a set; nil when there is nothing to filter on.
func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			set[item] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
