package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	EnableTags     *string
	DisableTags    *string
	EnablePkgs     *string
	DisablePkgs    *string
	MaxHistory     *int
	NoGutter       *bool
}

// NewFlags defines the command-line flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:             fs,
		ConfigFilePath: fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <config dir>/%s/%s)", AppName, DefaultConfigFileName)),
		Version:        fs.Bool("version", false, "Show version information and exit"),
		LogLevel:       fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file"),
		LogFilePath:    fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file"),
		EnableTags:     fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file"),
		DisableTags:    fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file"),
		EnablePkgs:     fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file"),
		DisablePkgs:    fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file"),
		MaxHistory:     fs.Int("maxhistory", 0, "Undo snapshots kept per buffer - Overrides config file"),
		NoGutter:       fs.Bool("nogutter", false, "Hide the line number gutter"),
	}
}

// Parse parses args and returns the remaining non-flag arguments (the
// files to open).
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides updates cfg with the flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "maxhistory":
			if *f.MaxHistory > 0 {
				cfg.Editor.MaxHistory = *f.MaxHistory
			}
		case "nogutter":
			cfg.Editor.Gutter = !*f.NoGutter
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
