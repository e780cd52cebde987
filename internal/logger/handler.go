package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag"

// filteringHandler drops records based on the processed Config before
// handing them to the base handler.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// allowed applies the enabled/disabled pair for one dimension.
// Disabled wins over enabled.
func allowed(value string, enabled, disabled map[string]struct{}) bool {
	if value == "" {
		return enabled == nil
	}
	if _, found := disabled[value]; found {
		return false
	}
	if enabled != nil {
		_, found := enabled[value]
		return found
	}
	return true
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			file := strings.ToLower(filepath.Base(frame.File))
			pkg := strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
			if !allowed(pkg, h.cfg.enabledPackages, h.cfg.disabledPackages) {
				return nil
			}
			if !allowed(file, h.cfg.enabledFiles, h.cfg.disabledFiles) {
				return nil
			}
		}
	}

	var tag string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			return false
		}
		return true
	})
	if !allowed(tag, h.cfg.enabledTags, h.cfg.disabledTags) {
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.cfg)
}
