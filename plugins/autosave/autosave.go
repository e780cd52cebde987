// Package autosave periodically writes the active buffer when it has a
// file name and unsaved changes.
package autosave

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/plugin"
)

var _ plugin.Plugin = (*AutoSave)(nil)

const (
	defaultEnabled  = false
	defaultInterval = 1 * time.Minute
)

// AutoSave is the autosave plugin. It is configured from
// [plugins.autosave] with "enabled" (bool) and "interval" (duration
// string such as "30s").
type AutoSave struct {
	api plugin.EditorAPI

	mutex    sync.RWMutex
	enabled  bool
	interval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates the plugin with defaults.
func New() *AutoSave {
	return &AutoSave{
		enabled:  defaultEnabled,
		interval: defaultInterval,
	}
}

// Name returns "autosave".
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads the configuration and starts the saver loop when
// enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	name := p.Name()

	p.mutex.Lock()
	if v, ok := api.PluginConfigValue(name, "enabled"); ok {
		b, isBool := v.(bool)
		if !isBool {
			p.mutex.Unlock()
			return fmt.Errorf("%s: 'enabled' must be a boolean, got %T", name, v)
		}
		p.enabled = b
	}
	if v, ok := api.PluginConfigValue(name, "interval"); ok {
		d, err := parseInterval(v)
		if err != nil {
			p.mutex.Unlock()
			return fmt.Errorf("%s: %w", name, err)
		}
		p.interval = d
	}
	enabled, interval := p.enabled, p.interval
	p.mutex.Unlock()

	logger.Infof("%s: enabled=%v interval=%v", name, enabled, interval)
	if enabled {
		p.stopChan = make(chan struct{})
		p.wg.Add(1)
		go p.saverLoop(interval)
	}
	return nil
}

func parseInterval(v any) (time.Duration, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("'interval' must be a duration string, got %T", v)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid 'interval' %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("'interval' must be positive, got %q", s)
	}
	return d, nil
}

// Shutdown stops the saver loop and waits for it.
func (p *AutoSave) Shutdown() error {
	if p.stopChan != nil {
		close(p.stopChan)
		p.wg.Wait()
		p.stopChan = nil
	}
	return nil
}

// Enabled reports whether the saver loop was started.
func (p *AutoSave) Enabled() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.enabled
}

// Interval returns the configured interval.
func (p *AutoSave) Interval() time.Duration {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.interval
}

// saverLoop ticks until stopped. Saving is posted to the main loop since
// the editor is not safe for concurrent use.
func (p *AutoSave) saverLoop(interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.api.Post(p.saveIfModified)
		case <-p.stopChan:
			return
		}
	}
}

// saveIfModified writes the active buffer if it is named and modified.
func (p *AutoSave) saveIfModified() {
	if !p.api.IsBufferModified() {
		return
	}
	path := p.api.BufferFilePath()
	if path == "" {
		logger.Debugf("%s: active buffer has no name, skipping", p.Name())
		return
	}
	if err := p.api.SaveBuffer(); err != nil {
		logger.Errorf("%s: saving %q: %v", p.Name(), path, err)
		p.api.SetStatusMessage("autosave failed: %v", err)
		return
	}
	logger.Debugf("%s: saved %q", p.Name(), path)
}
