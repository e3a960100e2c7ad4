package config

import (
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/logger"
)

// Watcher watches a config file and re-loads it on change. The
// interactive menu uses it so policy edits (say, flipping
// build.surname_line before a rebuild) apply without restarting.
type Watcher struct {
	configPath string
	watcher    *fsnotify.Watcher

	mu        sync.RWMutex
	callbacks []ReloadCallback

	debounceMu    sync.Mutex
	debounceTimer *time.Timer
}

// ReloadCallback receives the freshly loaded config after a change.
type ReloadCallback func(*Config)

// debouncePeriod coalesces the event bursts editors produce on save.
const debouncePeriod = 500 * time.Millisecond

// NewWatcher creates a watcher for the given config file.
func NewWatcher(configPath string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := watcher.Add(configPath); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch config file %s", configPath)
	}

	return &Watcher{
		configPath: configPath,
		watcher:    watcher,
	}, nil
}

// OnReload registers a callback to be called after each reload.
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching in the background.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if strings.HasSuffix(event.Name, ".back") {
				continue
			}
			logger.Debugw("config file changed", "file", event.Name, "op", event.Op.String())
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("config watcher error", "error", err)
		}
	}
}

// scheduleReload debounces reloads so one save triggers one reload.
func (w *Watcher) scheduleReload() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(debouncePeriod, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := LoadFromFile(w.configPath)
	if err != nil {
		logger.Warnw("config reload failed, keeping previous config",
			"path", w.configPath, "error", err)
		return
	}

	w.mu.RLock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	logger.Infow("config reloaded", "path", w.configPath)
	for _, cb := range callbacks {
		cb(cfg)
	}
}
