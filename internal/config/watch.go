package config

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/daviddao/hlbar/internal/logging"
)

// Watcher monitors the config file and the icon directory for changes.
type Watcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	iconDir    string
	debounce   time.Duration
	log        *slog.Logger
	onChange   chan struct{}
	done       chan struct{}
}

// NewWatcher creates a watcher for configPath and iconDir; either may be
// empty but not both. It watches the config file's directory so editors that
// replace the file on save are still seen.
func NewWatcher(configPath, iconDir string, log *slog.Logger) (*Watcher, error) {
	if configPath == "" && iconDir == "" {
		return nil, errors.New("nothing to watch")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	var dirs []string
	if configPath != "" {
		configPath = filepath.Clean(configPath)
		dirs = append(dirs, filepath.Dir(configPath))
	}
	if iconDir != "" {
		iconDir = filepath.Clean(iconDir)
		if len(dirs) == 0 || dirs[0] != iconDir {
			dirs = append(dirs, iconDir)
		}
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:    w,
		configPath: configPath,
		iconDir:    iconDir,
		debounce:   100 * time.Millisecond,
		log:        logging.Component(log, "watch"),
		onChange:   make(chan struct{}, 1),
		done:       make(chan struct{}),
	}

	go watcher.loop()
	return watcher, nil
}

// Changes returns a channel that receives a signal when the config or an
// icon changes.
func (w *Watcher) Changes() <-chan struct{} {
	return w.onChange
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// relevant reports whether an event touches the config file or an icon.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	name := filepath.Clean(event.Name)
	if w.configPath != "" && name == w.configPath {
		return event.Op&(fsnotify.Write|fsnotify.Create) != 0
	}
	if w.iconDir != "" && filepath.Dir(name) == w.iconDir &&
		strings.EqualFold(filepath.Ext(name), ".png") {
		return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
	}
	return false
}

func (w *Watcher) loop() {
	var timer *time.Timer
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("file changed", "path", event.Name, "op", event.Op.String())
			// Debounce: reset timer on each write.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case w.onChange <- struct{}{}:
				default: // already signaled, skip
				}
			})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}
