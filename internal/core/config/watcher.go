package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const watchDebounce = 100 * time.Millisecond

// Reload is delivered when the config file changes. Err is set when the new
// file could not be loaded; Config is nil in that case.
type Reload struct {
	Config *Config
	Err    error
}

// Watcher reloads a config file whenever it is written.
type Watcher struct {
	path    string
	dataDir string
	watcher *fsnotify.Watcher
	out     chan Reload

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches configPath. The parent directory is watched so that
// editors which replace the file on save are still seen.
func NewWatcher(configPath, dataDir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(configPath)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(configPath), err)
	}

	return &Watcher{
		path:    filepath.Clean(configPath),
		dataDir: dataDir,
		watcher: fw,
		out:     make(chan Reload, 1),
	}, nil
}

// Changes returns the channel reloads are published on. It is closed when Run
// returns.
func (w *Watcher) Changes() <-chan Reload {
	return w.out
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer func() {
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		_ = w.watcher.Close()
		close(w.out)
	}()

	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.debounce(fire)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Str("path", w.path).Msg("config watcher error")
		case <-fire:
			cfg, err := Load(w.path, w.dataDir)
			r := Reload{Config: cfg, Err: err}
			if err != nil {
				r.Config = nil
				log.Warn().Err(err).Str("path", w.path).Msg("config reload failed")
			} else {
				log.Info().Str("path", w.path).Msg("config reloaded")
			}
			w.publish(ctx, r)
		}
	}
}

func (w *Watcher) debounce(fire chan<- struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	})
}

// publish replaces any reload the reader has not consumed yet; only the
// latest state matters.
func (w *Watcher) publish(ctx context.Context, r Reload) {
	for {
		select {
		case w.out <- r:
			return
		case <-ctx.Done():
			return
		default:
			select {
			case <-w.out:
			default:
			}
		}
	}
}
