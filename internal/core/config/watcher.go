package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const debounceDelay = 100 * time.Millisecond

// Watcher reloads the config file when it changes on disk and publishes each
// valid reload on Changes. Invalid edits are logged and skipped.
type Watcher struct {
	path    string
	dataDir string
	log     zerolog.Logger
	watcher *fsnotify.Watcher
	out     chan *Config

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher starts watching configPath. The parent directory is watched
// rather than the file so editors that replace the file on save are seen.
func NewWatcher(configPath, dataDir string, logger zerolog.Logger) (*Watcher, error) {
	path, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:    path,
		dataDir: dataDir,
		log:     logger,
		watcher: fsw,
		out:     make(chan *Config, 1),
		ctx:     ctx,
		cancel:  cancel,
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Changes delivers reloaded configs. The channel is closed by Close.
func (w *Watcher) Changes() <-chan *Config {
	return w.out
}

// Close stops watching and closes the Changes channel.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	close(w.out)
	return err
}

// run processes filesystem events from fsnotify.
func (w *Watcher) run() {
	defer w.wg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("config watcher error")
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path, w.dataDir)
	if err != nil {
		w.log.Warn().Err(err).Str("path", w.path).Msg("config reload skipped")
		return
	}

	w.log.Info().Str("path", w.path).Msg("config reloaded")

	select {
	case w.out <- cfg:
	case <-w.ctx.Done():
	}
}
