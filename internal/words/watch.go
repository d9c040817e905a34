package words

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads a file-backed List whenever the file changes on disk.
type Watcher struct {
	// OnReload, if set, is called after every reload attempt.
	OnReload func(error)

	list    *List
	path    string
	delay   time.Duration
	watcher *fsnotify.Watcher
	mu      sync.Mutex
	timer   *time.Timer
}

// NewWatcher watches the file l was loaded from. The parent directory is
// watched so editors that replace the file by rename are still seen.
func NewWatcher(l *List, delay time.Duration) (*Watcher, error) {
	path := l.Path()
	if path == "" {
		return nil, errors.New("word list is not file backed")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	log.Debug().Str("path", abs).Msg("watch word list")

	return &Watcher{
		list:    l,
		path:    abs,
		delay:   delay,
		watcher: fw,
	}, nil
}

// Run handles file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	defer w.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				log.Debug().Msg("channel closed")
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				log.Debug().Msg("channel closed")
				return
			}
			log.Error().Err(err).Msg("received error")
		}
	}
}

func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.reload)
}

func (w *Watcher) reload() {
	err := w.list.Reload(w.path)
	if err != nil {
		log.Error().Err(err).Str("path", w.path).Msg("reload word list")
	} else {
		log.Info().
			Str("path", w.path).
			Int("words", w.list.Len()).
			Msg("reload word list")
	}
	if w.OnReload != nil {
		w.OnReload(err)
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
