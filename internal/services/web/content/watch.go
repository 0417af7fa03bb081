package content

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a file-backed Source when its file changes.
type Watcher struct {
	source   *Source
	debounce time.Duration
	watcher  *fsnotify.Watcher
	// onReload observes each reload attempt; nil means log only.
	onReload func(error)
}

// NewWatcher watches the directory holding the source file. Editors often
// replace files with a rename, so the file itself is not watched directly.
func NewWatcher(source *Source, debounce time.Duration) (*Watcher, error) {
	if source == nil || source.Path() == "" {
		return nil, errors.New("content watcher requires a file-backed source")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(source.Path())); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{source: source, debounce: debounce, watcher: fsw}, nil
}

// Run blocks until ctx is done or the watcher fails, reloading the source
// after each burst of changes settles. It returns only after any reload it
// started has finished.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	target := filepath.Clean(w.source.Path())
	var (
		timer    *time.Timer
		inflight sync.WaitGroup
	)
	// Each scheduled reload is released once, by Stop or by the reload.
	cancelPending := func() {
		if timer != nil && timer.Stop() {
			inflight.Done()
		}
	}
	defer func() {
		cancelPending()
		inflight.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cancelPending()
			inflight.Add(1)
			timer = time.AfterFunc(w.debounce, func() {
				defer inflight.Done()
				w.reload()
			})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("content watch error path=%s err=%v", target, err)
		}
	}
}

func (w *Watcher) reload() {
	err := w.source.Reload()
	if err != nil {
		log.Printf("content reload failed path=%s err=%v", w.source.Path(), err)
	} else {
		log.Printf("content reloaded path=%s", w.source.Path())
	}
	if w.onReload != nil {
		w.onReload(err)
	}
}
