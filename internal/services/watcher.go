package services

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// envWatcher watches a single .env file and invokes onChange (debounced)
// when it is written or recreated.
type envWatcher struct {
	mu            sync.Mutex
	watcher       *fsnotify.Watcher
	filePath      string
	onChange      func()
	debounceTimer *time.Timer
	stopChan      chan struct{}
	closeOnce     sync.Once
}

// newEnvWatcher starts watching the directory containing filePath.
// Watching the directory rather than the file catches editors that
// replace the file on save.
func newEnvWatcher(filePath string, onChange func()) (*envWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &envWatcher{
		watcher:  watcher,
		filePath: filePath,
		onChange: onChange,
		stopChan: make(chan struct{}),
	}

	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go w.watchLoop()
	return w, nil
}

// watchLoop handles file system events with debouncing.
func (w *envWatcher) watchLoop() {
	const debounceInterval = 200 * time.Millisecond

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about the configured file
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.mu.Lock()
				if w.debounceTimer != nil {
					w.debounceTimer.Stop()
				}
				w.debounceTimer = time.AfterFunc(debounceInterval, w.onChange)
				w.mu.Unlock()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

		case <-w.stopChan:
			return
		}
	}
}

// Close stops the watch loop and the underlying watcher.
func (w *envWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stopChan)
		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}
