package ingest

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events an editor or browser emits
// while rewriting a file.
const DefaultDebounce = 250 * time.Millisecond

// Loader is what the watcher triggers.
type Loader interface {
	Load(path string)
}

// Watcher reloads a file through a Loader whenever it is written or
// recreated. It watches the parent directory so that files replaced by
// rename are still seen.
type Watcher struct {
	loader   Loader
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu   sync.Mutex
	path string
	dir  string

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher starts an idle watcher. Call Watch to pick the file.
func NewWatcher(l Loader, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		loader:   l,
		watcher:  fw,
		debounce: debounce,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.processEvents()
	return w, nil
}

// Watch switches the watched file to path.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if abs == w.path {
		return nil
	}
	if w.dir != "" && w.dir != dir {
		if err := w.watcher.Remove(w.dir); err != nil {
			log.Printf("watch: removing %s: %v", w.dir, err)
		}
	}
	if w.dir != dir {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	w.path, w.dir = abs, dir
	return nil
}

// Path returns the watched file, or "" before the first Watch.
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var pending string

	for {
		select {
		case <-w.done:
			timer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != w.Path() {
				continue
			}
			pending = name
			timer.Reset(w.debounce)

		case <-timer.C:
			if pending != "" && pending == w.Path() {
				log.Printf("watch: %s changed, reloading", pending)
				w.loader.Load(pending)
			}
			pending = ""

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}
