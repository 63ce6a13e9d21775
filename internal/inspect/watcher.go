package inspect

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces bursts of filesystem events (editors typically
// fire several per save) into a single rescan.
const defaultDebounce = 100 * time.Millisecond

// Watcher monitors a routes tree and invokes a callback after changes
// settle. Grouping/private directories (leading "_" or ".") are not watched,
// matching the scanner's pruning rule.
type Watcher struct {
	root     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func()

	stopOnce sync.Once
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for the routes tree rooted at root.
func NewWatcher(root string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	return &Watcher{
		root:     root,
		watcher:  fsw,
		debounce: defaultDebounce,
		onChange: onChange,
		stopChan: make(chan struct{}),
	}, nil
}

// Start registers every visible directory under the root and begins
// watching in the background.
func (w *Watcher) Start() error {
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && isHiddenDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", w.root, err)
	}

	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() {
		close(w.stopChan)
	})
	w.wg.Wait()
	return w.watcher.Close()
}

// loop drains filesystem events, debounces them, and fires the callback.
// Newly created directories are added to the watch set so files appearing
// in fresh route directories are still seen.
func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if isHiddenPath(w.root, event.Name) {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				// Errors here mean the entry vanished already or is
				// not a directory; both are fine to ignore.
				w.watcher.Add(event.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.onChange()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isHiddenDir reports whether a directory name is outside the scan, using
// the same rule as the scanner.
func isHiddenDir(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}

// isHiddenPath reports whether any path segment below the root is hidden.
func isHiddenPath(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if seg != "." && seg != ".." && isHiddenDir(seg) {
			return true
		}
	}
	return false
}
