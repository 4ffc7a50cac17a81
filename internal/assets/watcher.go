package assets

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"spritedemo/internal/logger"
)

// DefaultDebounce coalesces the burst of events editors emit for one save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports changes to a fixed set of files. Parent directories are
// watched rather than the files themselves so atomic rename-on-save is seen.
type Watcher struct {
	fs       *fsnotify.Watcher
	files    map[string]string // absolute path -> path as given
	debounce time.Duration
	changes  chan string
	done     chan struct{}
	wg       sync.WaitGroup
	log      *zap.Logger
}

// NewWatcher starts watching paths. Each changed path is delivered once per
// burst on Changes, spelled as it was passed in.
func NewWatcher(paths []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		fs:       fw,
		files:    make(map[string]string),
		debounce: debounce,
		changes:  make(chan string, 16),
		done:     make(chan struct{}),
		log:      logger.Named("assets"),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		w.files[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes delivers changed paths. It is closed by Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Drain returns every change currently queued without blocking.
func (w *Watcher) Drain() []string {
	var out []string
	for {
		select {
		case p, ok := <-w.changes:
			if !ok {
				return out
			}
			out = append(out, p)
		default:
			return out
		}
	}
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer close(w.changes)

	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-w.done:
			timer.Stop()
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			given, watched := w.files[filepath.Clean(event.Name)]
			if !watched {
				continue
			}
			pending[given] = true
			timer.Reset(w.debounce)

		case <-timer.C:
			for p := range pending {
				select {
				case w.changes <- p:
				case <-w.done:
					return
				}
				w.log.Debug("asset changed", zap.String("path", p))
			}
			clear(pending)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", zap.Error(err))
		}
	}
}
