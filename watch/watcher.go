// Package watch re-runs conversions when configuration or input files
// change on disk.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const eventChannelBuffer = 64

// Event is a debounced change notification for one watched file.
type Event struct {
	// Path is the absolute path of the changed file.
	Path string
	// Operation is the type of change.
	Operation Operation
}

// Operation indicates the type of file change.
type Operation string

// OpModify and OpDelete enumerate the change types a conversion reacts to.
// Creations of watched files surface as modifications.
const (
	OpModify Operation = "modify"
	OpDelete Operation = "delete"
)

// Watcher watches an explicit set of files and emits debounced change
// events. Editors that write via rename are covered by watching each
// file's parent directory rather than the file itself.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	// watched maps absolute file paths to their last content hash, so
	// touch-without-change writes do not trigger a rebuild.
	watchedMu sync.Mutex
	watched   map[string]string

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	events chan Event

	droppedEvents atomic.Int64
}

// New creates a watcher over the given files. Every path must exist; its
// parent directory is registered with fsnotify.
func New(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	w := &Watcher{
		watcher:  fsw,
		logger:   logger,
		debounce: debounce,
		watched:  make(map[string]string),
		pending:  make(map[string]fsnotify.Op),
		events:   make(chan Event, eventChannelBuffer),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		content, err := os.ReadFile(abs)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.watched[abs] = contentHash(content)
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Events returns the channel of debounced change events. It is closed when
// the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins processing filesystem events until the context is canceled.
func (w *Watcher) Start(ctx context.Context) {
	go w.processEvents(ctx)
	w.logger.Info("file watcher started",
		"files", len(w.watched),
		"debounce", w.debounce)
}

// Stop stops the watcher. The events channel is closed by the processing
// goroutine when it exits.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// DroppedEvents returns how many events were dropped because the events
// channel was full.
func (w *Watcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}

	w.watchedMu.Lock()
	_, tracked := w.watched[abs]
	w.watchedMu.Unlock()
	if !tracked {
		return
	}

	w.pendingMu.Lock()
	w.pending[abs] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("change detected", "path", abs, "op", event.Op.String())
}

// flushPending turns the accumulated raw events into at most one Event per
// file, skipping writes that left the content unchanged.
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range toProcess {
		if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
			// Rename may be an atomic editor save; if the file is back,
			// treat it as a modification.
			if _, err := os.Stat(path); err != nil {
				w.sendEvent(Event{Path: path, Operation: OpDelete})
				continue
			}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				w.sendEvent(Event{Path: path, Operation: OpDelete})
			} else {
				w.logger.Warn("failed to read changed file", "path", path, "error", err)
			}
			continue
		}

		newHash := contentHash(content)
		w.watchedMu.Lock()
		oldHash := w.watched[path]
		w.watched[path] = newHash
		w.watchedMu.Unlock()
		if oldHash == newHash {
			continue
		}

		w.sendEvent(Event{Path: path, Operation: OpModify})
	}
}

func (w *Watcher) sendEvent(event Event) {
	select {
	case w.events <- event:
		w.logger.Debug("sent watch event", "path", event.Path, "op", event.Operation)
	default:
		dropped := w.droppedEvents.Add(1)
		w.logger.Warn("event channel full, dropping event",
			"path", event.Path,
			"total_dropped", dropped)
	}
}

func contentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
