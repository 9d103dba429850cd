package backend

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/hovermenu/internal/i18n"
	"github.com/atomicstack/hovermenu/internal/logging"
	"github.com/atomicstack/hovermenu/internal/menu"
	"github.com/fsnotify/fsnotify"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindMenu Kind = iota
	KindLabels
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindLabels:
		return "labels"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event conveys a reloaded file or an error from a poll. Data is a
// *menu.Tree for KindMenu and an *i18n.Catalog for KindLabels.
type Event struct {
	Kind Kind
	Path string
	Data interface{}
	Err  error
}

// Watcher polls the menu and label files at a fixed interval and publishes
// an event whenever their content changes. Filesystem notifications, when
// available, trigger an early poll.
type Watcher struct {
	menuPath   string
	labelsPath string
	interval   time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	nudges map[string]chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for the given files. An empty path disables
// polling for that kind. The first poll only records the current content;
// events are emitted for later changes.
func NewWatcher(menuPath, labelsPath string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		menuPath:   menuPath,
		labelsPath: labelsPath,
		interval:   interval,
		ctx:        ctx,
		cancel:     cancel,
		events:     make(chan Event, 16),
		nudges:     make(map[string]chan struct{}),
	}

	if menuPath != "" {
		w.start(KindMenu, menuPath, func(data []byte) (interface{}, error) {
			format, err := menu.FormatForPath(menuPath)
			if err != nil {
				return nil, err
			}
			return menu.Parse(data, format)
		})
	}
	if labelsPath != "" {
		w.start(KindLabels, labelsPath, func(data []byte) (interface{}, error) {
			return i18n.ParseCatalog(data, i18n.FallbackLocale)
		})
	}

	w.notify()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// notify subscribes to the directories holding the watched files. Editors
// often replace a file instead of writing it, so the directory is watched
// rather than the file. Failure leaves the watcher on plain polling.
func (w *Watcher) notify() {
	if len(w.nudges) == 0 {
		return
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Error(fmt.Errorf("file notifications unavailable: %w", err))
		return
	}
	dirs := make(map[string]struct{})
	for path := range w.nudges {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	watching := 0
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			logging.Error(fmt.Errorf("watch %s: %w", dir, err))
			continue
		}
		watching++
	}
	if watching == 0 {
		_ = fsw.Close()
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer fsw.Close()
		for {
			select {
			case <-w.ctx.Done():
				return
			case evt, ok := <-fsw.Events:
				if !ok {
					return
				}
				if nudge, found := w.nudges[filepath.Clean(evt.Name)]; found {
					select {
					case nudge <- struct{}{}:
					default:
					}
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logging.Error(fmt.Errorf("file notifications: %w", err))
			}
		}
	}()
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current read completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) start(kind Kind, path string, decode func([]byte) (interface{}, error)) {
	nudge := make(chan struct{}, 1)
	w.nudges[filepath.Clean(path)] = nudge
	throttle := newThrottle(250 * time.Millisecond)
	var (
		last    []byte
		lastErr string
		primed  bool
	)
	w.wg.Add(1)
	go w.poll(kind, path, nudge, func(ctx context.Context) (interface{}, bool, error) {
		if err := throttle.wait(ctx); err != nil {
			return nil, false, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			err = fmt.Errorf("reading %s: %w", path, err)
			// report a failing read once, not on every tick
			if err.Error() == lastErr {
				return nil, false, nil
			}
			lastErr, last, primed = err.Error(), nil, true
			return nil, true, err
		}
		lastErr = ""
		if primed && bytes.Equal(data, last) {
			return nil, false, nil
		}
		first := !primed
		last, primed = data, true
		if first {
			return nil, false, nil
		}
		value, err := decode(data)
		if err != nil {
			return nil, true, fmt.Errorf("%s: %w", path, err)
		}
		return value, true, nil
	})
}

func (w *Watcher) poll(kind Kind, path string, nudge <-chan struct{}, fetch func(context.Context) (interface{}, bool, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, changed, err := fetch(w.ctx)
		if !changed {
			return true
		}
		evt := Event{Kind: kind, Path: path, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		case <-nudge:
			if !emit() {
				return
			}
		}
	}
}
