// Package watch reports changes made by other programs to one file.
package watch

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

type Op uint8

const (
	Modify Op = 1 << iota
	Remove
	Rename
	Create
)

func (op Op) Has(o Op) bool { return op&o != 0 }

func (op Op) String() string {
	var s string
	for _, n := range []struct {
		op   Op
		name string
	}{{Create, "create"}, {Modify, "modify"}, {Remove, "remove"}, {Rename, "rename"}} {
		if op.Has(n.op) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// Event is a change to the watched file, or a watcher error when Err is set.
type Event struct {
	Op   Op
	Name string
	Err  error
}

// Watcher follows a single file. It watches the parent directory so the file
// is still followed after programs that save by rename replace it.
//
// Events are coalesced: while an event is pending, later ones are dropped.
type Watcher struct {
	w      *fsnotify.Watcher
	events chan Event
	done   chan struct{}

	mu   sync.Mutex
	path string
	dir  string
}

func New() (*Watcher, error) {
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		w:      w0,
		events: make(chan Event, 1),
		done:   make(chan struct{}),
	}
	go w.eventLoop()
	return w, nil
}

// Events is closed after Close.
func (w *Watcher) Events() <-chan Event { return w.events }

// Watch follows path instead of the previously watched file. An empty path
// stops watching.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		path = abs
	}
	if path == w.path {
		return nil
	}

	dir := ""
	if path != "" {
		dir = filepath.Dir(path)
	}
	if dir != w.dir {
		if w.dir != "" {
			_ = w.w.Remove(w.dir)
		}
		if dir != "" {
			if err := w.w.Add(dir); err != nil {
				w.path, w.dir = "", ""
				return err
			}
		}
	}
	w.path, w.dir = path, dir
	return nil
}

// Path returns the absolute path being watched, or "".
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.w.Close()
}

func (w *Watcher) eventLoop() {
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return

		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.send(Event{Err: err})

		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.Path() {
				continue
			}
			if op := convertOp(ev.Op); op != 0 {
				w.send(Event{Op: op, Name: ev.Name})
			}
		}
	}
}

func (w *Watcher) send(ev Event) {
	select {
	case w.events <- ev:
	default:
	}
}

func convertOp(o fsnotify.Op) Op {
	var op Op
	if o.Has(fsnotify.Create) {
		op |= Create
	}
	if o.Has(fsnotify.Write) {
		op |= Modify
	}
	if o.Has(fsnotify.Remove) {
		op |= Remove
	}
	if o.Has(fsnotify.Rename) {
		op |= Rename
	}
	return op
}
