// Package clip adapts the system clipboard to the editor's Clipboard
// interface.
package clip

import (
	"io"
	"log/slog"
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard uses the system clipboard while it works and an in-process
// buffer otherwise. The first system failure is logged and switches the
// clipboard to the in-process buffer for the rest of the session.
type Clipboard struct {
	mu     sync.Mutex
	local  string
	system bool
	log    *slog.Logger

	// Overridable in tests.
	readAll  func() (string, error)
	writeAll func(string) error
}

// New returns a Clipboard backed by the system clipboard when one is
// available. A nil logger discards.
func New(log *slog.Logger) *Clipboard {
	c := NewLocal(log)
	c.system = !clipboard.Unsupported
	c.readAll = clipboard.ReadAll
	c.writeAll = clipboard.WriteAll
	return c
}

// NewLocal returns a Clipboard that never touches the system clipboard.
func NewLocal(log *slog.Logger) *Clipboard {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Clipboard{log: log}
}

// System reports whether the system clipboard is in use.
func (c *Clipboard) System() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.system
}

func (c *Clipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.system {
		s, err := c.readAll()
		if err == nil {
			return s, nil
		}
		c.fallback("read", err)
	}
	return c.local, nil
}

func (c *Clipboard) WriteText(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.local = s
	if c.system {
		if err := c.writeAll(s); err != nil {
			c.fallback("write", err)
		}
	}
	return nil
}

func (c *Clipboard) fallback(op string, err error) {
	c.system = false
	c.log.Warn("system clipboard unavailable, using in-process clipboard",
		slog.String("op", op), slog.Any("err", err))
}
