package editor

import (
	"errors"
	"strings"
	"testing"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

var errNoClipboard = errors.New("clipboard unavailable")

type brokenClipboard struct{}

func (brokenClipboard) ReadText() (string, error) { return "", errNoClipboard }
func (brokenClipboard) WriteText(string) error    { return errNoClipboard }

// viewLines returns the rendered rows without the viewport's right padding.
func viewLines(t *testing.T, m Model) []string {
	t.Helper()
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}
