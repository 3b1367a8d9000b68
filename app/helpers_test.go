package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func newTestModel(t *testing.T, mut func(*Config)) Model {
	t.Helper()
	cfg := DefaultConfig()
	cfg.WatchFiles = false
	cfg.Clipboard = &memClipboard{}
	cfg.Styles = Styles{}
	if mut != nil {
		mut(&cfg)
	}
	m := New(cfg)
	return send(m, tea.WindowSizeMsg{Width: 60, Height: 12})
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.update(msg)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func openFileModel(t *testing.T, content string, mut func(*Config)) (Model, string) {
	t.Helper()
	path := writeFile(t, filepath.Join(t.TempDir(), "notes.txt"), content)
	m := newTestModel(t, func(c *Config) {
		c.InitialPath = path
		if mut != nil {
			mut(c)
		}
	})
	return m, path
}

func requireDialog(t *testing.T, m Model, message string) *dialog {
	t.Helper()
	if m.dialog == nil {
		t.Fatalf("expected dialog %q, got none", message)
	}
	if m.dialog.message != message {
		t.Fatalf("dialog message: got %q, want %q", m.dialog.message, message)
	}
	return m.dialog
}

func requireNoDialog(t *testing.T, m Model) {
	t.Helper()
	if m.dialog != nil {
		t.Fatalf("unexpected dialog %q", m.dialog.message)
	}
}
