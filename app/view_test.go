package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestView_Chrome(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, runes("hello"))

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Fatalf("view height: got %d, want 12", len(lines))
	}
	if !strings.Contains(lines[0], "Simple Notepad - Untitled") {
		t.Fatalf("title bar: got %q", lines[0])
	}
	for _, want := range []string{"File", "Edit", "Format"} {
		if !strings.Contains(lines[1], want) {
			t.Fatalf("menu bar missing %q: %q", want, lines[1])
		}
	}
	if !strings.HasPrefix(lines[2], "hello") {
		t.Fatalf("editor row: got %q", lines[2])
	}
	status := lines[len(lines)-1]
	if !strings.Contains(status, "Ready | Ln 1, Col 6") || !strings.Contains(status, "Monospaced 14") {
		t.Fatalf("status bar: got %q", status)
	}
}

func TestView_StatusShowsNoWrap(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, alt("z"))
	lines := strings.Split(m.View(), "\n")
	if status := lines[len(lines)-1]; !strings.Contains(status, "No Wrap") {
		t.Fatalf("status bar: got %q", status)
	}
}

func TestView_DialogOverlaysEditor(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, runes("draft"), keyMsg(tea.KeyCtrlQ))
	view := m.View()
	for _, want := range []string{"Unsaved Changes", msgSaveBeforeClose, "Yes", "No", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Fatalf("dialog view missing %q:\n%s", want, view)
		}
	}
	if !strings.HasPrefix(strings.Split(view, "\n")[2], "draft") {
		t.Fatalf("editor text hidden by dialog:\n%s", view)
	}
}

func TestView_MenuDropdownOverlaysEditor(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, runes("abcdefghijklmnopqrstuvwxyz0123456789"), keyMsg(tea.KeyF10))

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Fatalf("view height: got %d, want 12", len(lines))
	}
	row := lines[2]
	if !strings.Contains(row, "New") {
		t.Fatalf("dropdown missing from first editor row: %q", row)
	}
	if strings.HasPrefix(row, "abc") {
		t.Fatalf("dropdown should cover the start of the row: %q", row)
	}
	if !strings.Contains(row, "0123456789") {
		t.Fatalf("text right of the dropdown was lost: %q", row)
	}
	if !strings.Contains(lines[3], "Open") || !strings.Contains(lines[7], "Exit") {
		t.Fatalf("dropdown rows:\n%s", strings.Join(lines[2:8], "\n"))
	}
}

func TestView_DialogIsCentered(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, runes("draft"), keyMsg(tea.KeyCtrlQ))

	lines := strings.Split(m.View(), "\n")
	found := false
	for _, l := range lines[2 : len(lines)-1] {
		if i := strings.Index(l, msgSaveBeforeClose); i >= 0 {
			found = true
			if i == 0 {
				t.Fatalf("dialog not offset from the left edge: %q", l)
			}
		}
	}
	if !found {
		t.Fatalf("dialog message not in editor body:\n%s", strings.Join(lines, "\n"))
	}
}
