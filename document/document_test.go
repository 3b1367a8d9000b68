package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHasUnsavedChanges(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{text: "", want: false},
		{text: " ", want: false},
		{text: "\n\t \r\n", want: false},
		{text: "  ", want: false},
		{text: "a", want: true},
		{text: "  x  ", want: true},
		{text: "\n\nhello\n", want: true},
	}
	for _, tc := range cases {
		if got := HasUnsavedChanges(tc.text); got != tc.want {
			t.Fatalf("HasUnsavedChanges(%q): got %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestToggleWordWrap_IsItsOwnInverse(t *testing.T) {
	for _, v := range []bool{true, false} {
		if got := ToggleWordWrap(ToggleWordWrap(v)); got != v {
			t.Fatalf("toggle twice from %v: got %v", v, got)
		}
	}

	d := New(Options{})
	if !d.WordWrap() {
		t.Fatalf("word wrap should default to true")
	}
	if got := d.ToggleWordWrap(); got {
		t.Fatalf("first toggle: got %v, want false", got)
	}
	if got := d.ToggleWordWrap(); !got {
		t.Fatalf("second toggle: got %v, want true", got)
	}

	if New(Options{NoWordWrap: true}).WordWrap() {
		t.Fatalf("NoWordWrap option ignored")
	}
}

func TestReset_AlwaysClearsTextAndPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := New(Options{})
	if _, err := d.Open(path); err != nil {
		t.Fatalf("open: %v", err)
	}
	d.SetText("edited")

	text, p := d.Reset()
	if text != "" || p != "" {
		t.Fatalf("reset: got (%q, %q), want empty", text, p)
	}
	if d.Text() != "" || d.Path() != "" || d.Bound() {
		t.Fatalf("document after reset: text=%q path=%q", d.Text(), d.Path())
	}

	// Resetting an already empty document is fine too.
	text, p = New(Options{}).Reset()
	if text != "" || p != "" {
		t.Fatalf("reset of empty doc: got (%q, %q)", text, p)
	}
}

func TestSaveThenOpen_RoundTripsBytes(t *testing.T) {
	texts := []string{
		"",
		"hello",
		"no trailing newline",
		"crlf\r\nline endings\r\n",
		"trailing\n\n\n",
		"unicode: héllo, 世界, 🙂",
	}
	dir := t.TempDir()

	for i, text := range texts {
		path := filepath.Join(dir, "f"+string(rune('a'+i))+".txt")

		d := New(Options{})
		if err := d.SaveAs(text, path); err != nil {
			t.Fatalf("save-as %q: %v", text, err)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(raw) != text {
			t.Fatalf("bytes on disk: got %q, want %q", raw, text)
		}

		other := New(Options{})
		got, err := other.Open(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if got != text || other.Text() != text {
			t.Fatalf("round trip: got %q, want %q", got, text)
		}
		if other.Path() != path {
			t.Fatalf("bound path: got %q, want %q", other.Path(), path)
		}
	}
}

func TestSave_WithoutPath(t *testing.T) {
	d := New(Options{})
	if err := d.Save("text"); !errors.Is(err, ErrNoPath) {
		t.Fatalf("save without path: got %v, want ErrNoPath", err)
	}
	if err := d.SaveAs("text", ""); !errors.Is(err, ErrNoPath) {
		t.Fatalf("save-as with empty path: got %v, want ErrNoPath", err)
	}
}

func TestSave_OverwritesBoundFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("a much longer original body"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := New(Options{})
	if _, err := d.Open(path); err != nil {
		t.Fatal(err)
	}
	if err := d.Save("short"); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "short" {
		t.Fatalf("file after save: got %q", raw)
	}
}

func TestOpen_FailureLeavesDocumentUntouched(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	if err := os.WriteFile(good, []byte("kept"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.bin")
	if err := os.WriteFile(bad, []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	d := New(Options{})
	if _, err := d.Open(good); err != nil {
		t.Fatal(err)
	}
	d.SetText("kept, edited")

	for _, path := range []string{
		filepath.Join(dir, "missing.txt"),
		dir,
		bad,
	} {
		_, err := d.Open(path)
		var ioErr *IOError
		if !errors.As(err, &ioErr) {
			t.Fatalf("open %s: got %v, want *IOError", path, err)
		}
		if ioErr.Op != "open" || ioErr.Path != path {
			t.Fatalf("io error fields: got %+v", ioErr)
		}
		if d.Text() != "kept, edited" || d.Path() != good {
			t.Fatalf("document changed after failed open: text=%q path=%q", d.Text(), d.Path())
		}
	}

	_, err := d.Open(bad)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("invalid utf-8: got %v, want ErrInvalidEncoding", err)
	}
}

func TestSaveAs_FailureKeepsPriorBinding(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")

	d := New(Options{})
	if err := d.SaveAs("one", first); err != nil {
		t.Fatal(err)
	}

	unwritable := filepath.Join(dir, "no-such-dir", "second.txt")
	err := d.SaveAs("two", unwritable)
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "save" {
		t.Fatalf("save-as into missing dir: got %v, want save *IOError", err)
	}
	if d.Path() != first {
		t.Fatalf("binding after failed save-as: got %q, want %q", d.Path(), first)
	}
	if d.Text() != "one" {
		t.Fatalf("text after failed save-as: got %q, want %q", d.Text(), "one")
	}
}

func TestDirty_Policies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	heuristic := New(Options{})
	if _, err := heuristic.Open(path); err != nil {
		t.Fatal(err)
	}
	if !heuristic.Dirty() {
		t.Fatalf("heuristic: freshly opened content should count as unsaved")
	}
	heuristic.SetText("   \n")
	if heuristic.Dirty() {
		t.Fatalf("heuristic: whitespace-only text should not count as unsaved")
	}

	tracked := New(Options{DirtyPolicy: DirtyTracked})
	if _, err := tracked.Open(path); err != nil {
		t.Fatal(err)
	}
	if tracked.Dirty() {
		t.Fatalf("tracked: freshly opened content should be clean")
	}
	tracked.SetText("")
	if !tracked.Dirty() {
		t.Fatalf("tracked: clearing the text is a modification")
	}
	if err := tracked.Save(""); err != nil {
		t.Fatal(err)
	}
	if tracked.Dirty() {
		t.Fatalf("tracked: save should clear the dirty bit")
	}
}

// Open notes.txt, edit it down to nothing, and the close check reports no
// unsaved changes even though the file on disk still holds "hello".
func TestScenario_EditedToEmptySkipsSavePrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := New(Options{})
	text, err := d.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if text != "hello" || d.Path() != path {
		t.Fatalf("open: got (%q, %q)", text, d.Path())
	}
	if got, want := Title("Simple Notepad", d.Path()), "Simple Notepad - notes.txt"; got != want {
		t.Fatalf("title: got %q, want %q", got, want)
	}

	d.SetText("")
	if d.HasUnsavedChanges() {
		t.Fatalf("empty text should report no unsaved changes")
	}
}

func TestChangedOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.txt")

	d := New(Options{})
	if d.ChangedOnDisk() {
		t.Fatalf("untitled document cannot change on disk")
	}
	if err := d.SaveAs("v1", path); err != nil {
		t.Fatal(err)
	}
	if d.ChangedOnDisk() {
		t.Fatalf("own save reported as external change")
	}

	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	if !d.ChangedOnDisk() {
		t.Fatalf("external modification not detected")
	}

	d.AckDiskChange()
	if d.ChangedOnDisk() {
		t.Fatalf("acknowledged change still reported")
	}
}
