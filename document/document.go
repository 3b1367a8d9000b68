package document

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// DirtyPolicy selects how Dirty decides whether a save prompt is needed.
type DirtyPolicy uint8

const (
	// DirtyHeuristic treats any non-whitespace content as unsaved, whether or
	// not it was modified since the last open or save.
	DirtyHeuristic DirtyPolicy = iota
	// DirtyTracked reports unsaved changes only when the text differs from
	// what was last opened or saved.
	DirtyTracked
)

const filePerm = 0o644

// Options configures a Document.
type Options struct {
	// NoWordWrap starts the document with word wrap disabled.
	NoWordWrap  bool
	DirtyPolicy DirtyPolicy
}

// Document is the editor's document state. It is not safe for concurrent use.
type Document struct {
	text     string
	path     string
	wordWrap bool
	policy   DirtyPolicy

	// Text as of the last open, save or reset.
	synced   string
	syncedAt time.Time
}

// New returns an empty, untitled document.
func New(opt Options) *Document {
	return &Document{
		wordWrap: !opt.NoWordWrap,
		policy:   opt.DirtyPolicy,
	}
}

// HasUnsavedChanges reports whether text, trimmed of surrounding whitespace,
// is non-empty. This is a content check, not a modification check: freshly
// opened content counts as unsaved and whitespace-only edits do not.
func HasUnsavedChanges(text string) bool {
	return strings.TrimSpace(text) != ""
}

// ToggleWordWrap returns the negation of enabled.
func ToggleWordWrap(enabled bool) bool {
	return !enabled
}

func (d *Document) Text() string { return d.text }

// SetText replaces the buffer snapshot. Hosts call it whenever the text
// widget's content changes.
func (d *Document) SetText(text string) { d.text = text }

// Path returns the bound file path, or "" for an untitled document.
func (d *Document) Path() string { return d.path }

// Bound reports whether a file path is bound.
func (d *Document) Bound() bool { return d.path != "" }

// Name returns the bound file's base name, or "" when untitled.
func (d *Document) Name() string {
	if d.path == "" {
		return ""
	}
	return filepath.Base(d.path)
}

func (d *Document) WordWrap() bool { return d.wordWrap }

func (d *Document) SetWordWrap(enabled bool) { d.wordWrap = enabled }

// ToggleWordWrap flips the word-wrap preference and returns the new value.
func (d *Document) ToggleWordWrap() bool {
	d.wordWrap = ToggleWordWrap(d.wordWrap)
	return d.wordWrap
}

func (d *Document) DirtyPolicy() DirtyPolicy { return d.policy }

// HasUnsavedChanges applies the content check to the current text.
func (d *Document) HasUnsavedChanges() bool {
	return HasUnsavedChanges(d.text)
}

// Modified reports whether the text differs from the last opened or saved
// content.
func (d *Document) Modified() bool {
	return d.text != d.synced
}

// Dirty reports whether the host should offer to save before discarding the
// document, according to the document's DirtyPolicy.
func (d *Document) Dirty() bool {
	if d.policy == DirtyTracked {
		return d.Modified()
	}
	return d.HasUnsavedChanges()
}

// Reset clears the text and unbinds the path. It returns the cleared text and
// path, which are always empty.
func (d *Document) Reset() (string, string) {
	d.text = ""
	d.path = ""
	d.synced = ""
	d.syncedAt = time.Time{}
	return d.text, d.path
}

// Open reads the file at path and binds it. On failure the document is left
// untouched and an *IOError is returned.
func (d *Document) Open(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "open", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Op: "open", Path: path, Err: ErrInvalidEncoding}
	}

	text := string(data)
	d.text = text
	d.path = path
	d.synced = text
	d.syncedAt = modTime(path)
	return text, nil
}

// Save writes text verbatim to the bound path. It returns ErrNoPath when the
// document is untitled and an *IOError when the write fails.
func (d *Document) Save(text string) error {
	if d.path == "" {
		return ErrNoPath
	}
	return d.writeTo(d.path, text)
}

// SaveAs writes text to path and binds it. The binding only changes if the
// write succeeds.
func (d *Document) SaveAs(text, path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := d.writeTo(path, text); err != nil {
		return err
	}
	d.path = path
	return nil
}

func (d *Document) writeTo(path, text string) error {
	if err := os.WriteFile(path, []byte(text), filePerm); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	d.text = text
	d.synced = text
	d.syncedAt = modTime(path)
	return nil
}

// ChangedOnDisk reports whether the bound file's modification time differs
// from the one recorded at the last open or save. Untitled documents and
// files that cannot be stat'ed report false.
func (d *Document) ChangedOnDisk() bool {
	if d.path == "" {
		return false
	}
	fi, err := os.Stat(d.path)
	if err != nil {
		return false
	}
	return !fi.ModTime().Equal(d.syncedAt)
}

// AckDiskChange records the bound file's current modification time so the
// same external change is reported once.
func (d *Document) AckDiskChange() {
	if d.path != "" {
		d.syncedAt = modTime(d.path)
	}
}

func modTime(path string) time.Time {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return fi.ModTime()
}
