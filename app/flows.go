package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/document"
	"github.com/iw2rmb/notepad/editor"
)

const (
	msgSaveBeforeNew   = "Save before creating new file?"
	msgSaveBeforeClose = "Save changes before closing?"
	msgOpenFailed      = "Error opening file!"
	msgSaveFailed      = "Error saving file!"
	msgChangedOnDisk   = "File changed on disk"
)

func (m Model) newFile() (Model, tea.Cmd) {
	if !m.doc.Dirty() {
		return m.resetDocument(), nil
	}
	// esc counts as No: the document is cleared either way.
	return m.confirm(msgSaveBeforeNew, []string{choiceYes, choiceNo}, choiceNo,
		func(m Model, res dialogResult) (Model, tea.Cmd) {
			if res.Choice == choiceYes {
				return m.saveThen(func(m Model) (Model, tea.Cmd) { return m.resetDocument(), nil })
			}
			return m.resetDocument(), nil
		})
}

func (m Model) resetDocument() Model {
	m.doc.Reset()
	m.editor = m.editor.SetText("")
	m.suggestedPath = ""
	m.watch("")
	m.log.Info("new document")
	return m
}

func (m Model) openFile() (Model, tea.Cmd) {
	return m.prompt("Open", "File to open:", m.promptDir(),
		func(m Model, res dialogResult) (Model, tea.Cmd) {
			path := expandPath(res.Text)
			if res.Dismissed || path == "" {
				return m, nil
			}
			return m.openPath(path)
		})
}

// openPath replaces the document with the file at path. On failure the
// current document is kept and a notice is shown.
func (m Model) openPath(path string) (Model, tea.Cmd) {
	text, err := m.doc.Open(path)
	if err != nil {
		m.log.Error("open failed", slog.String("path", path), slog.Any("err", err))
		return m.notice(msgOpenFailed, nil)
	}
	m.editor = m.editor.SetText(text)
	m.suggestedPath = ""
	m.watch(path)
	m.log.Info("opened", slog.String("path", path), slog.Int("bytes", len(text)))
	return m, nil
}

func (m Model) saveFile() (Model, tea.Cmd) { return m.saveThen(nil) }

func (m Model) saveAsFile() (Model, tea.Cmd) { return m.saveAsThen(nil) }

// saveThen saves to the bound path, asking for one first when the document
// is untitled, and runs next afterwards whether or not the save happened.
func (m Model) saveThen(next func(Model) (Model, tea.Cmd)) (Model, tea.Cmd) {
	if !m.doc.Bound() {
		return m.saveAsThen(next)
	}
	path := m.doc.Path()
	return m.finishSave(m.doc.Save(m.editor.Text()), path, next)
}

func (m Model) saveAsThen(next func(Model) (Model, tea.Cmd)) (Model, tea.Cmd) {
	value := m.doc.Path()
	if value == "" {
		value = m.suggestedPath
	}
	if value == "" {
		value = m.promptDir()
	}
	return m.prompt("Save As", "Save as:", value,
		func(m Model, res dialogResult) (Model, tea.Cmd) {
			path := expandPath(res.Text)
			if res.Dismissed || path == "" {
				return m.then(next)
			}
			return m.finishSave(m.doc.SaveAs(m.editor.Text(), path), path, next)
		})
}

func (m Model) finishSave(err error, path string, next func(Model) (Model, tea.Cmd)) (Model, tea.Cmd) {
	if err != nil {
		m.log.Error("save failed", slog.String("path", path), slog.Any("err", err))
		return m.notice(msgSaveFailed, next)
	}
	m.suggestedPath = ""
	m.watch(m.doc.Path())
	m.log.Info("saved", slog.String("path", path))
	return m.then(next)
}

func (m Model) exit() (Model, tea.Cmd) {
	if !m.doc.Dirty() {
		return m.quit()
	}
	return m.confirm(msgSaveBeforeClose, []string{choiceYes, choiceNo, choiceCancel}, choiceCancel,
		func(m Model, res dialogResult) (Model, tea.Cmd) {
			switch res.Choice {
			case choiceYes:
				return m.saveThen(Model.quit)
			case choiceNo:
				return m.quit()
			default:
				return m, nil
			}
		})
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	m.log.Info("exit")
	return m, tea.Quit
}

// Close releases the file watcher. It is safe to call more than once.
func (m Model) Close() {
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.log.Warn("closing watcher", slog.Any("err", err))
		}
	}
}

func (m Model) cut() (Model, tea.Cmd) {
	var err error
	m.editor, err = m.editor.Cut()
	if err != nil {
		m.log.Warn("cut failed", slog.Any("err", err))
	}
	return m, nil
}

func (m Model) copy() (Model, tea.Cmd) {
	if err := m.editor.Copy(); err != nil {
		m.log.Warn("copy failed", slog.Any("err", err))
	}
	return m, nil
}

func (m Model) paste() (Model, tea.Cmd) {
	var err error
	m.editor, err = m.editor.Paste()
	if err != nil {
		m.log.Warn("paste failed", slog.Any("err", err))
	}
	return m, nil
}

func (m Model) selectAll() (Model, tea.Cmd) {
	m.editor = m.editor.SelectAll()
	return m, nil
}

func (m Model) toggleWordWrap() (Model, tea.Cmd) {
	enabled := m.doc.ToggleWordWrap()
	m.editor = m.editor.SetWrapMode(editor.WrapModeFor(enabled))
	m.log.Debug("word wrap", slog.Bool("enabled", enabled))
	return m, nil
}

func (m Model) chooseFont() (Model, tea.Cmd) {
	choices := document.FontChoices()
	labels := make([]string, len(choices))
	current := 0
	for i, f := range choices {
		labels[i] = f.Label()
		if f == m.editor.Font() {
			current = i
		}
	}
	d := newChoiceDialog(dialogList, "Font", "Choose Font:", labels, "",
		func(m Model, res dialogResult) (Model, tea.Cmd) {
			if res.Dismissed {
				return m, nil
			}
			f, err := document.ParseFont(res.Choice)
			if err != nil {
				m.log.Warn("font", slog.String("choice", res.Choice), slog.Any("err", err))
				return m, nil
			}
			m.editor = m.editor.SetFont(f)
			return m, nil
		})
	d.selected = current
	return m.showDialog(d)
}

// promptDir is the starting value for path prompts: the directory of the
// open file, with a trailing separator.
func (m Model) promptDir() string {
	if m.doc.Path() == "" {
		return ""
	}
	return filepath.Dir(m.doc.Path()) + string(filepath.Separator)
}

// expandPath trims whitespace and expands a leading "~/".
func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}
