package app

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/document"
	"github.com/iw2rmb/notepad/editor"
	"github.com/iw2rmb/notepad/internal/watch"
)

// Rows taken by the title and menu bars above the editor, and the status bar
// below it.
const (
	chromeTop    = 2
	chromeBottom = 1
)

// Model is the notepad shell. It implements tea.Model.
type Model struct {
	cfg Config
	log *slog.Logger

	doc    *document.Document
	editor editor.Model

	menu   menuState
	dialog *dialog

	watcher *watch.Watcher

	// suggestedPath prefills the first save-as prompt of an untitled document.
	suggestedPath string
	// flash is a one-shot message shown in the status bar.
	flash string

	title    string
	width    int
	height   int
	quitting bool
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	doc := document.New(document.Options{NoWordWrap: cfg.NoWordWrap, DirtyPolicy: cfg.DirtyPolicy})

	m := Model{
		cfg: cfg,
		log: cfg.Logger,
		doc: doc,
	}
	m.editor = editor.New(editor.Config{
		WrapMode:  editor.WrapModeFor(doc.WordWrap()),
		Font:      cfg.Font,
		Style:     editor.DefaultStyle(),
		Clipboard: cfg.Clipboard,
		OnChange: func(ev editor.ChangeEvent) {
			if ev.TextChanged {
				doc.SetText(ev.Text)
			}
		},
	})

	if cfg.WatchFiles {
		w, err := watch.New()
		if err != nil {
			m.log.Warn("file watching disabled", slog.Any("err", err))
		} else {
			m.watcher = w
		}
	}

	if cfg.InitialPath != "" {
		m = m.openInitial(cfg.InitialPath)
	}
	m.title = m.Title()
	return m
}

func (m Model) openInitial(path string) Model {
	path = expandPath(path)
	text, err := m.doc.Open(path)
	switch {
	case err == nil:
		m.editor = m.editor.SetText(text)
		m.watch(path)
		m.log.Info("opened", slog.String("path", path))
	case errors.Is(err, fs.ErrNotExist):
		m.suggestedPath = path
		m.log.Info("starting new file", slog.String("path", path))
	default:
		m.log.Error("open failed", slog.String("path", path), slog.Any("err", err))
		m, _ = m.notice(msgOpenFailed, nil)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.title), m.waitForFileEvent())
}

// Document returns the document the shell edits.
func (m Model) Document() *document.Document { return m.doc }

// Editor returns the text widget.
func (m Model) Editor() editor.Model { return m.editor }

// Title returns the window title for the current document.
func (m Model) Title() string { return document.Title(m.cfg.AppName, m.doc.Path()) }

// Status returns the caret status line.
func (m Model) Status() string {
	return document.StatusText(m.editor.Text(), m.editor.CaretOffset())
}

// Quitting reports whether the shell has asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.setSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m.flash = ""
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		if m.dialog == nil && !m.menu.open {
			msg.Y -= chromeTop
			m.editor, cmd = m.editor.Update(msg)
		}
	case fileEventMsg:
		m, cmd = m.handleFileEvent(watch.Event(msg))
	default:
		if m.dialog != nil {
			cmd, _ = m.dialog.update(msg)
		}
	}

	if t := m.Title(); t != m.title {
		m.title = t
		cmd = tea.Batch(cmd, tea.SetWindowTitle(t))
	}
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.dialog != nil {
		d := m.dialog
		cmd, res := d.update(msg)
		if res == nil {
			return m, cmd
		}
		m.dialog = nil
		if d.onDone == nil {
			return m, cmd
		}
		var next tea.Cmd
		m, next = d.onDone(m, *res)
		return m, tea.Batch(cmd, next)
	}

	if m.menu.open {
		return m.updateMenu(msg)
	}
	if c, ok := m.cfg.Keys.command(msg); ok {
		return m.Run(c)
	}
	if key.Matches(msg, m.cfg.Keys.Menu) {
		return m.openMenu(0), nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) setSize(width, height int) Model {
	m.width, m.height = width, height
	m.editor = m.editor.SetSize(width, max(height-chromeTop-chromeBottom, 0))
	if m.dialog != nil {
		m.dialog.resize(width)
	}
	return m
}

func (m Model) showDialog(d *dialog) (Model, tea.Cmd) {
	d.resize(m.width)
	m.dialog = d
	m.menu = menuState{}
	if d.kind == dialogPrompt {
		return m, d.input.Focus()
	}
	return m, nil
}

func (m Model) confirm(message string, options []string, escChoice string, onDone continuation) (Model, tea.Cmd) {
	return m.showDialog(newChoiceDialog(dialogButtons, "Unsaved Changes", message, options, escChoice, onDone))
}

func (m Model) prompt(title, message, value string, onDone continuation) (Model, tea.Cmd) {
	return m.showDialog(newPromptDialog(title, message, value, onDone))
}

// notice shows message with an OK button and runs next once it is closed.
func (m Model) notice(message string, next func(Model) (Model, tea.Cmd)) (Model, tea.Cmd) {
	return m.showDialog(newChoiceDialog(dialogButtons, m.cfg.AppName, message, []string{choiceOK}, choiceOK,
		func(m Model, _ dialogResult) (Model, tea.Cmd) { return m.then(next) }))
}

func (m Model) then(next func(Model) (Model, tea.Cmd)) (Model, tea.Cmd) {
	if next == nil {
		return m, nil
	}
	return next(m)
}
