package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/buffer"
	"github.com/iw2rmb/notepad/document"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int
	layout   *layoutCache

	lastBufVersion  uint64
	lastTextVersion uint64

	mouseDragging bool
	mouseAnchor   buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	// The viewport's own key handling would fight the editor's.
	m.viewport.KeyMap = viewport.KeyMap{}
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.refresh(true)
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.refresh(true)
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.refresh(false)
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Text returns the buffer contents.
func (m Model) Text() string { return m.buf.Text() }

// SetText replaces the buffer contents and moves the cursor to the start.
// OnChange fires as for any other edit.
func (m Model) SetText(text string) Model {
	m.buf.SetText(text)
	m.viewport.SetYOffset(0)
	m.xOffset = 0
	m.syncFromBuffer()
	return m
}

func (m Model) WrapMode() WrapMode { return m.cfg.WrapMode }

func (m Model) SetWrapMode(mode WrapMode) Model {
	if mode == m.cfg.WrapMode {
		return m
	}
	m.cfg.WrapMode = mode
	m.xOffset = 0
	m.refresh(true)
	return m
}

func (m Model) Font() document.Font { return m.cfg.Font }

// SetFont applies f. document.FontUnchanged and fonts outside the set keep
// the current font.
func (m Model) SetFont(f document.Font) Model {
	if f.Validate() != nil {
		return m
	}
	m.cfg.Font = f.Apply(m.cfg.Font)
	return m
}

// CaretOffset returns the cursor as a rune offset into Text.
func (m Model) CaretOffset() int { return m.buf.CursorOffset() }

// Copy writes the selection to the clipboard. Without a selection or a
// clipboard it does nothing.
func (m Model) Copy() error {
	if m.cfg.Clipboard == nil {
		return nil
	}
	s := m.buf.SelectedText()
	if s == "" {
		return nil
	}
	return m.cfg.Clipboard.WriteText(s)
}

// Cut copies the selection and deletes it. The selection is kept when the
// clipboard write fails.
func (m Model) Cut() (Model, error) {
	if m.cfg.Clipboard == nil {
		return m, nil
	}
	s := m.buf.SelectedText()
	if s == "" {
		return m, nil
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		return m, err
	}
	m.buf.DeleteSelection()
	m.syncFromBuffer()
	return m, nil
}

// Paste inserts the clipboard text at the cursor, replacing the selection.
func (m Model) Paste() (Model, error) {
	if m.cfg.Clipboard == nil {
		return m, nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		return m, err
	}
	s = normalizeNewlines(s)
	if s == "" {
		return m, nil
	}
	m.buf.InsertText(s)
	m.syncFromBuffer()
	return m, nil
}

func (m Model) SelectAll() Model {
	m.buf.SelectAll()
	m.syncFromBuffer()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// Hosts may also mutate the buffer directly between updates.
	m.syncFromBuffer()
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer re-renders and notifies OnChange when the buffer changed
// since the last sync.
func (m *Model) syncFromBuffer() bool {
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	textChanged := m.buf.TextVersion() != m.lastTextVersion
	m.lastBufVersion = ver
	m.lastTextVersion = m.buf.TextVersion()
	m.refresh(true)
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, textChanged))
	}
	return true
}
