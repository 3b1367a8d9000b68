package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/notepad/internal/grapheme"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	st := m.cfg.Styles

	title := st.TitleBar.Render(grapheme.PadRight(" "+m.Title(), max(m.width, 1)))
	bar, offsets := m.menuBarView()

	body := m.editor.View()
	bodyHeight := max(m.height-chromeTop-chromeBottom, 0)
	switch {
	case m.dialog != nil:
		box := m.dialog.view(st)
		x := max((m.width-lipgloss.Width(box))/2, 0)
		y := max((bodyHeight-lipgloss.Height(box))/2, 0)
		body = overlay.Composite(box, body, overlay.Left, overlay.Top, x, y)
	case m.menu.open:
		body = overlay.Composite(m.dropdownView(), body, overlay.Left, overlay.Top, offsets[m.menu.active], 0)
	}

	return strings.Join([]string{title, bar, body, m.statusView()}, "\n")
}

func (m Model) statusView() string {
	st := m.cfg.Styles
	left := " " + m.Status()
	if m.flash != "" {
		left += " | " + m.flash
	}
	right := m.editor.Font().Label() + " "
	if !m.doc.WordWrap() {
		right = "No Wrap | " + right
	}

	w := max(m.width, 1)
	gap := w - grapheme.Width(left) - grapheme.Width(right)
	if gap < 1 {
		return st.StatusBar.Render(grapheme.PadRight(left, w))
	}
	return st.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}
