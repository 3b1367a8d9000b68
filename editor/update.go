package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/buffer"
	"github.com/iw2rmb/notepad/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.moveVisual(-1, false)
	case key.Matches(msg, km.Down):
		m.moveVisual(1, false)

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.moveVisual(-1, true)
	case key.Matches(msg, km.ShiftDown):
		m.moveVisual(1, true)

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.ShiftHome):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: true})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.moveVisual(-max(m.contentHeight(), 1), false)
	case key.Matches(msg, km.PageDown):
		m.moveVisual(max(m.contentHeight(), 1), false)

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()

	case key.Matches(msg, km.Copy):
		_ = m.Copy()
	case key.Matches(msg, km.Cut):
		m, _ = m.Cut()
	case key.Matches(msg, km.Paste):
		m, _ = m.Paste()
	case key.Matches(msg, km.SelectAll):
		m = m.SelectAll()

	default:
		if msg.Type == tea.KeyTab {
			m.buf.InsertRune('\t')
			return m, nil
		}
		if msg.Type == tea.KeySpace {
			m.buf.InsertRune(' ')
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.buf.InsertText(string(msg.Runes))
		}
	}

	return m, nil
}

// moveVisual moves the cursor by delta visual rows, keeping its cell column
// where the target row allows. With extend the selection grows from its
// anchor.
func (m *Model) moveVisual(delta int, extend bool) {
	c := m.ensureLayout()
	cur := m.buf.Cursor()
	from := c.visualRowFor(cur)
	to := c.clampVisualRow(from + delta)
	if to == from {
		return
	}

	target := m.posAtCell(c, to, m.cursorCell(c, cur))
	if !extend {
		m.buf.SetCursor(target)
		return
	}
	anchor := cur
	if r, ok := m.buf.Selection(); ok {
		anchor = r.Start
		if cur == r.Start {
			anchor = r.End
		}
	}
	m.buf.SetSelection(buffer.Range{Start: anchor, End: target})
}

// posAtCell maps a cell column on visual row vr to the nearest rune
// boundary at or before it.
func (m *Model) posAtCell(c *layoutCache, vr, cell int) buffer.Pos {
	row := c.rows[vr]
	line := c.lines[row.logicalRow]
	end := row.seg.EndCol
	if !row.last && end > row.seg.StartCol {
		// The boundary itself belongs to the next row.
		end--
	}

	col := row.seg.StartCol
	x := 0
	for col < end {
		w := grapheme.RuneCells(line[col], x, m.cfg.TabWidth)
		if x+w > cell {
			break
		}
		x += w
		col++
	}
	return buffer.Pos{Row: row.logicalRow, Col: col}
}
