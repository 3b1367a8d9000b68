package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/notepad/buffer"
	"github.com/iw2rmb/notepad/internal/grapheme"
)

type cellRole uint8

const (
	roleText cellRole = iota
	roleSelection
	roleCursor
)

type renderCell struct {
	text  string
	cells int
	role  cellRole
}

func (m *Model) renderContent() string {
	c := m.ensureLayout()
	cur := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	lines := make([]string, len(c.rows))
	for i, row := range c.rows {
		lines[i] = m.renderRow(c.lines[row.logicalRow], row, cur, sel, selOK)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(line []rune, row layoutRow, cur buffer.Pos, sel buffer.Range, selOK bool) string {
	cells := make([]renderCell, 0, row.seg.EndCol-row.seg.StartCol+1)
	col := 0
	for i := row.seg.StartCol; i < row.seg.EndCol; i++ {
		r := line[i]
		w := grapheme.RuneCells(r, col, m.cfg.TabWidth)
		cells = append(cells, renderCell{
			text:  runeText(r, w),
			cells: w,
			role:  m.roleAt(buffer.Pos{Row: row.logicalRow, Col: i}, cur, sel, selOK),
		})
		col += w
	}
	if m.focused && row.last && cur.Row == row.logicalRow && cur.Col >= len(line) {
		cells = append(cells, renderCell{text: " ", cells: 1, role: roleCursor})
	}

	if m.cfg.WrapMode == WrapNone {
		cells = clipCells(cells, m.xOffset, m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize())
	}
	return m.styleCells(cells)
}

func (m *Model) roleAt(p buffer.Pos, cur buffer.Pos, sel buffer.Range, selOK bool) cellRole {
	if m.focused && p == cur {
		return roleCursor
	}
	if selOK && buffer.ComparePos(p, sel.Start) >= 0 && buffer.ComparePos(p, sel.End) < 0 {
		return roleSelection
	}
	return roleText
}

// runeText returns what is drawn for r occupying w cells.
func runeText(r rune, w int) string {
	switch {
	case r == '\t':
		return strings.Repeat(" ", w)
	case r < 0x20 || r == 0x7f:
		return " "
	default:
		return string(r)
	}
}

// clipCells keeps the cells inside [from, from+width). A wide rune cut by
// either edge is replaced with spaces.
func clipCells(cells []renderCell, from, width int) []renderCell {
	if width <= 0 {
		return nil
	}
	to := from + width
	out := make([]renderCell, 0, len(cells))
	x := 0
	for _, c := range cells {
		start, end := x, x+c.cells
		x = end
		if end <= from || start >= to {
			if c.cells == 0 && start > from && start < to {
				out = append(out, c)
			}
			continue
		}
		if start < from || end > to {
			lo, hi := max(start, from), min(end, to)
			c.text = strings.Repeat(" ", hi-lo)
			c.cells = hi - lo
		}
		out = append(out, c)
	}
	return out
}

func (m *Model) styleCells(cells []renderCell) string {
	var sb strings.Builder
	i := 0
	for i < len(cells) {
		role := cells[i].role
		var run strings.Builder
		for i < len(cells) && cells[i].role == role {
			run.WriteString(cells[i].text)
			i++
		}
		sb.WriteString(m.styleFor(role).Render(run.String()))
	}
	return sb.String()
}

func (m *Model) styleFor(role cellRole) lipgloss.Style {
	switch role {
	case roleCursor:
		return m.cfg.Style.Cursor
	case roleSelection:
		return m.cfg.Style.Selection
	default:
		return m.cfg.Style.Text
	}
}
