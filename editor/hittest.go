package editor

import "github.com/iw2rmb/notepad/buffer"

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells and are relative to the editor's viewport:
// (0,0) is the top-left of the visible content region. Points past the end of
// a row map to the row's last position; points below the text map to the
// last row.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	c := m.ensureLayout()
	if len(c.rows) == 0 {
		return buffer.Pos{}
	}
	if x < 0 {
		x = 0
	}
	vr := c.clampVisualRow(m.viewport.YOffset + y)
	cell := x
	if m.cfg.WrapMode == WrapNone {
		cell += m.xOffset
	}
	return m.posAtCell(c, vr, cell)
}
