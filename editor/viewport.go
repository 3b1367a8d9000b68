package editor

import "github.com/iw2rmb/notepad/buffer"

type layoutKey struct {
	textVersion uint64
	wrapMode    WrapMode
	tabWidth    int
	wrapWidth   int
}

type layoutRow struct {
	logicalRow int
	seg        wrappedSegment
	last       bool // last segment of its logical line
}

type layoutCache struct {
	valid bool
	key   layoutKey

	lines     [][]rune
	rows      []layoutRow
	firstRows []int // first visual row of each logical line
}

// wrapWidth keeps one spare column so the cursor can sit after the last rune
// of a full row.
func (m *Model) wrapWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - 1
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) contentHeight() int {
	return m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
}

func (m *Model) ensureLayout() *layoutCache {
	key := layoutKey{
		textVersion: m.buf.TextVersion(),
		wrapMode:    m.cfg.WrapMode,
		tabWidth:    m.cfg.TabWidth,
		wrapWidth:   m.wrapWidth(),
	}
	if m.layout != nil && m.layout.valid && m.layout.key == key {
		return m.layout
	}

	n := m.buf.LineCount()
	cache := &layoutCache{
		valid:     true,
		key:       key,
		lines:     make([][]rune, n),
		rows:      make([]layoutRow, 0, n),
		firstRows: make([]int, n),
	}
	for row := 0; row < n; row++ {
		line := []rune(m.buf.Line(row))
		cache.lines[row] = line
		cache.firstRows[row] = len(cache.rows)
		segs := wrapSegments(line, key.wrapMode, key.wrapWidth, key.tabWidth)
		for i, seg := range segs {
			cache.rows = append(cache.rows, layoutRow{logicalRow: row, seg: seg, last: i == len(segs)-1})
		}
	}
	m.layout = cache
	return cache
}

// visualRowFor returns the visual row holding p. A position on a segment
// boundary belongs to the later segment.
func (c *layoutCache) visualRowFor(p buffer.Pos) int {
	if len(c.rows) == 0 || p.Row < 0 {
		return 0
	}
	if p.Row >= len(c.firstRows) {
		return len(c.rows) - 1
	}
	vr := c.firstRows[p.Row]
	for vr+1 < len(c.rows) && c.rows[vr+1].logicalRow == p.Row && c.rows[vr+1].seg.StartCol <= p.Col {
		vr++
	}
	return vr
}

func (c *layoutCache) clampVisualRow(vr int) int {
	if vr < 0 {
		return 0
	}
	if vr >= len(c.rows) {
		return len(c.rows) - 1
	}
	return vr
}

// cursorCell returns the cell column of p within its visual row.
func (m *Model) cursorCell(c *layoutCache, p buffer.Pos) int {
	vr := c.visualRowFor(p)
	row := c.rows[vr]
	line := c.lines[row.logicalRow]
	to := p.Col
	if to > len(line) {
		to = len(line)
	}
	if to < row.seg.StartCol {
		return 0
	}
	return lineCells(line, row.seg.StartCol, to, m.cfg.TabWidth)
}

// refresh re-renders the viewport content. With follow set, the viewport
// scrolls so the cursor row, and in WrapNone the cursor cell, stay visible.
func (m *Model) refresh(follow bool) {
	if follow {
		m.followCursorX()
	}
	m.viewport.SetContent(m.renderContent())
	if follow {
		m.followCursorY()
	}
}

func (m *Model) followCursorY() {
	h := m.contentHeight()
	if h <= 0 {
		return
	}
	vr := m.ensureLayout().visualRowFor(m.buf.Cursor())
	y := m.viewport.YOffset
	switch {
	case vr < y:
		m.viewport.SetYOffset(vr)
	case vr >= y+h:
		m.viewport.SetYOffset(vr - h + 1)
	}
}

func (m *Model) followCursorX() {
	if m.cfg.WrapMode != WrapNone {
		m.xOffset = 0
		return
	}
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if w <= 0 {
		return
	}
	x := m.cursorCell(m.ensureLayout(), m.buf.Cursor())
	switch {
	case x < m.xOffset:
		m.xOffset = x
	case x >= m.xOffset+w:
		m.xOffset = x - w + 1
	}
}
