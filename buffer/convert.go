package buffer

type OffsetClampMode uint8

const (
	// OffsetError rejects out-of-range offsets and positions.
	OffsetError OffsetClampMode = iota
	// OffsetClamp clamps them into the document.
	OffsetClamp
)

// Len returns the document length in runes, counting each line break as one.
func (b *Buffer) Len() int {
	n := 0
	for row, line := range b.lines {
		n += len(line)
		if row < len(b.lines)-1 {
			n++
		}
	}
	return n
}

// RuneOffsetFromPos converts pos to a rune offset from the start of the
// document.
func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	clamped := b.clampPos(pos)
	if clamped != pos && mode != OffsetClamp {
		return 0, false
	}

	off := 0
	for row := 0; row < clamped.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + clamped.Col, true
}

// PosFromRuneOffset converts a rune offset to a document position.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	n := b.Len()
	if off < 0 || off > n {
		if mode != OffsetClamp {
			return Pos{}, false
		}
		off = clampInt(off, 0, n)
	}

	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}, true
		}
		off -= len(line) + 1
	}
	return Pos{}, false
}

// CursorOffset returns the cursor as a rune offset.
func (b *Buffer) CursorOffset() int {
	off, _ := b.RuneOffsetFromPos(b.cursor, OffsetClamp)
	return off
}
