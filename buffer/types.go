package buffer

import "cmp"

// Pos is a caret position: Row is the 0-based line, Col the 0-based rune
// index within that line. Col == len(line) is the end of the line.
type Pos struct {
	Row int
	Col int
}

// Range spans [Start, End). A Range handed to SetSelection may run
// backwards: Start is the anchor and End the caret.
type Range struct {
	Start Pos
	End   Pos
}

// ComparePos orders positions by row, then column.
func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) > 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// clampInt limits v to [lo, hi]. An inverted interval yields lo.
func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// ClampPos moves p onto the nearest caret position of a text with rowCount
// lines (at least one) whose rune lengths lineLen reports. A nil lineLen
// treats every line as empty.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	row := clampInt(p.Row, 0, max(rowCount, 1)-1)
	end := 0
	if lineLen != nil {
		end = max(lineLen(row), 0)
	}
	return Pos{Row: row, Col: clampInt(p.Col, 0, end)}
}

// ClampRange clamps both ends without reordering them.
func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	r.Start = ClampPos(r.Start, rowCount, lineLen)
	r.End = ClampPos(r.End, rowCount, lineLen)
	return r
}
