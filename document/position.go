package document

import "fmt"

// LineColumn is a 1-based caret position.
type LineColumn struct {
	Line   int
	Column int
}

func (lc LineColumn) String() string {
	return fmt.Sprintf("Ln %d, Col %d", lc.Line, lc.Column)
}

// OffsetToLineColumn maps a rune offset in text to a 1-based line and column.
//
// Every rune strictly before offset is scanned: '\n' starts a new line and
// resets the column, anything else advances the column. Offsets outside
// [0, runeCount(text)] fail with *BoundsError.
func OffsetToLineColumn(text string, offset int) (LineColumn, error) {
	pos := LineColumn{Line: 1, Column: 1}
	if offset < 0 {
		return LineColumn{}, &BoundsError{Offset: offset, Len: runeLen(text)}
	}

	i := 0
	for _, r := range text {
		if i == offset {
			return pos, nil
		}
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
		i++
	}
	if offset > i {
		return LineColumn{}, &BoundsError{Offset: offset, Len: i}
	}
	return pos, nil
}

func runeLen(text string) int {
	n := 0
	for range text {
		n++
	}
	return n
}
