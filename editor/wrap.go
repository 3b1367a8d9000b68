package editor

import "github.com/iw2rmb/notepad/internal/grapheme"

// wrappedSegment is one visual row of a logical line: the rune columns
// [StartCol, EndCol) and their width in cells.
type wrappedSegment struct {
	StartCol int
	EndCol   int
	Cells    int
}

type wrapUnit struct {
	cells        int
	isWhitespace bool
}

// wrapUnits measures every rune of line. Tab stops restart at the beginning
// of each visual row, so units are measured from column 0 here and
// re-measured by wrapSegments when a row starts mid-line.
func wrapUnits(line []rune, from, tabWidth int) []wrapUnit {
	units := make([]wrapUnit, 0, len(line)-from)
	col := 0
	for _, r := range line[from:] {
		w := grapheme.RuneCells(r, col, tabWidth)
		units = append(units, wrapUnit{cells: w, isWhitespace: grapheme.IsSpace(r)})
		col += w
	}
	return units
}

// wrapSegments splits line into visual rows no wider than width cells.
// WrapNone, a non-positive width and an empty line all yield one segment.
func wrapSegments(line []rune, mode WrapMode, width, tabWidth int) []wrappedSegment {
	if mode == WrapNone || width <= 0 || len(line) == 0 {
		return []wrappedSegment{{StartCol: 0, EndCol: len(line), Cells: lineCells(line, 0, len(line), tabWidth)}}
	}

	var segs []wrappedSegment
	start := 0
	for start < len(line) {
		units := wrapUnits(line, start, tabWidth)

		used := 0
		overflow := len(units)
		for i, u := range units {
			// A single unit wider than the row still occupies it alone.
			if i > 0 && used+u.cells > width {
				overflow = i
				break
			}
			used += u.cells
		}

		end := overflow
		if overflow < len(units) {
			if br, ok := findWordWrapBreak(units, 0, overflow); ok {
				end = br
			} else if units[overflow].isWhitespace {
				// Let whitespace that does not fit hang at the end of the row.
				for end < len(units) && units[end].isWhitespace {
					end++
				}
			}
		}

		cells := 0
		for _, u := range units[:end] {
			cells += u.cells
		}
		segs = append(segs, wrappedSegment{StartCol: start, EndCol: start + end, Cells: cells})
		start += end
	}
	return segs
}

func findWordWrapBreak(units []wrapUnit, start, overflow int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if overflow > len(units) {
		overflow = len(units)
	}
	if start >= overflow {
		return 0, false
	}

	lastBreak := -1
	i := start
	for i < overflow {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}

	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// lineCells returns the width of line[from:to] drawn from column 0.
func lineCells(line []rune, from, to, tabWidth int) int {
	col := 0
	for _, r := range line[from:to] {
		col += grapheme.RuneCells(r, col, tabWidth)
	}
	return col
}
