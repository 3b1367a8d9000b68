// Package grapheme measures text in terminal cells.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells text occupies, measured per
// grapheme cluster.
func Width(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.StringWidth(text)
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// RuneCells returns the cell width of r when drawn at visualCol. Tabs advance
// to the next multiple of tabWidth; zero-width runes return 0.
func RuneCells(r rune, visualCol, tabWidth int) int {
	if r == '\t' {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - visualCol%tabWidth
	}
	if r < 0x20 || r == 0x7f {
		// Control characters are drawn as a single replacement cell.
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// Truncate shortens s to at most width cells, appending tail when it cuts.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, tail)
}

// PadRight pads s with spaces to exactly width cells, truncating if needed.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// IsSpace reports whether r is Unicode whitespace.
func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// IsPunct reports whether r is Unicode punctuation.
func IsPunct(r rune) bool { return unicode.IsPunct(r) }
