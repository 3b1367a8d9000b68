package grapheme

import "testing"

func TestWidthAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "世" + "b"
	if got, want := Count(text), 4; got != want {
		t.Fatalf("count=%d, want %d", got, want)
	}
	if got, want := Width(text), 5; got != want {
		t.Fatalf("width=%d, want %d", got, want)
	}
	if Width("") != 0 || Count("") != 0 {
		t.Fatalf("empty text should measure zero")
	}
}

func TestRuneCells(t *testing.T) {
	cases := []struct {
		r        rune
		col, tab int
		want     int
	}{
		{r: 'a', col: 0, tab: 4, want: 1},
		{r: '世', col: 3, tab: 4, want: 2},
		{r: '\t', col: 0, tab: 4, want: 4},
		{r: '\t', col: 5, tab: 4, want: 3},
		{r: '\t', col: 2, tab: 0, want: 2},
		{r: '\u0301', col: 1, tab: 4, want: 0},
		{r: '\r', col: 0, tab: 4, want: 1},
	}
	for _, tc := range cases {
		if got := RuneCells(tc.r, tc.col, tc.tab); got != tc.want {
			t.Fatalf("RuneCells(%q,%d,%d)=%d, want %d", tc.r, tc.col, tc.tab, got, tc.want)
		}
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got, want := Truncate("Simple Notepad", 8, "~"), "Simple ~"; got != want {
		t.Fatalf("truncate=%q, want %q", got, want)
	}
	if got, want := PadRight("ab", 4), "ab  "; got != want {
		t.Fatalf("pad=%q, want %q", got, want)
	}
	if got, want := PadRight("abcdef", 3), "abc"; got != want {
		t.Fatalf("pad with truncation=%q, want %q", got, want)
	}
	if PadRight("x", 0) != "" || Truncate("x", 0, "") != "" {
		t.Fatalf("zero width should yield empty strings")
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace('\t') || IsSpace('a') {
		t.Fatalf("IsSpace misclassifies")
	}
	if !IsPunct('!') || IsPunct('a') {
		t.Fatalf("IsPunct misclassifies")
	}
}
