package document

import (
	"errors"
	"testing"
)

func TestOffsetToLineColumn(t *testing.T) {
	cases := []struct {
		text   string
		offset int
		want   LineColumn
	}{
		{text: "", offset: 0, want: LineColumn{1, 1}},
		{text: "anything\nat all", offset: 0, want: LineColumn{1, 1}},
		{text: "ab\ncd", offset: 4, want: LineColumn{2, 2}},
		{text: "ab\ncd", offset: 2, want: LineColumn{1, 3}},
		{text: "ab\ncd", offset: 3, want: LineColumn{2, 1}},
		{text: "ab\ncd", offset: 5, want: LineColumn{2, 3}},
		{text: "\n\n\n", offset: 3, want: LineColumn{4, 1}},
		{text: "é世🙂\nx", offset: 3, want: LineColumn{1, 4}},
		{text: "é世🙂\nx", offset: 5, want: LineColumn{2, 2}},
		{text: "a\r\nb", offset: 3, want: LineColumn{2, 1}},
	}
	for _, tc := range cases {
		got, err := OffsetToLineColumn(tc.text, tc.offset)
		if err != nil {
			t.Fatalf("OffsetToLineColumn(%q, %d): unexpected error %v", tc.text, tc.offset, err)
		}
		if got != tc.want {
			t.Fatalf("OffsetToLineColumn(%q, %d): got %+v, want %+v", tc.text, tc.offset, got, tc.want)
		}
	}
}

func TestOffsetToLineColumn_OutOfBounds(t *testing.T) {
	cases := []struct {
		text    string
		offset  int
		wantLen int
	}{
		{text: "", offset: 1, wantLen: 0},
		{text: "abc", offset: -1, wantLen: 3},
		{text: "abc", offset: 4, wantLen: 3},
		{text: "世界", offset: 3, wantLen: 2},
	}
	for _, tc := range cases {
		_, err := OffsetToLineColumn(tc.text, tc.offset)
		var be *BoundsError
		if !errors.As(err, &be) {
			t.Fatalf("OffsetToLineColumn(%q, %d): got %v, want *BoundsError", tc.text, tc.offset, err)
		}
		if be.Offset != tc.offset || be.Len != tc.wantLen {
			t.Fatalf("bounds error fields: got %+v, want offset=%d len=%d", be, tc.offset, tc.wantLen)
		}
	}
}

func TestStatusText(t *testing.T) {
	if got, want := StatusText("ab\ncd", 4), "Ready | Ln 2, Col 2"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}
	if got, want := StatusText("", 0), "Ready | Ln 1, Col 1"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}
	if got, want := StatusText("ab", 9), "Ready"; got != want {
		t.Fatalf("status fallback: got %q, want %q", got, want)
	}
}

func TestTitle(t *testing.T) {
	if got, want := Title("Simple Notepad", ""), "Simple Notepad - Untitled"; got != want {
		t.Fatalf("untitled: got %q, want %q", got, want)
	}
	if got, want := Title("Pad", "/tmp/dir/notes.txt"), "Pad - notes.txt"; got != want {
		t.Fatalf("bound: got %q, want %q", got, want)
	}
}
