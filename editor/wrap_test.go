package editor

import "testing"

func TestWrapSegments(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		mode  WrapMode
		width int
		want  []wrappedSegment
	}{
		{"none keeps line", "abcdef", WrapNone, 3, []wrappedSegment{{0, 6, 6}}},
		{"empty line", "", WrapWord, 5, []wrappedSegment{{0, 0, 0}}},
		{"fits", "abc def", WrapWord, 7, []wrappedSegment{{0, 7, 7}}},
		{"break after space", "hello world", WrapWord, 8, []wrappedSegment{{0, 6, 6}, {6, 11, 5}}},
		{"space hangs at edge", "hello world", WrapWord, 5, []wrappedSegment{{0, 6, 6}, {6, 11, 5}}},
		{"long token hard breaks", "abcdefghij", WrapWord, 4, []wrappedSegment{{0, 4, 4}, {4, 8, 4}, {8, 10, 2}}},
		{"wide runes", "世界世", WrapWord, 3, []wrappedSegment{{0, 1, 2}, {1, 2, 2}, {2, 3, 2}}},
		{"width one", "ab", WrapWord, 1, []wrappedSegment{{0, 1, 1}, {1, 2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapSegments([]rune(tt.line), tt.mode, tt.width, 4)
			if len(got) != len(tt.want) {
				t.Fatalf("segments: got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("segment %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFindWordWrapBreak(t *testing.T) {
	units := wrapUnits([]rune("ab  cd e"), 0, 4)

	tests := []struct {
		start, overflow int
		want            int
		ok              bool
	}{
		{0, 2, 0, false},
		{0, 5, 4, true},
		{0, 8, 7, true},
		{4, 6, 0, false},
		{5, 3, 0, false},
	}
	for _, tt := range tests {
		got, ok := findWordWrapBreak(units, tt.start, tt.overflow)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("findWordWrapBreak(%d, %d): got (%d, %v), want (%d, %v)", tt.start, tt.overflow, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWrapModeFor(t *testing.T) {
	if got := WrapModeFor(true); got != WrapWord {
		t.Fatalf("WrapModeFor(true): got %v, want %v", got, WrapWord)
	}
	if got := WrapModeFor(false); got != WrapNone {
		t.Fatalf("WrapModeFor(false): got %v, want %v", got, WrapNone)
	}
}
