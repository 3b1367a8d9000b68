package editor

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row and scrolls horizontally
// to keep the cursor visible. WrapWord soft-wraps after whitespace runs and
// falls back to cell breaks for tokens wider than the viewport.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
)

// WrapModeFor maps a word-wrap flag to the matching mode.
func WrapModeFor(wordWrap bool) WrapMode {
	if wordWrap {
		return WrapWord
	}
	return WrapNone
}

func (m WrapMode) String() string {
	switch m {
	case WrapWord:
		return "word"
	default:
		return "none"
	}
}
