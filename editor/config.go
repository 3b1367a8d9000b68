package editor

import "github.com/iw2rmb/notepad/document"

const defaultTabWidth = 4

// Config configures the editor Model.
//
// Zero values are replaced with defaults by New: an empty KeyMap becomes
// DefaultKeyMap, TabWidth 4, and an unchanged Font becomes
// document.DefaultFont. Style is used as given; pass DefaultStyle() for
// the stock look.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	WrapMode WrapMode
	TabWidth int

	// Font is carried for the host. Terminal rendering does not depend on it.
	Font document.Font

	Style  Style
	KeyMap KeyMap

	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard Clipboard

	// OnChange is called after every update that changes the buffer version.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = defaultTabWidth
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Font.IsUnchanged() || c.Font.Validate() != nil {
		c.Font = document.DefaultFont
	}
	return c
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0 && len(km.Enter.Keys()) == 0
}
