package app

import (
	"io"
	"log/slog"

	"github.com/iw2rmb/notepad/document"
	"github.com/iw2rmb/notepad/editor"
)

const DefaultAppName = "Simple Notepad"

// Config configures the shell.
//
// New fills in AppName, Font, Logger and Keys when they are zero. Styles
// are taken as given; start from DefaultConfig to get the stock look.
type Config struct {
	AppName     string
	// NoWordWrap starts with word wrap off. Wrap is on by default.
	NoWordWrap  bool
	Font        document.Font
	DirtyPolicy document.DirtyPolicy

	// Clipboard backs cut, copy and paste. Nil disables them.
	Clipboard editor.Clipboard
	Logger    *slog.Logger

	// WatchFiles reports changes other programs make to the open file.
	WatchFiles bool

	// InitialPath is opened at startup. A missing file starts an untitled
	// document and becomes the suggested save-as path.
	InitialPath string

	Keys   KeyMap
	Styles Styles
}

func DefaultConfig() Config {
	return Config{
		AppName:    DefaultAppName,
		Font:       document.DefaultFont,
		WatchFiles: true,
		Keys:       DefaultKeyMap(),
		Styles:     DefaultStyles(),
	}
}

func (c Config) withDefaults() Config {
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if c.Font.IsUnchanged() || c.Font.Validate() != nil {
		c.Font = document.DefaultFont
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(c.Keys.Menu.Keys()) == 0 {
		c.Keys = DefaultKeyMap()
	}
	return c
}
