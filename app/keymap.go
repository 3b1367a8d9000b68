package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds shortcuts to commands. Keys not bound here reach the editor.
type KeyMap struct {
	New, Open, Save, SaveAs, Close key.Binding
	Cut, Copy, Paste, SelectAll    key.Binding
	WordWrap, Font                 key.Binding

	// Menu opens the menu bar.
	Menu key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveAs: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "save as")),
		Close:  key.NewBinding(key.WithKeys("ctrl+q", "ctrl+w"), key.WithHelp("ctrl+q", "exit")),

		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		WordWrap: key.NewBinding(key.WithKeys("alt+z"), key.WithHelp("alt+z", "word wrap")),
		Font:     key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "font")),

		Menu: key.NewBinding(key.WithKeys("f10", "esc"), key.WithHelp("f10", "menu")),
	}
}

func (km KeyMap) bindings() []struct {
	b   key.Binding
	cmd Command
} {
	return []struct {
		b   key.Binding
		cmd Command
	}{
		{km.New, CmdNew},
		{km.Open, CmdOpen},
		{km.Save, CmdSave},
		{km.SaveAs, CmdSaveAs},
		{km.Close, CmdExit},
		{km.Cut, CmdCut},
		{km.Copy, CmdCopy},
		{km.Paste, CmdPaste},
		{km.SelectAll, CmdSelectAll},
		{km.WordWrap, CmdWordWrap},
		{km.Font, CmdFont},
	}
}

// command returns the command bound to msg.
func (km KeyMap) command(msg tea.KeyMsg) (Command, bool) {
	for _, kb := range km.bindings() {
		if key.Matches(msg, kb.b) {
			return kb.cmd, true
		}
	}
	return "", false
}

// help returns the first shortcut bound to c, for menu labels.
func (km KeyMap) help(c Command) string {
	for _, kb := range km.bindings() {
		if kb.cmd == c {
			return kb.b.Help().Key
		}
	}
	return ""
}
