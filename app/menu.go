package app

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/internal/grapheme"
)

type menuItem struct {
	label    string
	mnemonic rune
	command  Command

	// checked marks a toggle item; nil for plain items.
	checked func(Model) bool

	separator bool
}

type menu struct {
	title string
	items []menuItem
}

var separator = menuItem{separator: true}

var menus = []menu{
	{title: "File", items: []menuItem{
		{label: "New", mnemonic: 'n', command: CmdNew},
		{label: "Open", mnemonic: 'o', command: CmdOpen},
		{label: "Save", mnemonic: 's', command: CmdSave},
		{label: "Save As", mnemonic: 'a', command: CmdSaveAs},
		separator,
		{label: "Exit", mnemonic: 'x', command: CmdExit},
	}},
	{title: "Edit", items: []menuItem{
		{label: "Cut", mnemonic: 'x', command: CmdCut},
		{label: "Copy", mnemonic: 'c', command: CmdCopy},
		{label: "Paste", mnemonic: 'v', command: CmdPaste},
		separator,
		{label: "Select All", mnemonic: 'a', command: CmdSelectAll},
	}},
	{title: "Format", items: []menuItem{
		{label: "Word Wrap", mnemonic: 'w', command: CmdWordWrap, checked: func(m Model) bool { return m.doc.WordWrap() }},
		{label: "Font", mnemonic: 'f', command: CmdFont},
	}},
}

// menuState tracks the open menu. The bar is closed when open is false.
type menuState struct {
	open   bool
	active int
	item   int
}

type menuKeys struct {
	left, right, up, down, accept, close key.Binding
}

var defaultMenuKeys = menuKeys{
	left:   key.NewBinding(key.WithKeys("left", "shift+tab")),
	right:  key.NewBinding(key.WithKeys("right", "tab")),
	up:     key.NewBinding(key.WithKeys("up")),
	down:   key.NewBinding(key.WithKeys("down")),
	accept: key.NewBinding(key.WithKeys("enter")),
	close:  key.NewBinding(key.WithKeys("esc", "f10")),
}

func (m Model) openMenu(active int) Model {
	m.menu = menuState{open: true, active: active}
	return m
}

func (m Model) updateMenu(msg tea.KeyMsg) (Model, tea.Cmd) {
	mk := defaultMenuKeys
	items := menus[m.menu.active].items

	switch {
	case key.Matches(msg, mk.close):
		m.menu = menuState{}
	case key.Matches(msg, mk.left):
		m.menu = menuState{open: true, active: (m.menu.active + len(menus) - 1) % len(menus)}
	case key.Matches(msg, mk.right):
		m.menu = menuState{open: true, active: (m.menu.active + 1) % len(menus)}
	case key.Matches(msg, mk.up):
		m.menu.item = stepItem(items, m.menu.item, -1)
	case key.Matches(msg, mk.down):
		m.menu.item = stepItem(items, m.menu.item, 1)
	case key.Matches(msg, mk.accept):
		c := items[m.menu.item].command
		m.menu = menuState{}
		return m.Run(c)
	default:
		if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
			break
		}
		r := unicode.ToLower(msg.Runes[0])
		if msg.Alt {
			// alt+letter jumps between menus by title initial.
			for i, mn := range menus {
				if unicode.ToLower([]rune(mn.title)[0]) == r {
					m.menu = menuState{open: true, active: i}
				}
			}
			break
		}
		for _, it := range items {
			if !it.separator && it.mnemonic == r {
				m.menu = menuState{}
				return m.Run(it.command)
			}
		}
	}
	return m, nil
}

// stepItem moves from i by dir, skipping separators and wrapping around.
func stepItem(items []menuItem, i, dir int) int {
	n := len(items)
	for range items {
		i = (i + dir + n) % n
		if !items[i].separator {
			return i
		}
	}
	return i
}

// menuBarView renders the bar and returns the cell offset of each title.
func (m Model) menuBarView() (string, []int) {
	st := m.cfg.Styles
	offsets := make([]int, len(menus))
	var sb strings.Builder
	x := 0
	for i, mn := range menus {
		label := " " + mn.title + " "
		offsets[i] = x
		if m.menu.open && m.menu.active == i {
			sb.WriteString(st.MenuActive.Render(label))
		} else {
			sb.WriteString(st.MenuItem.Render(label))
		}
		x += grapheme.Width(label)
	}
	if pad := m.width - x; pad > 0 {
		sb.WriteString(st.MenuBar.Render(strings.Repeat(" ", pad)))
	}
	return sb.String(), offsets
}

// dropdownView renders the open menu's items.
func (m Model) dropdownView() string {
	st := m.cfg.Styles
	items := menus[m.menu.active].items

	labelW, helpW := 0, 0
	for _, it := range items {
		labelW = max(labelW, grapheme.Width(it.label))
		helpW = max(helpW, grapheme.Width(m.cfg.Keys.help(it.command)))
	}
	width := 2 + labelW + 2 + helpW + 1

	lines := make([]string, len(items))
	for i, it := range items {
		if it.separator {
			lines[i] = strings.Repeat("─", width)
			continue
		}
		mark := "  "
		if it.checked != nil && it.checked(m) {
			mark = "✓ "
		}
		line := mark + grapheme.PadRight(it.label, labelW) + "  " + grapheme.PadRight(m.cfg.Keys.help(it.command), helpW) + " "
		if i == m.menu.item {
			line = st.MenuActive.Render(line)
		}
		lines[i] = line
	}
	return st.Dropdown.Render(strings.Join(lines, "\n"))
}
