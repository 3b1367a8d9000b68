package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Command names a user action. Menus and shortcuts resolve to commands and
// Run dispatches them through one table.
type Command string

const (
	CmdNew       Command = "new"
	CmdOpen      Command = "open"
	CmdSave      Command = "save"
	CmdSaveAs    Command = "save-as"
	CmdExit      Command = "exit"
	CmdCut       Command = "cut"
	CmdCopy      Command = "copy"
	CmdPaste     Command = "paste"
	CmdSelectAll Command = "select-all"
	CmdWordWrap  Command = "word-wrap"
	CmdFont      Command = "font"
)

type handler func(Model) (Model, tea.Cmd)

var commands map[Command]handler

func init() {
	commands = map[Command]handler{
		CmdNew:       Model.newFile,
		CmdOpen:      Model.openFile,
		CmdSave:      Model.saveFile,
		CmdSaveAs:    Model.saveAsFile,
		CmdExit:      Model.exit,
		CmdCut:       Model.cut,
		CmdCopy:      Model.copy,
		CmdPaste:     Model.paste,
		CmdSelectAll: Model.selectAll,
		CmdWordWrap:  Model.toggleWordWrap,
		CmdFont:      Model.chooseFont,
	}
}

// Commands lists every command in menu order.
func Commands() []Command {
	return []Command{
		CmdNew, CmdOpen, CmdSave, CmdSaveAs, CmdExit,
		CmdCut, CmdCopy, CmdPaste, CmdSelectAll,
		CmdWordWrap, CmdFont,
	}
}

// Run executes c. Unknown commands are logged and ignored.
func (m Model) Run(c Command) (Model, tea.Cmd) {
	h, ok := commands[c]
	if !ok {
		m.log.Warn("unknown command", slog.String("command", string(c)))
		return m, nil
	}
	m.log.Debug("command", slog.String("command", string(c)))
	return h(m)
}
