package app

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	choiceYes    = "Yes"
	choiceNo     = "No"
	choiceCancel = "Cancel"
	choiceOK     = "OK"
)

type dialogKind int

const (
	// dialogButtons shows options side by side (confirmations, notices).
	dialogButtons dialogKind = iota
	// dialogList shows options one per line (font chooser).
	dialogList
	// dialogPrompt asks for a line of text (file paths).
	dialogPrompt
)

// dialogResult is passed to a dialog's continuation. Choice holds the picked
// option label and Text the prompt input. Dismissed is set when the dialog
// was closed without an answer.
type dialogResult struct {
	Choice    string
	Text      string
	Dismissed bool
}

type continuation func(Model, dialogResult) (Model, tea.Cmd)

type dialog struct {
	kind     dialogKind
	title    string
	message  string
	options  []string
	selected int
	input    textinput.Model

	// escChoice is picked by esc. Empty means esc dismisses.
	escChoice string

	onDone continuation
}

type dialogKeys struct {
	prev, next, accept, dismiss key.Binding
}

var defaultDialogKeys = dialogKeys{
	prev:    key.NewBinding(key.WithKeys("left", "up", "shift+tab")),
	next:    key.NewBinding(key.WithKeys("right", "down", "tab")),
	accept:  key.NewBinding(key.WithKeys("enter")),
	dismiss: key.NewBinding(key.WithKeys("esc")),
}

func newChoiceDialog(kind dialogKind, title, message string, options []string, escChoice string, onDone continuation) *dialog {
	return &dialog{
		kind:      kind,
		title:     title,
		message:   message,
		options:   options,
		escChoice: escChoice,
		onDone:    onDone,
	}
}

func newPromptDialog(title, message, value string, onDone continuation) *dialog {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "path/to/file.txt"
	in.SetValue(value)
	in.CursorEnd()
	in.Focus()
	return &dialog{
		kind:    dialogPrompt,
		title:   title,
		message: message,
		input:   in,
		onDone:  onDone,
	}
}

// update handles a key. It returns a result once the dialog is answered.
func (d *dialog) update(msg tea.Msg) (tea.Cmd, *dialogResult) {
	km, isKey := msg.(tea.KeyMsg)
	if d.kind == dialogPrompt {
		if isKey {
			switch {
			case key.Matches(km, defaultDialogKeys.accept):
				return nil, &dialogResult{Text: d.input.Value()}
			case key.Matches(km, defaultDialogKeys.dismiss):
				return nil, &dialogResult{Dismissed: true}
			}
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return cmd, nil
	}

	if !isKey {
		return nil, nil
	}
	switch {
	case key.Matches(km, defaultDialogKeys.prev):
		d.selected = (d.selected + len(d.options) - 1) % len(d.options)
	case key.Matches(km, defaultDialogKeys.next):
		d.selected = (d.selected + 1) % len(d.options)
	case key.Matches(km, defaultDialogKeys.accept):
		return nil, &dialogResult{Choice: d.options[d.selected]}
	case key.Matches(km, defaultDialogKeys.dismiss):
		if d.escChoice != "" {
			return nil, &dialogResult{Choice: d.escChoice}
		}
		return nil, &dialogResult{Dismissed: true}
	default:
		if d.kind == dialogButtons && km.Type == tea.KeyRunes && len(km.Runes) == 1 && !km.Alt {
			if opt, ok := d.optionByInitial(km.Runes[0]); ok {
				return nil, &dialogResult{Choice: opt}
			}
		}
	}
	return nil, nil
}

// resize fits the prompt input to a terminal of the given width.
func (d *dialog) resize(width int) {
	if d.kind == dialogPrompt {
		d.input.Width = max(min(width-10, 60), 10)
	}
}

func (d *dialog) optionByInitial(r rune) (string, bool) {
	r = unicode.ToLower(r)
	for _, opt := range d.options {
		if unicode.ToLower([]rune(opt)[0]) == r {
			return opt, true
		}
	}
	return "", false
}

func (d *dialog) view(st Styles) string {
	var body []string
	body = append(body, st.DialogTitle.Render(d.title), "", d.message)

	switch d.kind {
	case dialogPrompt:
		body = append(body, "", d.input.View())
	case dialogList:
		body = append(body, "")
		for i, opt := range d.options {
			if i == d.selected {
				body = append(body, st.ButtonActive.Render("> "+opt))
			} else {
				body = append(body, st.Button.Render("  "+opt))
			}
		}
	default:
		buttons := make([]string, len(d.options))
		for i, opt := range d.options {
			if i == d.selected {
				buttons[i] = st.ButtonActive.Render("[" + opt + "]")
			} else {
				buttons[i] = st.Button.Render(" " + opt + " ")
			}
		}
		body = append(body, "", strings.Join(buttons, " "))
	}

	return st.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}
