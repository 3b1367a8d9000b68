package editor

import "github.com/iw2rmb/notepad/buffer"

// ChangeEvent describes the buffer after an update that changed it.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Offset    int // cursor as a rune offset into Text
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// TextChanged is false for cursor or selection only updates.
	TextChanged bool
	Text        string
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		Cursor:      b.Cursor(),
		Offset:      b.CursorOffset(),
		TextChanged: textChanged,
		Text:        b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
