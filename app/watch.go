package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/internal/watch"
)

type fileEventMsg watch.Event

// waitForFileEvent blocks until the watcher reports a change. The shell
// re-issues it after every event, so at most one is in flight.
func (m Model) waitForFileEvent() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return fileEventMsg(ev)
	}
}

// watch follows path, or stops watching when path is empty.
func (m Model) watch(path string) {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Watch(path); err != nil {
		m.log.Warn("watch failed", slog.String("path", path), slog.Any("err", err))
	}
}

func (m Model) handleFileEvent(ev watch.Event) (Model, tea.Cmd) {
	next := m.waitForFileEvent()
	if ev.Err != nil {
		m.log.Warn("watcher error", slog.Any("err", ev.Err))
		return m, next
	}
	// Our own saves leave the recorded modification time unchanged.
	if !m.doc.ChangedOnDisk() {
		return m, next
	}
	m.doc.AckDiskChange()
	m.log.Info("file changed on disk", slog.String("path", m.doc.Path()), slog.String("op", ev.Op.String()))

	if m.dialog != nil {
		m.flash = msgChangedOnDisk
		return m, next
	}
	m, cmd := m.notice(msgChangedOnDisk, nil)
	return m, tea.Batch(next, cmd)
}
