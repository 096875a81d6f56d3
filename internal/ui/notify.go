package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferrovax/zeroscope/internal/session"
)

// waitForNotice blocks on the session notifier and resurfaces the
// notification as a Bubble Tea message. The handler re-arms the wait, so
// exactly one receive is outstanding at any time and event bursts collapse
// into however many notifications the channel buffered.
func waitForNotice(n *session.Notifier) tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{note: <-n.C()}
	}
}

type noticeMsg struct {
	note session.Notification
}

func (m *Model) handleNoticeMsg(msg tea.Msg) tea.Cmd {
	noteMsg, ok := msg.(noticeMsg)
	if !ok {
		return nil
	}
	wait := waitForNotice(m.notifier)
	if noteMsg.note == session.NoteForceRedraw {
		return tea.Batch(tea.ClearScreen, wait)
	}
	return wait
}
