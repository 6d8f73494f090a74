package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/myflix/internal/shared"
)

// notice is the notification currently on screen.
type notice struct {
	shared.Notification
	id int
}

// notify replaces the current notification and schedules its dismissal.
func (m *Model) notify(n shared.Notification) tea.Cmd {
	m.noticeSeq++
	id := m.noticeSeq
	m.notice = &notice{Notification: n, id: id}
	if n.Error {
		m.logger.Warn("notification", "message", n.Message)
	} else {
		m.logger.Debug("notification", "message", n.Message)
	}
	return tea.Tick(n.TTL, func(time.Time) tea.Msg { return dismissMsg(id) })
}

func (m *Model) info(msg string) tea.Cmd {
	return m.notify(m.notifier.Info(msg))
}

func (m *Model) failure(err error) tea.Cmd {
	return m.notify(m.notifier.Failure(err))
}

// dismiss clears the notification only if id still refers to it.
func (m *Model) dismiss(id int) {
	if m.notice != nil && m.notice.id == id {
		m.notice = nil
	}
}

func (m *Model) renderNotice() string {
	if m.notice == nil {
		return ""
	}
	style := styles.ok
	if m.notice.Error {
		style = styles.err
	}
	return styles.box.Render(fmt.Sprintf("%s  %s", style.Render(m.notice.Message), styles.help.Render("["+m.notice.Label+"]")))
}
