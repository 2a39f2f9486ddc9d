package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastError
)

// toast is the single transient notification slot. Each toast carries a
// unique id so an expiry timer from an older toast cannot clear a newer one.
type toast struct {
	id    string
	level toastLevel
	text  string
}

type toastExpireMsg struct{ id string }

// showToast replaces the current toast and schedules its expiry.
func (m *Model) showToast(level toastLevel, text string) tea.Cmd {
	m.toast = toast{id: uuid.NewString(), level: level, text: text}
	id := m.toast.id
	return tea.Tick(m.cfg.ToastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{id: id}
	})
}
