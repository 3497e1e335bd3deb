// Package toaster provides a notification toast overlay component.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/regform/internal/registration"
	"github.com/zjrosen/regform/internal/ui/overlay"
	"github.com/zjrosen/regform/internal/ui/styles"
)

// MaxWidth is the wrap width of the toast body.
const MaxWidth = 44

// Model holds the toaster state.
type Model struct {
	note    registration.Notification
	visible bool
	// seq identifies the toast currently on screen so a timer scheduled for
	// an earlier toast does not dismiss a newer one.
	seq int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays a notification, replacing any toast already visible.
func (m Model) Show(n registration.Notification) Model {
	m.note = n
	m.visible = true
	m.seq++
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.note = registration.Notification{}
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Notification returns the notification on screen, if any.
func (m Model) Notification() (registration.Notification, bool) {
	return m.note, m.visible
}

// Update hides the toast when its own dismiss timer fires.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		return m.Hide()
	}
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.note.Title == "" {
		return ""
	}

	style, icon := styles.ToastSuccessStyle, "✅ "
	if m.note.Kind == registration.NotificationError {
		style, icon = styles.ToastErrorStyle, "❌ "
	}

	title := styles.TitleStyle.Render(icon + m.note.Title)
	if m.note.Description == "" {
		return style.Render(title)
	}
	body := styles.DescriptionStyle.Render(wordwrap.String(m.note.Description, MaxWidth))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// Overlay renders the toast at the bottom of a background view.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.BottomRight,
		PadX:     2,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg signals that a toast's display time is over.
type DismissMsg struct {
	seq int
}

// ScheduleDismiss returns a command that dismisses the current toast after d.
func (m Model) ScheduleDismiss(d time.Duration) tea.Cmd {
	seq := m.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}
