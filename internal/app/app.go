// Package app contains the root application model: the page that centers
// the registration form and shows notifications.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/regform/internal/keys"
	"github.com/zjrosen/regform/internal/log"
	"github.com/zjrosen/regform/internal/registration"
	"github.com/zjrosen/regform/internal/submit"
	"github.com/zjrosen/regform/internal/ui/regform"
	"github.com/zjrosen/regform/internal/ui/styles"
	"github.com/zjrosen/regform/internal/ui/toaster"
	"github.com/zjrosen/regform/internal/watcher"
)

// Config wires the application.
type Config struct {
	Submitter submit.Submitter
	// NotificationDuration is how long a toast stays up. Defaults to 4s.
	NotificationDuration time.Duration
	// Debug shows the live log panel under the form.
	Debug bool

	// ConfigChanges signals edits to the config file; Reload reads the
	// new settings. Both are optional.
	ConfigChanges <-chan struct{}
	Reload        func() (Settings, error)
}

// Settings are the values that take effect without a restart.
type Settings struct {
	NotificationDuration time.Duration
	Theme                styles.Theme
}

// reloadedMsg carries the outcome of a config reload.
type reloadedMsg struct {
	settings Settings
	err      error
}

// Model is the root application state.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	form    regform.Model
	toaster toaster.Model

	width  int
	height int

	toastDuration time.Duration

	debug       bool
	logs        logPanel
	logListener *log.LogListener

	configChanges <-chan struct{}
	reload        func() (Settings, error)
}

// New creates the application model. The returned model owns a context
// that is cancelled on quit or Close; submissions in flight observe it.
func New(cfg Config) Model {
	if cfg.NotificationDuration <= 0 {
		cfg.NotificationDuration = 4 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		ctx:           ctx,
		cancel:        cancel,
		form:          regform.New(regform.Config{Submitter: cfg.Submitter, Context: ctx}),
		toaster:       toaster.New(),
		toastDuration: cfg.NotificationDuration,
		debug:         cfg.Debug,
		configChanges: cfg.ConfigChanges,
		reload:        cfg.Reload,
	}
	if cfg.Reload == nil {
		m.configChanges = nil
	}
	if cfg.Debug {
		m.logListener = log.NewListener(ctx)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.form.Init()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	cmds = append(cmds, watcher.Wait(m.configChanges))
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form = m.form.SetWidth(min(regform.DefaultWidth, msg.Width-2))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.App.Quit) {
			return m.quit()
		}
		if key.Matches(msg, keys.App.Escape) && !m.form.PickerOpen() {
			return m.quit()
		}

	case regform.SubmittedMsg:
		m.toaster = m.toaster.Show(msg.Receipt.Notification)
		return m, m.toaster.ScheduleDismiss(m.toastDuration)

	case regform.FailedMsg:
		m.toaster = m.toaster.Show(registration.Failure(msg.Err))
		return m, m.toaster.ScheduleDismiss(m.toastDuration)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case watcher.ChangedMsg:
		if m.reload == nil {
			return m, nil
		}
		reload := m.reload
		return m, tea.Batch(
			func() tea.Msg {
				settings, err := reload()
				return reloadedMsg{settings: settings, err: err}
			},
			watcher.Wait(m.configChanges),
		)

	case reloadedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "Config reload failed", msg.err)
			return m, nil
		}
		m = m.applySettings(msg.settings)
		log.Info(log.CatConfig, "Config reloaded", "notificationDuration", m.toastDuration)
		return m, nil

	case log.LogEvent:
		m.logs = m.logs.append(msg.Payload)
		if m.logListener != nil {
			return m, m.logListener.Listen()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) applySettings(s Settings) Model {
	if s.NotificationDuration > 0 {
		m.toastDuration = s.NotificationDuration
	}
	styles.ApplyTheme(s.Theme)
	return m
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	log.Info(log.CatUI, "Quitting")
	m.cancel()
	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	content := m.form.View()
	if m.debug {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.logs.view(lipgloss.Width(content)))
	}

	if m.width == 0 || m.height == 0 {
		return zone.Scan(m.toaster.Overlay(content, lipgloss.Width(content), lipgloss.Height(content)))
	}

	page := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	return zone.Scan(m.toaster.Overlay(page, m.width, m.height))
}

// NotificationDuration returns how long toasts stay on screen.
func (m Model) NotificationDuration() time.Duration {
	return m.toastDuration
}

// Form returns the form component.
func (m Model) Form() regform.Model {
	return m.form
}

// Toast returns the notification on screen, if any.
func (m Model) Toast() (registration.Notification, bool) {
	return m.toaster.Notification()
}

// Close cancels the application context, aborting any submission in flight.
func (m Model) Close() {
	m.cancel()
}
