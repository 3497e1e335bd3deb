package regform

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/regform/internal/keys"
	"github.com/zjrosen/regform/internal/log"
	"github.com/zjrosen/regform/internal/registration"
	"github.com/zjrosen/regform/internal/submit"
)

// ResultMsg carries the submitter's outcome back into the update loop.
type ResultMsg struct {
	Receipt submit.Receipt
	Err     error
}

// SubmittedMsg is sent after a submission is accepted and the form reset.
type SubmittedMsg struct {
	Receipt submit.Receipt
}

// FailedMsg is sent when the submitter rejects a valid submission.
// The field values are kept.
type FailedMsg struct {
	Err error
}

// Model is the registration form state.
//
// Model follows value semantics: methods return an updated Model.
type Model struct {
	submitter submit.Submitter
	ctx       context.Context

	fields       []fieldState
	focusedIndex int // index into fields, -1 = submit button
	errors       registration.Errors
	submitting   bool

	width int
	help  help.Model
}

// New creates a form with every control empty and focus on the first field.
func New(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}

	m := Model{
		submitter: cfg.Submitter,
		ctx:       cfg.Context,
		fields:    make([]fieldState, len(controls)),
		help:      help.New(),
	}
	for i, c := range controls {
		m.fields[i] = newFieldState(c, 0)
	}
	m = m.SetWidth(cfg.Width)
	m.fields[0].focus()
	return m
}

// Init starts the cursor blinking in the first field.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		return m.handleResult(msg)

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.submitting {
			return m, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			if cmd, ok := m.handleButtonClick(msg); ok {
				return m, cmd
			}
			if m.handleStateClick(msg) {
				return m, nil
			}
			if m.handleFieldClick(msg) {
				return m, m.blinkCmd()
			}
		}
		return m, nil
	}

	// Cursor blinks and other internal messages go to the focused input.
	return m.updateFocusedInput(msg)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, keys.Form.Submit) {
		return m.Submit()
	}

	if fs := m.focused(); fs != nil && fs.control.kind == controlPicker {
		return m.handleKeyForPicker(msg, fs)
	}

	switch {
	case key.Matches(msg, keys.Form.Tab), key.Matches(msg, keys.Form.Next), key.Matches(msg, keys.Form.Down):
		m = m.nextField()
		return m, m.blinkCmd()

	case key.Matches(msg, keys.Form.ShiftTab), key.Matches(msg, keys.Form.Prev), key.Matches(msg, keys.Form.Up):
		m = m.prevField()
		return m, m.blinkCmd()

	case key.Matches(msg, keys.Form.Enter):
		if m.focusedIndex == -1 {
			return m.Submit()
		}
		m = m.nextField()
		return m, m.blinkCmd()
	}

	return m.updateFocusedInput(msg)
}

// handleKeyForPicker processes keys while the state picker has focus.
//
//   - Collapsed: Enter opens the list; typing opens it with the typed filter.
//   - Expanded: typing filters, ↑/↓ move, Enter picks, Esc closes.
func (m Model) handleKeyForPicker(msg tea.KeyMsg, fs *fieldState) (Model, tea.Cmd) {
	if !fs.expanded {
		switch {
		case key.Matches(msg, keys.Form.Tab), key.Matches(msg, keys.Form.Next), key.Matches(msg, keys.Form.Down):
			m = m.nextField()
			return m, m.blinkCmd()
		case key.Matches(msg, keys.Form.ShiftTab), key.Matches(msg, keys.Form.Prev), key.Matches(msg, keys.Form.Up):
			m = m.prevField()
			return m, m.blinkCmd()
		case key.Matches(msg, keys.Form.Enter), msg.Type == tea.KeySpace:
			fs.expand()
			return m, textinput.Blink
		case msg.Type == tea.KeyRunes:
			fs.expand()
			return m.updateSearch(msg, fs)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Form.Tab):
		fs.collapse()
		m = m.nextField()
		return m, m.blinkCmd()

	case key.Matches(msg, keys.Form.ShiftTab):
		fs.collapse()
		m = m.prevField()
		return m, m.blinkCmd()

	case key.Matches(msg, keys.Form.Escape):
		fs.collapse()
		return m, nil

	case key.Matches(msg, keys.Form.Down), key.Matches(msg, keys.Form.Next):
		fs.moveCursor(1)
		return m, nil

	case key.Matches(msg, keys.Form.Up), key.Matches(msg, keys.Form.Prev):
		fs.moveCursor(-1)
		return m, nil

	case key.Matches(msg, keys.Form.Enter):
		if fs.pick() {
			m.clearError(fs.control.field)
		}
		return m, nil
	}

	return m.updateSearch(msg, fs)
}

// updateSearch edits the picker filter. A new query puts the cursor back on
// the first match.
func (m Model) updateSearch(msg tea.Msg, fs *fieldState) (Model, tea.Cmd) {
	before := fs.search.Value()
	var cmd tea.Cmd
	fs.search, cmd = fs.search.Update(msg)
	if fs.search.Value() != before {
		fs.cursor, fs.offset = 0, 0
	}
	fs.filter()
	return m, cmd
}

// updateFocusedInput forwards msg to the focused text input. A changed value
// clears that field's error.
func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	fs := m.focused()
	if fs == nil {
		return m, nil
	}
	if fs.control.kind == controlPicker {
		if fs.expanded {
			var cmd tea.Cmd
			fs.search, cmd = fs.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	before := fs.input.Value()
	var cmd tea.Cmd
	fs.input, cmd = fs.input.Update(msg)
	if fs.input.Value() != before {
		m.clearError(fs.control.field)
	}
	return m, cmd
}

// Submit validates the controls. Invalid input is reported inline and focus
// moves to the first invalid field. Valid input starts the submission; the
// returned command runs the submitter and yields a ResultMsg. Calling Submit
// while a submission is in flight does nothing.
func (m Model) Submit() (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	sub, errs := registration.Validate(m.Input())
	if len(errs) > 0 {
		m.errors = errs
		failed := make([]string, 0, len(errs))
		for _, fe := range errs.Ordered() {
			failed = append(failed, string(fe.Field))
		}
		log.Debug(log.CatForm, "Validation failed", "fields", strings.Join(failed, ","))
		m = m.focusField(m.indexOf(errs.Ordered()[0].Field))
		return m, m.blinkCmd()
	}

	m.errors = nil
	m.submitting = true
	if fs := m.focused(); fs != nil {
		fs.blur()
	}
	log.Debug(log.CatForm, "Submitting registration", "name", sub.Name)

	submitter, ctx := m.submitter, m.ctx
	return m, func() tea.Msg {
		receipt, err := submitter.Submit(ctx, sub)
		return ResultMsg{Receipt: receipt, Err: err}
	}
}

func (m Model) handleResult(msg ResultMsg) (Model, tea.Cmd) {
	if !m.submitting {
		return m, nil
	}
	m.submitting = false

	if msg.Err != nil {
		if fs := m.focused(); fs != nil {
			fs.focus()
		}
		if errors.Is(msg.Err, context.Canceled) {
			return m, nil
		}
		err := msg.Err
		return m, func() tea.Msg { return FailedMsg{Err: err} }
	}

	m = m.Reset()
	receipt := msg.Receipt
	return m, tea.Batch(
		m.blinkCmd(),
		func() tea.Msg { return SubmittedMsg{Receipt: receipt} },
	)
}

// Reset empties every control, clears errors and focuses the first field.
func (m Model) Reset() Model {
	for i := range m.fields {
		m.fields[i].clear()
	}
	m.errors = nil
	m.focusedIndex = 0
	m.fields[0].focus()
	log.Debug(log.CatForm, "Form reset")
	return m
}

// SelectState sets the state of origin as if picked from the list. It
// reports false, leaving the form unchanged, for a name outside the region
// enumeration.
func (m Model) SelectState(r registration.Region) (Model, bool) {
	if !r.Valid() {
		return m, false
	}
	fs := &m.fields[m.indexOf(registration.FieldStateOfOrigin)]
	fs.selected = r
	fs.collapse()
	m.clearError(registration.FieldStateOfOrigin)
	return m, true
}

// SetValue replaces the text of a text control. It reports false for the
// state picker, which only accepts SelectState.
func (m Model) SetValue(f registration.Field, v string) (Model, bool) {
	i := m.indexOf(f)
	if i < 0 || m.fields[i].control.kind != controlText {
		return m, false
	}
	m.fields[i].input.SetValue(v)
	m.clearError(f)
	return m, true
}

// Input returns the raw content of every control.
func (m Model) Input() registration.Input {
	var in registration.Input
	for i := range m.fields {
		v := m.fields[i].value()
		switch m.fields[i].control.field {
		case registration.FieldName:
			in.Name = v
		case registration.FieldDepartment:
			in.Department = v
		case registration.FieldRegNumber:
			in.RegNumber = v
		case registration.FieldStateOfOrigin:
			in.StateOfOrigin = v
		case registration.FieldAge:
			in.Age = v
		}
	}
	return in
}

// Errors returns the errors from the last submit attempt, minus fields
// edited since.
func (m Model) Errors() registration.Errors {
	return m.errors
}

// Submitting reports whether a submission is in flight.
func (m Model) Submitting() bool {
	return m.submitting
}

// PickerOpen reports whether the state list is expanded.
func (m Model) PickerOpen() bool {
	fs := m.focused()
	return fs != nil && fs.control.kind == controlPicker && fs.expanded
}

// Focused returns the field with focus, or "" when the button has it.
func (m Model) Focused() registration.Field {
	if fs := m.focused(); fs != nil {
		return fs.control.field
	}
	return ""
}

// SetWidth sets the card width.
func (m Model) SetWidth(w int) Model {
	m.width = max(w, 30)
	inputWidth := m.contentWidth() - 4
	for i := range m.fields {
		m.fields[i].input.Width = inputWidth
		m.fields[i].search.Width = inputWidth
	}
	m.help.Width = m.contentWidth()
	return m
}

// Width returns the card width.
func (m Model) Width() int {
	return m.width
}

func (m *Model) clearError(f registration.Field) {
	if m.errors.Has(f) {
		delete(m.errors, f)
	}
}

func (m Model) focused() *fieldState {
	if m.focusedIndex < 0 || m.focusedIndex >= len(m.fields) {
		return nil
	}
	return &m.fields[m.focusedIndex]
}

func (m Model) indexOf(f registration.Field) int {
	for i := range m.fields {
		if m.fields[i].control.field == f {
			return i
		}
	}
	return -1
}

// nextField moves focus forward: fields, then the button, then back to the
// first field.
func (m Model) nextField() Model {
	next := m.focusedIndex + 1
	if m.focusedIndex == len(m.fields)-1 {
		next = -1
	}
	return m.focusField(next)
}

// prevField moves focus backward, wrapping from the first field to the button.
func (m Model) prevField() Model {
	prev := m.focusedIndex - 1
	switch m.focusedIndex {
	case -1:
		prev = len(m.fields) - 1
	case 0:
		prev = -1
	}
	return m.focusField(prev)
}

// focusField blurs the current control and focuses index (-1 = button).
func (m Model) focusField(index int) Model {
	if fs := m.focused(); fs != nil {
		fs.blur()
	}
	m.focusedIndex = index
	if fs := m.focused(); fs != nil {
		fs.focus()
	}
	return m
}

// blinkCmd returns the blink command if the focused control shows a cursor.
func (m Model) blinkCmd() tea.Cmd {
	fs := m.focused()
	if fs == nil {
		return nil
	}
	if fs.control.kind == controlText || fs.expanded {
		return textinput.Blink
	}
	return nil
}
