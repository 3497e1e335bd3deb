package regform

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/regform/internal/registration"
	"github.com/zjrosen/regform/internal/submit"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	zone.NewGlobal()
	os.Exit(m.Run())
}

func accepting() submit.Submitter {
	return submit.Func(func(_ context.Context, sub registration.Submission) (submit.Receipt, error) {
		return submit.NewReceipt(sub), nil
	})
}

func newForm() Model {
	return New(Config{Submitter: accepting()})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

// collect runs cmd and flattens batches into the resulting messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func fillValid(t *testing.T, m Model) Model {
	t.Helper()
	var ok bool
	for f, v := range map[registration.Field]string{
		registration.FieldName:       "Ada Lovelace",
		registration.FieldDepartment: "Computer Science",
		registration.FieldRegNumber:  "CS/2024/001",
		registration.FieldAge:        "22",
	} {
		m, ok = m.SetValue(f, v)
		require.True(t, ok)
	}
	m, ok = m.SelectState("Lagos")
	require.True(t, ok)
	return m
}

func TestNew(t *testing.T) {
	m := newForm()

	assert.Equal(t, registration.FieldName, m.Focused())
	assert.False(t, m.Submitting())
	assert.False(t, m.PickerOpen())
	assert.Equal(t, registration.Input{}, m.Input())
	assert.Equal(t, DefaultWidth, m.Width())

	view := m.View()
	for _, want := range []string{
		Title, Description,
		"Full Name", "Department", "Registration Number", "State of Origin", "Age",
		"Enter your department", "Select your state of origin", SubmitLabel,
	} {
		assert.Contains(t, view, want)
	}
	assert.NotNil(t, m.Init())
}

func TestSubmit_TypedInputReachesSubmitter(t *testing.T) {
	m := newForm()
	m = typeText(m, "Ada Lovelace")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "Computer Science")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "CS/2024/001")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, registration.FieldStateOfOrigin, m.Focused())
	m = typeText(m, "lag")
	require.True(t, m.PickerOpen())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "22")

	require.Equal(t, registration.Input{
		Name:          "Ada Lovelace",
		Department:    "Computer Science",
		RegNumber:     "CS/2024/001",
		StateOfOrigin: "Lagos",
		Age:           "22",
	}, m.Input())

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.Submitting())
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), SubmittingText)
	assert.NotContains(t, m.View(), SubmitLabel)

	result, ok := cmd().(ResultMsg)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Equal(t, 22, result.Receipt.Submission.Age)

	m, cmd = m.Update(result)
	assert.False(t, m.Submitting())
	assert.Equal(t, registration.Input{}, m.Input(), "form resets after success")
	assert.Empty(t, m.Errors())
	assert.Equal(t, registration.FieldName, m.Focused())

	done, ok := findMsg[SubmittedMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, registration.Notification{
		Kind:        registration.NotificationSuccess,
		Title:       "Registration Successful",
		Description: "Welcome, Ada Lovelace! Your information has been logged.",
	}, done.Receipt.Notification)
}

func TestSubmit_RepeatSubmissionAfterReset(t *testing.T) {
	m := newForm()
	var ids []uuid.UUID

	for i := range 2 {
		m = fillValid(t, m)
		var cmd tea.Cmd
		m, cmd = m.Submit()
		require.True(t, m.Submitting(), "pass %d", i)
		require.NotNil(t, cmd)

		m, cmd = m.Update(cmd())
		done, ok := findMsg[SubmittedMsg](collect(cmd))
		require.True(t, ok, "pass %d: submission acknowledged", i)
		assert.Equal(t, "Welcome, Ada Lovelace! Your information has been logged.", done.Receipt.Notification.Description)
		assert.Equal(t, registration.Input{}, m.Input(), "pass %d: form reset", i)
		assert.False(t, m.Submitting(), "pass %d", i)

		ids = append(ids, done.Receipt.ID)
	}

	assert.NotEqual(t, ids[0], ids[1], "each submission gets its own receipt")
}

func TestSubmit_InvalidFieldBlocksSubmission(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(Model) Model
		field   registration.Field
		message string
	}{
		{
			name:    "one letter name",
			mutate:  func(m Model) Model { m, _ = m.SetValue(registration.FieldName, "A"); return m },
			field:   registration.FieldName,
			message: "Name must be at least 2 characters",
		},
		{
			name:    "age below range",
			mutate:  func(m Model) Model { m, _ = m.SetValue(registration.FieldAge, "9"); return m },
			field:   registration.FieldAge,
			message: "Age must be at least 10",
		},
		{
			name:    "age above range",
			mutate:  func(m Model) Model { m, _ = m.SetValue(registration.FieldAge, "121"); return m },
			field:   registration.FieldAge,
			message: "Age must be less than 120",
		},
		{
			name:    "short registration number",
			mutate:  func(m Model) Model { m, _ = m.SetValue(registration.FieldRegNumber, "CS"); return m },
			field:   registration.FieldRegNumber,
			message: "Registration number is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.mutate(fillValid(t, newForm()))

			m, cmd := m.Submit()

			assert.False(t, m.Submitting())
			_, submitted := findMsg[ResultMsg](collect(cmd))
			assert.False(t, submitted, "no submission may start")
			require.Len(t, m.Errors(), 1)
			assert.Equal(t, tt.message, m.Errors().Message(tt.field))
			assert.Contains(t, m.View(), tt.message)
			assert.Equal(t, tt.field, m.Focused(), "focus moves to the invalid field")
		})
	}
}

func TestSubmit_NoStateSelected(t *testing.T) {
	m := newForm()
	m, _ = m.SetValue(registration.FieldName, "Ada Lovelace")
	m, _ = m.SetValue(registration.FieldDepartment, "Computer Science")
	m, _ = m.SetValue(registration.FieldRegNumber, "CS/2024/001")
	m, _ = m.SetValue(registration.FieldAge, "22")

	m, _ = m.Submit()

	assert.False(t, m.Submitting())
	assert.Equal(t, "Please select a state of origin", m.Errors().Message(registration.FieldStateOfOrigin))
	assert.Len(t, m.Errors(), 1)
}

func TestSubmit_EmptyFormReportsEveryField(t *testing.T) {
	m, _ := newForm().Submit()

	assert.Len(t, m.Errors(), 5)
	assert.Equal(t, registration.FieldName, m.Focused())
}

func TestSubmit_IgnoredWhileSubmitting(t *testing.T) {
	m, cmd := fillValid(t, newForm()).Submit()
	require.True(t, m.Submitting())
	require.NotNil(t, cmd)

	again, cmd2 := m.Submit()
	assert.Nil(t, cmd2)
	assert.True(t, again.Submitting())

	again, cmd2 = again.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd2)
	again, _ = again.Update(keyRunes("x"))
	assert.Equal(t, "Ada Lovelace", again.Input().Name, "input is ignored while submitting")
}

func TestSubmit_SubmitterErrorKeepsValues(t *testing.T) {
	boom := errors.New("service unavailable")
	m := New(Config{Submitter: submit.Func(func(context.Context, registration.Submission) (submit.Receipt, error) {
		return submit.Receipt{}, boom
	})})
	m = fillValid(t, m)

	m, cmd := m.Submit()
	m, cmd = m.Update(cmd())

	assert.False(t, m.Submitting())
	assert.Equal(t, "Ada Lovelace", m.Input().Name)
	assert.Equal(t, "Lagos", m.Input().StateOfOrigin)
	failed, ok := findMsg[FailedMsg](collect(cmd))
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, boom)
}

func TestSubmit_CancelledContextIsSilent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := fillValid(t, New(Config{Submitter: submit.NewSimulated(time.Hour), Context: ctx}))

	m, cmd := m.Submit()
	cancel()
	m, cmd = m.Update(cmd())

	assert.False(t, m.Submitting())
	assert.Nil(t, cmd)
}

func TestEditingClearsFieldError(t *testing.T) {
	m, _ := newForm().Submit()
	require.True(t, m.Errors().Has(registration.FieldName))
	require.Equal(t, registration.FieldName, m.Focused())

	m = typeText(m, "A")

	assert.False(t, m.Errors().Has(registration.FieldName))
	assert.True(t, m.Errors().Has(registration.FieldAge), "other errors stay")

	m, _ = m.SelectState("Kano")
	assert.False(t, m.Errors().Has(registration.FieldStateOfOrigin))
}

func TestSelectState(t *testing.T) {
	m, ok := newForm().SelectState("FCT")
	require.True(t, ok)
	assert.Equal(t, "FCT", m.Input().StateOfOrigin)
	assert.Contains(t, m.View(), "FCT")

	m, ok = m.SelectState("Atlantis")
	assert.False(t, ok)
	assert.Equal(t, "FCT", m.Input().StateOfOrigin)

	_, ok = m.SelectState("lagos")
	assert.False(t, ok, "names match exactly")
}

func TestSetValue_RejectsPicker(t *testing.T) {
	_, ok := newForm().SetValue(registration.FieldStateOfOrigin, "Lagos")
	assert.False(t, ok)
}

func TestPicker_KeyboardSelection(t *testing.T) {
	m := focusOn(t, newForm(), registration.FieldStateOfOrigin)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.PickerOpen())
	assert.Contains(t, m.View(), "Abia")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.PickerOpen())
	assert.Equal(t, "Akwa Ibom", m.Input().StateOfOrigin)
}

func TestPicker_NewQueryStartsAtFirstMatch(t *testing.T) {
	m := focusOn(t, newForm(), registration.FieldStateOfOrigin)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	m = typeText(m, "k")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.PickerOpen())
	assert.Equal(t, "Akwa Ibom", m.Input().StateOfOrigin)
}

func TestPicker_ArrowsAfterQueryStillMove(t *testing.T) {
	m := focusOn(t, newForm(), registration.FieldStateOfOrigin)

	m = typeText(m, "ka")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Kano", m.Input().StateOfOrigin)
}

func TestPicker_FreeTextNeverBecomesValue(t *testing.T) {
	m := focusOn(t, newForm(), registration.FieldStateOfOrigin)

	m = typeText(m, "Atlantis")
	require.True(t, m.PickerOpen())
	assert.Contains(t, m.View(), "No matching states")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.PickerOpen(), "nothing to pick")
	assert.Empty(t, m.Input().StateOfOrigin)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.PickerOpen())
	assert.Empty(t, m.Input().StateOfOrigin)
}

func TestPicker_ResetLeavesItUnselected(t *testing.T) {
	m := fillValid(t, newForm())
	m, cmd := m.Submit()
	m, _ = m.Update(cmd())

	assert.Empty(t, m.Input().StateOfOrigin)
	assert.Contains(t, m.View(), "Select your state of origin")
}

func TestNavigation(t *testing.T) {
	m := newForm()
	order := []registration.Field{
		registration.FieldDepartment,
		registration.FieldRegNumber,
		registration.FieldStateOfOrigin,
		registration.FieldAge,
		"", // submit button
		registration.FieldName,
	}
	for _, want := range order {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, want, m.Focused())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, registration.Field(""), m.Focused(), "shift+tab wraps to the button")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, registration.FieldAge, m.Focused())
}

func TestEnterOnButtonSubmits(t *testing.T) {
	m := focusOn(t, fillValid(t, newForm()), "")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Submitting())
	_, ok := cmd().(ResultMsg)
	assert.True(t, ok)
}

func TestMouse_ClickSubmitButton(t *testing.T) {
	m := fillValid(t, newForm())

	z := waitForZone(t, m, zoneSubmitButton)
	m, cmd := m.Update(tea.MouseMsg{
		X:      z.StartX + (z.EndX-z.StartX)/2,
		Y:      z.StartY,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	})

	assert.True(t, m.Submitting())
	require.NotNil(t, cmd)
}

func TestMouse_ClickFieldFocusesIt(t *testing.T) {
	m := newForm()

	z := waitForZone(t, m, fieldZoneID(m.indexOf(registration.FieldAge)))
	m, _ = m.Update(tea.MouseMsg{
		X:      z.StartX + 2,
		Y:      z.StartY + 1,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	})

	assert.Equal(t, registration.FieldAge, m.Focused())
}

func TestSetWidth(t *testing.T) {
	m := newForm().SetWidth(48)

	assert.Equal(t, 48, m.Width())
	for _, line := range splitLines(zone.Scan(m.View())) {
		assert.LessOrEqual(t, lipgloss.Width(line), 48)
	}
}

// focusOn tabs until field has focus ("" = submit button).
func focusOn(t *testing.T, m Model, field registration.Field) Model {
	t.Helper()
	for range len(controls) + 1 {
		if m.Focused() == field {
			return m
		}
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	require.Equal(t, field, m.Focused())
	return m
}

// waitForZone renders until the zone manager has recorded id. Zone
// registration happens on a worker goroutine inside bubblezone.
func waitForZone(t *testing.T, m Model, id string) *zone.ZoneInfo {
	t.Helper()
	var z *zone.ZoneInfo
	for range 50 {
		_ = zone.Scan(m.View())
		z = zone.Get(id)
		if z != nil && !z.IsZero() {
			return z
		}
		time.Sleep(time.Millisecond)
	}
	require.FailNow(t, "zone never registered", id)
	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range len(s) {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
