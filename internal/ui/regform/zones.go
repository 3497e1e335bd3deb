package regform

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/regform/internal/registration"
)

const zoneSubmitButton = "regform-submit"

func fieldZoneID(index int) string {
	return fmt.Sprintf("regform-field-%d", index)
}

func stateZoneID(r registration.Region) string {
	return "regform-state-" + r.String()
}

func inZone(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	return z != nil && z.InBounds(msg)
}

// handleButtonClick focuses and presses the submit button when clicked.
func (m *Model) handleButtonClick(msg tea.MouseMsg) (tea.Cmd, bool) {
	if !inZone(zoneSubmitButton, msg) {
		return nil, false
	}
	*m = m.focusField(-1)
	next, cmd := m.Submit()
	*m = next
	return cmd, true
}

// handleStateClick picks a state from the open list. Only visible rows are
// marked, so collapsed or scrolled-out states never match.
func (m *Model) handleStateClick(msg tea.MouseMsg) bool {
	fs := m.focused()
	if fs == nil || fs.control.kind != controlPicker || !fs.expanded {
		return false
	}
	end := min(fs.offset+maxVisibleStates, len(fs.filtered))
	for i := fs.offset; i < end; i++ {
		if inZone(stateZoneID(fs.filtered[i]), msg) {
			fs.cursor = i
			fs.pick()
			m.clearError(registration.FieldStateOfOrigin)
			return true
		}
	}
	return false
}

// handleFieldClick focuses a clicked control. Clicking the state picker
// toggles its list.
func (m *Model) handleFieldClick(msg tea.MouseMsg) bool {
	for i := range m.fields {
		if !inZone(fieldZoneID(i), msg) {
			continue
		}
		fs := &m.fields[i]
		if fs.control.kind == controlPicker && m.focusedIndex == i && fs.expanded {
			fs.collapse()
			return true
		}
		*m = m.focusField(i)
		if fs.control.kind == controlPicker {
			fs.expand()
		}
		return true
	}
	return false
}
