package regform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/regform/internal/keys"
	"github.com/zjrosen/regform/internal/ui/styles"
)

// View renders the form card. Zone markers are left in place; the caller
// must run zone.Scan on the final frame.
func (m Model) View() string {
	cw := m.contentWidth()

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(Title))
	b.WriteString("\n")
	b.WriteString(styles.DescriptionStyle.Width(cw).Render(Description))
	b.WriteString("\n\n")

	for i := range m.fields {
		b.WriteString(zone.Mark(fieldZoneID(i), m.renderField(i)))
		b.WriteString("\n")
		if msg := m.errors.Message(m.fields[i].control.field); msg != "" {
			b.WriteString(styles.FieldErrorStyle.Width(cw).Render(" " + msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(zone.Mark(zoneSubmitButton, m.renderButton()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys.Form))

	return styles.CardStyle.Render(b.String())
}

// renderField renders the labeled control for fields[index].
func (m Model) renderField(index int) string {
	fs := &m.fields[index]
	c := fs.control

	var content []string
	switch c.kind {
	case controlText:
		content = []string{" " + fs.input.View()}
	case controlPicker:
		content = m.renderPicker(index)
	}

	return styles.FormSection(styles.SectionConfig{
		Content: content,
		Width:   m.contentWidth(),
		Title:   c.label + " " + styles.RequiredMarkStyle.Render("*"),
		Hint:    c.hint,
		Focused: m.focusedIndex == index,
		Invalid: m.errors.Has(c.field),
	})
}

// renderPicker renders the state picker rows. Collapsed it is a single row
// showing the selection or the placeholder; expanded it adds the filter
// input and a scrolling window of matching states.
func (m Model) renderPicker(index int) []string {
	fs := &m.fields[index]
	inner := m.contentWidth() - 2

	current := styles.HintStyle.Render(fs.control.placeholder)
	if fs.selected != "" {
		current = fs.selected.String()
	}
	arrow := "▾"
	if fs.expanded {
		arrow = "▴"
	}
	gap := max(inner-2-lipgloss.Width(current)-lipgloss.Width(arrow), 1)
	rows := []string{" " + current + strings.Repeat(" ", gap) + arrow}

	if !fs.expanded {
		return rows
	}

	rows = append(rows, " "+strings.Repeat("─", inner-2))
	rows = append(rows, " "+fs.search.View())

	if len(fs.filtered) == 0 {
		return append(rows, " "+styles.HintStyle.Render("No matching states"))
	}

	end := min(fs.offset+maxVisibleStates, len(fs.filtered))
	for i := fs.offset; i < end; i++ {
		r := fs.filtered[i]
		prefix := " "
		if i == fs.cursor {
			prefix = styles.SelectionIndicatorStyle.Render(">")
		}
		mark := "  "
		if r == fs.selected {
			mark = "● "
		}
		rows = append(rows, zone.Mark(stateZoneID(r), prefix+mark+r.String()))
	}
	if len(fs.filtered) > maxVisibleStates {
		rows = append(rows, " "+styles.HintStyle.Render(fmt.Sprintf("%d/%d", fs.cursor+1, len(fs.filtered))))
	}
	return rows
}

// renderButton renders the full-width submit button. While submitting it is
// shown disabled with the in-progress label.
func (m Model) renderButton() string {
	label, style := SubmitLabel, styles.PrimaryButtonStyle
	switch {
	case m.submitting:
		label, style = SubmittingText, styles.DisabledButtonStyle
	case m.focusedIndex == -1:
		style = styles.PrimaryButtonFocusedStyle
	}
	return style.Width(m.contentWidth()).Align(lipgloss.Center).Render(label)
}

// contentWidth is the card width minus its border and horizontal padding.
func (m Model) contentWidth() int {
	return max(m.width-styles.CardStyle.GetHorizontalFrameSize(), 10)
}
