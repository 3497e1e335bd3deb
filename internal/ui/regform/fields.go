package regform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/zjrosen/regform/internal/registration"
	"github.com/zjrosen/regform/internal/ui/styles"
)

// fieldState holds runtime state for one control.
type fieldState struct {
	control control

	// Text controls
	input textinput.Model

	// Picker state
	selected registration.Region // "" until the user picks a state
	search   textinput.Model
	filtered []registration.Region
	cursor   int // index into filtered
	offset   int // first visible row of filtered
	expanded bool
}

func newFieldState(c control, inputWidth int) fieldState {
	fs := fieldState{control: c}

	switch c.kind {
	case controlText:
		fs.input = newTextInput(c.placeholder, inputWidth)
	case controlPicker:
		fs.search = newTextInput("Type to filter...", inputWidth)
		fs.filtered = registration.Regions()
	}
	return fs
}

func newTextInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = styles.HintStyle
	ti.Prompt = ""
	ti.Width = width
	return ti
}

// value returns the raw text the control holds.
func (fs *fieldState) value() string {
	if fs.control.kind == controlPicker {
		return string(fs.selected)
	}
	return fs.input.Value()
}

func (fs *fieldState) focus() {
	switch fs.control.kind {
	case controlText:
		fs.input.Focus()
	case controlPicker:
		if fs.expanded {
			fs.search.Focus()
		}
	}
}

func (fs *fieldState) blur() {
	switch fs.control.kind {
	case controlText:
		fs.input.Blur()
	case controlPicker:
		fs.collapse()
	}
}

func (fs *fieldState) clear() {
	switch fs.control.kind {
	case controlText:
		fs.input.SetValue("")
		fs.input.Blur()
	case controlPicker:
		fs.selected = ""
		fs.collapse()
	}
}

// expand opens the state list with an empty filter and the cursor on the
// current selection.
func (fs *fieldState) expand() {
	fs.expanded = true
	fs.search.SetValue("")
	fs.search.Focus()
	fs.filter()
	fs.cursor, fs.offset = 0, 0
	for i, r := range fs.filtered {
		if r == fs.selected {
			fs.cursor = i
			break
		}
	}
	fs.scrollToCursor()
}

func (fs *fieldState) collapse() {
	fs.expanded = false
	fs.search.Blur()
}

// filter narrows the list to states containing the search text, ignoring case.
func (fs *fieldState) filter() {
	query := strings.ToLower(strings.TrimSpace(fs.search.Value()))
	var matches []registration.Region
	for _, r := range registration.Regions() {
		if query == "" || strings.Contains(strings.ToLower(r.String()), query) {
			matches = append(matches, r)
		}
	}
	fs.filtered = matches
	if fs.cursor >= len(fs.filtered) {
		fs.cursor, fs.offset = 0, 0
	}
}

// pick selects the state under the cursor. It reports false when the
// filter matches nothing.
func (fs *fieldState) pick() bool {
	if fs.cursor < 0 || fs.cursor >= len(fs.filtered) {
		return false
	}
	fs.selected = fs.filtered[fs.cursor]
	fs.collapse()
	return true
}

func (fs *fieldState) moveCursor(delta int) {
	if len(fs.filtered) == 0 {
		return
	}
	fs.cursor = min(max(fs.cursor+delta, 0), len(fs.filtered)-1)
	fs.scrollToCursor()
}

func (fs *fieldState) scrollToCursor() {
	if fs.cursor >= fs.offset+maxVisibleStates {
		fs.offset = fs.cursor - maxVisibleStates + 1
	}
	if fs.cursor < fs.offset {
		fs.offset = fs.cursor
	}
}
