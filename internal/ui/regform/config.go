// Package regform provides the registration form component.
//
// The form owns five controls (four text inputs and a state picker), runs
// validation on submit, and hands a valid submission to a submit.Submitter
// off the update loop. The surrounding page reacts to SubmittedMsg and
// FailedMsg.
//
// Keyboard:
//
//	Tab, Ctrl+N, ↓      - Next field/button
//	Shift+Tab, Ctrl+P, ↑ - Previous field/button
//	Enter               - Open the state list, pick a state, or press the button
//	Esc                 - Close the state list
//	Ctrl+S              - Submit from anywhere
package regform

import (
	"context"

	"github.com/zjrosen/regform/internal/registration"
	"github.com/zjrosen/regform/internal/submit"
)

// Card copy.
const (
	Title          = "Registration Form"
	Description    = "Please fill in your details to complete registration"
	SubmitLabel    = "Submit Registration"
	SubmittingText = "Submitting..."
)

// DefaultWidth is the card width used when none is configured.
const DefaultWidth = 60

// Config configures a new form.
type Config struct {
	// Submitter receives validated submissions. Required.
	Submitter submit.Submitter
	// Context is passed to the submitter; cancelling it aborts a submission
	// in flight. Defaults to context.Background().
	Context context.Context
	// Width of the card in cells, borders included.
	Width int
}

type controlKind int

const (
	controlText controlKind = iota
	controlPicker
)

// control describes one labeled form control.
type control struct {
	field       registration.Field
	kind        controlKind
	label       string
	placeholder string
	hint        string
}

var controls = []control{
	{field: registration.FieldName, kind: controlText, label: "Full Name", placeholder: "Enter your full name"},
	{field: registration.FieldDepartment, kind: controlText, label: "Department", placeholder: "Enter your department"},
	{field: registration.FieldRegNumber, kind: controlText, label: "Registration Number", placeholder: "Enter your registration number"},
	{field: registration.FieldStateOfOrigin, kind: controlPicker, label: "State of Origin", placeholder: "Select your state of origin"},
	{field: registration.FieldAge, kind: controlText, label: "Age", placeholder: "Enter your age", hint: "10-120"},
}

// maxVisibleStates bounds the height of the open state list.
const maxVisibleStates = 6
