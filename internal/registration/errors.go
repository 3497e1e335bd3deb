package registration

import (
	"strings"
)

// ErrorKind classifies a validation failure.
type ErrorKind int

const (
	MissingField ErrorKind = iota
	TooShort
	TooLong
	InvalidRange
	NoSelection
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case TooShort:
		return "too_short"
	case TooLong:
		return "too_long"
	case InvalidRange:
		return "invalid_range"
	case NoSelection:
		return "no_selection"
	default:
		return "unknown"
	}
}

// FieldError is the first constraint a field violated.
type FieldError struct {
	Field   Field
	Kind    ErrorKind
	Message string
}

func (e FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// Errors maps each failing field to its error. A nil or empty Errors means
// the input was valid.
type Errors map[Field]FieldError

// Has reports whether field f failed validation.
func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Message returns the user-facing message for f, or "" when f is valid.
func (e Errors) Message(f Field) string {
	return e[f].Message
}

// Ordered returns the errors in form display order.
func (e Errors) Ordered() []FieldError {
	out := make([]FieldError, 0, len(e))
	for _, f := range Fields() {
		if fe, ok := e[f]; ok {
			out = append(out, fe)
		}
	}
	return out
}

// Error joins every field error in display order.
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e.Ordered() {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// Err returns e as an error, or nil when there are no failures.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
