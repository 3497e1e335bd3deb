package registration

// Field identifies one of the form's inputs.
type Field string

const (
	FieldName          Field = "name"
	FieldDepartment    Field = "department"
	FieldRegNumber     Field = "regNumber"
	FieldStateOfOrigin Field = "stateOfOrigin"
	FieldAge           Field = "age"
)

// Fields returns every form field in display order.
func Fields() []Field {
	return []Field{FieldName, FieldDepartment, FieldRegNumber, FieldStateOfOrigin, FieldAge}
}

// Input is the raw, unvalidated content of the form controls.
// Age is kept as text; it is coerced to a number during validation.
type Input struct {
	Name          string `yaml:"name"`
	Department    string `yaml:"department"`
	RegNumber     string `yaml:"regNumber"`
	StateOfOrigin string `yaml:"stateOfOrigin"`
	Age           string `yaml:"age"`
}

// Value returns the raw text held for field f.
func (in Input) Value(f Field) string {
	switch f {
	case FieldName:
		return in.Name
	case FieldDepartment:
		return in.Department
	case FieldRegNumber:
		return in.RegNumber
	case FieldStateOfOrigin:
		return in.StateOfOrigin
	case FieldAge:
		return in.Age
	}
	return ""
}

// Submission is a registration that passed validation. Text fields are
// trimmed. Only Validate produces a Submission.
type Submission struct {
	Name          string
	Department    string
	RegNumber     string
	StateOfOrigin Region
	Age           int
}
