package registration

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages shown next to a field when its constraint is violated.
const (
	MsgNameTooShort       = "Name must be at least 2 characters"
	MsgNameTooLong        = "Name is too long"
	MsgDepartmentRequired = "Department is required"
	MsgDepartmentTooLong  = "Department name is too long"
	MsgRegNumberRequired  = "Registration number is required"
	MsgRegNumberTooLong   = "Registration number is too long"
	MsgStateRequired      = "Please select a state of origin"
	MsgAgeRequired        = "Age is required"
	MsgAgeNotNumber       = "Age must be a number"
	MsgAgeNotWhole        = "Age must be a whole number"
	MsgAgeTooLow          = "Age must be at least 10"
	MsgAgeTooHigh         = "Age must be less than 120"
)

// Bounds of the age field, inclusive.
const (
	MinAge = 10
	MaxAge = 120
)

// regionTag is the validator tag checking membership in the region enumeration.
const regionTag = "region"

// constraint is the outcome reported when a validator tag fails.
type constraint struct {
	kind    ErrorKind
	message string
}

// rule declares the validator tags for one field and what each failure means.
type rule struct {
	field Field
	tags  string
	on    map[string]constraint
}

// schema is evaluated field by field; every field is checked even when an
// earlier one fails.
var schema = []rule{
	{
		field: FieldName,
		tags:  "required,min=2,max=100",
		on: map[string]constraint{
			"required": {MissingField, MsgNameTooShort},
			"min":      {TooShort, MsgNameTooShort},
			"max":      {TooLong, MsgNameTooLong},
		},
	},
	{
		field: FieldDepartment,
		tags:  "required,min=2,max=100",
		on: map[string]constraint{
			"required": {MissingField, MsgDepartmentRequired},
			"min":      {TooShort, MsgDepartmentRequired},
			"max":      {TooLong, MsgDepartmentTooLong},
		},
	},
	{
		field: FieldRegNumber,
		tags:  "required,min=3,max=50",
		on: map[string]constraint{
			"required": {MissingField, MsgRegNumberRequired},
			"min":      {TooShort, MsgRegNumberRequired},
			"max":      {TooLong, MsgRegNumberTooLong},
		},
	},
	{
		field: FieldStateOfOrigin,
		tags:  "required," + regionTag,
		on: map[string]constraint{
			"required": {NoSelection, MsgStateRequired},
			regionTag:  {NoSelection, MsgStateRequired},
		},
	},
	{
		field: FieldAge,
		tags:  "min=" + strconv.Itoa(MinAge) + ",max=" + strconv.Itoa(MaxAge),
		on: map[string]constraint{
			"min": {InvalidRange, MsgAgeTooLow},
			"max": {InvalidRange, MsgAgeTooHigh},
		},
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(regionTag, func(fl validator.FieldLevel) bool {
		return Region(fl.Field().String()).Valid()
	}); err != nil {
		panic("registration: register region validation: " + err.Error())
	}
	return v
}

// Validate checks in against the schema. On success it returns the typed
// submission and nil Errors; otherwise the returned Errors holds one entry
// per failing field and the Submission is the zero value.
func Validate(in Input) (Submission, Errors) {
	sub := Submission{
		Name:          strings.TrimSpace(in.Name),
		Department:    strings.TrimSpace(in.Department),
		RegNumber:     strings.TrimSpace(in.RegNumber),
		StateOfOrigin: Region(in.StateOfOrigin),
	}

	errs := Errors{}
	age, ageErr := parseAge(in.Age)
	if ageErr != nil {
		errs[FieldAge] = *ageErr
	}
	sub.Age = age

	values := map[Field]any{
		FieldName:          sub.Name,
		FieldDepartment:    sub.Department,
		FieldRegNumber:     sub.RegNumber,
		FieldStateOfOrigin: string(sub.StateOfOrigin),
		FieldAge:           sub.Age,
	}

	for _, r := range schema {
		if errs.Has(r.field) {
			continue
		}
		if err := validate.Var(values[r.field], r.tags); err != nil {
			c, ok := r.on[failedTag(err)]
			if !ok {
				c = r.on[firstTag(r.tags)]
			}
			errs[r.field] = FieldError{Field: r.field, Kind: c.kind, Message: c.message}
		}
	}

	if len(errs) > 0 {
		return Submission{}, errs
	}
	return sub, nil
}

// parseAge coerces the age text to an integer. Decimal and exponent
// notation are accepted. Values beyond the int32 range are clamped so the
// range check reports them as too low or too high.
func parseAge(raw string) (int, *FieldError) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &FieldError{Field: FieldAge, Kind: MissingField, Message: MsgAgeRequired}
	}
	// ParseFloat also reads digit separators, Inf and NaN. None of them is an age.
	f, err := strconv.ParseFloat(s, 64)
	overflow := errors.Is(err, strconv.ErrRange)
	if err != nil && !overflow || strings.ContainsRune(s, '_') ||
		math.IsNaN(f) || math.IsInf(f, 0) && !overflow {
		return 0, &FieldError{Field: FieldAge, Kind: InvalidRange, Message: MsgAgeNotNumber}
	}
	if !math.IsInf(f, 0) && f != math.Trunc(f) {
		return 0, &FieldError{Field: FieldAge, Kind: InvalidRange, Message: MsgAgeNotWhole}
	}
	f = math.Max(math.Min(f, math.MaxInt32), math.MinInt32)
	return int(f), nil
}

func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

func firstTag(tags string) string {
	tag, _, _ := strings.Cut(tags, ",")
	tag, _, _ = strings.Cut(tag, "=")
	return tag
}
