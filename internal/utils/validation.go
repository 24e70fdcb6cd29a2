package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FormatValidationError formats validation errors into a readable string.
// Only the first failing field is reported; forms show one error at a time.
func FormatValidationError(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return describe(errs[0])
	}
	return err.Error()
}

func describe(e validator.FieldError) string {
	name := humanize(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s cannot be empty", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "datetime":
		return fmt.Sprintf("%s must use the format %s", name, "YYYY-MM-DD")
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// humanize turns a Go field name such as "DateOfBirth" into "Date of birth".
// Acronyms keep their case: "PatientID" becomes "Patient ID".
func humanize(field string) string {
	isUpper := func(c byte) bool { return c >= 'A' && c <= 'Z' }
	isLower := func(c byte) bool { return c >= 'a' && c <= 'z' }

	var b strings.Builder
	for i := 0; i < len(field); i++ {
		c := field[i]
		if i == 0 || !isUpper(c) {
			b.WriteByte(c)
			continue
		}
		startsWord := i+1 < len(field) && isLower(field[i+1])
		if !isUpper(field[i-1]) || startsWord {
			b.WriteByte(' ')
		}
		if startsWord {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ValidateVar checks a single value against a validator tag, e.g. "email".
func ValidateVar(value interface{}, tag string) error {
	return validate.Var(value, tag)
}
