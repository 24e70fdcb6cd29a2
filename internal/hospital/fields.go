package hospital

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hospital-tui/internal/models"
	"hospital-tui/internal/utils"
	"hospital-tui/internal/workflow"
)

func idField[T models.Entity]() workflow.Field[T] {
	return workflow.Field[T]{
		Name:   "ID",
		Format: func(rec T) string { return strconv.FormatInt(rec.GetID(), 10) },
	}
}

// textField edits a free-text column. Required fields reject blank input.
func textField[T any](name string, required bool, get func(T) string, set func(*T, string)) workflow.Field[T] {
	return workflow.Field[T]{
		Name:   name,
		Format: get,
		Parse: func(rec *T, raw string) error {
			raw = strings.TrimSpace(raw)
			if required && raw == "" {
				return errors.New(name + " cannot be empty")
			}
			set(rec, raw)
			return nil
		},
	}
}

func computedField[T any](name string, get func(T) string) workflow.Field[T] {
	return workflow.Field[T]{Name: name, Format: get}
}

func patientIDField[T any](get func(T) int64, set func(*T, int64)) workflow.Field[T] {
	return workflow.Field[T]{
		Name:   "Patient ID",
		Format: func(rec T) string { return strconv.FormatInt(get(rec), 10) },
		Parse: func(rec *T, raw string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil || id <= 0 {
				return errors.New("Invalid Patient ID format.")
			}
			set(rec, id)
			return nil
		},
	}
}

func emailField[T any](get func(T) string, set func(*T, string)) workflow.Field[T] {
	return workflow.Field[T]{
		Name:   "Email",
		Format: get,
		Parse: func(rec *T, raw string) error {
			raw = strings.TrimSpace(raw)
			if raw != "" && utils.ValidateVar(raw, "email") != nil {
				return errors.New("Email must be a valid email address")
			}
			set(rec, raw)
			return nil
		},
	}
}

func parseDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return "", errors.New("Date of birth must use the format YYYY-MM-DD")
	}
	return raw, nil
}

// ParseGender accepts m/male and f/female in any case; everything else is Other.
func ParseGender(raw string) models.Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "m", "male":
		return models.GenderMale
	case "f", "female":
		return models.GenderFemale
	default:
		return models.GenderOther
	}
}

// ParseRole accepts the role name or its first letter. Unknown input is Doctor.
func ParseRole(raw string) models.StaffRole {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "n", "nurse":
		return models.StaffRoleNurse
	case "a", "admin":
		return models.StaffRoleAdmin
	case "t", "technician":
		return models.StaffRoleTechnician
	default:
		return models.StaffRoleDoctor
	}
}

func parseQuantity(raw string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || q < 0 {
		return 0, errors.New("Invalid quantity. Please enter a valid number.")
	}
	return q, nil
}

func parseCost(raw string) (decimal.Decimal, error) {
	cost, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || cost.IsNegative() {
		return decimal.Zero, errors.New("Invalid cost. Please enter a valid number.")
	}
	return cost.Round(2), nil
}

// validateModel runs the struct tags of a model and reports the first
// failure as a ValidationError.
func validateModel(v any) error {
	if err := utils.Validate(v); err != nil {
		return &workflow.ValidationError{Message: utils.FormatValidationError(err)}
	}
	return nil
}
