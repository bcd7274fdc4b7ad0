package validator

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
)

// RequiredString fails on empty or whitespace-only values.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:   field,
			Message: "is required",
		},
	}
}

// MinLenString fails when the trimmed value is shorter than min runes.
// Empty values pass; combine with RequiredString when presence is mandatory.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			trimmed := strings.TrimSpace(value)
			return trimmed == "" || len([]rune(trimmed)) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters", min),
		},
	}
}

// MaxLenString fails when the trimmed value is longer than max runes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return len([]rune(strings.TrimSpace(value))) <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters", max),
		},
	}
}

// ValidEmail fails on values that are not a parsable address.
// Empty values pass; combine with RequiredString when presence is mandatory.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			addr, err := mail.ParseAddress(value)
			return err == nil && addr.Address == value
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// GreaterThan fails when value <= bound.
func GreaterThan[T Numeric](field string, value, bound T) Rule {
	return Rule{
		Check: func() bool { return value > bound },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be greater than %v", bound),
		},
	}
}

// MinNumeric fails when value < min.
func MinNumeric[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

// OneOf fails when the value is not among the allowed choices.
// Empty values pass; combine with RequiredString when presence is mandatory.
func OneOf(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool { return value == "" || slices.Contains(allowed, value) },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}
