package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidValue = errors.New("invalid value")

// ValidationError reports an enum-typed field holding a value outside its set.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be one of: %s", e.Field, strings.Join(e.Allowed, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidValue
}

// CheckEnum returns nil for an empty value or one contained in allowed.
// Missing fields are not rejected, only wrong ones.
func CheckEnum(field, value string, allowed []string) error {
	if value == "" || oneOf(value, allowed) {
		return nil
	}
	return &ValidationError{Field: field, Value: value, Allowed: allowed}
}
