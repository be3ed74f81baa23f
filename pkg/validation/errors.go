package validation

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the single error kind for precondition
// violations: non-positive radii or spacing, negative quantities, degenerate
// branch counts. Generators return it (wrapped) before doing any work.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError describes which input violated a precondition.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidConfiguration, e.Reason)
	}
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidConfiguration, e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfiguration) hold.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// Invalid returns a *ConfigError for field.
func Invalid(field string, value any, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}
