package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrNumerical     = errors.New("numerical error")
)

// ValidationError reports a malformed or geometrically degenerate designation.
type ValidationError struct {
	Code   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid NACA 4-digit code %q: %s", e.Code, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConfigurationError reports an analysis setting that cannot serve the
// requested quantity.
type ConfigurationError struct {
	Parameter string // E.g., "order", "resolution".
	Quantity  string // Derived quantity that was requested, if any.
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Quantity != "" {
		return fmt.Sprintf("cannot compute %s: %s %s", e.Quantity, e.Parameter, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Parameter, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NumericalError reports a non-finite result from integration or evaluation.
type NumericalError struct {
	Quantity string
	Value    float64
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("non-finite result for %s: %v", e.Quantity, e.Value)
}

// Is reports whether target is ErrNumerical.
func (e *NumericalError) Is(target error) bool {
	return target == ErrNumerical
}

// checkFinite returns a NumericalError naming quantity when v is NaN or ±Inf.
func checkFinite(quantity string, v float64) error {
	if isFinite(v) {
		return nil
	}
	return &NumericalError{Quantity: quantity, Value: v}
}
