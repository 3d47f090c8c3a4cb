package curve3

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned, wrapped in a [*ParameterError], when a curve
// is constructed with a shape parameter that isn't a strictly positive, finite
// number.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError describes which shape parameter was rejected during
// construction.
type ParameterError struct {
	Kind  Kind
	Name  string
	Value float64
}

func (err *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s must be positive and finite, got %g", err.Kind, err.Name, err.Value)
}

func (err *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// checkPositive returns a *ParameterError if v isn't in (0, +Inf).
func checkPositive(kind Kind, name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return &ParameterError{Kind: kind, Name: name, Value: v}
	}
	return nil
}
