package types

import (
	"errors"
	"fmt"
)

// ErrMissingField matches every *MissingFieldError.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError is returned by a builder when a required field was never
// supplied.
type MissingFieldError struct {
	Request string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("build %s: %s %q", e.Request, ErrMissingField, e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
