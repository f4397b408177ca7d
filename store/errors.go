package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record does not exist, belongs to another
// user, or has been soft-deleted. Callers cannot tell those cases apart.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a write that was rejected before touching the
// database, naming the field that failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidInputError reports a missing or unparseable query parameter on a
// summary operation.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
