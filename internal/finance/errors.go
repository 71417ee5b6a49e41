package finance

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a record does not exist or is not owned by the
// caller. The two cases are deliberately collapsed into one error so that
// callers cannot probe for the existence of other users' records.
var ErrNotFound = errors.New("finance record not found")

// ValidationError describes input the caller can correct and retry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalidf builds a ValidationError with a formatted reason.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
