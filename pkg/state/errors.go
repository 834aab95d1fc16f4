package state

import (
	"errors"
	"fmt"
)

// ValidationError reports user input that fails a format, range, or
// uniqueness rule. Mutations returning one have not been applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("state: invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
