package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// EmptyFieldError reports a required string field that is empty or
// whitespace only. Its message is safe to show to the end user.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("Empty %s is not allowed.", e.Field)
}
