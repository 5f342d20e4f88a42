package addqueries

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField  = errors.New("missing required field")
	ErrUnknownPreset = errors.New("unknown query preset")
	ErrInvalidPreset = errors.New("invalid query preset")
	ErrInvalidS3Path = errors.New("invalid s3 path")
)

// MissingFieldError names the required input field that was absent.
// The Lambda runtime reports it to Step Functions as "MissingFieldError".
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
