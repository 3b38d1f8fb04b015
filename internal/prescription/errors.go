package prescription

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput    = errors.New("Please enter a prescription.")
	ErrUnparsableInput = errors.New("Invalid input format. Use proper syntax like 'Apply 2 drops to the affected eye twice a day'.")
)

// MissingFieldError is returned when a required guided-mode field is blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Please fill all fields. %s is required.", e.Field)
}

// LinearizerError carries the text the external tool printed on stderr, or
// the reason it could not be run at all.
type LinearizerError struct {
	Output string
	Err    error
}

func (e *LinearizerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Error: %v", e.Err)
	}
	return "GF Error: " + e.Output
}

func (e *LinearizerError) Unwrap() error {
	return e.Err
}

// Title is the dialog heading for an error raised by a submission.
func Title(err error) string {
	var fieldErr *MissingFieldError
	var linErr *LinearizerError
	switch {
	case errors.Is(err, ErrMissingInput), errors.As(err, &fieldErr):
		return "Missing input"
	case errors.Is(err, ErrUnparsableInput):
		return "Invalid input"
	case errors.As(err, &linErr):
		return "Linearizer error"
	}
	return "Error"
}
