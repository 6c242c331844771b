package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUnknownField         = errors.New("unknown field")
)

// MissingFieldsMessage is the notice shown to the user when Submit fails.
const MissingFieldsMessage = "Please fill in all required fields"

type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrMissingRequiredField }

type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownField, e.Name)
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }
