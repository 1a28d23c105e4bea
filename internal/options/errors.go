package options

import (
	"errors"
	"fmt"
)

// ErrMissingInput is returned when no input binary path was supplied
var ErrMissingInput = errors.New("missing required argument: input")

// UnrecognizedFormatError reports an output format token outside the recognized set
type UnrecognizedFormatError struct {
	Token string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("unrecognized output format %q (expected one of: %s)", e.Token, formatList())
}

// MalformedArgumentError reports an argument that was present but could not be parsed
type MalformedArgumentError struct {
	Arg string
	Err error
}

func (e *MalformedArgumentError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("malformed argument: %v", e.Err)
	}
	return fmt.Sprintf("malformed argument %s: %v", e.Arg, e.Err)
}

func (e *MalformedArgumentError) Unwrap() error {
	return e.Err
}

// IsUnrecognizedFormat returns true if err is or wraps an UnrecognizedFormatError
func IsUnrecognizedFormat(err error) bool {
	var target *UnrecognizedFormatError
	return errors.As(err, &target)
}

// IsMalformedArgument returns true if err is or wraps a MalformedArgumentError
func IsMalformedArgument(err error) bool {
	var target *MalformedArgumentError
	return errors.As(err, &target)
}
