package tooldoc

import (
	"errors"
	"fmt"
)

// Sentinel errors for tooldoc. Use errors.Is to check.
var (
	ErrMalformedDocstring = errors.New("malformed docstring")
	ErrUnsupportedType    = errors.New("unsupported parameter type")
	ErrInvalidDefault     = errors.New("invalid default value")
	ErrToolNotFound       = errors.New("tool not found")
	ErrTimeout            = errors.New("tool execution timeout")
	ErrShutdown           = errors.New("registry is shutting down")
)

// DocstringError reports a doc block that could not be parsed into
// name(type): description entries. Raised at build time; the docstring must
// be fixed, a retry cannot succeed.
type DocstringError struct {
	Tool   string
	Reason string
}

func (e *DocstringError) Error() string {
	return fmt.Sprintf("tool %q: malformed docstring: %s", e.Tool, e.Reason)
}

// Unwrap supports errors.Is(err, ErrMalformedDocstring).
func (e *DocstringError) Unwrap() error { return ErrMalformedDocstring }

// ParameterTypeError reports a parameter whose type resolved to Unsupported
// (e.g. the tuple case). Raised at build time; fix the argument struct or
// extend the mapping in descriptorForType.
type ParameterTypeError struct {
	Tool   string
	Param  string
	Reason string
}

func (e *ParameterTypeError) Error() string {
	return fmt.Sprintf("tool %q: parameter %q: %s", e.Tool, e.Param, e.Reason)
}

// Unwrap supports errors.Is(err, ErrUnsupportedType).
func (e *ParameterTypeError) Unwrap() error { return ErrUnsupportedType }

// SystemError represents an internal failure during execution (panic, marshal
// failure). The LLM should not see the underlying message or stack.
type SystemError struct {
	Err error
}

func (e *SystemError) Error() string {
	return "internal system error during tool execution"
}

func (e *SystemError) Unwrap() error { return e.Err }

// IsMalformedDocstring returns true if err is or wraps a DocstringError.
func IsMalformedDocstring(err error) bool {
	return errors.Is(err, ErrMalformedDocstring)
}

// IsUnsupportedType returns true if err is or wraps a ParameterTypeError.
func IsUnsupportedType(err error) bool {
	return errors.Is(err, ErrUnsupportedType)
}

// IsSystemError returns true if err is or wraps a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}
