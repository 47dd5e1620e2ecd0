package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig    = "CONFIG"
	ErrExec      = "EXEC"
	ErrTool      = "TOOL"
	ErrSelection = "SELECTION"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrTool code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrTool,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewToolFailure reports that an external tool behind a menu option is
// missing, inaccessible, or exited non-zero. The console prints it and
// returns to the menu.
func NewToolFailure(message string, cause error, suggestion string) *Error {
	return &Error{
		Code:       ErrTool,
		Message:    message,
		Suggestion: suggestion,
		Cause:      cause,
	}
}

// NewUnrecognizedSelection reports menu input outside the known option set.
func NewUnrecognizedSelection(input string, valid []string) *Error {
	return &Error{
		Code:       ErrSelection,
		Message:    fmt.Sprintf("unrecognized selection %q", input),
		Suggestion: "Choose one of: " + strings.Join(valid, ", "),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// A structured cause contributes its message and suggestion, not its own ✗ block
	if inner, ok := e.Cause.(*Error); ok {
		b.WriteString(fmt.Sprintf("\n  %s\n", inner.Message))
		if inner.Suggestion != "" {
			b.WriteString(fmt.Sprintf("  %s\n", inner.Suggestion))
		}
	} else if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var rmErr *Error
	if errors.As(err, &rmErr) {
		return rmErr.Code == code
	}
	return false
}

// ExitError carries a process exit code up to main without printing anything.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError for the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// GetExitCode extracts the exit code from an ExitError anywhere in the chain.
func GetExitCode(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
