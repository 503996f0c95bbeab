/*
Package shared - building blocks common to all subdomains.

Error design:
1. Subdomains define sentinel errors for errors.Is() checks
2. DomainError captures the stack at creation time but formats it lazily
3. Domain errors carry no transport concepts (no HTTP status codes)

Stack capture strategy:
- captured when the error is constructed (inside the NewXxxError helpers)
- formatted only when a log line actually prints it (Stack() method)
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors shared across subdomains, for errors.Is() classification.
var (
	// ErrNotFound Resource not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput Input failed validation
	ErrInvalidInput = errors.New("invalid input")
)

// DomainError Structured domain error carrying business context and the
// stack of the point where it was raised. Supports errors.Is/errors.As
// through Unwrap.
type DomainError struct {
	// Err Underlying sentinel, for errors.Is()
	Err error

	// Entity Name of the entity the error belongs to (e.g. "order")
	Entity string

	// Message Human readable description
	Message string

	// Field Optional field name for validation errors
	Field string

	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack Format the captured stack on demand (only at log time)
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// Stacker Implemented by errors that carry a captured stack
type Stacker interface {
	Stack() []string
}

// NewDomainError Construct a DomainError with the stack of the caller's caller
func NewDomainError(sentinel error, entity, message string) error {
	return &DomainError{
		Err:     sentinel,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// CaptureStack Capture the current call stack.
// skip is the number of frames to drop, usually 3:
// runtime.Callers, CaptureStack, NewXxxError.
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack Format stack frames as strings, filtering runtime internals
// and keeping at most 10 frames.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	formatted := make([]string, 0, 10)
	for len(formatted) < 10 {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			formatted = append(formatted, fmt.Sprintf("%s (%s:%d)", frame.Function, frame.File, frame.Line))
		}
		if !more {
			break
		}
	}
	return formatted
}
