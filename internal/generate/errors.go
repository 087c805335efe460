package generate

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a generation error
type ErrorType int

const (
	// ErrTypeValidation indicates the repository URL was rejected before starting
	ErrTypeValidation ErrorType = iota
	// ErrTypeBusy indicates a generation is already running
	ErrTypeBusy
	// ErrTypeCancelled indicates the generation was cancelled before completing
	ErrTypeCancelled
	// ErrTypeFailed indicates the generator itself reported a failure
	ErrTypeFailed
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeBusy:
		return "Busy"
	case ErrTypeCancelled:
		return "Cancelled"
	case ErrTypeFailed:
		return "Generation Failed"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by every operation in this package.
type Error struct {
	Type    ErrorType // Category of error
	Title   string    // Short heading for notifications
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrAlreadyGenerating is returned by Machine.Start while a run is active.
var ErrAlreadyGenerating = &Error{
	Type:    ErrTypeBusy,
	Title:   "Generation In Progress",
	Message: "Documentation is already being generated",
}

// NewValidationError creates an error for a rejected repository URL
func NewValidationError(title, message string) *Error {
	return &Error{
		Type:    ErrTypeValidation,
		Title:   title,
		Message: message,
	}
}

// NewCancelledError wraps a context error
func NewCancelledError(err error) *Error {
	return &Error{
		Type:    ErrTypeCancelled,
		Title:   "Generation Cancelled",
		Message: "Documentation generation was cancelled",
		Err:     err,
	}
}

// NewFailedError wraps a generator failure
func NewFailedError(message string, err error) *Error {
	return &Error{
		Type:    ErrTypeFailed,
		Title:   "Generation Failed",
		Message: message,
		Err:     err,
	}
}

// typeOf returns the ErrorType of err and whether err is an *Error.
func typeOf(err error) (ErrorType, bool) {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Type, true
	}
	return 0, false
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeValidation
}

// IsCancelled reports whether err is a cancellation error
func IsCancelled(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeCancelled
}

// IsBusy reports whether err reports an already running generation
func IsBusy(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeBusy
}

// TitleOf returns the notification title carried by err, or a generic one.
func TitleOf(err error) string {
	var genErr *Error
	if errors.As(err, &genErr) && genErr.Title != "" {
		return genErr.Title
	}
	return "Something Went Wrong"
}

// MessageOf returns the user-facing message carried by err.
func MessageOf(err error) string {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
