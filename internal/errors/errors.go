// Package errors provides structured error handling for the catalog and the
// context-URL engine. It defines error codes, categories, and formatting for
// both human-readable terminal output and machine-parseable JSON.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode string

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	// CategoryArgument represents missing or invalid caller input (ARG001-099)
	CategoryArgument ErrorCategory = "argument"
	// CategoryUnresolved represents failed name resolution (UNR100-199)
	CategoryUnresolved ErrorCategory = "unresolved"
	// CategoryShape represents structurally invalid combinations (SHP200-299)
	CategoryShape ErrorCategory = "shape"
)

// ErrorSeverity indicates the severity level of an error
type ErrorSeverity string

const (
	// SeverityError indicates an error that aborts the current operation
	SeverityError ErrorSeverity = "error"
	// SeverityWarning indicates a deferred problem, such as an unresolved reference
	SeverityWarning ErrorSeverity = "warning"
)

// Sentinels usable with errors.Is against any *Error of the matching category.
var (
	ErrArgument       = errors.New("argument error")
	ErrUnresolved     = errors.New("unresolved reference")
	ErrShapeViolation = errors.New("shape violation")
)

// Location is an optional position in the schema document an element came from.
type Location struct {
	Source string `json:"source,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// IsZero reports whether the location carries no information.
func (l Location) IsZero() bool {
	return l.Source == "" && l.Line == 0 && l.Column == 0
}

func (l Location) String() string {
	if l.IsZero() {
		return "<unknown>"
	}
	src := l.Source
	if src == "" {
		src = "<schema>"
	}
	return fmt.Sprintf("%s:%d:%d", src, l.Line, l.Column)
}

// Error is a structured error carrying a code, category and optional location.
type Error struct {
	// Code is the unique error code (e.g., "ARG001", "SHP201")
	Code ErrorCode `json:"code"`
	// Category is the error category
	Category ErrorCategory `json:"category"`
	// Severity is the error severity level
	Severity ErrorSeverity `json:"severity"`
	// Message is the primary error message
	Message string `json:"message"`
	// Subject names the argument, element or path the error is about
	Subject string `json:"subject,omitempty"`
	// Location is the source location, when known
	Location Location `json:"location,omitempty"`
	// Suggestion provides a hint for fixing the error (optional)
	Suggestion string `json:"suggestion,omitempty"`

	cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	return FormatCompact(e)
}

// Format returns a human-readable error message for terminal output
func (e *Error) Format() string {
	return FormatError(e, false)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches the category sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrArgument:
		return e.Category == CategoryArgument
	case ErrUnresolved:
		return e.Category == CategoryUnresolved
	case ErrShapeViolation:
		return e.Category == CategoryShape
	}
	return false
}

// ToJSON returns the error as an indented JSON string
func (e *Error) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WithLocation sets the source location for the error
func (e *Error) WithLocation(loc Location) *Error {
	e.Location = loc
	return e
}

// WithSuggestion sets a suggestion for fixing the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// WithCause attaches an underlying error returned by Unwrap.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// AsError returns the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// ErrorList is a collection of structured errors
type ErrorList []*Error

// Error implements the error interface
func (el ErrorList) Error() string {
	if len(el) == 0 {
		return "no errors"
	}
	return FormatErrorList(el, false)
}

// HasErrors returns true if the list contains any errors (excludes warnings)
func (el ErrorList) HasErrors() bool {
	for _, err := range el {
		if err.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of errors by severity
func (el ErrorList) ErrorCount() (errors, warnings int) {
	for _, err := range el {
		switch err.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return
}

// ToJSON returns all errors as a JSON array
func (el ErrorList) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(el, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func newError(code ErrorCode, category ErrorCategory, severity ErrorSeverity, subject, message string) *Error {
	return &Error{
		Code:     code,
		Category: category,
		Severity: severity,
		Subject:  subject,
		Message:  message,
	}
}
