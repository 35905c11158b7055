package errors

import (
	"fmt"
)

// ParseError represents a settings-file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MarkupError reports an invalid static markup source. Static markup is
// compiled into the binary, so a MarkupError is a build defect; the asset
// layer treats it as fatal at first access.
type MarkupError struct {
	Name string
	Err  error
}

// NewMarkupError constructs a MarkupError.
func NewMarkupError(name string, err error) error {
	return &MarkupError{Name: name, Err: err}
}

func (e *MarkupError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("markup error: %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("markup error: %s", e.Name)
}

// Unwrap exposes the underlying error.
func (e *MarkupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
