package errors

import (
	"fmt"
	"regexp"
	"strconv"
)

var lineRegex = regexp.MustCompile(`line (\d+)`)

// LineFromMessage extracts the first "line N" reference from a decoder error
// message, as produced by yaml.v3. Returns 0 when none is present.
func LineFromMessage(err error) int {
	if err == nil {
		return 0
	}

	matches := lineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// ParseError represents a definitions or overrides file that failed to decode,
// with optional line metadata.
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

// ValidationError captures configuration validation issues.
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

// NotFoundError reports a component, part or axis name that is not known to
// the catalog.
type NotFoundError struct {
	Kind string
	Name string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(kind, name string) error {
	return &NotFoundError{Kind: kind, Name: name}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind != "" {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("unknown name %q", e.Name)
}
