package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrOutOfRange      = stdErrors.New("out of range")
	ErrMissingArgument = stdErrors.New("missing argument")
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// RangeError reports a position or dimension outside its valid bounds.
type RangeError struct {
	Param   string
	Value   string
	Message string
}

// NewRangeError constructs a RangeError for the named parameter.
func NewRangeError(param string, value any, message string) error {
	return &RangeError{Param: param, Value: fmt.Sprint(value), Message: message}
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Param != "" {
		return fmt.Sprintf("range error: %s=%s: %s", e.Param, e.Value, e.Message)
	}
	return fmt.Sprintf("range error: %s", e.Message)
}

// Is matches ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// MissingArgumentError reports a required argument that was nil or empty.
type MissingArgumentError struct {
	Param   string
	Message string
}

// NewMissingArgumentError constructs a MissingArgumentError.
func NewMissingArgumentError(param, message string) error {
	return &MissingArgumentError{Param: param, Message: message}
}

func (e *MissingArgumentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("missing argument %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("missing argument %s", e.Param)
}

// Is matches ErrMissingArgument.
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// ArgError indicates invalid command-line input. Problems holds one entry per
// violation; Error joins them with newlines.
type ArgError struct {
	Problems []string
	Err      error
}

// NewArgError constructs an ArgError from one or more problem descriptions.
func NewArgError(problems ...string) error {
	return &ArgError{Problems: problems}
}

func (e *ArgError) Error() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.Problems, "\n")
}

// Unwrap exposes the underlying error.
func (e *ArgError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
