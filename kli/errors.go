package kli

import (
	"fmt"
)

// ErrorType represents error categories for parse operations.
// These categories drive exit-code mapping (via ExitCodes).
type ErrorType string

const (
	ErrorTypeUnknownOption     ErrorType = "unknown_option"
	ErrorTypeMissingValue      ErrorType = "missing_value"
	ErrorTypeInvalidValue      ErrorType = "invalid_value"
	ErrorTypeMissingRequired   ErrorType = "missing_required"
	ErrorTypeMissingArgument   ErrorType = "missing_argument"
	ErrorTypeInvalidArgument   ErrorType = "invalid_argument"
	ErrorTypeInvalidDefinition ErrorType = "invalid_definition"
	ErrorTypeDuplicateOption   ErrorType = "duplicate_option"
)

// ParseError is returned by Parse and the argument helpers when fail-fast mode
// turns the first reported error into a hard stop.
type ParseError struct {
	Type    ErrorType
	Message string
	Option  string // Name of the offending option, if any
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}

// DefinitionError reports a malformed option declaration. It is a programmer
// error, so constructors panic with it instead of returning it.
type DefinitionError struct {
	Type    ErrorType
	Message string
}

func (e *DefinitionError) Error() string {
	return e.Message
}

// ConfigError wraps a failure to load a defaults file.
type ConfigError struct {
	Path  string
	Cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("defaults file %s: %v", e.Path, e.Cause)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
