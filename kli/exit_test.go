//nolint:testpackage // using package name 'kli' to access unexported fields for testing
package kli

import (
	"errors"
	"fmt"
	"testing"
)

type customError struct{}

func (customError) Error() string { return "custom" }

func TestExitCodes_Code(t *testing.T) {
	codes := NewExitCodes().
		Define(ErrorTypeMissingRequired, 64).
		DefineError(&ConfigError{}, 78)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"generic", errors.New("boom"), 1},
		{"parse error default", NewParseError(ErrorTypeUnknownOption, "x"), 2},
		{"parse error override", NewParseError(ErrorTypeMissingRequired, "x"), 64},
		{"wrapped parse error", fmt.Errorf("ctx: %w", NewParseError(ErrorTypeInvalidValue, "x")), 2},
		{"exit error", &ExitError{Code: 9, Err: errors.New("stop")}, 9},
		{"registered type", &ConfigError{Path: "a.json", Cause: errors.New("bad")}, 78},
		{"unregistered type", customError{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codes.Code(tt.err); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestExitCodes_ResultCode(t *testing.T) {
	codes := NewExitCodes()
	if codes.ResultCode(&Result{Valid: true}, nil) != 0 {
		t.Errorf("Expected 0 for a valid result")
	}
	if codes.ResultCode(&Result{Valid: false}, nil) != 2 {
		t.Errorf("Expected 2 for an invalid result")
	}
	if codes.ResultCode(nil, errors.New("x")) != 1 {
		t.Errorf("Expected 1 for a generic error")
	}

	codes.Default(ExitCodeDefaults{Success: 0, GeneralError: 3, MisusageError: 4})
	if codes.ResultCode(&Result{}, nil) != 4 {
		t.Errorf("Expected custom misusage code")
	}
}

func TestExitError_Message(t *testing.T) {
	if (&ExitError{Code: 1}).Error() != "exit" {
		t.Errorf("Expected default message")
	}
	inner := errors.New("inner")
	if !errors.Is(&ExitError{Code: 1, Err: inner}, inner) {
		t.Errorf("Expected ExitError to unwrap")
	}
}
