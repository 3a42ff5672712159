package kli

import (
	"errors"
	"reflect"
)

// ExitError requests a specific exit code from application code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the fallback codes.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

// ExitCodes maps parse outcomes and errors to process exit codes.
type ExitCodes struct {
	byParse  map[ErrorType]int
	byType   map[reflect.Type]int
	defaults ExitCodeDefaults
}

// NewExitCodes returns the conventional mapping: 0 on success, 2 for any
// command-line usage error and 1 for everything else.
func NewExitCodes() *ExitCodes {
	return &ExitCodes{
		byParse:  make(map[ErrorType]int),
		byType:   make(map[reflect.Type]int),
		defaults: ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2},
	}
}

// Define overrides the code used for one parse error category
func (e *ExitCodes) Define(typ ErrorType, code int) *ExitCodes {
	e.byParse[typ] = code
	return e
}

// DefineError maps errors of err's dynamic type to code
func (e *ExitCodes) DefineError(err error, code int) *ExitCodes {
	if err == nil {
		return e
	}
	e.byType[reflect.TypeOf(err)] = code
	return e
}

// Default replaces the fallback codes
func (e *ExitCodes) Default(d ExitCodeDefaults) *ExitCodes {
	e.defaults = d
	return e
}

// Code converts err to an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. ParseError category (Define), else the misusage code
//  3. Concrete error type (DefineError)
//  4. The general error code
func (e *ExitCodes) Code(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := e.byParse[parseErr.Type]; ok {
			return code
		}
		return e.defaults.MisusageError
	}

	for t, code := range e.byType {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}

	return e.defaults.GeneralError
}

// ResultCode is Code for a finished parse: an invalid result without an error
// (the default, non fail-fast mode) is a usage error too.
func (e *ExitCodes) ResultCode(r *Result, err error) int {
	if err != nil {
		return e.Code(err)
	}
	if r != nil && !r.Valid {
		return e.defaults.MisusageError
	}
	return e.defaults.Success
}
