package lap

import (
	"errors"
	"fmt"
)

// HelpInvokedErr is returned by Parse and ParseOrError when --help or -h was passed.
// Users can compare against this constant to detect that help was requested instead of a parsing error.
var HelpInvokedErr = errors.New("help invoked")

// DumpInvokedErr is returned by ParseOrError when dump is invoked (via WithDump(true)).
var DumpInvokedErr = errors.New("dump invoked")

// NoArgumentsErr is returned when the argument list is empty.
var NoArgumentsErr = errors.New("no arguments provided")

var (
	ErrDefinition      = errors.New("invalid flag definition")
	ErrInvalidUsage    = errors.New("invalid options used")
	ErrMissingRequired = errors.New("missing required argument")
)

// Exit codes used by ParseOrExit and MustAddFlag.
const (
	ExitOK         = 0
	ExitUsage      = 1 // invalid usage, no arguments
	ExitValidation = 2 // definition errors, missing required arguments
)

// Internal error wrapper to carry which help variant was requested
type helpInvokedError struct {
	verbose bool // true when --verbose or -v accompanied the help flag
}

func (e *helpInvokedError) Error() string {
	return HelpInvokedErr.Error()
}

func (e *helpInvokedError) Unwrap() error {
	return HelpInvokedErr
}

// DefinitionError is caused by incorrect flag registration.
// These are bugs in the code using lap, not user input errors.
type DefinitionError struct {
	Name   string
	Alias  string
	Reason string
}

func (e *DefinitionError) Error() string {
	if e.Alias != "" {
		return fmt.Sprintf("invalid definition for flag %q (alias %q): %s", e.Name, e.Alias, e.Reason)
	}
	return fmt.Sprintf("invalid definition for flag %q: %s", e.Name, e.Reason)
}

func (e *DefinitionError) Unwrap() error {
	return ErrDefinition
}

// InvalidUsageError means none of the supplied tokens matched a registered flag.
type InvalidUsageError struct {
	Args []string
}

func (e *InvalidUsageError) Error() string {
	return "Invalid options used."
}

func (e *InvalidUsageError) Unwrap() error {
	return ErrInvalidUsage
}

// MissingRequiredArgumentError names the first required flag absent from the input.
type MissingRequiredArgumentError struct {
	Name string
}

func (e *MissingRequiredArgumentError) Error() string {
	return "Missing required argument: " + e.Name
}

func (e *MissingRequiredArgumentError) Unwrap() error {
	return ErrMissingRequired
}

// ExitCode maps an error from this package to the process exit status used by ParseOrExit.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, HelpInvokedErr), errors.Is(err, DumpInvokedErr):
		return ExitOK
	case errors.Is(err, ErrDefinition), errors.Is(err, ErrMissingRequired):
		return ExitValidation
	default:
		return ExitUsage
	}
}
