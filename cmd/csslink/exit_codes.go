package main

import (
	"errors"

	csslink "github.com/alnah/go-csslink"
	"github.com/alnah/go-csslink/internal/config"
)

// Exit codes for the csslink CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Run completed, including runs with per-file errors
	ExitGeneral = 1 // Root directory missing or unexpected error
	ExitUsage   = 2 // Invalid flags, arguments, or config
)

// ErrTooManyArgs is returned when more than one directory is given.
var ErrTooManyArgs = errors.New("too many arguments: expected at most one directory")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, csslink.ErrDirectoryNotFound) {
		return ExitGeneral
	}

	if errors.Is(err, csslink.ErrEmptyCSSName) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, errUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
