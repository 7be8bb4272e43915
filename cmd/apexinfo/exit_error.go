// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
)

type (
	// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
	ExitError struct {
		Code int
		Err  error
	}

	// displayError renders its cause with formatErrorForDisplay, so fang
	// prints suggestions and, in verbose mode, the error chain.
	displayError struct {
		err     error
		verbose bool
	}
)

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func (e *displayError) Error() string {
	return formatErrorForDisplay(e.err, e.verbose)
}

func (e *displayError) Unwrap() error {
	return e.err
}

// usageFailure wraps a configuration or input error for display with exit status 1.
func usageFailure(err error, verbose bool) error {
	return &ExitError{Code: 1, Err: &displayError{err: err, verbose: verbose}}
}
