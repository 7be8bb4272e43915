// SPDX-License-Identifier: MPL-2.0

package apexinfo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidApexName is the sentinel wrapped by InvalidApexNameError.
var ErrInvalidApexName = errors.New("invalid apex name")

type (
	// ApexName is the identifier of an APEX, e.g. "com.android.art".
	// It is both the directory name under the mount root and the name
	// declared in the manifest.
	ApexName string

	// InvalidApexNameError is returned when an ApexName cannot name a mount
	// directory. It wraps ErrInvalidApexName for errors.Is() compatibility.
	InvalidApexNameError struct {
		Value  ApexName
		Reason string
	}
)

// String returns the string representation of the ApexName.
func (n ApexName) String() string { return string(n) }

// Validate returns nil when the name is usable as a single path segment:
// non-empty, not "." or "..", and free of '/', '@' and NUL. '@' is reserved
// for the versioned mount point suffix.
func (n ApexName) Validate() error {
	s := string(n)
	switch {
	case s == "":
		return &InvalidApexNameError{Value: n, Reason: "must not be empty"}
	case s == "." || s == "..":
		return &InvalidApexNameError{Value: n, Reason: "must not be a relative path element"}
	case strings.ContainsRune(s, '/'):
		return &InvalidApexNameError{Value: n, Reason: "must not contain '/'"}
	case strings.ContainsRune(s, '@'):
		return &InvalidApexNameError{Value: n, Reason: "must not contain '@'"}
	case strings.ContainsRune(s, 0):
		return &InvalidApexNameError{Value: n, Reason: "must not contain a NUL byte"}
	}
	return nil
}

// Error implements the error interface for InvalidApexNameError.
func (e *InvalidApexNameError) Error() string {
	return fmt.Sprintf("invalid apex name %q: %s", string(e.Value), e.Reason)
}

// Unwrap returns ErrInvalidApexName.
func (e *InvalidApexNameError) Unwrap() error { return ErrInvalidApexName }
