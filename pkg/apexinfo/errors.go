// SPDX-License-Identifier: MPL-2.0

package apexinfo

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ReasonManifestUnreadable: the manifest is missing or cannot be read.
	ReasonManifestUnreadable InvalidApexReason = "manifest-unreadable"
	// ReasonManifestMalformed: the manifest bytes do not decode.
	ReasonManifestMalformed InvalidApexReason = "manifest-malformed"
	// ReasonNameMismatch: the manifest declares a different name than the mount point.
	ReasonNameMismatch InvalidApexReason = "name-mismatch"
	// ReasonVersionMismatch: a versioned mount point disagrees with the manifest version.
	ReasonVersionMismatch InvalidApexReason = "version-mismatch"
	// ReasonInvalidName: the manifest declares a name that cannot be an APEX name.
	ReasonInvalidName InvalidApexReason = "invalid-name"
)

var (
	// ErrPathNotFromApex is the sentinel wrapped by PathNotFromApexError.
	ErrPathNotFromApex = errors.New("executable is not from an apex")
	// ErrExePathUnavailable is the sentinel wrapped by ExePathUnavailableError.
	ErrExePathUnavailable = errors.New("executable path unavailable")
	// ErrInvalidApex is the sentinel wrapped by InvalidApexError.
	ErrInvalidApex = errors.New("invalid apex")
)

type (
	// InvalidApexReason classifies an InvalidApexError.
	InvalidApexReason string

	// PathNotFromApexError is returned when the executable path is not below
	// the mount root, or the segment after the root is not a module name.
	PathNotFromApexError struct {
		Path string
	}

	// ExePathUnavailableError is returned when the executable path provider
	// fails. Cause is the provider's error.
	ExePathUnavailableError struct {
		Cause error
	}

	// InvalidApexError is returned when the path is below the mount root but
	// the module's manifest is unusable or disagrees with the path.
	InvalidApexError struct {
		Reason InvalidApexReason
		// Path is the manifest path.
		Path string
		// Detail is a human-readable explanation, set when there is no Cause.
		Detail string
		Cause  error
	}
)

// Error implements the error interface for PathNotFromApexError.
func (e *PathNotFromApexError) Error() string {
	return fmt.Sprintf("%q is not from an apex", e.Path)
}

// Unwrap returns ErrPathNotFromApex.
func (e *PathNotFromApexError) Unwrap() error { return ErrPathNotFromApex }

// Error implements the error interface for ExePathUnavailableError.
func (e *ExePathUnavailableError) Error() string {
	return fmt.Sprintf("can't get executable path: %v", e.Cause)
}

// Unwrap returns ErrExePathUnavailable and the provider's error.
func (e *ExePathUnavailableError) Unwrap() []error {
	return nonNil(ErrExePathUnavailable, e.Cause)
}

// Error implements the error interface for InvalidApexError.
func (e *InvalidApexError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid apex (")
	sb.WriteString(string(e.Reason))
	sb.WriteString(")")
	if e.Path != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Path)
	}
	switch {
	case e.Detail != "":
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	case e.Cause != nil:
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns ErrInvalidApex and the underlying cause, if any.
func (e *InvalidApexError) Unwrap() []error {
	return nonNil(ErrInvalidApex, e.Cause)
}

func nonNil(errs ...error) []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
