// SPDX-License-Identifier: MPL-2.0

package apexsupport

import (
	"errors"
	"fmt"

	"apexsupport/pkg/apexinfo"
)

const (
	// OK means the handle was created.
	OK Code = 0
	// NullArgument means the output location was nil.
	NullArgument Code = 1
	// NotFromApex means the executable is not under the APEX root.
	NotFromApex Code = 2
	// ExePathUnavailable means the executable path could not be determined.
	ExePathUnavailable Code = 3
	// InvalidApex means the APEX directory or its manifest is unusable.
	InvalidApex Code = 4
)

// Code is the stable result of Create. The numeric values are part of the C
// ABI and never change.
type Code int32

// String returns the C enumerator name.
func (c Code) String() string {
	switch c {
	case OK:
		return "AAPEXINFO_OK"
	case NullArgument:
		return "AAPEXINFO_NULL"
	case NotFromApex:
		return "AAPEXINFO_NO_APEX"
	case ExePathUnavailable:
		return "AAPEXINFO_ERROR_EXECUTABLE_PATH"
	case InvalidApex:
		return "AAPEXINFO_INVALID_APEX"
	default:
		return fmt.Sprintf("Code(%d)", int32(c))
	}
}

// CodeOf maps a resolution error to its Code. A nil error is OK. Errors that
// are not resolution errors are reported as InvalidApex.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, apexinfo.ErrPathNotFromApex):
		return NotFromApex
	case errors.Is(err, apexinfo.ErrExePathUnavailable):
		return ExePathUnavailable
	default:
		return InvalidApex
	}
}
