// SPDX-License-Identifier: MPL-2.0

// Package apexsupport is the handle-based API behind the AApexInfo C
// functions: create a handle describing the calling executable's APEX and
// read its name and version. Every failure collapses to a stable numeric
// Code.
//
// Go handles are owned by the garbage collector and have no destroy
// operation. The C library allocates its own copy of each handle and frees it
// in AApexInfo_destroy.
package apexsupport
