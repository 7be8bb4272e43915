// SPDX-License-Identifier: MPL-2.0

// Package cueutil holds the CUE decoding flow shared by the manifest decoder
// and the configuration loader:
//
//  1. compile the embedded schema and look up its root definition
//  2. compile the input bytes and unify them with that definition
//  3. validate the unified value and decode it into a Go value
//
// Errors carry the input file name and the JSON path of the offending field,
// e.g. "apex_manifest.json: version: conflicting values 1.5 and int".
package cueutil
