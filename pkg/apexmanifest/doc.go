// SPDX-License-Identifier: MPL-2.0

// Package apexmanifest decodes the manifest every APEX carries at its mount
// root. Two encodings are understood:
//
//   - apex_manifest.pb: the protobuf wire encoding found on a device.
//     Field 1 is the name, field 2 the int64 version and field 3 the
//     human-readable version name. Other fields are skipped.
//   - apex_manifest.json (or .cue): the source form, validated against the
//     embedded #ApexManifest CUE schema.
//
// Only the name and the version are load-bearing. [ForFile] picks a
// [Decoder] from the manifest file name.
package apexmanifest
