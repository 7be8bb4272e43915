// SPDX-License-Identifier: MPL-2.0

// Package apexinfo tells a running executable which APEX it was launched
// from.
//
// An APEX is mounted at <root>/<name> (root is /apex on a device), and also at
// <root>/<name>@<version>. Every mounted APEX carries a manifest at its mount
// root declaring its canonical name and version. Resolution:
//
//  1. obtains the caller's executable path ([ExecutablePathProvider])
//  2. checks the path is under the mount root and takes the next segment as
//     the module name
//  3. reads and decodes <root>/<segment>/apex_manifest.pb
//  4. checks that the declared name matches the path-derived name
//
// and yields an immutable [ApexInfo], or one of [PathNotFromApexError],
// [ExePathUnavailableError] and [InvalidApexError]. Nothing is retried and
// nothing is cached; each call is an independent read-only lookup.
package apexinfo
