// SPDX-License-Identifier: MPL-2.0

// Package testutil holds test helpers that fail the test on error instead of
// returning it: environment overrides with restore functions, and APEX
// fixtures written to an afero filesystem.
package testutil
