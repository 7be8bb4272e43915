// SPDX-License-Identifier: MPL-2.0

// Package logging builds the slog.Logger used for diagnostics. Records are
// rendered by charmbracelet/log, which implements slog.Handler.
package logging
