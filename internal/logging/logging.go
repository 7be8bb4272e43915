// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// Prefix is printed in front of every record.
	Prefix = "apexsupport"

	// LevelDebug logs everything.
	LevelDebug Level = "debug"
	// LevelInfo logs informational records and above.
	LevelInfo Level = "info"
	// LevelWarn logs warnings and errors. This is the default.
	LevelWarn Level = "warn"
	// LevelError logs errors only.
	LevelError Level = "error"

	// FormatText is the human-readable format.
	FormatText Format = "text"
	// FormatJSON emits one JSON object per record.
	FormatJSON Format = "json"
	// FormatLogfmt emits logfmt key=value pairs.
	FormatLogfmt Format = "logfmt"
)

var (
	// ErrInvalidLevel is the sentinel wrapped by InvalidLevelError.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidFormat is the sentinel wrapped by InvalidFormatError.
	ErrInvalidFormat = errors.New("invalid log format")
)

type (
	// Level is a log verbosity threshold.
	Level string

	// Format selects the log record encoding.
	Format string

	// InvalidLevelError is returned for an unknown Level.
	InvalidLevelError struct {
		Value Level
	}

	// InvalidFormatError is returned for an unknown Format.
	InvalidFormatError struct {
		Value Format
	}

	// Options configures New. Zero values select the defaults: warn level,
	// text format, stderr.
	Options struct {
		Level  Level
		Format Format
		Writer io.Writer
	}
)

// Validate returns an error if the Level is not one of the known levels.
// The empty Level is valid and means LevelWarn.
func (l Level) Validate() error {
	switch l {
	case "", LevelDebug, LevelInfo, LevelWarn, LevelError:
		return nil
	}
	return &InvalidLevelError{Value: l}
}

// Validate returns an error if the Format is not one of the known formats.
// The empty Format is valid and means FormatText.
func (f Format) Validate() error {
	switch f {
	case "", FormatText, FormatJSON, FormatLogfmt:
		return nil
	}
	return &InvalidFormatError{Value: f}
}

// Error implements the error interface for InvalidLevelError.
func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", string(e.Value))
}

// Unwrap returns ErrInvalidLevel.
func (e *InvalidLevelError) Unwrap() error { return ErrInvalidLevel }

// Error implements the error interface for InvalidFormatError.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid log format %q (valid: text, json, logfmt)", string(e.Value))
}

// Unwrap returns ErrInvalidFormat.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// New builds a logger from opts.
func New(opts Options) (*slog.Logger, error) {
	if err := opts.Level.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Format.Validate(); err != nil {
		return nil, err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handler := log.NewWithOptions(w, log.Options{
		Prefix:    Prefix,
		Level:     charmLevel(opts.Level),
		Formatter: charmFormatter(opts.Format),
	})
	return slog.New(handler), nil
}

// FromEnv builds a logger from APEXSUPPORT_LOG_LEVEL and
// APEXSUPPORT_LOG_FORMAT, falling back to the defaults when a value is unset
// or unknown. It never fails because it backs fire-and-forget diagnostics.
func FromEnv(w io.Writer) *slog.Logger {
	level := Level(strings.ToLower(os.Getenv("APEXSUPPORT_LOG_LEVEL")))
	if level.Validate() != nil {
		level = LevelWarn
	}
	format := Format(strings.ToLower(os.Getenv("APEXSUPPORT_LOG_FORMAT")))
	if format.Validate() != nil {
		format = FormatText
	}

	logger, err := New(Options{Level: level, Format: format, Writer: w})
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

func charmLevel(l Level) log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

func charmFormatter(f Format) log.Formatter {
	switch f {
	case FormatJSON:
		return log.JSONFormatter
	case FormatLogfmt:
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
