// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"apexsupport/pkg/apexinfo"
	"apexsupport/pkg/apexmanifest"
)

const (
	// LogLevelDebug logs every resolution step.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs informational records and above.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs failed resolutions. This is the default.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// LogFormatText is the human-readable log format.
	LogFormatText LogFormat = "text"
	// LogFormatJSON emits one JSON object per record.
	LogFormatJSON LogFormat = "json"
	// LogFormatLogfmt emits logfmt key=value pairs.
	LogFormatLogfmt LogFormat = "logfmt"
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned when a LogFormat value is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrInvalidApexRoot is the sentinel error wrapped by InvalidApexRootError.
	ErrInvalidApexRoot = errors.New("invalid apex root")
	// ErrInvalidManifestFileName is the sentinel error wrapped by InvalidManifestFileNameError.
	ErrInvalidManifestFileName = errors.New("invalid manifest file name")
	// ErrInvalidLogConfig is the sentinel error wrapped by InvalidLogConfigError.
	ErrInvalidLogConfig = errors.New("invalid log config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel is the diagnostic verbosity threshold.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// LogFormat selects how diagnostic records are encoded.
	LogFormat string

	// InvalidLogFormatError is returned when a LogFormat value is not recognized.
	// It wraps ErrInvalidLogFormat for errors.Is() compatibility.
	InvalidLogFormatError struct {
		Value LogFormat
	}

	// ApexRootPath is the absolute directory under which APEXes are mounted.
	ApexRootPath string

	// InvalidApexRootError is returned when an ApexRootPath is empty or relative.
	InvalidApexRootError struct {
		Value ApexRootPath
	}

	// ManifestFileName is the plain file name of the manifest inside each APEX
	// directory. Its extension selects the manifest format.
	ManifestFileName string

	// InvalidManifestFileNameError is returned when a ManifestFileName is not a
	// plain file name or has no known manifest format.
	InvalidManifestFileNameError struct {
		Value  ManifestFileName
		Reason string
	}

	// InvalidLogConfigError is returned when a LogConfig has invalid fields.
	// It wraps ErrInvalidLogConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidLogConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// ApexRoot is the directory under which APEXes are mounted.
		ApexRoot ApexRootPath `json:"apex_root" yaml:"apex_root" toml:"apex_root" mapstructure:"apex_root"`
		// ManifestFile is the manifest file name inside each APEX directory.
		ManifestFile ManifestFileName `json:"manifest_file" yaml:"manifest_file" toml:"manifest_file" mapstructure:"manifest_file"`
		// Log configures diagnostics
		Log LogConfig `json:"log" yaml:"log" toml:"log" mapstructure:"log"`
	}

	// LogConfig configures diagnostic logging.
	LogConfig struct {
		// Level is the minimum level that is written
		Level LogLevel `json:"level" yaml:"level" toml:"level" mapstructure:"level"`
		// Format is the record encoding
		Format LogFormat `json:"format" yaml:"format" toml:"format" mapstructure:"format"`
	}
)

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ApexRoot.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.ManifestFile.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// IsValid returns whether the LogConfig has valid fields.
func (c LogConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidLogConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidLogConfigError.
func (e *InvalidLogConfigError) Error() string {
	return errors.Join(e.FieldErrors...).Error()
}

// Unwrap returns ErrInvalidLogConfig and the field errors.
func (e *InvalidLogConfigError) Unwrap() []error {
	return append([]error{ErrInvalidLogConfig}, e.FieldErrors...)
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels,
// and a list of validation errors if it is not.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error {
	return ErrInvalidLogLevel
}

// String returns the string representation of the LogFormat.
func (f LogFormat) String() string { return string(f) }

// IsValid returns whether the LogFormat is one of the defined formats,
// and a list of validation errors if it is not.
func (f LogFormat) IsValid() (bool, []error) {
	switch f {
	case LogFormatText, LogFormatJSON, LogFormatLogfmt:
		return true, nil
	default:
		return false, []error{&InvalidLogFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidLogFormatError.
func (e *InvalidLogFormatError) Error() string {
	return fmt.Sprintf("invalid log format %q (valid: text, json, logfmt)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogFormatError) Unwrap() error {
	return ErrInvalidLogFormat
}

// String returns the string representation of the ApexRootPath.
func (p ApexRootPath) String() string { return string(p) }

// IsValid returns whether the ApexRootPath is an absolute path.
func (p ApexRootPath) IsValid() (bool, []error) {
	if !filepath.IsAbs(string(p)) {
		return false, []error{&InvalidApexRootError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidApexRootError.
func (e *InvalidApexRootError) Error() string {
	return fmt.Sprintf("invalid apex root %q: must be an absolute path", e.Value)
}

// Unwrap returns ErrInvalidApexRoot for errors.Is() compatibility.
func (e *InvalidApexRootError) Unwrap() error { return ErrInvalidApexRoot }

// String returns the string representation of the ManifestFileName.
func (n ManifestFileName) String() string { return string(n) }

// IsValid returns whether the ManifestFileName is a plain file name with a
// known manifest format.
func (n ManifestFileName) IsValid() (bool, []error) {
	s := string(n)
	switch {
	case s == "" || s == "." || s == "..":
		return false, []error{&InvalidManifestFileNameError{Value: n, Reason: "must be a file name"}}
	case strings.ContainsRune(s, '/'):
		return false, []error{&InvalidManifestFileNameError{Value: n, Reason: "must not contain a path separator"}}
	}
	if _, err := apexmanifest.ForFile(s); err != nil {
		return false, []error{&InvalidManifestFileNameError{Value: n, Reason: "extension must be .pb, .json or .cue"}}
	}
	return true, nil
}

// Error implements the error interface for InvalidManifestFileNameError.
func (e *InvalidManifestFileNameError) Error() string {
	return fmt.Sprintf("invalid manifest file name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidManifestFileName for errors.Is() compatibility.
func (e *InvalidManifestFileNameError) Unwrap() error { return ErrInvalidManifestFileName }

// ResolverOptions returns the apexinfo options selected by the configuration.
func (c *Config) ResolverOptions() []apexinfo.Option {
	return []apexinfo.Option{
		apexinfo.WithRoot(string(c.ApexRoot)),
		apexinfo.WithManifestFile(string(c.ManifestFile)),
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ApexRoot:     ApexRootPath(apexinfo.DefaultRoot),
		ManifestFile: ManifestFileName(apexmanifest.DefaultFileName),
		Log: LogConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
		},
	}
}
