// SPDX-License-Identifier: MPL-2.0

package apexmanifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// DefaultFileName is the manifest file present at the root of every
	// mounted APEX.
	DefaultFileName = "apex_manifest.pb"

	// JSONFileName is the source-form manifest name.
	JSONFileName = "apex_manifest.json"

	// MaxFileSize bounds the size of a manifest file.
	MaxFileSize int64 = 1 << 20
)

var (
	// ErrMalformed is the sentinel wrapped by MalformedError.
	ErrMalformed = errors.New("malformed apex manifest")

	// ErrUnsupportedFormat is returned by ForFile for an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported manifest format")
)

type (
	// Manifest is the decoded content of an APEX manifest.
	Manifest struct {
		Name        string `json:"name" yaml:"name" toml:"name"`
		Version     int64  `json:"version" yaml:"version" toml:"version"`
		VersionName string `json:"versionName,omitempty" yaml:"version_name,omitempty" toml:"version_name,omitempty"`
	}

	// Decoder turns manifest bytes into a Manifest. filename is used in
	// error messages only.
	Decoder interface {
		Decode(data []byte, filename string) (*Manifest, error)
	}

	// MalformedError reports a manifest that could not be decoded.
	// It wraps ErrMalformed for errors.Is() compatibility.
	MalformedError struct {
		File  string
		Cause error
	}

	// UnsupportedFormatError is returned when a manifest file name has no
	// matching decoder.
	UnsupportedFormatError struct {
		File string
	}
)

// Error implements the error interface for MalformedError.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed manifest %s: %v", e.File, e.Cause)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *MalformedError) Unwrap() []error {
	return []error{ErrMalformed, e.Cause}
}

// Error implements the error interface for UnsupportedFormatError.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("no manifest decoder for %q (expected .pb, .json or .cue)", e.File)
}

// Unwrap returns ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// ForFile returns the decoder for a manifest file name, chosen by extension.
func ForFile(name string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pb":
		return ProtoDecoder{}, nil
	case ".json", ".cue":
		return CUEDecoder{}, nil
	default:
		return nil, &UnsupportedFormatError{File: name}
	}
}

// Decode decodes data with the decoder ForFile picks for filename.
func Decode(data []byte, filename string) (*Manifest, error) {
	dec, err := ForFile(filename)
	if err != nil {
		return nil, err
	}
	return dec.Decode(data, filename)
}

func malformed(file string, format string, args ...any) error {
	return &MalformedError{File: file, Cause: fmt.Errorf(format, args...)}
}
