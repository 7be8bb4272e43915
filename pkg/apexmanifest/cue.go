// SPDX-License-Identifier: MPL-2.0

package apexmanifest

import (
	_ "embed"

	"apexsupport/pkg/cueutil"
)

//go:embed apex_manifest_schema.cue
var manifestSchema []byte

// CUEDecoder decodes JSON or CUE manifests validated against #ApexManifest.
type CUEDecoder struct{}

// Decode implements Decoder.
func (CUEDecoder) Decode(data []byte, filename string) (*Manifest, error) {
	m, err := cueutil.Decode[Manifest](
		manifestSchema,
		data,
		"#ApexManifest",
		cueutil.WithFilename(filename),
		cueutil.WithMaxFileSize(MaxFileSize),
	)
	if err != nil {
		return nil, &MalformedError{File: filename, Cause: err}
	}
	return m, nil
}
