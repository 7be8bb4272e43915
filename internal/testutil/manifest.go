// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"apexsupport/pkg/apexmanifest"

	"github.com/spf13/afero"
)

// MustWriteFile writes data to path on fsys, creating parent directories.
func MustWriteFile(t testing.TB, fsys afero.Fs, path string, data []byte) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// WriteManifest writes m in protobuf form to dir/apex_manifest.pb on fsys.
// It returns the manifest path.
func WriteManifest(t testing.TB, fsys afero.Fs, dir string, m apexmanifest.Manifest) string {
	t.Helper()
	path := filepath.Join(dir, apexmanifest.DefaultFileName)
	MustWriteFile(t, fsys, path, m.MarshalProto())
	return path
}

// WriteJSONManifest writes m as JSON to dir/apex_manifest.json on fsys.
func WriteJSONManifest(t testing.TB, fsys afero.Fs, dir string, m apexmanifest.Manifest) string {
	t.Helper()
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("failed to marshal manifest: %v", err)
	}
	path := filepath.Join(dir, apexmanifest.JSONFileName)
	MustWriteFile(t, fsys, path, data)
	return path
}
