// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Pkg: {
	name:  string & != ""
	size?: int & >=0
}
`

type testPkg struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    testPkg
		wantErr string
	}{
		{name: "json input", data: `{"name": "a", "size": 3}`, want: testPkg{Name: "a", Size: 3}},
		{name: "cue input", data: "name: \"b\"\n", want: testPkg{Name: "b"}},
		{name: "missing required field", data: `{"size": 1}`, wantErr: "name"},
		{name: "constraint violation", data: `{"name": "a", "size": -1}`, wantErr: "size"},
		{name: "syntax error", data: `{"name": `, wantErr: "pkg.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode[testPkg]([]byte(testSchema), []byte(tt.data), "#Pkg", WithFilename("pkg.json"))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Decode() = %+v, want error containing %q", got, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Decode() error = %q, want it to contain %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("Decode() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestDecode_MaxFileSize(t *testing.T) {
	t.Parallel()

	_, err := Decode[testPkg]([]byte(testSchema), []byte(`{"name": "abcdef"}`), "#Pkg", WithMaxFileSize(4))
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("Decode() error = %v, want size error", err)
	}
}

func TestDecode_NonConcrete(t *testing.T) {
	t.Parallel()

	schema := []byte("#Cfg: { level?: string, root?: string }")
	got, err := Unify(schema, []byte(`level: "debug"`), "#Cfg", WithConcrete(false))
	if err != nil {
		t.Fatalf("Unify() unexpected error: %v", err)
	}
	var m map[string]any
	if err := got.Decode(&m); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if m["level"] != "debug" {
		t.Errorf("level = %v, want debug", m["level"])
	}
}

func TestDecode_UnknownDefinition(t *testing.T) {
	t.Parallel()

	_, err := Decode[testPkg]([]byte(testSchema), []byte(`{"name": "a"}`), "#Missing")
	if err == nil || !strings.Contains(err.Error(), "#Missing") {
		t.Errorf("Decode() error = %v, want missing definition error", err)
	}
}
