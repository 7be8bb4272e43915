// SPDX-License-Identifier: MPL-2.0

package apexmanifest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCUEDecoder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    *Manifest
		wantErr bool
	}{
		{
			name: "minimal",
			data: `{"name": "com.android.libapexsupport.tests", "version": 42}`,
			want: &Manifest{Name: "com.android.libapexsupport.tests", Version: 42},
		},
		{
			name: "extra fields are ignored",
			data: `{"name": "com.android.foo", "version": 1, "versionName": "1.0", "provideNativeLibs": ["libfoo.so"], "noCode": true}`,
			want: &Manifest{Name: "com.android.foo", Version: 1, VersionName: "1.0"},
		},
		{
			name: "cue syntax",
			data: "name: \"com.android.foo\"\nversion: 3\n",
			want: &Manifest{Name: "com.android.foo", Version: 3},
		},
		{
			name: "negative version",
			data: `{"name": "a", "version": -5}`,
			want: &Manifest{Name: "a", Version: -5},
		},
		{name: "missing version", data: `{"name": "a"}`, wantErr: true},
		{name: "missing name", data: `{"version": 1}`, wantErr: true},
		{name: "empty name", data: `{"name": "", "version": 1}`, wantErr: true},
		{name: "fractional version", data: `{"name": "a", "version": 1.5}`, wantErr: true},
		{name: "string version", data: `{"name": "a", "version": "1"}`, wantErr: true},
		{name: "overflowing version", data: `{"name": "a", "version": 9223372036854775808}`, wantErr: true},
		{name: "underflowing version", data: `{"name": "a", "version": -9223372036854775809}`, wantErr: true},
		{name: "not json", data: `{"name": `, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CUEDecoder{}.Decode([]byte(tt.data), JSONFileName)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode() = %+v, want error", got)
				}
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("error should wrap ErrMalformed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
