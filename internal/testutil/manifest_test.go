// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"testing"

	"apexsupport/pkg/apexmanifest"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestWriteManifest_RoundTrips(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	want := apexmanifest.Manifest{Name: "com.android.foo", Version: 7, VersionName: "7.0"}

	for _, path := range []string{
		WriteManifest(t, fsys, "/apex/com.android.foo", want),
		WriteJSONManifest(t, fsys, "/apex/com.android.foo", want),
	} {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			t.Fatalf("ReadFile(%s) unexpected error: %v", path, err)
		}
		got, err := apexmanifest.Decode(data, path)
		if err != nil {
			t.Fatalf("Decode(%s) unexpected error: %v", path, err)
		}
		if diff := cmp.Diff(want, *got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", path, diff)
		}
	}
}
