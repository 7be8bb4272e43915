// SPDX-License-Identifier: MPL-2.0

package apexsupport

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unsafe"

	"apexsupport/internal/logging"
	"apexsupport/internal/testutil"
	"apexsupport/pkg/apexinfo"
	"apexsupport/pkg/apexmanifest"

	"github.com/spf13/afero"
)

func newTestBoundary(t *testing.T, exe string, exeErr error) (*Boundary, *bytes.Buffer) {
	t.Helper()

	fsys := afero.NewMemMapFs()
	manifests := map[string]apexmanifest.Manifest{
		"/apex/com.android.libapexsupport.tests": {Name: "com.android.libapexsupport.tests", Version: 42},
		"/apex/com.android.liar":                 {Name: "com.android.honest", Version: 1},
	}
	for dir, m := range manifests {
		testutil.WriteManifest(t, fsys, dir, m)
	}

	r, err := apexinfo.NewResolver(
		apexinfo.WithFs(fsys),
		apexinfo.WithExecutablePath(func() (string, error) { return exe, exeErr }),
	)
	if err != nil {
		t.Fatalf("NewResolver() unexpected error: %v", err)
	}

	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf, Format: logging.FormatLogfmt})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBoundary(r, logger)
	if err != nil {
		t.Fatalf("NewBoundary() unexpected error: %v", err)
	}
	return b, &buf
}

func cString(p *byte) string {
	if p == nil {
		return ""
	}
	var n int
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

func TestBoundary_CreateSuccess(t *testing.T) {
	t.Parallel()

	b, logs := newTestBoundary(t, "/apex/com.android.libapexsupport.tests/bin/libapexsupport-tests", nil)

	var info *apexinfo.ApexInfo
	if code := b.Create(&info); code != OK {
		t.Fatalf("Create() = %v, want OK", code)
	}
	if info == nil {
		t.Fatal("Create() returned OK without a handle")
	}

	if got := cString(GetName(info)); got != "com.android.libapexsupport.tests" {
		t.Errorf("GetName() = %q", got)
	}
	if got := GetVersion(info); got != 42 {
		t.Errorf("GetVersion() = %d, want 42", got)
	}
	if logs.Len() != 0 {
		t.Errorf("successful Create() should not log, got %q", logs.String())
	}
}

func TestBoundary_CreateFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		exe    string
		exeErr error
		want   Code
	}{
		{name: "not from apex", exe: "/system/bin/app_process64", want: NotFromApex},
		{name: "exe path unavailable", exeErr: errors.New("readlink failed"), want: ExePathUnavailable},
		{name: "manifest missing", exe: "/apex/com.android.gone/bin/x", want: InvalidApex},
		{name: "name mismatch", exe: "/apex/com.android.liar/bin/x", want: InvalidApex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, logs := newTestBoundary(t, tt.exe, tt.exeErr)
			sentinel := &apexinfo.ApexInfo{}
			info := sentinel
			if code := b.Create(&info); code != tt.want {
				t.Errorf("Create() = %v, want %v", code, tt.want)
			}
			if info != sentinel {
				t.Error("Create() modified the output location on failure")
			}
			out := logs.String()
			if strings.Count(out, "\n") != 1 {
				t.Errorf("expected exactly one diagnostic line, got %q", out)
			}
			if !strings.Contains(out, "code="+tt.want.String()) {
				t.Errorf("diagnostic should carry the code, got %q", out)
			}
		})
	}
}

func TestBoundary_CreateNilOutput(t *testing.T) {
	t.Parallel()

	calls := 0
	r, err := apexinfo.NewResolver(
		apexinfo.WithFs(afero.NewMemMapFs()),
		apexinfo.WithExecutablePath(func() (string, error) {
			calls++
			return "/apex/a/bin/a", nil
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBoundary(r, logger)
	if err != nil {
		t.Fatal(err)
	}

	if code := b.Create(nil); code != NullArgument {
		t.Errorf("Create(nil) = %v, want NullArgument", code)
	}
	if calls != 0 {
		t.Errorf("Create(nil) resolved the executable path %d time(s)", calls)
	}
	if buf.Len() == 0 {
		t.Error("Create(nil) should log a diagnostic")
	}
}

func TestNilHandle(t *testing.T) {
	t.Parallel()

	if GetName(nil) != nil {
		t.Error("GetName(nil) should be nil")
	}
	if got := GetVersion(nil); got != -1 {
		t.Errorf("GetVersion(nil) = %d, want -1", got)
	}
}

func TestNewBoundary_NilResolver(t *testing.T) {
	t.Parallel()

	if _, err := NewBoundary(nil, nil); !errors.Is(err, ErrNilResolver) {
		t.Errorf("NewBoundary(nil) error = %v, want ErrNilResolver", err)
	}
}

func TestGetName_ReturnsCopy(t *testing.T) {
	t.Parallel()

	b, _ := newTestBoundary(t, "/apex/com.android.libapexsupport.tests/bin/libapexsupport-tests", nil)
	var info *apexinfo.ApexInfo
	if code := b.Create(&info); code != OK {
		t.Fatalf("Create() = %v, want OK", code)
	}

	*GetName(info) = 'X'
	if got := cString(GetName(info)); got != "com.android.libapexsupport.tests" {
		t.Errorf("GetName() after writing through an earlier result = %q", got)
	}
}

func TestDefaultBoundary_IgnoresLocationOverrides(t *testing.T) {
	t.Setenv("APEXSUPPORT_APEX_ROOT", "/data/local/tmp")
	t.Setenv("APEXSUPPORT_MANIFEST_FILE", "apex_manifest.json")
	t.Setenv("APEXSUPPORT_LOG_LEVEL", "error")

	b := newDefaultBoundary()
	if got := b.resolver.Root(); got != apexinfo.DefaultRoot {
		t.Errorf("default boundary root = %q, want %q", got, apexinfo.DefaultRoot)
	}
	if got := b.resolver.ManifestFile(); got != apexmanifest.DefaultFileName {
		t.Errorf("default boundary manifest = %q, want %q", got, apexmanifest.DefaultFileName)
	}

	// A manifest planted under the overridden root must not be trusted.
	if _, err := b.resolver.ResolvePath("/data/local/tmp/com.evil/bin/x"); !errors.Is(err, apexinfo.ErrPathNotFromApex) {
		t.Errorf("ResolvePath() under the overridden root error = %v, want ErrPathNotFromApex", err)
	}
}
