// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"runtime"
	"testing"
)

const probeKey = "APEXSUPPORT_TESTUTIL_PROBE"

func TestMustSetenv_RestoresUnset(t *testing.T) {
	t.Cleanup(MustUnsetenv(t, probeKey))

	restore := MustSetenv(t, probeKey, "set")
	if got := os.Getenv(probeKey); got != "set" {
		t.Fatalf("%s = %q, want %q", probeKey, got, "set")
	}

	restore()
	if _, ok := os.LookupEnv(probeKey); ok {
		t.Errorf("%s still set after restore", probeKey)
	}
}

func TestMustUnsetenv_RestoresValue(t *testing.T) {
	t.Cleanup(MustSetenv(t, probeKey, "original"))

	restore := MustUnsetenv(t, probeKey)
	if _, ok := os.LookupEnv(probeKey); ok {
		t.Fatalf("%s still set", probeKey)
	}

	restore()
	if got := os.Getenv(probeKey); got != "original" {
		t.Errorf("%s = %q after restore, want %q", probeKey, got, "original")
	}
}

func TestSetHomeDir(t *testing.T) {
	envVar := "HOME"
	if runtime.GOOS == "windows" {
		envVar = "USERPROFILE"
	}
	original := os.Getenv(envVar)
	dir := t.TempDir()

	t.Run("subtest", func(t *testing.T) {
		t.Cleanup(SetHomeDir(t, dir))

		if got := os.Getenv(envVar); got != dir {
			t.Errorf("%s = %q, want %q", envVar, got, dir)
		}
	})

	if got := os.Getenv(envVar); got != original {
		t.Errorf("after subtest, %s = %q, want %q", envVar, got, original)
	}
}
