// SPDX-License-Identifier: MPL-2.0

package apexinfo

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

const procSelfExe = "/proc/self/exe"

// executablePath reads the /proc/self/exe link. The kernel appends
// " (deleted)" once the binary has been unlinked; the suffix is dropped so the
// path still maps to its mount point.
func executablePath() (string, error) {
	buf := make([]byte, unix.PathMax)
	n, err := unix.Readlink(procSelfExe, buf)
	if err != nil {
		return "", fmt.Errorf("readlink %s: %w", procSelfExe, err)
	}
	if n >= len(buf) {
		return "", fmt.Errorf("readlink %s: path longer than %d bytes", procSelfExe, len(buf))
	}
	return strings.TrimSuffix(string(buf[:n]), " (deleted)"), nil
}
