// SPDX-License-Identifier: MPL-2.0

//go:build !linux

package apexinfo

import "os"

func executablePath() (string, error) {
	return os.Executable()
}
