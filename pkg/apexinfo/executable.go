// SPDX-License-Identifier: MPL-2.0

package apexinfo

// ExecutablePathProvider returns the absolute path of the running executable.
type ExecutablePathProvider func() (string, error)

// OwnExecutable is the platform ExecutablePathProvider.
func OwnExecutable() (string, error) {
	return executablePath()
}
