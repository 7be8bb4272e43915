// SPDX-License-Identifier: MPL-2.0

package apexinfo

import (
	"path/filepath"
	"strconv"
	"strings"
)

// mountPoint is the APEX mount directory an executable path lives under.
type mountPoint struct {
	// Dir is <root>/<segment>, the directory holding the manifest.
	Dir  string
	Name ApexName
	// Version is the @<version> suffix of a versioned mount point.
	Version   int64
	Versioned bool
}

// parseMountPoint finds the mount point of exePath below root. It is a pure
// string operation on the cleaned path; nothing is looked up on disk.
func parseMountPoint(root, exePath string) (mountPoint, error) {
	notFromApex := &PathNotFromApexError{Path: exePath}

	if !filepath.IsAbs(exePath) {
		return mountPoint{}, notFromApex
	}

	prefix := filepath.Clean(root)
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	rest, ok := strings.CutPrefix(filepath.Clean(exePath), prefix)
	if !ok {
		return mountPoint{}, notFromApex
	}

	segment, _, _ := strings.Cut(rest, string(filepath.Separator))
	if segment == "" {
		return mountPoint{}, notFromApex
	}

	mp := mountPoint{Dir: prefix + segment, Name: ApexName(segment)}
	if name, suffix, versioned := strings.Cut(segment, "@"); versioned {
		v, ok := parseMountVersion(suffix)
		if !ok {
			return mountPoint{}, notFromApex
		}
		mp.Name, mp.Version, mp.Versioned = ApexName(name), v, true
	}

	if mp.Name.Validate() != nil {
		return mountPoint{}, notFromApex
	}
	return mp, nil
}

// parseMountVersion accepts only plain decimal digits.
func parseMountVersion(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
