// SPDX-License-Identifier: MPL-2.0

package apexinfo

import "fmt"

// ApexInfo is the identity of the APEX an executable was launched from.
// It is immutable; the only way to obtain one is a successful resolution.
type ApexInfo struct {
	name    ApexName
	version int64
}

func newApexInfo(name ApexName, version int64) *ApexInfo {
	return &ApexInfo{name: name, version: version}
}

// Name returns the APEX name declared by the manifest.
func (i *ApexInfo) Name() ApexName { return i.name }

// Version returns the APEX version declared by the manifest.
func (i *ApexInfo) Version() int64 { return i.version }

// CName returns a new NUL-terminated copy of the name. Validated names never
// contain NUL, so the copy is a well-formed C string.
func (i *ApexInfo) CName() []byte {
	cname := make([]byte, len(i.name)+1)
	copy(cname, i.name)
	return cname
}

// String returns "name@version".
func (i *ApexInfo) String() string {
	return fmt.Sprintf("%s@%d", i.name, i.version)
}
