// SPDX-License-Identifier: MPL-2.0

// Command libapexsupport builds the AApexInfo C API as a shared library:
//
//	go build -buildmode=c-shared -o libapexsupport.so ./cmd/libapexsupport
//
// C callers include include/android/apexsupport.h. The handle handed to C is
// a malloc'ed struct owning a C copy of the name, so no Go pointer crosses the
// boundary.
package main

/*
#include <stdlib.h>
#include "handle.h"
*/
import "C"

import (
	"unsafe"

	"apexsupport/pkg/apexinfo"
	"apexsupport/pkg/apexsupport"
)

// boundary is resolved on every create so tests can swap it.
var boundary = apexsupport.Default

//export AApexInfo_create
func AApexInfo_create(out **C.AApexInfo) C.AApexInfoError {
	if out == nil {
		return C.AApexInfoError(boundary().Create(nil))
	}

	var info *apexinfo.ApexInfo
	if code := boundary().Create(&info); code != apexsupport.OK {
		return C.AApexInfoError(code)
	}

	h := (*C.AApexInfo)(C.malloc(C.sizeof_AApexInfo))
	h.name = C.CString(string(info.Name()))
	h.version = C.int64_t(info.Version())
	*out = h
	return C.AApexInfoError(apexsupport.OK)
}

//export AApexInfo_destroy
func AApexInfo_destroy(info *C.AApexInfo) {
	if info == nil {
		return
	}
	C.free(unsafe.Pointer(info.name))
	C.free(unsafe.Pointer(info))
}

//export AApexInfo_getName
func AApexInfo_getName(info *C.AApexInfo) *C.char {
	if info == nil {
		return nil
	}
	return info.name
}

//export AApexInfo_getVersion
func AApexInfo_getVersion(info *C.AApexInfo) C.int64_t {
	if info == nil {
		return -1
	}
	return info.version
}

func main() {}
