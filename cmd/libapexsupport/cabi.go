// SPDX-License-Identifier: MPL-2.0

package main

// The exported functions are called back through C here, the same way a C
// consumer of the shared library reaches them.

/*
#include <stdlib.h>
#include <string.h>
#include "handle.h"

extern AApexInfoError AApexInfo_create(AApexInfo **out);
extern void AApexInfo_destroy(AApexInfo *info);
extern char *AApexInfo_getName(AApexInfo *info);
extern int64_t AApexInfo_getVersion(AApexInfo *info);

static AApexInfo *cabi_new(const char *name, int64_t version) {
	AApexInfo *info = malloc(sizeof(AApexInfo));
	info->name = strdup(name);
	info->version = version;
	return info;
}

static AApexInfoError cabi_create(AApexInfo **out) { return AApexInfo_create(out); }
static AApexInfoError cabi_create_null(void) { return AApexInfo_create(NULL); }
static void cabi_destroy(AApexInfo *info) { AApexInfo_destroy(info); }
static char *cabi_get_name(AApexInfo *info) { return AApexInfo_getName(info); }
static int64_t cabi_get_version(AApexInfo *info) { return AApexInfo_getVersion(info); }
*/
import "C"

import (
	"unsafe"

	"apexsupport/pkg/apexsupport"
)

type handle = *C.AApexInfo

// newCHandle allocates a handle in C, for use as a value create must not
// overwrite. Release it with destroyC.
func newCHandle(name string, version int64) handle {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.cabi_new(cname, C.int64_t(version))
}

func createC(out *handle) apexsupport.Code {
	return apexsupport.Code(C.cabi_create(out))
}

func createNullC() apexsupport.Code {
	return apexsupport.Code(C.cabi_create_null())
}

func destroyC(h handle) {
	C.cabi_destroy(h)
}

func getNameC(h handle) *C.char {
	return C.cabi_get_name(h)
}

func getVersionC(h handle) int64 {
	return int64(C.cabi_get_version(h))
}

func goString(p *C.char) string {
	return C.GoString(p)
}
