//go:build windows

// File: internal/vmem/vmem_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows: plain VirtualAlloc regions only. Placeholder-based views
// (MapViewOfFile3) are not exposed by x/sys/windows.

package vmem

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-ring/api"
)

func pageSize() int { return os.Getpagesize() }

func allocMirrored(size int) (api.Region, error) {
	return nil, api.NewError(api.ErrCodeMirrorUnsupported, "vmem: mirrored mapping not available on windows").
		WithContext("size", size)
}

// allocPlain commits 2*size bytes of read/write memory.
func allocPlain(size int) (api.Region, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(2*size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, api.NewError(api.ErrCodeResourceExhausted, "vmem: VirtualAlloc").
			WithContext("size", size).WithCause(err)
	}
	mem := viewOf(addr, 2*size)
	return newRegion(mem, size, false, func() error {
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}), nil
}

// viewOf slices n bytes at addr. The memory comes from VirtualAlloc and is
// not Go-managed, so the uintptr conversion cannot dangle across a GC move.
func viewOf(addr uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}
