//go:build linux || darwin || freebsd || openbsd || dragonfly

// File: internal/vmem/mirror_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mirrored and plain mappings via golang.org/x/sys/unix.
// The mirror is built by reserving 2*size of address space and mapping the
// same backing object over both halves with MAP_FIXED.

package vmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ring/api"
)

func pageSize() int { return unix.Getpagesize() }

// allocMirrored maps a backing object of size bytes twice, contiguously.
func allocMirrored(size int) (api.Region, error) {
	fd, err := openBacking(size)
	if err != nil {
		return nil, api.NewError(api.ErrCodeMirrorUnsupported, "vmem: backing object").
			WithContext("size", size).WithCause(err)
	}
	// The mappings keep the object alive.
	defer unix.Close(fd)

	total := uintptr(2 * size)
	base, err := unix.MmapPtr(-1, 0, nil, total, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, api.NewError(api.ErrCodeResourceExhausted, "vmem: reserve address space").
			WithContext("size", size).WithCause(err)
	}

	for half := 0; half < 2; half++ {
		want := unsafe.Add(base, half*size)
		got, err := unix.MmapPtr(fd, 0, want, uintptr(size),
			unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_FIXED)
		if err != nil || got != want {
			_ = unix.MunmapPtr(base, total)
			if err == nil {
				err = fmt.Errorf("mapped at %p, want %p", got, want)
			}
			return nil, api.NewError(api.ErrCodeMirrorUnsupported, "vmem: map mirror half").
				WithContext("half", half).WithCause(err)
		}
	}

	mem := unsafe.Slice((*byte)(base), 2*size)
	if !aliased(mem, size) {
		_ = unix.MunmapPtr(base, total)
		return nil, api.NewError(api.ErrCodeMirrorUnsupported, "vmem: halves do not alias").
			WithContext("size", size)
	}

	return newRegion(mem, size, true, func() error {
		return unix.MunmapPtr(base, total)
	}), nil
}

// aliased checks that a store through the first half is visible in the second.
func aliased(mem []byte, size int) bool {
	mem[0] = 0xA5
	ok := mem[size] == 0xA5
	mem[size] = 0
	return ok && mem[0] == 0
}

// allocPlain maps 2*size anonymous private bytes.
func allocPlain(size int) (api.Region, error) {
	mem, err := unix.Mmap(-1, 0, 2*size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, api.NewError(api.ErrCodeResourceExhausted, "vmem: anonymous mmap").
			WithContext("size", size).WithCause(err)
	}
	return newRegion(mem, size, false, func() error {
		return unix.Munmap(mem)
	}), nil
}
