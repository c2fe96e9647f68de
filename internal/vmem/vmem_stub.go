//go:build !linux && !darwin && !freebsd && !openbsd && !dragonfly && !windows

// File: internal/vmem/vmem_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for platforms without a mapping facility.

package vmem

import (
	"os"

	"github.com/momentics/hioload-ring/api"
)

func pageSize() int { return os.Getpagesize() }

func allocMirrored(size int) (api.Region, error) {
	return nil, api.NewError(api.ErrCodeMirrorUnsupported, "vmem: mirrored mapping not available on this platform").
		WithContext("size", size)
}

// allocPlain falls back to the Go heap.
func allocPlain(size int) (api.Region, error) {
	return newRegion(make([]byte, 2*size), size, false, nil), nil
}
