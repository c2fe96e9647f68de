//go:build linux

// File: internal/vmem/backing_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vmem

import "golang.org/x/sys/unix"

// openBacking returns an anonymous memfd truncated to size.
func openBacking(size int) (int, error) {
	fd, err := unix.MemfdCreate("hioload-ring", unix.MFD_CLOEXEC)
	if err != nil {
		return -1, err
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		return -1, err
	}
	return fd, nil
}
