//go:build darwin || freebsd || openbsd || dragonfly

// File: internal/vmem/backing_bsd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// No memfd here: use a temporary file unlinked right after creation.

package vmem

import (
	"os"

	"golang.org/x/sys/unix"
)

// openBacking returns a duplicated fd of an unlinked temp file of length size.
func openBacking(size int) (int, error) {
	f, err := os.CreateTemp("", "hioload-ring-*")
	if err != nil {
		return -1, err
	}
	defer f.Close()
	if err := os.Remove(f.Name()); err != nil {
		return -1, err
	}
	if err := f.Truncate(int64(size)); err != nil {
		return -1, err
	}
	return unix.Dup(int(f.Fd()))
}
