// Package api
// Author: momentics
//
// Mirrored memory regions backing byte rings.
//
// A region exposes twice its size as one slice. When mirrored, the second
// half is a second virtual mapping of the same pages as the first.

package api

// Region describes an owned, page-rounded block of memory.
type Region interface {
	// Bytes returns a view of length 2*Size().
	// If Mirrored, byte k+Size() aliases byte k.
	Bytes() []byte

	// Size returns the usable length in bytes, a multiple of the page size.
	Size() int

	// Mirrored reports whether the second half aliases the first in hardware.
	// When false the owner must keep both halves in sync itself.
	Mirrored() bool

	// Release unmaps or frees the region. Idempotent.
	// After Release, Bytes must not be used.
	Release() error
}

// RegionProvider allocates regions of at least the requested size.
type RegionProvider interface {
	Allocate(size int) (Region, error)
}
