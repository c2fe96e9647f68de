// File: internal/vmem/vmem.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Region provider with mirrored-first allocation and plain fallback.

package vmem

import (
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.RegionProvider = (*Provider)(nil)
	_ api.Region         = (*region)(nil)
)

// Mode selects which allocation strategies a Provider may use.
type Mode int

const (
	// ModeMirrorOrPlain tries a mirrored mapping and falls back to plain memory.
	ModeMirrorOrPlain Mode = iota
	// ModeMirrorOnly fails if a mirrored mapping cannot be established.
	ModeMirrorOnly
	// ModePlainOnly never attempts mirroring.
	ModePlainOnly
)

func (m Mode) String() string {
	switch m {
	case ModeMirrorOrPlain:
		return "mirror-or-plain"
	case ModeMirrorOnly:
		return "mirror-only"
	case ModePlainOnly:
		return "plain-only"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// PageSize returns the platform page granularity.
func PageSize() int { return pageSize() }

// RoundUp rounds n up to a multiple of the page size.
// The result, doubled, still fits in an int.
func RoundUp(n int) (int, error) {
	if n <= 0 {
		return 0, api.NewError(api.ErrCodeInvalidArgument, "vmem: size must be positive").
			WithContext("size", n)
	}
	ps := PageSize()
	if n > math.MaxInt/2-ps {
		return 0, api.NewError(api.ErrCodeResourceExhausted, "vmem: size too large").
			WithContext("size", n)
	}
	return ((n + ps - 1) / ps) * ps, nil
}

// Provider implements api.RegionProvider for the host platform.
type Provider struct {
	mode   Mode
	logger *slog.Logger
}

// NewProvider returns a provider using mode. A nil logger means slog.Default().
func NewProvider(mode Mode, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{mode: mode, logger: logger}
}

// Mode returns the provider's allocation mode.
func (p *Provider) Mode() Mode { return p.mode }

// Allocate returns a region of at least size bytes, rounded to the page size.
func (p *Provider) Allocate(size int) (api.Region, error) {
	n, err := RoundUp(size)
	if err != nil {
		return nil, err
	}
	switch p.mode {
	case ModePlainOnly:
		return allocPlain(n)
	case ModeMirrorOnly:
		return allocMirrored(n)
	case ModeMirrorOrPlain:
		r, err := allocMirrored(n)
		if err == nil {
			return r, nil
		}
		p.logger.Warn("vmem: mirrored mapping unavailable, using plain memory",
			"size", n, "err", err)
		return allocPlain(n)
	}
	return nil, api.NewError(api.ErrCodeInvalidArgument, "vmem: unknown mode").
		WithContext("mode", int(p.mode))
}

// region is the single Region implementation; platform files supply unmap.
type region struct {
	mem      []byte
	size     int
	mirrored bool
	released atomic.Bool
	unmap    func() error
}

func newRegion(mem []byte, size int, mirrored bool, unmap func() error) *region {
	return &region{mem: mem, size: size, mirrored: mirrored, unmap: unmap}
}

// Bytes returns the 2*Size() view, or nil after Release.
func (r *region) Bytes() []byte {
	if r.released.Load() {
		return nil
	}
	return r.mem
}

func (r *region) Size() int      { return r.size }
func (r *region) Mirrored() bool { return r.mirrored }

// Release unmaps the region once; later calls return nil.
func (r *region) Release() error {
	if r.released.Swap(true) {
		return nil
	}
	r.mem = nil
	if r.unmap == nil {
		return nil
	}
	if err := r.unmap(); err != nil {
		return fmt.Errorf("vmem: release %d bytes: %w", r.size, err)
	}
	return nil
}
