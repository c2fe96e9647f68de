// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer owns the region, both cursors and the shared fill count.
// Hot fields are padded onto separate cache lines.

package ring

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/vmem"
)

// Buffer is a mirrored SPSC byte ring.
//
// Quiescent invariant: 0 <= fill <= capacity and
// writeCursor == (readCursor + fill) % capacity.
// A Clear racing an in-flight Produce may leave fill transiently negative;
// WriteAccess then reports the deficit as discard bytes.
type Buffer struct {
	// fill must stay first for 64-bit atomic alignment on 32-bit platforms.
	fill int64
	_    cpu.CacheLinePad

	writeCursor atomic.Int64 // producer
	_           cpu.CacheLinePad

	readCursor atomic.Int64 // consumer
	_          cpu.CacheLinePad

	mem        []byte // 2*capacity
	capacity   int
	mirrored   bool
	atomicMode bool
	region     api.Region
	closed     atomic.Bool
	logger     *slog.Logger

	producer Producer
	consumer Consumer
}

// PageSize returns the granularity capacities are rounded to.
func PageSize() int { return vmem.PageSize() }

// New allocates a ring of at least capacityHint bytes, rounded up to a page
// multiple. On error nothing is allocated.
func New(capacityHint int, opts ...Option) (*Buffer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if capacityHint <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring: capacity must be positive").
			WithContext("capacity", capacityHint)
	}

	provider := cfg.provider
	if provider == nil {
		provider = vmem.NewProvider(cfg.mode, cfg.logger)
	}
	region, err := provider.Allocate(capacityHint)
	if err != nil {
		return nil, fmt.Errorf("ring: allocate %d bytes: %w", capacityHint, err)
	}
	if err := checkLayout(region, capacityHint); err != nil {
		_ = region.Release()
		return nil, err
	}

	b := &Buffer{
		mem:        region.Bytes(),
		capacity:   region.Size(),
		mirrored:   region.Mirrored(),
		atomicMode: cfg.atomic,
		region:     region,
		logger:     cfg.logger,
	}
	b.producer.b = b
	b.consumer.b = b

	b.logger.Debug("ring: initialized",
		"requested", capacityHint, "capacity", b.capacity,
		"mirrored", b.mirrored, "atomic", b.atomicMode)
	return b, nil
}

// checkLayout rejects regions whose shape the ring cannot address.
// A sized region with no bytes has already been released.
func checkLayout(r api.Region, hint int) error {
	size := r.Size()
	if size > 0 && r.Bytes() == nil {
		return api.NewError(api.ErrCodeRegionReleased, "ring: region already released").
			WithContext("size", size)
	}
	if size <= 0 || size < hint || len(r.Bytes()) != 2*size {
		return api.NewError(api.ErrCodeLayoutMismatch, "ring: region layout mismatch").
			WithContext("size", size).
			WithContext("bytes", len(r.Bytes())).
			WithContext("requested", hint)
	}
	return nil
}

// Close releases the region. Idempotent. No Producer or Consumer call may
// be in flight, and the Buffer must not be used afterwards.
func (b *Buffer) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	b.mem = nil
	if err := b.region.Release(); err != nil {
		b.logger.Error("ring: release region", "capacity", b.capacity, "err", err)
		return fmt.Errorf("ring: close: %w", err)
	}
	return nil
}

// SetAtomic switches the fill-count update discipline. Setup time only:
// it must not race with Produce or Consume. Turn it off only when both
// roles run on one goroutine or are otherwise synchronized.
func (b *Buffer) SetAtomic(on bool) { b.atomicMode = on }

// Atomic reports whether fill-count updates are synchronized.
func (b *Buffer) Atomic() bool { return b.atomicMode }

// Capacity returns the rounded usable capacity in bytes.
func (b *Buffer) Capacity() int { return b.capacity }

// Mirrored reports whether the region is mirrored by the MMU rather than
// by copying in Produce.
func (b *Buffer) Mirrored() bool { return b.mirrored }

// Producer returns the write-side handle.
func (b *Buffer) Producer() *Producer { return &b.producer }

// Consumer returns the read-side handle.
func (b *Buffer) Consumer() *Consumer { return &b.consumer }

// Stats is a point-in-time view of a Buffer for diagnostics.
type Stats struct {
	Capacity    int
	Fill        int // may be negative after a Clear/Produce race
	ReadCursor  int
	WriteCursor int
	Mirrored    bool
	Atomic      bool
	Closed      bool
}

// Stats snapshots the ring. Fields are read independently, so a snapshot
// taken while both roles run need not satisfy the invariant.
func (b *Buffer) Stats() Stats {
	return Stats{
		Capacity:    b.capacity,
		Fill:        int(b.loadFill()),
		ReadCursor:  int(b.readCursor.Load()),
		WriteCursor: int(b.writeCursor.Load()),
		Mirrored:    b.mirrored,
		Atomic:      b.atomicMode,
		Closed:      b.closed.Load(),
	}
}

func (b *Buffer) loadFill() int64 {
	if b.atomicMode {
		return atomic.LoadInt64(&b.fill)
	}
	return b.fill
}

// addFill applies delta and returns the previous fill count.
func (b *Buffer) addFill(delta int64, synced bool) int64 {
	if synced {
		return atomic.AddInt64(&b.fill, delta) - delta
	}
	prev := b.fill
	b.fill = prev + delta
	return prev
}

func (b *Buffer) storeFill(v int64) {
	if b.atomicMode {
		atomic.StoreInt64(&b.fill, v)
		return
	}
	b.fill = v
}

// syncMirror copies n bytes written at offset w into the opposite half,
// in at most two bounded copies. Used only without a hardware mirror.
func (b *Buffer) syncMirror(w, n int) {
	c := b.capacity
	end := w + n
	if hi := min(end, c); w < hi {
		copy(b.mem[w+c:hi+c], b.mem[w:hi])
	}
	if end > c {
		copy(b.mem[:end-c], b.mem[c:end])
	}
}
