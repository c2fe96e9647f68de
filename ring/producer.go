// File: ring/producer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Write side of the ring. Only the producer goroutine touches writeCursor
// (Clear aside) and only through this handle.

package ring

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Producer = (*Producer)(nil)

// Producer is the single writer of a Buffer.
type Producer struct {
	b *Buffer
}

// WriteAccess returns the contiguous writable span starting at the write
// cursor, or nil when the ring is full.
//
// A non-zero discard means the fill count is negative after a Clear raced a
// Produce: the first discard bytes of span are already accounted for and
// should be skipped, though all of span is addressable.
func (p *Producer) WriteAccess() (span []byte, discard int) {
	b := p.b
	avail, discard := b.space(b.loadFill())
	if avail == 0 {
		return nil, 0
	}
	w := int(b.writeCursor.Load())
	return b.mem[w : w+avail : w+avail], discard
}

// Space returns the number of bytes WriteAccess would report.
func (p *Producer) Space() int {
	avail, _ := p.b.space(p.b.loadFill())
	return avail
}

// Produce publishes amount bytes written at the start of the span returned by
// WriteAccess and returns the fill count observed just before. It panics if
// the ring would hold more than its capacity.
func (p *Producer) Produce(amount int) int {
	return int(p.b.produce(amount, p.b.atomicMode))
}

// WriteBytes copies src into the ring and publishes it, all or nothing.
// It returns false, leaving the ring untouched, if src does not fit.
func (p *Producer) WriteBytes(src []byte) bool {
	n := len(src)
	if n > p.b.capacity {
		return false
	}
	span, discard := p.WriteAccess()
	if len(span) < n-discard {
		return false
	}
	// Leading discard bytes are already reserved; only the rest is copied.
	if discard < n {
		copy(span[discard:], src[discard:])
	}
	p.Produce(n)
	return true
}

// ProduceNoBarrier publishes amount bytes with an unsynchronized update.
//
// Deprecated: use SetAtomic(false) and Produce instead.
func (p *Producer) ProduceNoBarrier(amount int) {
	p.b.produce(amount, false)
}

// space derives writable and discard byte counts from a fill value.
func (b *Buffer) space(fill int64) (avail, discard int) {
	if fill <= 0 {
		return b.capacity, int(-fill)
	}
	return b.capacity - int(fill), 0
}

func (b *Buffer) produce(amount int, synced bool) int64 {
	// Bounded by capacity even when discard bytes would absorb the excess:
	// WriteAccess never reports a longer span, and the mirror copy assumes it.
	if amount < 0 || amount > b.capacity {
		panic(fmt.Sprintf("ring: produce %d bytes out of range [0, %d]; "+
			"amount may not exceed the span WriteAccess reports, even with discard pending",
			amount, b.capacity))
	}
	w := int(b.writeCursor.Load())
	if !b.mirrored {
		b.syncMirror(w, amount)
	}
	b.writeCursor.Store(int64((w + amount) % b.capacity))
	prev := b.addFill(int64(amount), synced)
	if prev+int64(amount) > int64(b.capacity) {
		panic(fmt.Sprintf("ring: produce %d bytes overruns capacity %d (fill was %d)",
			amount, b.capacity, prev))
	}
	return prev
}
