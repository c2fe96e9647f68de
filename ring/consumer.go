// File: ring/consumer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Read side of the ring.

package ring

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Consumer = (*Consumer)(nil)

// Consumer is the single reader of a Buffer.
type Consumer struct {
	b *Buffer
}

// ReadAccess returns every readable byte as one contiguous span starting at
// the read cursor, or nil when the ring is empty. A zero or negative fill
// count both read as empty.
func (c *Consumer) ReadAccess() []byte {
	b := c.b
	fill := b.loadFill()
	if fill <= 0 {
		return nil
	}
	r := int(b.readCursor.Load())
	n := int(fill)
	return b.mem[r : r+n : r+n]
}

// Available returns the number of bytes ReadAccess would report.
func (c *Consumer) Available() int {
	return int(max(c.b.loadFill(), 0))
}

// Consume releases amount bytes from the front of the ring. amount must not
// exceed the length last returned by ReadAccess; the ring's state is
// undefined otherwise.
func (c *Consumer) Consume(amount int) {
	c.b.consume(amount, c.b.atomicMode)
}

// ReadBytes copies up to len(dst) readable bytes into dst, consumes them and
// returns the count.
func (c *Consumer) ReadBytes(dst []byte) int {
	n := copy(dst, c.ReadAccess())
	if n > 0 {
		c.Consume(n)
	}
	return n
}

// Clear resets both cursors and the fill count without touching the region.
// It may run while the producer is active; an in-flight Produce can then
// leave the fill count briefly negative, which the producer observes as
// discard bytes.
func (c *Consumer) Clear() {
	b := c.b
	b.readCursor.Store(0)
	b.writeCursor.Store(0)
	b.storeFill(0)
}

// ConsumeNoBarrier releases amount bytes with an unsynchronized update.
//
// Deprecated: use SetAtomic(false) and Consume instead.
func (c *Consumer) ConsumeNoBarrier(amount int) {
	c.b.consume(amount, false)
}

func (b *Buffer) consume(amount int, synced bool) {
	if amount < 0 {
		panic(fmt.Sprintf("ring: consume of negative amount %d", amount))
	}
	r := int(b.readCursor.Load())
	b.readCursor.Store(int64((r + amount) % b.capacity))
	b.addFill(-int64(amount), synced)
}
