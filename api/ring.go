// Package api
// Author: momentics@gmail.com
//
// Single-producer/single-consumer byte ring contracts.

package api

// Producer is the write side of a byte ring. Exactly one goroutine may hold it.
type Producer interface {
	// WriteAccess returns the contiguous writable span and the number of
	// leading bytes already accounted for. Span is nil if the ring is full.
	WriteAccess() (span []byte, discard int)
	// Produce publishes amount bytes written into the span and returns the
	// fill count observed before the update.
	Produce(amount int) int
	// WriteBytes copies src in full or not at all.
	WriteBytes(src []byte) bool
	// Space returns the number of writable bytes.
	Space() int
}

// Consumer is the read side of a byte ring. Exactly one goroutine may hold it.
type Consumer interface {
	// ReadAccess returns the contiguous readable span, nil if empty.
	ReadAccess() []byte
	// Consume releases amount bytes previously returned by ReadAccess.
	Consume(amount int)
	// ReadBytes copies up to len(dst) bytes out and consumes them.
	ReadBytes(dst []byte) int
	// Available returns the number of readable bytes.
	Available() int
	// Clear discards all unread data.
	Clear()
}
