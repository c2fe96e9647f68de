// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ring implements a fixed-capacity single-producer/single-consumer
// byte ring whose readable and writable spans are always contiguous.
//
// The backing region is mapped twice, back to back, so a span that crosses
// the logical end of the ring is still one []byte. Where the platform cannot
// mirror pages the ring keeps a second copy of every produced byte in the
// upper half instead, and callers see the same contiguous spans.
//
// The producer and the consumer share exactly one word, the fill count.
// A Buffer hands out one *Producer and one *Consumer; each must be used by a
// single goroutine at a time. No operation blocks: an empty or full ring is
// reported as a nil span and the caller decides how to wait.
//
//	b, err := ring.New(64 << 10)
//	if err != nil { ... }
//	defer b.Close()
//
//	// producer goroutine
//	p := b.Producer()
//	if !p.WriteBytes(msg) { /* full, retry later */ }
//
//	// consumer goroutine
//	c := b.Consumer()
//	if data := c.ReadAccess(); data != nil {
//		handle(data)
//		c.Consume(len(data))
//	}
package ring
