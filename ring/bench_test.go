// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ring_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/momentics/hioload-ring/affinity"
	"github.com/momentics/hioload-ring/ring"
)

func BenchmarkWriteReadSingleThread(b *testing.B) {
	for _, atomicMode := range []bool{true, false} {
		name := "atomic"
		if !atomicMode {
			name = "plain"
		}
		b.Run(name, func(b *testing.B) {
			r, err := ring.New(64<<10, ring.WithAtomic(atomicMode))
			if err != nil {
				b.Fatal(err)
			}
			defer r.Close()
			p, c := r.Producer(), r.Consumer()
			msg := make([]byte, 256)
			b.SetBytes(int64(len(msg)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.WriteBytes(msg)
				c.Consume(len(c.ReadAccess()))
			}
		})
	}
}

// BenchmarkSPSCPinned streams 4 KiB chunks between two pinned OS threads.
func BenchmarkSPSCPinned(b *testing.B) {
	if runtime.NumCPU() < 2 {
		b.Skip("needs two CPUs")
	}
	r, err := ring.New(1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()
	const chunk = 4096
	b.SetBytes(chunk)
	b.ResetTimer()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		unpin, _ := affinity.Pin(0)
		defer unpin()
		p := r.Producer()
		for i := 0; i < b.N; {
			span, _ := p.WriteAccess()
			if len(span) < chunk {
				continue
			}
			p.Produce(chunk)
			i++
		}
	}()

	unpin, _ := affinity.Pin(1)
	defer unpin()
	c := r.Consumer()
	for got := 0; got < b.N*chunk; {
		n := len(c.ReadAccess())
		c.Consume(n)
		got += n
	}
	wg.Wait()
}
