// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go — randomized operations checked against a FIFO model.
package ring_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/ring"
)

func TestRingPropertyBased(t *testing.T) {
	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			for seed := int64(0); seed < 5; seed++ {
				runModel(t, m.mode, seed)
			}
		})
	}
}

func runModel(t *testing.T, mode ring.Mode, seed int64) {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	b := newRing(t, 4096, ring.WithMode(mode))
	p, c := b.Producer(), b.Consumer()
	capacity := b.Capacity()
	model := queue.New()
	buf := make([]byte, capacity)

	for i := 0; i < 3000; i++ {
		switch op := rnd.Intn(10); {
		case op < 5: // write
			n := rnd.Intn(capacity / 3)
			data := make([]byte, n)
			rnd.Read(data)
			fits := n <= capacity-model.Length()
			if got := p.WriteBytes(data); got != fits {
				t.Fatalf("seed %d op %d: WriteBytes(%d) = %v with %d queued", seed, i, n, got, model.Length())
			}
			if fits {
				for _, v := range data {
					model.Add(v)
				}
			}
		case op < 9: // read
			k := rnd.Intn(capacity)
			n := c.ReadBytes(buf[:k])
			if want := min(k, model.Length()); n != want {
				t.Fatalf("seed %d op %d: ReadBytes(%d) = %d, want %d", seed, i, k, n, want)
			}
			for j := 0; j < n; j++ {
				if want := model.Remove().(byte); buf[j] != want {
					t.Fatalf("seed %d op %d: byte %d = %#x, want %#x", seed, i, j, buf[j], want)
				}
			}
		default:
			c.Clear()
			model = queue.New()
		}

		if got := c.Available(); got != model.Length() {
			t.Fatalf("seed %d op %d: Available = %d, model holds %d", seed, i, got, model.Length())
		}
		if got := p.Space(); got != capacity-model.Length() {
			t.Fatalf("seed %d op %d: Space = %d, want %d", seed, i, got, capacity-model.Length())
		}
		checkInvariant(t, b)
	}
}
