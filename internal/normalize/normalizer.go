// File: internal/normalize/normalizer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unified index normalization routines for CPU indices.
// Ensures affinity actions validate their indices against actual hardware
// topology to prevent out-of-bounds requests.
//
// Example usage:
//
//   cpu := normalize.CPUIndex(requested, runtime.NumCPU())
//   prod, cons := normalize.CPUPair(p, c, runtime.NumCPU())
//
// If input is invalid, default index (0) is used and a warning is logged.

package normalize

import (
	"log/slog"
)

// CPUIndex validates and normalizes a CPU index against maxCPUs.
//   - If requested < 0, or >= maxCPUs, returns 0.
//   - If maxCPUs < 1, returns 0.
func CPUIndex(requested int, maxCPUs int) int {
	if maxCPUs < 1 {
		slog.Warn("normalize: CPU topology returned <1 cores, fallback to 0")
		return 0
	}
	if requested < 0 || requested >= maxCPUs {
		slog.Warn("normalize: CPU index out of range, fallback to 0",
			"requested", requested, "max", maxCPUs)
		return 0
	}
	return requested
}

// CPUPair normalizes producer and consumer CPU indices, moving the consumer
// to the next CPU when both land on the same one and more than one exists.
func CPUPair(producer, consumer, maxCPUs int) (int, int) {
	p := CPUIndex(producer, maxCPUs)
	c := CPUIndex(consumer, maxCPUs)
	if p == c && maxCPUs > 1 {
		c = (p + 1) % maxCPUs
		slog.Warn("normalize: producer and consumer share a CPU, moving consumer",
			"producer", p, "consumer", c)
	}
	return p, c
}
