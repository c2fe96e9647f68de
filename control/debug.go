// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for internal inspection.

package control

import (
	"sort"
	"sync"

	"github.com/momentics/hioload-ring/ring"
)

// StatsSource snapshots ring state. *ring.Buffer satisfies it.
type StatsSource interface {
	Stats() ring.Stats
}

var _ StatsSource = (*ring.Buffer)(nil)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook, replacing any previous one.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// RegisterRing publishes src.Stats() under "ring.<name>".
// Stats is safe to call from any goroutine while the ring is in atomic mode.
func (dp *DebugProbes) RegisterRing(name string, src StatsSource) {
	dp.RegisterProbe("ring."+name, func() any { return src.Stats() })
}

// UnregisterProbe removes a named hook. Unknown names are ignored.
func (dp *DebugProbes) UnregisterProbe(name string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	delete(dp.probes, name)
}

// Names returns registered probe names in sorted order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	names := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
