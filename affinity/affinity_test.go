package affinity_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/momentics/hioload-ring/affinity"
)

func TestSetAffinityRejectsOutOfRange(t *testing.T) {
	for _, id := range []int{-1, runtime.NumCPU()} {
		if err := affinity.SetAffinity(id); err == nil {
			t.Errorf("SetAffinity(%d) succeeded", id)
		}
	}
}

func TestPin(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		unpin, err := affinity.Pin(0)
		defer unpin()
		done <- err
	}()
	if err := <-done; err != nil {
		if errors.Is(err, affinity.ErrNotSupported) {
			t.Skip("affinity not supported")
		}
		t.Logf("Pin(0): %v (restricted environment?)", err)
	}
}
