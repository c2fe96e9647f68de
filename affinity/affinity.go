// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.
//
// Used to place the producer and consumer of a ring on distinct cores.

package affinity

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrNotSupported is returned where threads cannot be bound to a CPU.
var ErrNotSupported = errors.New("affinity: not supported on this platform")

// SetAffinity pins current OS thread to a given logical CPU/core on supported platforms.
// On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	if cpuID < 0 || cpuID >= runtime.NumCPU() {
		return fmt.Errorf("affinity: cpu %d out of range [0, %d)", cpuID, runtime.NumCPU())
	}
	return setAffinityPlatform(cpuID)
}

// Pin locks the calling goroutine to its OS thread and binds that thread to cpuID.
// The returned func unlocks the thread; call it from the same goroutine.
// The goroutine stays locked even if binding fails.
func Pin(cpuID int) (unpin func(), err error) {
	runtime.LockOSThread()
	return runtime.UnlockOSThread, SetAffinity(cpuID)
}
