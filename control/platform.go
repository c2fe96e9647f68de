// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Platform facts relevant to ring sizing.

package control

import (
	"runtime"

	"github.com/momentics/hioload-ring/ring"
)

// RegisterPlatformProbes sets platform debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.pagesize", func() any {
		return ring.PageSize()
	})
}
