//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific implementation for setting thread CPU affinity.

package affinity

import (
	"golang.org/x/sys/windows"
)

var procSetThreadAffinityMask = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetThreadAffinityMask")

// setAffinityPlatform sets thread affinity to a given CPU for Windows.
func setAffinityPlatform(cpuID int) error {
	mask := uintptr(1) << cpuID
	ret, _, err := procSetThreadAffinityMask.Call(uintptr(windows.CurrentThread()), mask)
	if ret == 0 {
		return err
	}
	return nil
}
