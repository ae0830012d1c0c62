//go:build windows

package secmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mlock attempts to lock data into physical memory. Returns true on
// success.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	return windows.VirtualLock(addr, uintptr(len(data))) == nil
}

// munlock unlocks a previously locked region.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&data[0]))
	_ = windows.VirtualUnlock(addr, uintptr(len(data)))
}
