//go:build !windows

package secmem

import "golang.org/x/sys/unix"

// mlock attempts to lock data into physical memory. Returns true on
// success.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

// munlock unlocks a previously locked region.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munlock(data)
}
