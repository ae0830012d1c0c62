// Package secmem provides mlock'd, self-zeroing byte buffers for
// secret material that passes through the Shamir core only briefly
// (such as the secret returned by shamir.RecoverSecretSecure).
package secmem

import (
	"runtime"
	"sync"
)

// SecureBytes wraps a byte slice that is locked into physical memory
// (best-effort) and explicitly zeroed when no longer needed.
type SecureBytes struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// New allocates a SecureBytes of the given size, attempting to lock
// its backing memory so it cannot be paged to disk.
func New(size int) *SecureBytes {
	data := make([]byte, size)
	sb := &SecureBytes{
		data:   data,
		locked: mlock(data),
	}
	runtime.SetFinalizer(sb, func(s *SecureBytes) { s.Destroy() })
	return sb
}

// FromSlice copies src into a new SecureBytes.
func FromSlice(src []byte) *SecureBytes {
	sb := New(len(src))
	copy(sb.data, src)
	return sb
}

// Bytes returns the underlying slice, or nil once Destroy has run.
func (s *SecureBytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// IsLocked reports whether the backing memory is mlock'd. Locking can
// fail (insufficient privilege, platform limits); callers should treat
// it as a hardening measure, not a guarantee.
func (s *SecureBytes) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Len returns the length of the data, or 0 once destroyed.
func (s *SecureBytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Destroy zeros the backing memory, unlocks it, and releases the
// reference. Safe to call more than once.
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}
	for i := range s.data {
		s.data[i] = 0
	}
	if s.locked {
		munlock(s.data)
		s.locked = false
	}
	s.data = nil
	runtime.SetFinalizer(s, nil)
}
