package session

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultStripes = 256

// Locker serializes work on a single user's session. Keys are spread over a
// fixed set of mutexes, so two users may share a stripe but one user never
// runs on two at once.
type Locker struct {
	stripes []sync.Mutex
}

// NewLocker returns a Locker with n stripes (256 when n <= 0).
func NewLocker(n int) *Locker {
	if n <= 0 {
		n = defaultStripes
	}
	return &Locker{stripes: make([]sync.Mutex, n)}
}

// Lock acquires the stripe for key and returns its unlock func.
func (l *Locker) Lock(key string) func() {
	m := &l.stripes[xxhash.Sum64String(key)%uint64(len(l.stripes))]
	m.Lock()
	return m.Unlock
}
