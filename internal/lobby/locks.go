// internal/lobby/locks.go
package lobby

import "sync"

// codeLocks serializes read-modify-write cycles per lobby code. The
// store has no cross-key transactions, so every mutation of a lobby
// record and its user index entries runs behind the code's mutex.
// Operations on different codes never contend.
type codeLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newCodeLocks() *codeLocks {
	return &codeLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for code, creating it on first use. The
// caller must Unlock the returned mutex.
func (c *codeLocks) acquire(code string) *sync.Mutex {
	c.mu.Lock()
	m, ok := c.locks[code]
	if !ok {
		m = &sync.Mutex{}
		c.locks[code] = m
	}
	c.mu.Unlock()
	m.Lock()
	return m
}

// forget drops the mutex for a code whose lobby has been deleted.
func (c *codeLocks) forget(code string) {
	c.mu.Lock()
	delete(c.locks, code)
	c.mu.Unlock()
}
