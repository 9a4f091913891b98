package ledger

import (
	"sync"

	"github.com/gofrs/uuid/v5"
)

// Guard serializes work per transaction id. Payment application is a
// read-modify-write of a single transaction record, so two concurrent
// payments against the same id must never interleave: each could see the
// same remaining balance and both be accepted when only one fits.
//
// Locks are reference-counted and dropped once no caller holds or waits on
// them, so the map stays bounded by in-flight work.
type Guard struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*guardEntry
}

type guardEntry struct {
	mu   sync.Mutex
	refs int
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{locks: make(map[uuid.UUID]*guardEntry)}
}

// WithLock runs fn while holding the lock for id. Calls with distinct ids
// proceed in parallel; calls with the same id serialize in arrival order.
func (g *Guard) WithLock(id uuid.UUID, fn func() error) error {
	g.mu.Lock()
	entry, ok := g.locks[id]
	if !ok {
		entry = &guardEntry{}
		g.locks[id] = entry
	}
	entry.refs++
	g.mu.Unlock()

	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		g.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(g.locks, id)
		}
		g.mu.Unlock()
	}()

	return fn()
}
