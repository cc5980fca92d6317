package services

import "sync"

// PlayerLocks hands out one mutex per player id. Services that run a
// load-mutate-save cycle over a player share a single PlayerLocks instance so
// concurrent requests for the same player are serialized across services,
// not just within one.
type PlayerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewPlayerLocks creates an empty PlayerLocks.
func NewPlayerLocks() *PlayerLocks {
	return &PlayerLocks{locks: make(map[string]*sync.Mutex)}
}

// Get returns the mutex for a player, creating it on first use.
func (p *PlayerLocks) Get(playerID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	lock, ok := p.locks[playerID]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[playerID] = lock
	}
	return lock
}
