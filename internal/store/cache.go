package store

import (
	"context"
	"sync"
	"time"

	"capsim-round/internal/simulation"
)

// Entry is a simulated round kept for later retrieval by id.
type Entry struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
	Round     *simulation.Round
}

// RoundCache keeps simulated rounds in memory so API clients can fetch a round
// again by id. It is presentation state only; simulations never read from it.
type RoundCache struct {
	mu    sync.RWMutex
	store map[string]*Entry
	ttl   time.Duration
	now   func() time.Time
}

func NewRoundCache(ttl time.Duration) *RoundCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RoundCache{
		store: make(map[string]*Entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get retrieves a round if present and not expired.
func (c *RoundCache) Get(id string) (*Entry, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[id]
	if !exists {
		return nil, false
	}
	if c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry, true
}

// Set stores a round under id and returns the stored entry.
func (c *RoundCache) Set(id string, round *simulation.Round) *Entry {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	entry := &Entry{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
		Round:     round,
	}
	c.store[id] = entry
	return entry
}

func (c *RoundCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries.
func (c *RoundCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*Entry)
}

// Run evicts expired entries every interval until ctx is done.
func (c *RoundCache) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

func (c *RoundCache) evictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for id, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, id)
			n++
		}
	}
	return n
}
