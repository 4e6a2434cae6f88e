// internal/cart/store.go
package cart

import (
	"context"
	"sync"
	"time"
)

// Store holds session carts between requests. Carts are transient; a store
// may drop sessions that have been idle past its TTL.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps carts in process memory. Suitable for a single node
// and for tests.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
	ttl   time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]*Cart),
		ttl:   ttl,
	}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	s.mu.RLock()
	stored, ok := s.carts[sessionID]
	s.mu.RUnlock()

	if !ok {
		return New(sessionID), nil
	}
	if s.ttl > 0 && time.Since(stored.UpdatedAt) > s.ttl {
		s.mu.Lock()
		delete(s.carts, sessionID)
		s.mu.Unlock()
		return New(sessionID), nil
	}

	// Copy so callers can mutate freely before saving back.
	c := *stored
	c.Items = append([]Item(nil), stored.Items...)
	return &c, nil
}

func (s *MemoryStore) Save(ctx context.Context, cart *Cart) error {
	c := *cart
	c.Items = append([]Item(nil), cart.Items...)

	s.mu.Lock()
	s.carts[cart.SessionID] = &c
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}
