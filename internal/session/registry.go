package session

import (
	"context"
	"sync"

	"github.com/financewise/backend/internal/budgetsync"
	"github.com/financewise/backend/internal/events"
	"github.com/financewise/backend/internal/store"
	"github.com/google/uuid"
)

// Registry hands out one Session per owner, creating and loading it on
// first use.
type Registry struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*Session
	store     store.Client
	sync      *budgetsync.Synchronizer
	publisher events.Publisher
}

func NewRegistry(client store.Client, synchronizer *budgetsync.Synchronizer, publisher events.Publisher) *Registry {
	return &Registry{
		sessions:  make(map[uuid.UUID]*Session),
		store:     client,
		sync:      synchronizer,
		publisher: publisher,
	}
}

// For returns the owner's session. A session created by this call is
// fully loaded before it is stored, so a failed initial load is not
// cached.
func (r *Registry) For(ctx context.Context, owner uuid.UUID) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[owner]
	r.mu.Unlock()

	if ok {
		return s, nil
	}

	s = New(owner, r.store, r.sync, r.publisher)
	if err := s.LoadAll(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	// Another request may have loaded the session concurrently; keep
	// the one that won the map.
	if existing, ok := r.sessions[owner]; ok {
		s = existing
	} else {
		r.sessions[owner] = s
	}
	r.mu.Unlock()

	return s, nil
}
