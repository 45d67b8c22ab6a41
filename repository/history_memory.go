package repository

import (
	"context"
	"sync"

	"housing-agent/domain"
)

// MemoryHistoryRepository is an in-memory HistoryRepository used in tests
// and when no warehouse DSN is configured.
type MemoryHistoryRepository struct {
	mu     sync.Mutex
	events []domain.InteractionEvent
}

func NewMemoryHistoryRepository() *MemoryHistoryRepository {
	return &MemoryHistoryRepository{
		events: []domain.InteractionEvent{},
	}
}

// SaveEvent appends the event to the in-memory log.
func (r *MemoryHistoryRepository) SaveEvent(_ context.Context, event domain.InteractionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of everything recorded so far.
func (r *MemoryHistoryRepository) Events() []domain.InteractionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.InteractionEvent, len(r.events))
	copy(out, r.events)
	return out
}
