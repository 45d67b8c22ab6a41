package repository

import (
	"context"

	"housing-agent/domain"
)

// HistoryRepository persists interaction history to the warehouse. Writes
// are best-effort: callers log failures and keep going, the pipeline never
// depends on the warehouse being reachable.
type HistoryRepository interface {
	SaveEvent(ctx context.Context, event domain.InteractionEvent) error
}
