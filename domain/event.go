package domain

import "time"

// Interaction event kinds persisted to the history warehouse.
const (
	EventSessionStarted  = "session_started"
	EventBudgetSubmitted = "budget_submitted"
	EventRecommendation  = "recommendation"
)

// InteractionEvent is one row of interaction history. Payload is whatever
// immutable value the core produced for that step (a profile, a
// recommendation) and is serialized by the repository.
type InteractionEvent struct {
	ID        string
	SessionID string
	UserID    string
	Kind      string
	Payload   any
	CreatedAt time.Time
}
