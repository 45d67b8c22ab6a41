package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"housing-agent/domain"
	"housing-agent/repository"
)

// AdvisorService drives one advisory interaction: predict a safe rent for a
// profile, filter the listing set against it, and emit history events for
// the warehouse collaborator. Every output is a plain immutable value, so
// presentation and narration consume results without re-entering the core.
type AdvisorService struct {
	affordability *AffordabilityService
	listings      repository.ListingStore
	history       repository.HistoryRepository
	sessionID     string
	userID        string
}

// NewAdvisorService creates an advisor for one user session. history may be
// nil when no warehouse is wired.
func NewAdvisorService(
	affordability *AffordabilityService,
	listings repository.ListingStore,
	history repository.HistoryRepository,
	userID string,
) *AdvisorService {
	advisor := &AdvisorService{
		affordability: affordability,
		listings:      listings,
		history:       history,
		sessionID:     uuid.NewString(),
		userID:        userID,
	}
	advisor.record(context.Background(), domain.EventSessionStarted, nil)
	return advisor
}

// SessionID identifies this advisory session in the interaction history.
func (s *AdvisorService) SessionID() string {
	return s.sessionID
}

// Advise runs the pipeline for one profile: fit-or-reuse the model, predict,
// load listings, filter. ErrInsufficientData aborts; everything else either
// succeeds or has already degraded at the store boundary.
func (s *AdvisorService) Advise(ctx context.Context, profile domain.FinancialProfile) (domain.Recommendation, error) {
	s.record(ctx, domain.EventBudgetSubmitted, profile)

	model, err := s.affordability.Model(ctx)
	if err != nil {
		return domain.Recommendation{}, err
	}
	safeRent := model.Predict(profile)

	listings, err := s.listings.Load()
	if err != nil {
		return domain.Recommendation{}, err
	}

	rec := domain.Recommendation{
		SafeRent:       safeRent,
		Listings:       Recommend(safeRent, listings),
		AvailableCount: len(listings),
	}
	s.record(ctx, domain.EventRecommendation, rec)
	return rec, nil
}

// AvailableListings exposes the full listing set for presentation surfaces
// that report the in-budget subset against what exists.
func (s *AdvisorService) AvailableListings() ([]domain.Listing, error) {
	return s.listings.Load()
}

// record writes one history event; failures are logged and ignored.
func (s *AdvisorService) record(ctx context.Context, kind string, payload any) {
	if s.history == nil {
		return
	}
	event := domain.InteractionEvent{
		ID:        uuid.NewString(),
		SessionID: s.sessionID,
		UserID:    s.userID,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.history.SaveEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to record %s event: %v", kind, err)
	}
}
