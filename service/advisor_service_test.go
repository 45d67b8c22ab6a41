package service

import (
	"context"
	"testing"

	"housing-agent/domain"
	"housing-agent/repository"
)

type MockListingStore struct {
	Listings []domain.Listing
}

func (m *MockListingStore) Load() ([]domain.Listing, error) {
	return m.Listings, nil
}

func newTestAdvisor(listings []domain.Listing, history repository.HistoryRepository) *AdvisorService {
	affordability := NewAffordabilityService(
		&MockHistoricalStore{Records: repository.FallbackRecords(), Version: "v1"},
		repository.NewMockCache(),
	)
	return NewAdvisorService(affordability, &MockListingStore{Listings: listings}, history, "student-1")
}

func TestAdvise_EndToEnd(t *testing.T) {
	history := repository.NewMemoryHistoryRepository()
	advisor := newTestAdvisor(sampleListings(), history)

	profile := domain.FinancialProfile{
		Tuition:          8000,
		BankBalance:      1500,
		PartTimeIncome:   1000,
		InternshipIncome: 0,
		Scholarships:     2000,
		Loans:            1500,
		Months:           8,
	}

	rec, err := advisor.Advise(context.Background(), profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The profile matches a training row labeled 800; every sample listing
	// under that must come back.
	if rec.SafeRent < 500 || rec.SafeRent > 1100 {
		t.Errorf("implausible safe rent %.2f", rec.SafeRent)
	}
	if len(rec.Listings) == 0 {
		t.Error("expected at least one recommendation")
	}
	if rec.AvailableCount != 3 {
		t.Errorf("expected 3 available listings, got %d", rec.AvailableCount)
	}
}

func TestAdvise_RecordsHistoryEvents(t *testing.T) {
	history := repository.NewMemoryHistoryRepository()
	advisor := newTestAdvisor(sampleListings(), history)

	if _, err := advisor.Advise(context.Background(), domain.FinancialProfile{Months: 8}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := history.Events()
	kinds := make(map[string]int)
	for _, e := range events {
		kinds[e.Kind]++
		if e.SessionID != advisor.SessionID() {
			t.Errorf("event %s carries session %q, want %q", e.Kind, e.SessionID, advisor.SessionID())
		}
		if e.UserID != "student-1" {
			t.Errorf("event %s carries user %q", e.Kind, e.UserID)
		}
	}
	for _, kind := range []string{domain.EventSessionStarted, domain.EventBudgetSubmitted, domain.EventRecommendation} {
		if kinds[kind] != 1 {
			t.Errorf("expected exactly one %s event, got %d", kind, kinds[kind])
		}
	}
}

func TestAdvise_NilHistoryIsFine(t *testing.T) {
	advisor := newTestAdvisor(sampleListings(), nil)
	if _, err := advisor.Advise(context.Background(), domain.FinancialProfile{Months: 8}); err != nil {
		t.Fatalf("advising without a warehouse must work: %v", err)
	}
}

func TestAdvise_EmptyListingSetDistinguishable(t *testing.T) {
	advisor := newTestAdvisor([]domain.Listing{}, repository.NewMemoryHistoryRepository())
	rec, err := advisor.Advise(context.Background(), domain.FinancialProfile{Months: 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.AvailableCount != 0 || len(rec.Listings) != 0 {
		t.Errorf("expected empty result over empty set, got %+v", rec)
	}
}
