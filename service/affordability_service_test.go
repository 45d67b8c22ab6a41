package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"housing-agent/domain"
	"housing-agent/repository"
)

// MockHistoricalStore serves a fixed record set and counts loads so tests
// can observe cache behavior.
type MockHistoricalStore struct {
	Records    []domain.TrainingRecord
	Version    string
	LoadCalls  int
	ForceError error
}

func (m *MockHistoricalStore) Load() ([]domain.TrainingRecord, error) {
	m.LoadCalls++
	if m.ForceError != nil {
		return nil, m.ForceError
	}
	return m.Records, nil
}

func (m *MockHistoricalStore) Fingerprint() string {
	return m.Version
}

func TestFitModel_EmptyRecords(t *testing.T) {
	_, err := FitModel(nil)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestFitModel_RecoversTrainingLabel(t *testing.T) {
	model, err := FitModel(repository.FallbackRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A profile identical to a training row must predict that row's label
	// closely; the tiny system is consistent, so the fit is essentially
	// exact.
	profile := domain.FinancialProfile{
		Tuition:          8000,
		BankBalance:      1500,
		PartTimeIncome:   1000,
		InternshipIncome: 0,
		Scholarships:     2000,
		Loans:            1500,
		Months:           8,
	}
	got := model.Predict(profile)
	if math.Abs(got-800) > 0.5 {
		t.Errorf("expected prediction near 800, got %.2f", got)
	}
}

func TestPredict_Deterministic(t *testing.T) {
	model, err := FitModel(repository.FallbackRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile := domain.FinancialProfile{Tuition: 7500, BankBalance: 1200, PartTimeIncome: 900, Months: 8}
	first := model.Predict(profile)
	second := model.Predict(profile)
	if first != second {
		t.Errorf("predict is not deterministic: %.2f vs %.2f", first, second)
	}
}

func TestPredict_ClampsNegativeToZero(t *testing.T) {
	model := &Model{
		Intercept:    -100,
		Coefficients: []float64{-1, 0, 0, 0, 0, 0, 0},
	}
	profile := domain.FinancialProfile{Tuition: 10000, Months: 8}
	if got := model.Predict(profile); got != 0 {
		t.Errorf("expected clamp to 0, got %.2f", got)
	}
}

func TestPredict_DefaultsMissingMonths(t *testing.T) {
	model := &Model{
		Intercept:    0,
		Coefficients: []float64{0, 0, 0, 0, 0, 0, 10},
	}
	// Months left unset must behave like Months = 8.
	got := model.Predict(domain.FinancialProfile{})
	if got != 80 {
		t.Errorf("expected 80 from defaulted months, got %.2f", got)
	}
}

func TestAffordabilityService_FitsOncePerSourceVersion(t *testing.T) {
	store := &MockHistoricalStore{Records: repository.FallbackRecords(), Version: "v1"}
	svc := NewAffordabilityService(store, repository.NewMockCache())

	first, err := svc.Model(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Model(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.LoadCalls != 1 {
		t.Errorf("expected a single load for an unchanged source, got %d", store.LoadCalls)
	}
	if first != second {
		t.Errorf("expected the memoized model instance to be reused")
	}
}

func TestAffordabilityService_RefitsWhenSourceChanges(t *testing.T) {
	store := &MockHistoricalStore{Records: repository.FallbackRecords(), Version: "v1"}
	svc := NewAffordabilityService(store, repository.NewMockCache())

	if _, err := svc.Model(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.Version = "v2"
	if _, err := svc.Model(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.LoadCalls != 2 {
		t.Errorf("expected a refit after fingerprint change, got %d loads", store.LoadCalls)
	}
}

func TestAffordabilityService_ReadsCachedSnapshot(t *testing.T) {
	cache := repository.NewMockCache()

	warm := &MockHistoricalStore{Records: repository.FallbackRecords(), Version: "v1"}
	if _, err := NewAffordabilityService(warm, cache).Model(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second service sharing the cache must not need the store at all.
	cold := &MockHistoricalStore{ForceError: errors.New("store down"), Version: "v1"}
	if _, err := NewAffordabilityService(cold, cache).Model(context.Background()); err != nil {
		t.Fatalf("expected cached model to satisfy the request: %v", err)
	}
	if cold.LoadCalls != 0 {
		t.Errorf("expected zero store loads with a warm cache, got %d", cold.LoadCalls)
	}
}
