package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"housing-agent/domain"
	"housing-agent/repository"
)

// ErrInsufficientData means a fit was attempted on an empty record set.
// There is nothing meaningful to predict from zero training rows, so callers
// must not proceed to predict.
var ErrInsufficientData = errors.New("cannot fit model on empty training set")

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// Model holds the fitted regression coefficients over the seven financial
// features. Immutable after FitModel; Predict is safe for concurrent use.
type Model struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// FitModel regresses safe rent on the seven features by ordinary least
// squares, no regularization, no feature scaling. Inputs are user-supplied
// currency amounts and the data volumes are tiny; magnitudes are left as-is.
func FitModel(records []domain.TrainingRecord) (*Model, error) {
	if len(records) == 0 {
		return nil, ErrInsufficientData
	}

	n := len(records)
	x := mat.NewDense(n, FeatureCount+1, nil)
	y := mat.NewVecDense(n, nil)
	for i, rec := range records {
		x.Set(i, 0, 1) // intercept column
		for j, v := range rec.Features() {
			x.Set(i, j+1, v)
		}
		y.SetVec(i, rec.SafeRent)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(x, y); err != nil {
		// An ill-conditioned system still yields a usable minimum-norm
		// solution; anything else is a real failure.
		if _, ok := err.(mat.Condition); !ok {
			return nil, fmt.Errorf("failed to fit model: %w", err)
		}
	}

	model := &Model{
		Intercept:    coef.AtVec(0),
		Coefficients: make([]float64, FeatureCount),
	}
	for j := 0; j < FeatureCount; j++ {
		model.Coefficients[j] = coef.AtVec(j + 1)
	}
	return model, nil
}

// Predict applies the fitted linear map to a profile's feature vector. The
// result is clamped at zero and rounded to 2 decimal places. No side
// effects, deterministic for a fixed model and profile.
func (m *Model) Predict(profile domain.FinancialProfile) float64 {
	value := m.Intercept
	for j, f := range profile.Features() {
		value += m.Coefficients[j] * f
	}
	return roundTo2Decimals(math.Max(value, 0))
}

// AffordabilityService owns the fitted model for the current training
// source. Fitting is the expensive step, so models are memoized in-process
// and in the cache repository, keyed by the source fingerprint, and refit
// only when the source changes.
type AffordabilityService struct {
	store repository.HistoricalStore
	cache repository.CacheRepository

	mu     sync.Mutex
	fitted *Model
	key    string
}

// NewAffordabilityService creates the service with the given training store
// and cache.
func NewAffordabilityService(
	store repository.HistoricalStore,
	cache repository.CacheRepository,
) *AffordabilityService {
	return &AffordabilityService{store: store, cache: cache}
}

// Model returns the fitted model for the current training source, fitting at
// most once per source version. The returned model is never mutated, so
// concurrent Predict calls against it need no coordination.
func (s *AffordabilityService) Model(ctx context.Context) (*Model, error) {
	key := modelCacheKeyPrefix + s.store.Fingerprint()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fitted != nil && s.key == key {
		return s.fitted, nil
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		var model Model
		if err := json.Unmarshal([]byte(cached), &model); err == nil && len(model.Coefficients) == FeatureCount {
			s.fitted, s.key = &model, key
			return &model, nil
		}
		log.Printf("Warning: discarding unreadable cached model for %q", key)
	}

	records, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	model, err := FitModel(records)
	if err != nil {
		return nil, err
	}

	// Caching the snapshot is not critical if it fails.
	if data, err := json.Marshal(model); err == nil {
		if err := s.cache.Set(ctx, key, string(data)); err != nil {
			log.Printf("Warning: failed to cache fitted model: %v", err)
		}
	}

	s.fitted, s.key = model, key
	return model, nil
}
