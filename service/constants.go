package service

const (
	// Prompt defaults for the interactive calculator.
	DefaultTuition          = 8000.0
	DefaultBankBalance      = 1500.0
	DefaultPartTimeIncome   = 1000.0
	DefaultInternshipIncome = 0.0
	DefaultScholarships     = 2000.0
	DefaultLoans            = 1500.0

	// FeatureCount is the width of the regression's feature vector.
	FeatureCount = 7

	// modelCacheKeyPrefix namespaces fitted-model entries in the cache.
	modelCacheKeyPrefix = "affordability:model:"
)
