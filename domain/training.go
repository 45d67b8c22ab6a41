package domain

// TrainingRecord is one historical observation: a student's finances plus
// the rent that turned out to be safe for them.
type TrainingRecord struct {
	Tuition          float64
	BankBalance      float64
	PartTimeIncome   float64
	InternshipIncome float64
	Scholarships     float64
	Loans            float64
	Months           float64
	SafeRent         float64
}

// Features returns the record's seven-feature vector, in the same order as
// FinancialProfile.Features.
func (r TrainingRecord) Features() []float64 {
	return []float64{
		r.Tuition,
		r.BankBalance,
		r.PartTimeIncome,
		r.InternshipIncome,
		r.Scholarships,
		r.Loans,
		r.Months,
	}
}
