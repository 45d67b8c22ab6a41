package domain

// DefaultMonths is the housing duration assumed when the user does not
// provide one.
const DefaultMonths = 8

// FinancialProfile is one student's self-reported financial situation and
// housing duration. Immutable once handed to the affordability model.
type FinancialProfile struct {
	Tuition          float64 `json:"tuition"`
	BankBalance      float64 `json:"bank_balance"`
	PartTimeIncome   float64 `json:"part_time_income"`
	InternshipIncome float64 `json:"internship_income"`
	Scholarships     float64 `json:"scholarships"`
	Loans            float64 `json:"loans"`
	Months           int     `json:"months"`
}

// Features returns the seven-feature vector the regression is trained on.
// A missing months value falls back to DefaultMonths.
func (p FinancialProfile) Features() []float64 {
	months := p.Months
	if months <= 0 {
		months = DefaultMonths
	}
	return []float64{
		p.Tuition,
		p.BankBalance,
		p.PartTimeIncome,
		p.InternshipIncome,
		p.Scholarships,
		p.Loans,
		float64(months),
	}
}

// MonthlyIncome is the sum of part-time and internship income.
func (p FinancialProfile) MonthlyIncome() float64 {
	return p.PartTimeIncome + p.InternshipIncome
}

// FinancialSupport is the sum of scholarships and loans.
func (p FinancialProfile) FinancialSupport() float64 {
	return p.Scholarships + p.Loans
}
