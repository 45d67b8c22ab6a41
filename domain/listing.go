package domain

// Listing is one rental unit.
type Listing struct {
	Address     string  `json:"address"`
	MonthlyRent float64 `json:"monthly_rent"`
	Company     string  `json:"company,omitempty"`
}
