package domain

// Recommendation is the advisor's answer for one profile: the predicted safe
// monthly rent and the listings at or under it. AvailableCount carries the
// size of the full listing set so callers can tell "nothing in budget" apart
// from "no listings at all".
type Recommendation struct {
	SafeRent       float64   `json:"safe_rent"`
	Listings       []Listing `json:"recommendations"`
	AvailableCount int       `json:"available_count"`
}
