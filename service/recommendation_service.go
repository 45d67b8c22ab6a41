package service

import (
	"sort"

	"housing-agent/domain"
)

// Recommend returns exactly the listings with monthly rent at or under
// safeRent, preserving input order. Pure function of its inputs; an empty
// result is valid and distinct from an empty listing set, which callers
// detect on the input side.
func Recommend(safeRent float64, listings []domain.Listing) []domain.Listing {
	recommended := []domain.Listing{}
	for _, l := range listings {
		if l.MonthlyRent <= safeRent {
			recommended = append(recommended, l)
		}
	}
	return recommended
}

// SortByRent returns a copy sorted ascending by monthly rent, the display
// order every presentation surface uses.
func SortByRent(listings []domain.Listing) []domain.Listing {
	sorted := make([]domain.Listing, len(listings))
	copy(sorted, listings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MonthlyRent < sorted[j].MonthlyRent
	})
	return sorted
}

// RentRange reports the cheapest and most expensive rent among listings.
// ok is false when the set is empty.
func RentRange(listings []domain.Listing) (min, max float64, ok bool) {
	if len(listings) == 0 {
		return 0, 0, false
	}
	min, max = listings[0].MonthlyRent, listings[0].MonthlyRent
	for _, l := range listings[1:] {
		if l.MonthlyRent < min {
			min = l.MonthlyRent
		}
		if l.MonthlyRent > max {
			max = l.MonthlyRent
		}
	}
	return min, max, true
}
