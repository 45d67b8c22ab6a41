package repository

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"housing-agent/domain"
)

// ListingStore loads the rental listings the advisor filters.
type ListingStore interface {
	Load() ([]domain.Listing, error)
}

// CSVListingStore reads listings from a CSV file with the columns
// address,monthly_rent,company and a header row. The company column is
// optional.
type CSVListingStore struct {
	path string
}

// NewCSVListingStore creates a store backed by the CSV at path.
func NewCSVListingStore(path string) *CSVListingStore {
	return &CSVListingStore{path: path}
}

// Load parses the listings CSV. A missing file yields an empty set with a
// warning; callers proceed with zero listings. Rows whose monthly_rent does
// not parse are dropped.
func (s *CSVListingStore) Load() ([]domain.Listing, error) {
	f, err := os.Open(s.path)
	if err != nil {
		log.Printf("Warning: listings %q not found, no apartments loaded", s.path)
		return []domain.Listing{}, nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read listings: %w", err)
	}

	listings := []domain.Listing{}
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		if len(row) < 2 {
			log.Printf("Warning: skipping short listing row %d", i)
			continue
		}
		rent, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			log.Printf("Warning: skipping listing row %d with invalid monthly_rent %q", i, row[1])
			continue
		}
		listing := domain.Listing{
			Address:     strings.TrimSpace(row[0]),
			MonthlyRent: rent,
		}
		if len(row) > 2 {
			listing.Company = strings.TrimSpace(row[2])
		}
		listings = append(listings, listing)
	}

	return listings, nil
}
