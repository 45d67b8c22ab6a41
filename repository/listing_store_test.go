package repository

import (
	"path/filepath"
	"testing"
)

func TestListingStore_MissingFileYieldsEmptySet(t *testing.T) {
	store := NewCSVListingStore(filepath.Join(t.TempDir(), "does_not_exist.csv"))

	listings, err := store.Load()
	if err != nil {
		t.Fatalf("missing source must not fail: %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("expected empty set, got %d listings", len(listings))
	}
}

func TestListingStore_DropsRowsWithInvalidRent(t *testing.T) {
	content := `address,monthly_rent,company
"295 Lester St, Waterloo",800,Rent My Space
"256 Phillip St, Waterloo",call us,RezOne
"251 Hemlock St, Waterloo",950,Sage 6 Platinum`
	store := NewCSVListingStore(writeTempCSV(t, "sublets.csv", content))

	listings, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings after dropping bad rent, got %d", len(listings))
	}
	if listings[0].MonthlyRent != 800 || listings[1].MonthlyRent != 950 {
		t.Errorf("wrong surviving listings: %+v", listings)
	}
}

func TestListingStore_CompanyColumnOptional(t *testing.T) {
	content := `address,monthly_rent
100 Test St,650`
	store := NewCSVListingStore(writeTempCSV(t, "sublets.csv", content))

	listings, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	if listings[0].Company != "" {
		t.Errorf("expected empty company, got %q", listings[0].Company)
	}
}
