package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"housing-agent/domain"
)

// ErrDataUnavailable means a training source was present but parsed to zero
// usable rows, so there is nothing to fit on.
var ErrDataUnavailable = errors.New("training source contains no usable rows")

// HistoricalStore loads the historical student records the model trains on.
type HistoricalStore interface {
	Load() ([]domain.TrainingRecord, error)
	// Fingerprint identifies the current version of the training source.
	// Cached models keyed by it are refit when the source changes.
	Fingerprint() string
}

// fallbackRecords is the built-in dataset used when no CSV is available.
var fallbackRecords = []domain.TrainingRecord{
	{Tuition: 8000, BankBalance: 1500, PartTimeIncome: 1000, InternshipIncome: 0, Scholarships: 2000, Loans: 1500, Months: 8, SafeRent: 800},
	{Tuition: 9000, BankBalance: 2000, PartTimeIncome: 0, InternshipIncome: 0, Scholarships: 1000, Loans: 3000, Months: 8, SafeRent: 750},
	{Tuition: 7000, BankBalance: 500, PartTimeIncome: 800, InternshipIncome: 500, Scholarships: 1000, Loans: 1000, Months: 8, SafeRent: 600},
}

// FallbackRecords returns a fresh copy of the built-in training set.
func FallbackRecords() []domain.TrainingRecord {
	out := make([]domain.TrainingRecord, len(fallbackRecords))
	copy(out, fallbackRecords)
	return out
}

// CSVHistoricalStore reads training records from a CSV file with the columns
// tuition,bank_balance,part_time_income,internship_income,scholarships,loans,months,safe_rent
// and a header row.
type CSVHistoricalStore struct {
	path string
}

// NewCSVHistoricalStore creates a store backed by the CSV at path.
func NewCSVHistoricalStore(path string) *CSVHistoricalStore {
	return &CSVHistoricalStore{path: path}
}

// Load parses the training CSV. A missing file falls back to the built-in
// dataset with a warning. Rows whose safe_rent label does not parse are
// dropped, never fatal; the other columns coerce leniently to 0.
func (s *CSVHistoricalStore) Load() ([]domain.TrainingRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		log.Printf("Warning: historical data %q not found, using built-in dataset", s.path)
		return FallbackRecords(), nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read historical data: %w", err)
	}

	var records []domain.TrainingRecord
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		if len(row) < 8 {
			log.Printf("Warning: skipping short historical row %d", i)
			continue
		}
		safeRent, err := strconv.ParseFloat(strings.TrimSpace(row[7]), 64)
		if err != nil {
			log.Printf("Warning: skipping historical row %d with invalid safe_rent %q", i, row[7])
			continue
		}
		records = append(records, domain.TrainingRecord{
			Tuition:          parseAmount(row[0]),
			BankBalance:      parseAmount(row[1]),
			PartTimeIncome:   parseAmount(row[2]),
			InternshipIncome: parseAmount(row[3]),
			Scholarships:     parseAmount(row[4]),
			Loans:            parseAmount(row[5]),
			Months:           parseAmount(row[6]),
			SafeRent:         safeRent,
		})
	}

	if len(records) == 0 {
		return nil, ErrDataUnavailable
	}
	return records, nil
}

// Fingerprint combines path, mtime and size. A missing source reports the
// stable identity of the built-in dataset.
func (s *CSVHistoricalStore) Fingerprint() string {
	info, err := os.Stat(s.path)
	if err != nil {
		return "builtin"
	}
	return fmt.Sprintf("%s:%d:%d", s.path, info.ModTime().UnixNano(), info.Size())
}

// parseAmount coerces a CSV cell to a number, treating anything unparsable
// as zero.
func parseAmount(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return v
}
