package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/treasuryops/sepagen/internal/sepa"
)

// FromCSV reads transaction records from a CSV file. The first row must be
// the header; see the package comment for the column contract.
func FromCSV(path string) ([]sepa.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Rows may omit trailing optional columns.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	transactions, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return transactions, nil
}
