package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/treasuryops/sepagen/internal/sepa"
)

// FromXLSX reads transaction records from the first sheet of an XLSX
// workbook. The first row must be the header; the column contract matches
// the CSV loader.
func FromXLSX(path string) ([]sepa.Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet '%s': %w", sheets[0], err)
	}

	transactions, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return transactions, nil
}
