// =============================================================================
// sepagen - Transaction Record Loaders
// =============================================================================
//
// This package reads direct-debit transaction records from CSV and XLSX
// files and turns them into domain transactions. Both formats share one
// column contract; the first row is the header and column order is free.
//
// COLUMNS:
//   end_to_end_id   required  caller's end-to-end reference
//   amount          required  positive decimal, e.g. "125.50"
//   currency        optional  ISO 4217 code, defaults to EUR
//   debtor_name     required  debtor account holder
//   debtor_iban     required  debtor account identifier
//   debtor_bic      required  debtor bank identifier
//   mandate_id      required  mandate reference
//   mandate_signed  required  date of signature, YYYY-MM-DD
//   sequence_type   required  FRST | RCUR | OOFF | FNAL (or spelled out)
//   instruction_id  optional  per-instruction reference
//   remittance      optional  unstructured remittance text
//   collection_date optional  per-transaction override, YYYY-MM-DD
//
// =============================================================================

package loader

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/treasuryops/sepagen/internal/sepa"
)

// RecordError reports a record that could not be converted into a
// transaction. Row numbering is 1-based and counts the header row.
type RecordError struct {
	Row    int
	Column string
	Reason string
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Reason)
}

// requiredColumns must all be present in the header row.
var requiredColumns = []string{
	"end_to_end_id", "amount", "debtor_name", "debtor_iban",
	"debtor_bic", "mandate_id", "mandate_signed", "sequence_type",
}

// cleanHeaders lowercases and trims header cells so the column contract is
// matched case-insensitively.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return cleaned
}

// checkHeaders verifies all required columns are present.
func checkHeaders(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("missing required column '%s'", col)
		}
	}
	return nil
}

// rowToFields zips a data row with the header names. Short rows leave the
// trailing fields empty; extra cells are ignored.
func rowToFields(headers, row []string) map[string]string {
	fields := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(row) {
			fields[h] = strings.TrimSpace(row[i])
		} else {
			fields[h] = ""
		}
	}
	return fields
}

// isRowEmpty reports whether every cell in the row is blank.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRecord converts one data row into a domain transaction.
func parseRecord(fields map[string]string, rowNumber int) (sepa.Transaction, error) {
	fail := func(column, reason string) (sepa.Transaction, error) {
		return sepa.Transaction{}, &RecordError{Row: rowNumber, Column: column, Reason: reason}
	}

	endToEndID := fields["end_to_end_id"]
	if endToEndID == "" {
		return fail("end_to_end_id", "must not be empty")
	}

	amount, err := decimal.NewFromString(fields["amount"])
	if err != nil {
		return fail("amount", "not a decimal number")
	}
	if !amount.IsPositive() {
		return fail("amount", "must be positive")
	}

	tx := sepa.NewTransaction(endToEndID, amount)

	if ccy := fields["currency"]; ccy != "" {
		tx.Currency = strings.ToUpper(ccy)
	}

	tx.Debtor = sepa.AccountIdentity{
		Name: fields["debtor_name"],
		IBAN: fields["debtor_iban"],
		BIC:  fields["debtor_bic"],
	}
	if !tx.Debtor.IsValid() {
		return fail("debtor_iban", "debtor identity failed structural validation")
	}

	tx.MandateID = fields["mandate_id"]
	if tx.MandateID == "" {
		return fail("mandate_id", "must not be empty")
	}

	tx.MandateSigned, err = time.Parse("2006-01-02", fields["mandate_signed"])
	if err != nil {
		return fail("mandate_signed", "not a YYYY-MM-DD date")
	}

	tx.Sequence, err = sepa.ParseSequenceType(fields["sequence_type"])
	if err != nil {
		return fail("sequence_type", err.Error())
	}

	tx.InstructionID = fields["instruction_id"]
	tx.RemittanceText = fields["remittance"]

	if override := fields["collection_date"]; override != "" {
		tx.CollectionDate, err = time.Parse("2006-01-02", override)
		if err != nil {
			return fail("collection_date", "not a YYYY-MM-DD date")
		}
	}

	return tx, nil
}

// parseRows converts a header row plus data rows into transactions, skipping
// blank rows. Row numbers in errors count from the header row.
func parseRows(rows [][]string) ([]sepa.Transaction, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	headers := cleanHeaders(rows[0])
	if err := checkHeaders(headers); err != nil {
		return nil, err
	}

	var transactions []sepa.Transaction
	for i, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		tx, err := parseRecord(rowToFields(headers, row), i+2)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}
