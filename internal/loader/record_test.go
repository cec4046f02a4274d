package loader_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treasuryops/sepagen/internal/loader"
	"github.com/treasuryops/sepagen/internal/sepa"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const csvHeader = "end_to_end_id,amount,currency,debtor_name,debtor_iban,debtor_bic,mandate_id,mandate_signed,sequence_type,instruction_id,remittance,collection_date\n"

func TestFromCSV_FullRecord(t *testing.T) {
	path := writeCSV(t, csvHeader+
		"E2E-1,125.50,EUR,Erika Mustermann,DE21500500009876543210,SPUEDE2UXXX,MNDT-7,2026-01-10,RCUR,INSTR-1,Invoice 4711,2026-09-14\n")

	txs, err := loader.FromCSV(path)
	require.NoError(t, err)
	require.Len(t, txs, 1)

	tx := txs[0]
	assert.Equal(t, "E2E-1", tx.EndToEndID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("125.50")))
	assert.Equal(t, "EUR", tx.Currency)
	assert.Equal(t, "Erika Mustermann", tx.Debtor.Name)
	assert.Equal(t, "SPUEDE2UXXX", tx.Debtor.BIC)
	assert.Equal(t, "MNDT-7", tx.MandateID)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), tx.MandateSigned)
	assert.Equal(t, sepa.SequenceRecurring, tx.Sequence)
	assert.Equal(t, "INSTR-1", tx.InstructionID)
	assert.Equal(t, "Invoice 4711", tx.RemittanceText)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), tx.CollectionDate)
}

func TestFromCSV_OptionalColumnsOmitted(t *testing.T) {
	// Currency falls back to the reference currency, the collection date
	// stays zero so the document default applies.
	path := writeCSV(t, csvHeader+
		"E2E-2,10.00,,Max Mustermann,DE02120300000000202051,BYLADEM1001,MNDT-8,2026-02-01,first,,,\n")

	txs, err := loader.FromCSV(path)
	require.NoError(t, err)
	require.Len(t, txs, 1)

	tx := txs[0]
	assert.Equal(t, sepa.DefaultCurrency, tx.Currency)
	assert.Equal(t, sepa.SequenceFirst, tx.Sequence)
	assert.True(t, tx.CollectionDate.IsZero())
	assert.Empty(t, tx.RemittanceText)
}

func TestFromCSV_SkipsBlankRows(t *testing.T) {
	path := writeCSV(t, csvHeader+
		"E2E-1,10.00,EUR,Erika Mustermann,DE21500500009876543210,SPUEDE2UXXX,MNDT-7,2026-01-10,RCUR,,,\n"+
		",,,,,,,,,,,\n"+
		"E2E-2,20.00,EUR,Erika Mustermann,DE21500500009876543210,SPUEDE2UXXX,MNDT-7,2026-01-10,RCUR,,,\n")

	txs, err := loader.FromCSV(path)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestFromCSV_MissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, "end_to_end_id,amount\nE2E-1,10.00\n")

	_, err := loader.FromCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestFromCSV_BadRecords(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		column string
	}{
		{
			name:   "non-decimal amount",
			row:    "E2E-1,ten,EUR,Erika,DE21500500009876543210,SPUEDE2UXXX,M-1,2026-01-10,RCUR,,,",
			column: "amount",
		},
		{
			name:   "negative amount",
			row:    "E2E-1,-5.00,EUR,Erika,DE21500500009876543210,SPUEDE2UXXX,M-1,2026-01-10,RCUR,,,",
			column: "amount",
		},
		{
			name:   "empty end-to-end id",
			row:    ",5.00,EUR,Erika,DE21500500009876543210,SPUEDE2UXXX,M-1,2026-01-10,RCUR,,,",
			column: "end_to_end_id",
		},
		{
			name:   "broken debtor iban",
			row:    "E2E-1,5.00,EUR,Erika,not-an-iban,SPUEDE2UXXX,M-1,2026-01-10,RCUR,,,",
			column: "debtor_iban",
		},
		{
			name:   "bad sequence type",
			row:    "E2E-1,5.00,EUR,Erika,DE21500500009876543210,SPUEDE2UXXX,M-1,2026-01-10,weekly,,,",
			column: "sequence_type",
		},
		{
			name:   "bad signature date",
			row:    "E2E-1,5.00,EUR,Erika,DE21500500009876543210,SPUEDE2UXXX,M-1,10.01.2026,RCUR,,,",
			column: "mandate_signed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, csvHeader+tt.row+"\n")

			_, err := loader.FromCSV(path)
			var recordErr *loader.RecordError
			require.ErrorAs(t, err, &recordErr)
			assert.Equal(t, tt.column, recordErr.Column)
			assert.Equal(t, 2, recordErr.Row)
		})
	}
}
