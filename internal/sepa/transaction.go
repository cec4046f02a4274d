package sepa

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a construction path does not specify one.
const DefaultCurrency = "EUR"

// Transaction is one instructed direct-debit collection. Transactions are
// treated as immutable value records: AddTransaction copies the value into
// the document, so mutating the caller's struct afterwards does not affect
// an already assembled document.
type Transaction struct {
	// Amount is the instructed collection amount. Must be positive.
	Amount decimal.Decimal

	// Currency is the ISO 4217 code for Amount.
	Currency string

	// EndToEndID is the caller's reference carried unchanged through the
	// whole payment chain. Required.
	EndToEndID string

	// InstructionID is an optional additional reference between the
	// initiating party and its bank.
	InstructionID string

	// Debtor identifies the account to be debited.
	Debtor AccountIdentity

	// MandateID references the debtor's signed direct-debit mandate.
	MandateID string

	// MandateSigned is the mandate's date of signature.
	MandateSigned time.Time

	// Sequence is the collection's position in the mandate lifecycle.
	Sequence SequenceType

	// RemittanceText is optional unstructured remittance information.
	RemittanceText string

	// CollectionDate overrides the document's default collection date for
	// this transaction. A zero value inherits the document default.
	CollectionDate time.Time
}

// NewTransaction builds a transaction with the reference currency and a
// recurring sequence type. Callers adjust fields as needed before adding it
// to a document.
func NewTransaction(endToEndID string, amount decimal.Decimal) Transaction {
	return Transaction{
		Amount:     amount,
		Currency:   DefaultCurrency,
		EndToEndID: endToEndID,
		Sequence:   SequenceRecurring,
	}
}

// EffectiveCollectionDate resolves the date this transaction is collected
// on, falling back to the supplied document default when the transaction
// carries no override.
func (t Transaction) EffectiveCollectionDate(documentDefault time.Time) time.Time {
	if t.CollectionDate.IsZero() {
		return documentDefault
	}
	return t.CollectionDate
}
