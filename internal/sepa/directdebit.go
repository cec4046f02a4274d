// =============================================================================
// sepagen - Direct-Debit Document Assembly
// =============================================================================
//
// This file implements the pain.008 customer direct-debit initiation
// document: transaction grouping, control-total arithmetic, and the ordered
// emission of the full nested structure.
//
// DOCUMENT SHAPE:
//
//   <Document xmlns="urn:iso:std:iso:20022:tech:xsd:pain.008.001.02">
//     <CstmrDrctDbtInitn>
//       <GrpHdr>...</GrpHdr>              <!-- document-level totals -->
//       <PmtInf>                          <!-- one per (SeqTp, date) group -->
//         ...block header, group totals...
//         <DrctDbtTxInf>...</DrctDbtTxInf><!-- one per transaction -->
//       </PmtInf>
//     </CstmrDrctDbtInitn>
//   </Document>
//
// Transactions are partitioned by (sequence type, effective collection date)
// where the effective date falls back to the document default. Groups are
// emitted in the order their key is first seen; empty groups produce no
// PmtInf block at all.
//
// =============================================================================

package sepa

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/treasuryops/sepagen/internal/xmltree"
)

// Payment-scheme constants fixed by the SEPA core direct-debit rulebook.
const (
	paymentMethodDirectDebit = "DD"
	serviceLevelSEPA         = "SEPA"
	chargeBearerShared       = "SLEV"
	creditorSchemeName = "SEPA"

	// DefaultLocalInstrument is the SEPA core scheme local instrument.
	DefaultLocalInstrument = "CORE"
)

// Group is one payment-information block's worth of transactions: all
// collections sharing a sequence type and an effective collection date.
type Group struct {
	Sequence       SequenceType
	CollectionDate time.Time
	Transactions   []Transaction
}

// DirectDebitDocument assembles a pain.008 message for one creditor. It owns
// its transaction sequence and creditor identity: both are stored by value
// on insertion, so callers may reuse or mutate their own records afterwards
// without affecting the document.
//
// A document is a single-threaded builder. Assembling the same instance from
// multiple goroutines requires external synchronization.
type DirectDebitDocument struct {
	// Header carries the shared group-header fields.
	Header Header

	// Schema is the pain.008 variant to generate against.
	Schema Schema

	// DefaultCollectionDate is used for every transaction without its own
	// collection-date override.
	DefaultCollectionDate time.Time

	// PaymentInfoID identifies each payment-information block. When empty,
	// the message identification is used instead.
	PaymentInfoID string

	// CategoryPurpose is an optional category-purpose code for all blocks.
	CategoryPurpose string

	// LocalInstrument is the scheme local instrument, normally "CORE".
	LocalInstrument string

	// CreditorSchemeID is the creditor's scheme identification, the
	// regulatory identifier authorizing it to originate direct debits.
	CreditorSchemeID string

	// AccountCurrency is the currency of the creditor account.
	AccountCurrency string

	creditor     AccountIdentity
	creditorSet  bool
	transactions []Transaction
}

// NewDirectDebitDocument builds an empty document with SEPA core defaults.
func NewDirectDebitDocument(schema Schema, header Header) *DirectDebitDocument {
	return &DirectDebitDocument{
		Header:          header,
		Schema:          schema,
		LocalInstrument: DefaultLocalInstrument,
		AccountCurrency: DefaultCurrency,
	}
}

// SetCreditor validates and assigns the creditor identity. An identity that
// fails structural validation or carries an unknown bank identifier is
// rejected with InvalidIdentityError and any previously assigned creditor is
// left untouched.
func (d *DirectDebitDocument) SetCreditor(identity AccountIdentity) error {
	if !identity.IsValid() {
		return &InvalidIdentityError{Name: identity.Name, Reason: "structural validation failed"}
	}
	if identity.UnknownBIC() {
		return &InvalidIdentityError{Name: identity.Name, Reason: "unknown bank identifier"}
	}
	d.creditor = identity
	d.creditorSet = true
	return nil
}

// Creditor returns the assigned creditor identity and whether one is set.
func (d *DirectDebitDocument) Creditor() (AccountIdentity, bool) {
	return d.creditor, d.creditorSet
}

// AddTransaction appends a collection instruction to the document.
func (d *DirectDebitDocument) AddTransaction(tx Transaction) {
	d.transactions = append(d.transactions, tx)
}

// Transactions returns a copy of the document's transaction sequence.
func (d *DirectDebitDocument) Transactions() []Transaction {
	out := make([]Transaction, len(d.transactions))
	copy(out, d.transactions)
	return out
}

// ControlTotals returns the document-level transaction count and the exact
// decimal sum of all amounts, computed once across the whole sequence.
func (d *DirectDebitDocument) ControlTotals() (int, decimal.Decimal) {
	sum := decimal.Zero
	for _, tx := range d.transactions {
		sum = sum.Add(tx.Amount)
	}
	return len(d.transactions), sum
}

// CheckMandatoryData implements PaymentInstruction. It verifies the shared
// header fields, the creditor assignment, and the account currency, and
// performs no emission. Serialization never starts when this fails.
func (d *DirectDebitDocument) CheckMandatoryData() error {
	if err := d.Header.checkMandatoryData(); err != nil {
		return err
	}
	if !d.creditorSet {
		return &MissingMandatoryFieldError{Field: "creditor"}
	}
	if strings.TrimSpace(d.AccountCurrency) == "" {
		return &MissingMandatoryFieldError{Field: "account_currency"}
	}
	return nil
}

// CheckSchema implements PaymentInstruction.
func (d *DirectDebitDocument) CheckSchema() error {
	if !d.Schema.Valid() {
		return &InvalidSchemaError{Schema: string(d.Schema)}
	}
	return nil
}

// Groups partitions the transaction sequence by (sequence type, effective
// collection date) in one pass. Groups appear in the order their key is
// first seen; every transaction lands in exactly one group.
func (d *DirectDebitDocument) Groups() []Group {
	type groupKey struct {
		sequence SequenceType
		date     string
	}

	var groups []Group
	index := make(map[groupKey]int)

	for _, tx := range d.transactions {
		date := tx.EffectiveCollectionDate(d.DefaultCollectionDate)
		key := groupKey{sequence: tx.Sequence, date: FormatDate(date)}

		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Sequence: tx.Sequence, CollectionDate: date})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}

	return groups
}

// GenerateXML implements PaymentInstruction. It validates mandatory data and
// the schema, then emits the envelope, group header, and one payment block
// per group. On validation failure no output is produced.
func (d *DirectDebitDocument) GenerateXML() ([]byte, error) {
	if err := d.CheckMandatoryData(); err != nil {
		return nil, err
	}
	if err := d.CheckSchema(); err != nil {
		return nil, err
	}

	tree := xmltree.New("Document")
	tree.SetAttr(tree.Root(), "xmlns", d.Schema.Namespace())
	tree.SetAttr(tree.Root(), "xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	initiation := tree.Child(tree.Root(), "CstmrDrctDbtInitn", "")
	d.appendGroupHeader(tree, initiation)

	for _, group := range d.Groups() {
		block, ok := d.appendPaymentBlock(tree, initiation, group)
		if !ok {
			continue
		}
		for _, tx := range group.Transactions {
			d.appendTransactionBlock(tree, block, tx)
		}
	}

	return tree.Bytes("  "), nil
}

// appendGroupHeader emits the GrpHdr block with the document-level control
// totals and the initiating party.
func (d *DirectDebitDocument) appendGroupHeader(tree *xmltree.Tree, parent xmltree.NodeID) {
	count, sum := d.ControlTotals()

	header := tree.Child(parent, "GrpHdr", "")
	tree.Child(header, "MsgId", d.Header.MessageID)
	tree.Child(header, "CreDtTm", FormatDateTime(d.Header.CreatedAt))
	tree.Child(header, "NbOfTxs", formatCount(count))
	tree.Child(header, "CtrlSum", FormatAmount(sum))

	initiator := tree.Child(header, "InitgPty", "")
	tree.Child(initiator, "Nm", d.Header.InitiatingPartyName)
	if d.Header.InitiatingPartyID != "" {
		id := tree.Child(initiator, "Id", "")
		orgID := tree.Child(id, "OrgId", "")
		other := tree.Child(orgID, "Othr", "")
		tree.Child(other, "Id", d.Header.InitiatingPartyID)
	}
}

// appendPaymentBlock emits one PmtInf block for a group and returns its
// handle for child-node attachment. A group with no members produces no
// block; the second return value is false and the caller must skip
// transaction emission entirely.
func (d *DirectDebitDocument) appendPaymentBlock(tree *xmltree.Tree, parent xmltree.NodeID, group Group) (xmltree.NodeID, bool) {
	controlNumber := 0
	controlSum := decimal.Zero
	for _, tx := range group.Transactions {
		controlNumber++
		controlSum = controlSum.Add(tx.Amount)
	}
	if controlNumber == 0 {
		return 0, false
	}

	paymentInfoID := d.PaymentInfoID
	if paymentInfoID == "" {
		paymentInfoID = d.Header.MessageID
	}

	block := tree.Child(parent, "PmtInf", "")
	tree.Child(block, "PmtInfId", paymentInfoID)
	tree.Child(block, "PmtMtd", paymentMethodDirectDebit)
	tree.Child(block, "NbOfTxs", formatCount(controlNumber))
	tree.Child(block, "CtrlSum", FormatAmount(controlSum))

	// PmtTpInf carries the scheme codes. The schema fixes the internal
	// order: service level, local instrument, sequence type, then the
	// optional category purpose.
	paymentType := tree.Child(block, "PmtTpInf", "")
	serviceLevel := tree.Child(paymentType, "SvcLvl", "")
	tree.Child(serviceLevel, "Cd", serviceLevelSEPA)
	localInstrument := tree.Child(paymentType, "LclInstrm", "")
	tree.Child(localInstrument, "Cd", d.LocalInstrument)
	tree.Child(paymentType, "SeqTp", group.Sequence.Code())
	if d.CategoryPurpose != "" {
		categoryPurpose := tree.Child(paymentType, "CtgyPurp", "")
		tree.Child(categoryPurpose, "Cd", d.CategoryPurpose)
	}

	tree.Child(block, "ReqdColltnDt", FormatDate(group.CollectionDate))

	creditor := tree.Child(block, "Cdtr", "")
	tree.Child(creditor, "Nm", d.creditor.Name)

	account := tree.Child(block, "CdtrAcct", "")
	accountID := tree.Child(account, "Id", "")
	tree.Child(accountID, "IBAN", d.creditor.NormalizedIBAN())
	tree.Child(account, "Ccy", d.AccountCurrency)

	agent := tree.Child(block, "CdtrAgt", "")
	institution := tree.Child(agent, "FinInstnId", "")
	tree.Child(institution, "BIC", d.creditor.BIC)

	tree.Child(block, "ChrgBr", chargeBearerShared)

	// Creditor scheme identification: the person identifier wrapped in the
	// fixed proprietary SEPA scheme.
	scheme := tree.Child(block, "CdtrSchmeId", "")
	schemeID := tree.Child(scheme, "Id", "")
	private := tree.Child(schemeID, "PrvtId", "")
	other := tree.Child(private, "Othr", "")
	tree.Child(other, "Id", d.CreditorSchemeID)
	schemeName := tree.Child(other, "SchmeNm", "")
	tree.Child(schemeName, "Prtry", creditorSchemeName)

	return block, true
}

// appendTransactionBlock emits one DrctDbtTxInf node under the given block.
// Transaction data is assumed well formed; validation happens upstream.
func (d *DirectDebitDocument) appendTransactionBlock(tree *xmltree.Tree, block xmltree.NodeID, tx Transaction) {
	info := tree.Child(block, "DrctDbtTxInf", "")

	paymentID := tree.Child(info, "PmtId", "")
	if tx.InstructionID != "" {
		tree.Child(paymentID, "InstrId", tx.InstructionID)
	}
	tree.Child(paymentID, "EndToEndId", tx.EndToEndID)

	amount := tree.Child(info, "InstdAmt", FormatAmount(tx.Amount))
	tree.SetAttr(amount, "Ccy", tx.Currency)

	directDebit := tree.Child(info, "DrctDbtTx", "")
	mandate := tree.Child(directDebit, "MndtRltdInf", "")
	tree.Child(mandate, "MndtId", tx.MandateID)
	tree.Child(mandate, "DtOfSgntr", FormatDate(tx.MandateSigned))

	agent := tree.Child(info, "DbtrAgt", "")
	institution := tree.Child(agent, "FinInstnId", "")
	tree.Child(institution, "BIC", tx.Debtor.BIC)

	debtor := tree.Child(info, "Dbtr", "")
	tree.Child(debtor, "Nm", tx.Debtor.Name)

	account := tree.Child(info, "DbtrAcct", "")
	accountID := tree.Child(account, "Id", "")
	tree.Child(accountID, "IBAN", tx.Debtor.NormalizedIBAN())

	if tx.RemittanceText != "" {
		remittance := tree.Child(info, "RmtInf", "")
		tree.Child(remittance, "Ustrd", tx.RemittanceText)
	}
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}
