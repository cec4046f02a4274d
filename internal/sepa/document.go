package sepa

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Schema identifies the pain.008 schema variant a document is generated
// against. The variant is part of the root namespace and is checked before
// serialization.
type Schema string

// Accepted pain.008 variants.
const (
	SchemaPain008_001_02 Schema = "pain.008.001.02"
	SchemaPain008_003_02 Schema = "pain.008.003.02"
)

// Valid reports whether s is one of the accepted variants.
func (s Schema) Valid() bool {
	return s == SchemaPain008_001_02 || s == SchemaPain008_003_02
}

// Namespace returns the full ISO 20022 namespace URN for the schema.
func (s Schema) Namespace() string {
	return "urn:iso:std:iso:20022:tech:xsd:" + string(s)
}

// Header carries the fields shared by every payment-initiation document
// regardless of payment type: the group-header identification and the
// initiating party. It is embedded in each document variant rather than
// inherited.
type Header struct {
	// MessageID is the point-to-point message identification.
	MessageID string

	// CreatedAt is the message creation timestamp.
	CreatedAt time.Time

	// InitiatingPartyName is the name of the party initiating the payment.
	InitiatingPartyName string

	// InitiatingPartyID is an optional organisation identification of the
	// initiating party.
	InitiatingPartyID string
}

// NewHeader builds a header with a random message identification and the
// current time. uuid hyphens are stripped to stay within the 35-character
// limit of the MsgId element.
func NewHeader(initiatingParty string) Header {
	return Header{
		MessageID:           strings.ReplaceAll(uuid.New().String(), "-", ""),
		CreatedAt:           time.Now(),
		InitiatingPartyName: initiatingParty,
	}
}

// checkMandatoryData validates the fields every document variant requires.
func (h Header) checkMandatoryData() error {
	if strings.TrimSpace(h.MessageID) == "" {
		return &MissingMandatoryFieldError{Field: "message_id"}
	}
	if strings.TrimSpace(h.InitiatingPartyName) == "" {
		return &MissingMandatoryFieldError{Field: "initiating_party_name"}
	}
	return nil
}

// PaymentInstruction is the capability every payment-initiation document
// variant provides. The direct-debit document below implements it; a credit
// transfer variant would slot in beside it.
type PaymentInstruction interface {
	// CheckMandatoryData verifies that all fields required for
	// serialization are present. It is pure and safe to call repeatedly.
	CheckMandatoryData() error

	// CheckSchema verifies the document's schema variant is supported.
	CheckSchema() error

	// GenerateXML serializes the complete document, or returns an error
	// without emitting anything.
	GenerateXML() ([]byte, error)
}
