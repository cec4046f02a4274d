package sepa

import (
	"regexp"
	"strings"
)

// AccountIdentity is a named account with its IBAN and the BIC of the
// servicing bank. It is used for both the creditor of a document and the
// debtor of each transaction.
//
// Validation here is structural only: IBAN check-digit verification and BIC
// registry lookups are the responsibility of upstream systems. An identity
// that passes IsValid has the right shape to be serialized, nothing more.
type AccountIdentity struct {
	// Name is the account holder's display name.
	Name string

	// IBAN is the account identifier.
	IBAN string

	// BIC is the bank identifier of the servicing institution.
	BIC string
}

var (
	// Country code, two check digits, up to 30 alphanumeric BBAN characters.
	ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Za-z0-9]{11,30}$`)

	// Institution (4), country (2), location (2), optional branch (3).
	bicPattern = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
)

// NormalizedIBAN returns the IBAN uppercased with interior spaces removed,
// the form used on the wire.
func (id AccountIdentity) NormalizedIBAN() string {
	return strings.ToUpper(strings.ReplaceAll(id.IBAN, " ", ""))
}

// IsValid reports whether the identity carries a name and a structurally
// plausible IBAN.
func (id AccountIdentity) IsValid() bool {
	if strings.TrimSpace(id.Name) == "" {
		return false
	}
	return ibanPattern.MatchString(id.NormalizedIBAN())
}

// UnknownBIC reports whether the bank identifier is absent or does not have
// the shape of a BIC. A true result makes the identity unusable as a
// creditor, since the CdtrAgt block cannot be populated.
func (id AccountIdentity) UnknownBIC() bool {
	return !bicPattern.MatchString(strings.ToUpper(strings.TrimSpace(id.BIC)))
}
