package sepa

import (
	"fmt"
	"strings"
)

// SequenceType classifies a direct-debit collection within the lifetime of
// its mandate.
type SequenceType string

// Sequence types as they appear on the wire in the SeqTp element.
const (
	SequenceFirst     SequenceType = "FRST" // first collection under a new mandate
	SequenceRecurring SequenceType = "RCUR" // subsequent collection
	SequenceOneOff    SequenceType = "OOFF" // single collection, mandate not reused
	SequenceFinal     SequenceType = "FNAL" // last collection, mandate closes
)

// Code returns the ISO 20022 sequence-type code.
func (s SequenceType) Code() string {
	return string(s)
}

// Valid reports whether s is one of the four known sequence types.
func (s SequenceType) Valid() bool {
	switch s {
	case SequenceFirst, SequenceRecurring, SequenceOneOff, SequenceFinal:
		return true
	}
	return false
}

// ParseSequenceType maps a loose textual representation to a SequenceType.
// Both the wire codes (FRST, RCUR, OOFF, FNAL) and the spelled-out names
// (first, recurring, one-off, final) are accepted, case-insensitively.
func ParseSequenceType(value string) (SequenceType, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "FRST", "FIRST":
		return SequenceFirst, nil
	case "RCUR", "RECURRING":
		return SequenceRecurring, nil
	case "OOFF", "ONE-OFF", "ONEOFF":
		return SequenceOneOff, nil
	case "FNAL", "FINAL":
		return SequenceFinal, nil
	}
	return "", fmt.Errorf("unknown sequence type '%s'", value)
}
