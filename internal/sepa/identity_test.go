package sepa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/treasuryops/sepagen/internal/sepa"
)

func TestAccountIdentity_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		identity sepa.AccountIdentity
		want     bool
	}{
		{
			name:     "german iban",
			identity: sepa.AccountIdentity{Name: "Acme", IBAN: "DE02120300000000202051"},
			want:     true,
		},
		{
			name:     "iban with spaces",
			identity: sepa.AccountIdentity{Name: "Acme", IBAN: "DE02 1203 0000 0000 2020 51"},
			want:     true,
		},
		{
			name:     "lowercase bban part",
			identity: sepa.AccountIdentity{Name: "Acme", IBAN: "nl91abna0417164300"},
			want:     true,
		},
		{
			name:     "missing name",
			identity: sepa.AccountIdentity{IBAN: "DE02120300000000202051"},
			want:     false,
		},
		{
			name:     "empty iban",
			identity: sepa.AccountIdentity{Name: "Acme"},
			want:     false,
		},
		{
			name:     "too short",
			identity: sepa.AccountIdentity{Name: "Acme", IBAN: "DE0212"},
			want:     false,
		},
		{
			name:     "no country prefix",
			identity: sepa.AccountIdentity{Name: "Acme", IBAN: "02120300000000202051DE"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.identity.IsValid())
		})
	}
}

func TestAccountIdentity_UnknownBIC(t *testing.T) {
	tests := []struct {
		name string
		bic  string
		want bool
	}{
		{name: "eight characters", bic: "BYLADEM1", want: false},
		{name: "eleven characters", bic: "BYLADEM1001", want: false},
		{name: "lowercase accepted", bic: "byladem1001", want: false},
		{name: "empty", bic: "", want: true},
		{name: "wrong length", bic: "BYLADEM100", want: true},
		{name: "digits in institution code", bic: "1YLADEM1", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := sepa.AccountIdentity{BIC: tt.bic}
			assert.Equal(t, tt.want, identity.UnknownBIC())
		})
	}
}

func TestNormalizedIBAN(t *testing.T) {
	identity := sepa.AccountIdentity{IBAN: "de02 1203 0000 0000 2020 51"}
	assert.Equal(t, "DE02120300000000202051", identity.NormalizedIBAN())
}
