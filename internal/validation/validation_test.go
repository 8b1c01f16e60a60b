package validation_test

import (
	"testing"

	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestIsIBAN(t *testing.T) {
	assert.True(t, validation.IsIBAN("FR1420041010050500013M02606"))
	assert.True(t, validation.IsIBAN("DE89 3704 0044 0532 0130 00"))
	assert.True(t, validation.IsIBAN("GB82WEST12345698765432"))
	assert.False(t, validation.IsIBAN("FR1420041010050500013M02607"))
	assert.False(t, validation.IsIBAN("1234"))
	assert.False(t, validation.IsIBAN("DE89-3704-0044-0532-0130-00"))
}

func TestIsCurrency(t *testing.T) {
	assert.True(t, validation.IsCurrency("EUR"))
	assert.True(t, validation.IsCurrency("mad"))
	assert.False(t, validation.IsCurrency("XYZ"))
}

type transfer struct {
	IBAN     string `validate:"required,iban"`
	Currency string `validate:"required,currency"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, validation.Struct(transfer{IBAN: "GB82WEST12345698765432", Currency: "GBP"}))

	err := validation.Struct(transfer{IBAN: "GB00WEST12345698765432", Currency: "XXX"})
	assert.ErrorIs(t, err, httperr.ErrValidation)
	assert.Contains(t, err.Error(), "IBAN failed on iban")
	assert.Contains(t, err.Error(), "Currency failed on currency")
}

func TestNormalizeIBAN(t *testing.T) {
	assert.Equal(t, "DE89370400440532013000", validation.NormalizeIBAN(" de89 3704 0044 0532 0130 00 "))
}
