package models

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumber(t *testing.T) {
	for i := 0; i < 50; i++ {
		n, err := GenerateNumber(nil)
		require.NoError(t, err)
		assert.Len(t, n, 16)
		assert.True(t, strings.HasPrefix(n, BIN))
		assert.True(t, Luhn(n), n)
	}
}

func TestLuhn(t *testing.T) {
	assert.True(t, Luhn("4111111111111111"))
	assert.True(t, Luhn("79927398713"))
	assert.False(t, Luhn("4111111111111112"))
	assert.False(t, Luhn("41111111111111a1"))
	assert.False(t, Luhn("4"))
}

func TestGenerateCVV(t *testing.T) {
	cvv, err := GenerateCVV(nil)
	require.NoError(t, err)
	assert.Len(t, cvv, 3)
}

func TestUsable(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	card := VirtualCard{
		Status:    StatusActive,
		ExpiresOn: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		Limit:     decimal.NewFromInt(100),
	}

	assert.NoError(t, card.Usable(now, decimal.NewFromInt(100)))
	assert.ErrorIs(t, card.Usable(now, decimal.NewFromInt(101)), ErrLimitExceeded)
	assert.ErrorIs(t, card.Usable(now.AddDate(0, 0, 1), decimal.NewFromInt(1)), ErrCardExpired)

	card.Status = StatusBlocked
	assert.ErrorIs(t, card.Usable(now, decimal.NewFromInt(1)), ErrCardBlocked)
}

func TestMasked(t *testing.T) {
	card := VirtualCard{Last4: "1234"}
	assert.Equal(t, "**** **** **** 1234", card.Masked())
}
