package settlement

import (
	"context"
	"testing"

	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_Settle(t *testing.T) {
	p := client.LegacyPayment{TransactionID: "pay-1", Amount: decimal.NewFromInt(10), Currency: "EUR"}

	s := NewSimulator(0.05)
	s.roll = func() float64 { return 0.5 }
	res, err := s.Settle(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Regexp(t, `^LEG-[0-9A-F]{8}$`, res.LegacyReference)

	s.roll = func() float64 { return 0.01 }
	res, err = s.Settle(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Empty(t, res.LegacyReference)
	assert.Equal(t, "pay-1", res.TransactionID)
}
