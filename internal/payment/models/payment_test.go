package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{StatusPending, StatusValidated, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusFraudSuspected, true},
		{StatusPending, StatusPendingManualReview, true},
		{StatusPending, StatusCompleted, false},
		{StatusPendingManualReview, StatusValidated, true},
		{StatusPendingManualReview, StatusPending, false},
		{StatusValidated, StatusCompleted, true},
		{StatusValidated, StatusRejected, true},
		{StatusValidated, StatusFraudSuspected, false},
		{StatusPending, StatusPending, true},
		{StatusCompleted, StatusCompleted, false},
		{StatusCompleted, StatusRejected, false},
		{StatusRejected, StatusValidated, false},
		{StatusFraudSuspected, StatusValidated, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidate(t *testing.T) {
	p := &Payment{Amount: decimal.NewFromInt(10), Type: TypeInstant}
	assert.NoError(t, p.Validate())

	p.Amount = decimal.Zero
	assert.ErrorIs(t, p.Validate(), ErrInvalidAmount)

	p.Amount = decimal.NewFromInt(1)
	p.Type = "WIRE"
	assert.ErrorIs(t, p.Validate(), ErrInvalidType)
}

func TestReadyToValidate(t *testing.T) {
	p := &Payment{Status: StatusPending, FundsVerified: true}
	assert.False(t, p.ReadyToValidate())

	p.FraudCleared = true
	assert.True(t, p.ReadyToValidate())

	p.Status = StatusPendingManualReview
	assert.True(t, p.ReadyToValidate())

	p.Status = StatusValidated
	assert.False(t, p.ReadyToValidate())
}
