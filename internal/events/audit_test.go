package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/stretchr/testify/assert"
)

func TestNewAuditEvent(t *testing.T) {
	ctx := identity.WithCorrelationID(context.Background(), "cid-1")

	ok := events.NewAuditEvent(ctx, "account-service", "u-1", "ACCOUNT_DEBIT", "debit 10 EUR", nil)
	assert.Equal(t, events.AuditSuccess, ok.Status)
	assert.Equal(t, "cid-1", ok.CorrelationID)
	assert.Empty(t, ok.ErrorMessage)

	failed := events.NewAuditEvent(ctx, "account-service", "u-1", "ACCOUNT_DEBIT", "debit 10 EUR", errors.New("insufficient funds"))
	assert.Equal(t, events.AuditFailure, failed.Status)
	assert.Equal(t, "insufficient funds", failed.ErrorMessage)
}

func TestDLQTopic(t *testing.T) {
	assert.Equal(t, "payment-service.dlq", events.DLQTopic("payment-service"))
}
