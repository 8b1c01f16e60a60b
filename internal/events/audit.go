package events

import (
	"context"
	"time"

	"github.com/jeffleon2/ebanking/internal/identity"
)

const (
	AuditSuccess = "SUCCESS"
	AuditFailure = "FAILURE"
	AuditError   = "ERROR"
)

// NewAuditEvent builds an audit record for userID. A non-nil cause marks it FAILURE.
func NewAuditEvent(ctx context.Context, service, userID, action, description string, cause error) AuditEvent {
	evt := AuditEvent{
		UserID:        userID,
		ActionType:    action,
		ServiceName:   service,
		Description:   description,
		Status:        AuditSuccess,
		CorrelationID: identity.CorrelationIDFromContext(ctx),
		Timestamp:     time.Now().UTC(),
	}
	if cause != nil {
		evt.Status = AuditFailure
		evt.ErrorMessage = cause.Error()
	}
	return evt
}
