package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string
type PaymentType string

const (
	StatusPending             PaymentStatus = "PENDING"
	StatusPendingManualReview PaymentStatus = "PENDING_MANUAL_REVIEW"
	StatusValidated           PaymentStatus = "VALIDATED"
	StatusCompleted           PaymentStatus = "COMPLETED"
	StatusRejected            PaymentStatus = "REJECTED"
	StatusFraudSuspected      PaymentStatus = "FRAUD_SUSPECTED"

	TypeInstant  PaymentType = "INSTANT"
	TypeStandard PaymentType = "STANDARD"
)

var (
	ErrPaymentNotFound   = fmt.Errorf("payment %w", httperr.ErrNotFound)
	ErrNotOwner          = fmt.Errorf("payment belongs to another user: %w", httperr.ErrForbidden)
	ErrInvalidTransition = fmt.Errorf("invalid payment status transition: %w", httperr.ErrConflict)
	ErrStaleStatus       = fmt.Errorf("payment status changed concurrently: %w", httperr.ErrConflict)
	ErrInvalidAmount     = fmt.Errorf("amount must be greater than zero: %w", httperr.ErrValidation)
	ErrInvalidType       = fmt.Errorf("payment type must be INSTANT or STANDARD: %w", httperr.ErrValidation)
	ErrInvalidStatus     = fmt.Errorf("unknown payment status: %w", httperr.ErrValidation)
)

// transitions lists the statuses reachable from each non terminal status.
var transitions = map[PaymentStatus][]PaymentStatus{
	StatusPending:             {StatusValidated, StatusRejected, StatusFraudSuspected, StatusPendingManualReview},
	StatusPendingManualReview: {StatusValidated, StatusRejected, StatusFraudSuspected},
	StatusValidated:           {StatusCompleted, StatusRejected},
}

// CanTransition reports whether from -> to is allowed. Staying in the same
// non terminal status is allowed so flag updates can reuse the guard.
func CanTransition(from, to PaymentStatus) bool {
	if from == to {
		return !from.IsTerminal()
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s PaymentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusFraudSuspected
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPendingManualReview, StatusValidated, StatusCompleted, StatusRejected, StatusFraudSuspected:
		return true
	default:
		return false
	}
}

func (t PaymentType) IsValid() bool {
	return t == TypeInstant || t == TypeStandard
}

type Payment struct {
	ID               string          `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           string          `json:"user_id" gorm:"index;not null"`
	SourceAccountRef string          `json:"source_account_ref" gorm:"index;not null"`
	DestinationIBAN  string          `json:"destination_iban" gorm:"not null"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:numeric(19,4);not null"`
	Currency         string          `json:"currency" gorm:"size:3;not null"`
	Type             PaymentType     `json:"type" gorm:"size:16;not null"`
	Status           PaymentStatus   `json:"status" gorm:"size:32;index;not null"`
	FundsVerified    bool            `json:"funds_verified"`
	FraudCleared     bool            `json:"fraud_cleared"`
	RiskScore        int             `json:"risk_score"`
	FailedReason     string          `json:"failed_reason,omitempty"`
	LegacyReference  string          `json:"legacy_reference,omitempty"`
	TraceID          string          `json:"trace_id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.TraceID == "" {
		p.TraceID = uuid.New().String()
	}
	return
}

func (p *Payment) Validate() error {
	if !p.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !p.Type.IsValid() {
		return ErrInvalidType
	}
	return nil
}

// ReadyToValidate reports whether both saga checks passed while the payment
// is still awaiting them.
func (p *Payment) ReadyToValidate() bool {
	return p.FundsVerified && p.FraudCleared &&
		(p.Status == StatusPending || p.Status == StatusPendingManualReview)
}
