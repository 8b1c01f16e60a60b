package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RuleAmountThreshold    = "AMOUNT_THRESHOLD_EXCEEDED"
	RuleBlacklistedIBAN    = "IBAN_DESTINATION_BLACKLISTED"
	RuleVelocity           = "VELOCITY_THRESHOLD_EXCEEDED"
	RuleDailyLimit         = "DAILY_LIMIT_EXCEEDED"
	RuleMonthlyLimit       = "MONTHLY_LIMIT_EXCEEDED"
	RuleNewBeneficiaryHigh = "NEW_BENEFICIARY_HIGH_AMOUNT"

	DeclineScore = 80
	ReviewScore  = 50

	OutcomeOpen     = "OPEN"
	OutcomeSettled  = "SETTLED"
	OutcomeRejected = "REJECTED"
)

var (
	ErrCheckNotFound  = fmt.Errorf("fraud check %w", httperr.ErrNotFound)
	ErrNotBlacklisted = fmt.Errorf("iban is not blacklisted: %w", httperr.ErrNotFound)
	ErrInvalidLimit   = fmt.Errorf("limits must be positive: %w", httperr.ErrValidation)
	ErrInvalidIBAN    = fmt.Errorf("invalid IBAN: %w", httperr.ErrValidation)
)

// Risk is the verdict of one strategy. Rule is empty when nothing was violated.
type Risk struct {
	Strategy string
	Score    int
	Rule     string
}

// Decide maps the highest risk score to a decision.
func Decide(score int) string {
	switch {
	case score >= DeclineScore:
		return events.StatusDeclined
	case score >= ReviewScore:
		return events.StatusReview
	default:
		return events.StatusApproved
	}
}

// Check is the persisted result of evaluating one payment.
type Check struct {
	ID               string          `json:"id" gorm:"type:uuid;primaryKey"`
	PaymentID        string          `json:"payment_id" gorm:"uniqueIndex;not null"`
	UserID           string          `json:"user_id"`
	SourceAccountRef string          `json:"source_account_ref" gorm:"index:idx_check_account,priority:1;not null"`
	DestinationIBAN  string          `json:"destination_iban" gorm:"index"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:numeric(19,4);not null"`
	Currency         string          `json:"currency" gorm:"size:3"`
	Score            int             `json:"score"`
	Decision         string          `json:"decision" gorm:"size:16"`
	Rules            string          `json:"rules"`
	Outcome          string          `json:"outcome" gorm:"size:16;default:OPEN"`
	TraceID          string          `json:"trace_id"`
	CreatedAt        time.Time       `json:"created_at" gorm:"index:idx_check_account,priority:2"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (c *Check) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Outcome == "" {
		c.Outcome = OutcomeOpen
	}
	return
}

type BlacklistedIBAN struct {
	IBAN      string    `json:"iban" gorm:"primaryKey"`
	Reason    string    `json:"reason"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountLimit caps the approved volume of an account. A zero monthly limit
// means no monthly cap.
type AccountLimit struct {
	AccountRef   string          `json:"account_ref" gorm:"primaryKey"`
	Currency     string          `json:"currency" gorm:"primaryKey;size:3"`
	DailyLimit   decimal.Decimal `json:"daily_limit" gorm:"type:numeric(19,4)"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" gorm:"type:numeric(19,4)"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
