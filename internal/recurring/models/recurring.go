package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/shopspring/decimal"
)

type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

const (
	MethodCard      = "CARD"
	MethodPortfolio = "PORTFOLIO"

	StatusActive    = "ACTIVE"
	StatusCanceled  = "CANCELED"
	StatusSuspended = "SUSPENDED"

	// MaxFailures consecutive failed executions suspend a payment.
	MaxFailures = 3
)

var (
	ErrRecurringNotFound = fmt.Errorf("recurring payment %w", httperr.ErrNotFound)
	ErrNotOwner          = fmt.Errorf("%w: recurring payment belongs to another user", httperr.ErrForbidden)
	ErrInvalidFrequency  = fmt.Errorf("%w: unknown frequency", httperr.ErrValidation)
	ErrInvalidProvider   = fmt.Errorf("%w: unknown provider", httperr.ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be positive", httperr.ErrValidation)
	ErrNotActive         = fmt.Errorf("%w: recurring payment is not active", httperr.ErrConflict)
	ErrCurrencyMismatch  = fmt.Errorf("%w: payment source currency differs", httperr.ErrUnprocessable)
)

var frequencies = map[string]Frequency{
	"DAILY":        Daily,
	"QUOTIDIEN":    Daily,
	"WEEKLY":       Weekly,
	"HEBDOMADAIRE": Weekly,
	"MONTHLY":      Monthly,
	"MENSUEL":      Monthly,
	"YEARLY":       Yearly,
	"ANNUEL":       Yearly,
}

// ParseFrequency accepts the English names and their French aliases.
func ParseFrequency(s string) (Frequency, error) {
	f, ok := frequencies[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
	return f, nil
}

// After returns d moved forward by one period.
func (f Frequency) After(d time.Time) time.Time {
	switch f {
	case Daily:
		return d.AddDate(0, 0, 1)
	case Weekly:
		return d.AddDate(0, 0, 7)
	case Monthly:
		return d.AddDate(0, 1, 0)
	default:
		return d.AddDate(1, 0, 0)
	}
}

// Providers are the billers a recurring payment may target.
var Providers = map[string]bool{
	"MAROC_TELECOM": true, "INWI": true, "ORANGE": true,
	"AMENDIS": true, "LYDEC": true, "REDAL": true,
	"FACTURE_INTERNET": true, "FACTURE_ELECTRICITE": true, "FACTURE_EAU": true,
	"ASSURANCE_VOITURE": true, "ASSURANCE_HABITATION": true,
	"COTISATION_GYM": true, "ABONNEMENT_NETFLIX": true, "ABONNEMENT_SPOTIFY": true, "ABONNEMENT_AMAZON": true,
	"TRANSPORT": true, "LOYER": true, "SCOLARITE": true, "AUTRE": true,
}

type RecurringPayment struct {
	ID                string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            string          `gorm:"not null;index" json:"user_id"`
	Provider          string          `gorm:"size:32;not null" json:"provider"`
	Method            string          `gorm:"size:16;not null" json:"method"`
	SourceID          string          `gorm:"not null" json:"source_id"`
	Currency          string          `gorm:"size:3;not null" json:"currency"`
	Amount            decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"amount"`
	Frequency         Frequency       `gorm:"size:16;not null" json:"frequency"`
	StartDate         time.Time       `gorm:"type:date;not null" json:"start_date"`
	NextExecutionDate time.Time       `gorm:"type:date;not null;index" json:"next_execution_date"`
	Status            string          `gorm:"size:16;not null;index" json:"status"`
	FailureCount      int             `gorm:"not null;default:0" json:"failure_count"`
	LastError         string          `json:"last_error,omitempty"`
	LastExecutedAt    *time.Time      `json:"last_executed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NextAfter returns the first execution date strictly after today.
func (r *RecurringPayment) NextAfter(today time.Time) time.Time {
	next := r.NextExecutionDate
	for !next.After(today) {
		next = r.Frequency.After(next)
	}
	return next
}

// Succeeded records a successful execution at now.
func (r *RecurringPayment) Succeeded(now, today time.Time) {
	r.NextExecutionDate = r.NextAfter(today)
	r.FailureCount = 0
	r.LastError = ""
	r.LastExecutedAt = &now
}

// Failed records a failed execution and suspends the payment after
// MaxFailures in a row. The due date is kept so the next run retries.
func (r *RecurringPayment) Failed(now time.Time, err error) {
	r.FailureCount++
	r.LastError = err.Error()
	r.LastExecutedAt = &now
	if r.FailureCount >= MaxFailures {
		r.Status = StatusSuspended
	}
}

// Date truncates t to midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
