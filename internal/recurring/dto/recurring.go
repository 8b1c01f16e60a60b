package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CreateRecurring struct {
	Provider  string          `json:"provider" validate:"required,max=32"`
	Method    string          `json:"payment_method" validate:"required,oneof=CARD PORTFOLIO"`
	SourceID  string          `json:"source_id" validate:"required"`
	Currency  string          `json:"currency" validate:"required,currency"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency string          `json:"frequency" validate:"required"`
	StartDate *time.Time      `json:"start_date"`
}

func (r *CreateRecurring) Sanitize() {
	r.Provider = strings.ToUpper(strings.TrimSpace(r.Provider))
	r.Method = strings.ToUpper(strings.TrimSpace(r.Method))
	r.SourceID = strings.TrimSpace(r.SourceID)
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
}

// RunReport summarizes one scheduler pass.
type RunReport struct {
	Due       int `json:"due"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}
