package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Blacklist struct {
	IBAN   string `json:"iban" validate:"required,iban"`
	Reason string `json:"reason" validate:"max=255"`
}

type Limit struct {
	Currency     string          `json:"currency" validate:"required,currency"`
	DailyLimit   decimal.Decimal `json:"daily_limit"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
}

func (l *Limit) Sanitize() {
	l.Currency = strings.ToUpper(strings.TrimSpace(l.Currency))
}
