package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Trade struct {
	Symbol   string          `json:"symbol" validate:"required,max=8"`
	Type     string          `json:"type" validate:"required,oneof=BUY SELL"`
	Quantity decimal.Decimal `json:"quantity"`
}

func (t *Trade) Sanitize() {
	t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))
	t.Type = strings.ToUpper(strings.TrimSpace(t.Type))
}

type Price struct {
	Symbol   string          `json:"symbol"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}
