package dto

import "github.com/shopspring/decimal"

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
