package dto

import (
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/card/models"
	"github.com/shopspring/decimal"
)

type CreateCard struct {
	Currency string          `json:"currency" validate:"required,currency"`
	Limit    decimal.Decimal `json:"limit"`
}

func (r *CreateCard) Sanitize() {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
}

// Card is the masked view of a virtual card.
type Card struct {
	ID           string          `json:"id"`
	MaskedNumber string          `json:"masked_number"`
	Currency     string          `json:"currency"`
	ExpiresOn    string          `json:"expires_on"`
	Limit        decimal.Decimal `json:"limit"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

func FromEntity(c *models.VirtualCard) Card {
	return Card{
		ID:           c.ID,
		MaskedNumber: c.Masked(),
		Currency:     c.Currency,
		ExpiresOn:    c.ExpiresOn.Format("01/06"),
		Limit:        c.Limit,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}
}

// Issued carries the clear number and CVV. It is only returned by creation.
type Issued struct {
	Card
	Number string `json:"number"`
	CVV    string `json:"cvv"`
}

type Pay struct {
	Number         string          `json:"number" validate:"required,len=16,numeric"`
	CVV            string          `json:"cvv" validate:"required,len=3,numeric"`
	Amount         decimal.Decimal `json:"amount"`
	TargetCurrency string          `json:"target_currency" validate:"required,currency"`
}

func (r *Pay) Sanitize() {
	r.Number = strings.ReplaceAll(strings.TrimSpace(r.Number), " ", "")
	r.CVV = strings.TrimSpace(r.CVV)
	r.TargetCurrency = strings.ToUpper(strings.TrimSpace(r.TargetCurrency))
}

type Debit struct {
	Amount decimal.Decimal `json:"amount"`
}

type Receipt struct {
	TransactionID   string          `json:"transaction_id"`
	CardID          string          `json:"card_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	TargetCurrency  string          `json:"target_currency"`
	RemainingLimit  decimal.Decimal `json:"remaining_limit"`
	Status          string          `json:"status"`
}

func NewReceipt(card *models.VirtualCard, tx *models.CardTransaction) *Receipt {
	return &Receipt{
		TransactionID:   tx.ID,
		CardID:          card.ID,
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		ConvertedAmount: tx.ConvertedAmount,
		TargetCurrency:  tx.TargetCurrency,
		RemainingLimit:  card.Limit,
		Status:          tx.Status,
	}
}
