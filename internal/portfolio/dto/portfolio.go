package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CreatePortfolio struct {
	Currency string `json:"currency" validate:"required,currency"`
}

func (r *CreatePortfolio) Sanitize() {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
}

type Amount struct {
	Amount decimal.Decimal `json:"amount"`
}

type Balance struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type Transfer struct {
	FromID string          `json:"from_id" validate:"required"`
	ToID   string          `json:"to_id" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *Transfer) Sanitize() {
	r.FromID = strings.TrimSpace(r.FromID)
	r.ToID = strings.TrimSpace(r.ToID)
}

// OpenBankAccount registers an account at the gateway.
type OpenBankAccount struct {
	AccountNumber string          `json:"account_number" validate:"required,max=34,alphanum"`
	Currency      string          `json:"currency" validate:"required,currency"`
	Balance       decimal.Decimal `json:"balance"`
}

func (r *OpenBankAccount) Sanitize() {
	r.AccountNumber = strings.ToUpper(strings.TrimSpace(r.AccountNumber))
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
}

// FundNew creates a portfolio in Currency funded from the caller's bank
// account. Amount is in the bank account currency.
type FundNew struct {
	Currency string          `json:"currency" validate:"required,currency"`
	Amount   decimal.Decimal `json:"amount"`
}

func (r *FundNew) Sanitize() {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
}

// FundExisting tops up an owned portfolio from the caller's bank account.
type FundExisting struct {
	PortfolioID string          `json:"portfolio_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *FundExisting) Sanitize() {
	r.PortfolioID = strings.TrimSpace(r.PortfolioID)
}
