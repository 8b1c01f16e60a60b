package dto

import (
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/account/models"
	"github.com/shopspring/decimal"
)

type CreateAccount struct {
	Currency       string          `json:"currency" validate:"required,currency"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

func (a *CreateAccount) Sanitize() {
	a.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))
}

func (a *CreateAccount) ToEntity(userID string) *models.Account {
	return &models.Account{
		UserID:   userID,
		Currency: a.Currency,
		Balance:  a.InitialBalance,
		Status:   models.StatusActive,
		Kind:     models.KindCustomer,
	}
}

type Amount struct {
	Amount decimal.Decimal `json:"amount"`
}

type Transfer struct {
	SenderRef   string          `json:"sender_ref" validate:"required"`
	ReceiverRef string          `json:"receiver_ref" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Memo        string          `json:"memo" validate:"max=255"`
}

func (t *Transfer) Sanitize() {
	t.SenderRef = strings.TrimSpace(t.SenderRef)
	t.ReceiverRef = strings.TrimSpace(t.ReceiverRef)
	t.Memo = strings.TrimSpace(t.Memo)
}

type TransferResult struct {
	SenderRef      string          `json:"sender_ref"`
	ReceiverRef    string          `json:"receiver_ref"`
	DebitedAmount  decimal.Decimal `json:"debited_amount"`
	CreditedAmount decimal.Decimal `json:"credited_amount"`
	Rate           decimal.Decimal `json:"rate"`
	Memo           string          `json:"memo,omitempty"`
}

type Balance struct {
	AccountRef string          `json:"account_ref"`
	Balance    decimal.Decimal `json:"balance"`
	Currency   string          `json:"currency"`
}

type StatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

type StatementLine struct {
	Date      time.Time       `json:"date"`
	Type      string          `json:"type"`
	Direction string          `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Memo      string          `json:"memo"`
}

type Statement struct {
	Number       string          `json:"statement_number"`
	AccountRef   string          `json:"account_ref"`
	Currency     string          `json:"currency"`
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	Lines        []StatementLine `json:"lines"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	Balance      decimal.Decimal `json:"current_balance"`
}
