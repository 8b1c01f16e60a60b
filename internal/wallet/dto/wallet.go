package dto

import (
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/wallet/models"
	"github.com/shopspring/decimal"
)

type CreateWallet struct {
	Name        string          `json:"name" validate:"required,max=100"`
	AccountRef  string          `json:"account_ref" validate:"required,max=64"`
	BudgetLimit decimal.Decimal `json:"budget_limit"`
}

func (w *CreateWallet) Sanitize() {
	w.Name = strings.TrimSpace(w.Name)
	w.AccountRef = strings.TrimSpace(w.AccountRef)
}

func (w *CreateWallet) ToEntity(userID, currency string) *models.Wallet {
	return &models.Wallet{
		UserID:      userID,
		AccountRef:  w.AccountRef,
		Name:        w.Name,
		Currency:    currency,
		BudgetLimit: w.BudgetLimit,
		Spent:       decimal.Zero,
	}
}

type AddExpense struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" validate:"required,max=50"`
	Description string          `json:"description" validate:"max=255"`
	Date        *time.Time      `json:"date"`
}

func (e *AddExpense) Sanitize() {
	e.Category = strings.ToUpper(strings.TrimSpace(e.Category))
	e.Description = strings.TrimSpace(e.Description)
}

func (e *AddExpense) ToEntity(walletID string, now time.Time) *models.Expense {
	date := now
	if e.Date != nil && !e.Date.IsZero() {
		date = e.Date.UTC()
	}
	return &models.Expense{
		WalletID:    walletID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        date,
	}
}

type Summary struct {
	Wallet     models.Wallet    `json:"wallet"`
	Budget     decimal.Decimal  `json:"budget"`
	Spent      decimal.Decimal  `json:"spent"`
	Remaining  decimal.Decimal  `json:"remaining"`
	OverBudget bool             `json:"over_budget"`
	Expenses   []models.Expense `json:"expenses"`
}
