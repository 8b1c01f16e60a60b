package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrWalletNotFound  = fmt.Errorf("wallet %w", httperr.ErrNotFound)
	ErrNotOwner        = fmt.Errorf("wallet belongs to another user: %w", httperr.ErrForbidden)
	ErrBudgetExceeded  = fmt.Errorf("expense exceeds the remaining budget: %w", httperr.ErrUnprocessable)
	ErrInvalidAmount   = fmt.Errorf("amount must be greater than zero: %w", httperr.ErrValidation)
	ErrInvalidBudget   = fmt.Errorf("budget limit must be greater than zero: %w", httperr.ErrValidation)
	ErrAccountNotOwned = fmt.Errorf("bank account belongs to another user: %w", httperr.ErrForbidden)
)

// NewWalletRef returns a reference of the form WLT-XXXXXXXX.
func NewWalletRef() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "WLT-" + strings.ToUpper(id[:8])
}

type Wallet struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	WalletRef   string          `gorm:"uniqueIndex;size:16;not null" json:"wallet_ref"`
	UserID      string          `gorm:"index;size:64;not null" json:"user_id"`
	AccountRef  string          `gorm:"size:64;not null" json:"account_ref"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Currency    string          `gorm:"size:3;not null" json:"currency"`
	BudgetLimit decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"budget_limit"`
	Spent       decimal.Decimal `gorm:"type:numeric(19,4);not null;default:0" json:"spent"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (w *Wallet) BeforeCreate(_ *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.WalletRef == "" {
		w.WalletRef = NewWalletRef()
	}
	return nil
}

func (w *Wallet) Remaining() decimal.Decimal {
	return w.BudgetLimit.Sub(w.Spent)
}

// CanSpend reports whether amount still fits in the budget.
func (w *Wallet) CanSpend(amount decimal.Decimal) bool {
	return w.Spent.Add(amount).LessThanOrEqual(w.BudgetLimit)
}

type Expense struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	WalletID    string          `gorm:"index;type:uuid;not null" json:"wallet_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"amount"`
	Category    string          `gorm:"index;size:50;not null" json:"category"`
	Description string          `gorm:"size:255" json:"description,omitempty"`
	Date        time.Time       `gorm:"not null" json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (e *Expense) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
