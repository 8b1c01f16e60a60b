package models

import (
	"fmt"
	"time"

	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLimit     = fmt.Errorf("limit must be a positive amount: %w", httperr.ErrValidation)
	ErrWalletRequired   = fmt.Errorf("walletRef is required: %w", httperr.ErrValidation)
	ErrCategoryRequired = fmt.Errorf("category is required: %w", httperr.ErrValidation)
)

// Expense is the analytics copy of a wallet expense. ID is the wallet
// expense id so replays of the same event are ignored.
type Expense struct {
	ID        string          `gorm:"primaryKey;size:64" json:"id"`
	WalletRef string          `gorm:"index;size:32;not null" json:"wallet_ref"`
	UserID    string          `gorm:"index;size:64;not null" json:"user_id"`
	Category  string          `gorm:"index;size:50;not null" json:"category"`
	Amount    decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"amount"`
	SpentAt   time.Time       `gorm:"index" json:"spent_at"`
}

// Alert is the outcome of a budget check.
type Alert struct {
	Message string `json:"message"`
	Date    string `json:"date"`
	Success bool   `json:"success"`
}
