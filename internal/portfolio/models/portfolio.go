package models

import (
	"fmt"
	"time"

	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/shopspring/decimal"
)

const TransferCompleted = "COMPLETED"

var (
	ErrPortfolioNotFound   = fmt.Errorf("portfolio %w", httperr.ErrNotFound)
	ErrBankAccountNotFound = fmt.Errorf("bank account %w", httperr.ErrNotFound)
	ErrNotOwner            = fmt.Errorf("%w: portfolio belongs to another user", httperr.ErrForbidden)
	ErrDuplicatePortfolio  = fmt.Errorf("%w: a portfolio already exists for this user and currency", httperr.ErrConflict)
	ErrDuplicateAccount    = fmt.Errorf("%w: bank account number already registered", httperr.ErrConflict)
	ErrInsufficientFunds   = fmt.Errorf("%w: balance too low", httperr.ErrInsufficientFunds)
	ErrInvalidAmount       = fmt.Errorf("%w: amount must be positive", httperr.ErrValidation)
	ErrSamePortfolio       = fmt.Errorf("%w: source and target portfolio are the same", httperr.ErrValidation)
)

type Portfolio struct {
	ID        string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    string          `gorm:"not null;uniqueIndex:idx_portfolio_user_currency" json:"user_id"`
	Currency  string          `gorm:"size:3;not null;uniqueIndex:idx_portfolio_user_currency" json:"currency"`
	Balance   decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type PortfolioTransfer struct {
	ID              string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FromID          string          `gorm:"type:uuid;not null;index" json:"from_id"`
	ToID            string          `gorm:"type:uuid;not null;index" json:"to_id"`
	Amount          decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"amount"`
	ConvertedAmount decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"converted_amount"`
	Rate            decimal.Decimal `gorm:"type:numeric(19,8);not null" json:"rate"`
	Status          string          `gorm:"size:16;not null" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// BankAccount is an account held at the interbank gateway (CMI). It funds
// portfolios once assigned to a user.
type BankAccount struct {
	ID            string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AccountNumber string          `gorm:"size:34;not null;uniqueIndex" json:"account_number"`
	UserID        string          `gorm:"index" json:"user_id"`
	Currency      string          `gorm:"size:3;not null" json:"currency"`
	Balance       decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Funding struct {
	ID              string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BankAccountID   string          `gorm:"type:uuid;not null;index" json:"bank_account_id"`
	PortfolioID     string          `gorm:"type:uuid;not null;index" json:"portfolio_id"`
	Amount          decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"amount"`
	ConvertedAmount decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"converted_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Alert is the outcome of a portfolio or gateway operation.
type Alert struct {
	Message string `json:"message"`
	Date    string `json:"date"`
	Success bool   `json:"success"`
}

func NewAlert(now time.Time, success bool, format string, args ...interface{}) *Alert {
	return &Alert{Message: fmt.Sprintf(format, args...), Date: now.Format(time.DateOnly), Success: success}
}
