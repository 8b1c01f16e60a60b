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

type AccountStatus string
type AccountKind string
type EntryType string

const (
	StatusActive AccountStatus = "ACTIVE"
	StatusFrozen AccountStatus = "FROZEN"
	StatusClosed AccountStatus = "CLOSED"

	KindCustomer AccountKind = "CUSTOMER"
	KindSystem   AccountKind = "SYSTEM"

	EntryDeposit    EntryType = "DEPOSIT"
	EntryWithdrawal EntryType = "WITHDRAWAL"
	EntryTransfer   EntryType = "TRANSFER"
	EntryPayment    EntryType = "PAYMENT"
	EntryRefund     EntryType = "REFUND"

	SystemUserID = "SYSTEM"
	systemRef    = "SYSTEM-BANK-REF"
)

var (
	ErrAccountNotFound   = fmt.Errorf("account %w", httperr.ErrNotFound)
	ErrNotOwner          = fmt.Errorf("account belongs to another user: %w", httperr.ErrForbidden)
	ErrAccountInactive   = fmt.Errorf("account is not active: %w", httperr.ErrUnprocessable)
	ErrInsufficientFunds = fmt.Errorf("account: %w", httperr.ErrInsufficientFunds)
	ErrDuplicateAccount  = fmt.Errorf("an account already exists for this currency: %w", httperr.ErrConflict)
	ErrInvalidAmount     = fmt.Errorf("amount must be greater than zero: %w", httperr.ErrValidation)
	ErrInvalidStatus     = fmt.Errorf("invalid account status: %w", httperr.ErrValidation)
	ErrSameAccount       = fmt.Errorf("sender and receiver must differ: %w", httperr.ErrValidation)
	ErrDuplicateEntry    = fmt.Errorf("ledger entry already recorded: %w", httperr.ErrConflict)
	ErrInvalidPeriod     = fmt.Errorf("statement period end must follow its start: %w", httperr.ErrValidation)
)

// SystemRef is the counterparty of deposits and withdrawals in a currency.
func SystemRef(currency string) string {
	return systemRef + "-" + strings.ToUpper(currency)
}

type Account struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	ExternalRef string          `gorm:"uniqueIndex;size:64;not null" json:"external_ref"`
	UserID      string          `gorm:"size:64;not null;uniqueIndex:idx_account_user_currency" json:"user_id"`
	Currency    string          `gorm:"size:3;not null;uniqueIndex:idx_account_user_currency" json:"currency"`
	Balance     decimal.Decimal `gorm:"type:numeric(19,4);not null;default:0" json:"balance"`
	Status      AccountStatus   `gorm:"size:16;not null" json:"status"`
	Kind        AccountKind     `gorm:"size:16;not null;default:CUSTOMER" json:"-"`
	Version     int64           `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.ExternalRef == "" {
		a.ExternalRef = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = StatusActive
	}
	if a.Kind == "" {
		a.Kind = KindCustomer
	}
	return
}

func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

func (a *Account) IsSystem() bool {
	return a.Kind == KindSystem
}

func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusFrozen, StatusClosed:
		return true
	default:
		return false
	}
}

// LedgerEntry records one movement between two accounts. Reference is unique
// when set, which makes saga driven movements idempotent.
type LedgerEntry struct {
	ID             string          `gorm:"primaryKey;type:uuid" json:"id"`
	Reference      *string         `gorm:"uniqueIndex;size:128" json:"reference,omitempty"`
	FromAccountID  string          `gorm:"type:uuid;index;not null" json:"from_account_id"`
	ToAccountID    string          `gorm:"type:uuid;index;not null" json:"to_account_id"`
	Amount         decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"amount"`
	CreditedAmount decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"credited_amount"`
	Type           EntryType       `gorm:"size:16;not null" json:"type"`
	Status         string          `gorm:"size:16;not null;default:COMPLETED" json:"status"`
	Memo           string          `gorm:"size:255" json:"memo"`
	CreatedAt      time.Time       `gorm:"index" json:"created_at"`
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = "COMPLETED"
	}
	return
}

// Movement moves DebitAmount out of FromRef and CreditAmount into ToRef in
// one transaction. The amounts differ only when currencies differ.
type Movement struct {
	FromRef      string
	ToRef        string
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
	Type         EntryType
	Reference    string
	Memo         string
}
