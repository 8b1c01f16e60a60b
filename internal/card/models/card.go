package models

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/shopspring/decimal"
)

const (
	StatusActive  = "ACTIVE"
	StatusBlocked = "BLOCKED"

	TransactionCompleted = "COMPLETED"

	// MaxCardsPerUser caps how many virtual cards one user may hold.
	MaxCardsPerUser = 3
	// BIN is the issuer prefix of every generated number.
	BIN = "411111"
)

var (
	ErrCardNotFound      = fmt.Errorf("card %w", httperr.ErrNotFound)
	ErrNotOwner          = fmt.Errorf("%w: card belongs to another user", httperr.ErrForbidden)
	ErrTooManyCards      = fmt.Errorf("%w: user already holds %d virtual cards", httperr.ErrConflict, MaxCardsPerUser)
	ErrDuplicateCurrency = fmt.Errorf("%w: user already holds a card in this currency", httperr.ErrConflict)
	ErrCardBlocked       = fmt.Errorf("%w: card is blocked", httperr.ErrUnprocessable)
	ErrCardExpired       = fmt.Errorf("%w: card is expired", httperr.ErrUnprocessable)
	ErrInvalidCVV        = fmt.Errorf("%w: card details do not match", httperr.ErrForbidden)
	ErrLimitExceeded     = fmt.Errorf("%w: card limit exceeded", httperr.ErrInsufficientFunds)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be positive", httperr.ErrValidation)
)

type VirtualCard struct {
	ID              string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          string          `gorm:"not null;uniqueIndex:idx_card_user_currency" json:"user_id"`
	NumberEncrypted string          `gorm:"not null" json:"-"`
	NumberHash      string          `gorm:"not null;uniqueIndex" json:"-"`
	Last4           string          `gorm:"size:4;not null" json:"last4"`
	CVVHash         string          `gorm:"not null" json:"-"`
	Currency        string          `gorm:"size:3;not null;uniqueIndex:idx_card_user_currency" json:"currency"`
	ExpiresOn       time.Time       `gorm:"type:date;not null" json:"expires_on"`
	Limit           decimal.Decimal `gorm:"column:card_limit;type:numeric(19,4);not null" json:"limit"`
	Status          string          `gorm:"size:16;not null" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Expired reports whether now is past the last day of validity.
func (c *VirtualCard) Expired(now time.Time) bool {
	y, m, d := c.ExpiresOn.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return !now.Before(end)
}

// Usable returns why the card cannot be charged, or nil.
func (c *VirtualCard) Usable(now time.Time, amount decimal.Decimal) error {
	switch {
	case c.Status == StatusBlocked:
		return ErrCardBlocked
	case c.Expired(now):
		return ErrCardExpired
	case c.Limit.LessThan(amount):
		return ErrLimitExceeded
	}
	return nil
}

func (c *VirtualCard) Masked() string {
	return "**** **** **** " + c.Last4
}

type CardTransaction struct {
	ID              string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CardID          string          `gorm:"type:uuid;not null;index" json:"card_id"`
	Amount          decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"amount"`
	Currency        string          `gorm:"size:3;not null" json:"currency"`
	ConvertedAmount decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"converted_amount"`
	TargetCurrency  string          `gorm:"size:3;not null" json:"target_currency"`
	Status          string          `gorm:"size:16;not null" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// GenerateNumber returns a 16 digit Luhn-valid number starting with BIN.
func GenerateNumber(r io.Reader) (string, error) {
	body, err := digits(r, 15-len(BIN))
	if err != nil {
		return "", err
	}
	partial := BIN + body
	return partial + string('0'+checkDigit(partial)), nil
}

func GenerateCVV(r io.Reader) (string, error) {
	return digits(r, 3)
}

// Luhn reports whether number is all digits and passes the Luhn checksum.
func Luhn(number string) bool {
	if len(number) < 2 {
		return false
	}
	for _, ch := range number {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return checkDigit(number[:len(number)-1]) == number[len(number)-1]-'0'
}

func checkDigit(partial string) byte {
	sum := 0
	double := true
	for i := len(partial) - 1; i >= 0; i-- {
		d := int(partial[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte((10 - sum%10) % 10)
}

func digits(r io.Reader, n int) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	var b strings.Builder
	ten := big.NewInt(10)
	for i := 0; i < n; i++ {
		d, err := rand.Int(r, ten)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + d.Int64()))
	}
	return b.String(), nil
}
