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

type TradeType string

const (
	TradeBuy  TradeType = "BUY"
	TradeSell TradeType = "SELL"
)

// Symbols maps every tradable symbol to its CoinGecko id.
var Symbols = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"SOL":  "solana",
	"ADA":  "cardano",
	"XRP":  "ripple",
	"DOGE": "dogecoin",
}

var (
	ErrUnsupportedSymbol  = fmt.Errorf("unsupported crypto symbol: %w", httperr.ErrValidation)
	ErrInvalidTradeType   = fmt.Errorf("trade type must be BUY or SELL: %w", httperr.ErrValidation)
	ErrInvalidQuantity    = fmt.Errorf("quantity must be greater than zero: %w", httperr.ErrValidation)
	ErrPriceUnavailable   = fmt.Errorf("no price available for symbol: %w", httperr.ErrUpstream)
	ErrInsufficientFunds  = fmt.Errorf("bank account: %w", httperr.ErrInsufficientFunds)
	ErrInsufficientCrypto = fmt.Errorf("crypto wallet: %w", httperr.ErrInsufficientFunds)
)

func ValidSymbol(symbol string) bool {
	_, ok := Symbols[strings.ToUpper(symbol)]
	return ok
}

type CryptoWallet struct {
	ID        string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string          `gorm:"size:64;not null;uniqueIndex:idx_crypto_user_symbol" json:"user_id"`
	Symbol    string          `gorm:"size:8;not null;uniqueIndex:idx_crypto_user_symbol" json:"symbol"`
	Balance   decimal.Decimal `gorm:"type:numeric(19,8);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (w *CryptoWallet) BeforeCreate(_ *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

type CryptoTransaction struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string          `gorm:"index;size:64;not null" json:"user_id"`
	Symbol      string          `gorm:"size:8;not null" json:"symbol"`
	Type        TradeType       `gorm:"size:4;not null" json:"type"`
	Quantity    decimal.Decimal `gorm:"type:numeric(19,8);not null" json:"quantity"`
	PriceAtTime decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"price_at_time"`
	Total       decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"total"`
	Currency    string          `gorm:"size:3;not null" json:"currency"`
	AccountRef  string          `gorm:"size:64" json:"account_ref"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (t *CryptoTransaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Delta is the signed change the trade applies to the wallet balance.
func (t *CryptoTransaction) Delta() decimal.Decimal {
	if t.Type == TradeSell {
		return t.Quantity.Neg()
	}
	return t.Quantity
}
