package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/crypto/dto"
	"github.com/jeffleon2/ebanking/internal/crypto/models"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const ServiceName = "crypto-service"

type CryptoRepo interface {
	ListWallets(ctx context.Context, userID string) ([]models.CryptoWallet, error)
	ListTransactions(ctx context.Context, userID string) ([]models.CryptoTransaction, error)
	ApplyTrade(ctx context.Context, t *models.CryptoTransaction, guard func(w *models.CryptoWallet) error) (*models.CryptoWallet, error)
}

// PriceFeed serves the last known quote of each symbol.
type PriceFeed interface {
	Price(symbol string) (decimal.Decimal, bool)
	All() map[string]decimal.Decimal
	Currency() string
}

type AccountClient interface {
	PrimaryAccount(ctx context.Context, userID string) (*client.Account, error)
	Debit(ctx context.Context, ref string, amount decimal.Decimal) (*client.Account, error)
	Credit(ctx context.Context, ref string, amount decimal.Decimal) (*client.Account, error)
}

// Converter converts an amount between two currencies and returns the rate used.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from string, to string) (decimal.Decimal, decimal.Decimal, error)
}

type Publisher interface {
	PublishWithKey(ctx context.Context, topic string, key string, message interface{}) error
}

// CryptoService buys and sells crypto against the caller's primary bank account.
type CryptoService struct {
	Repo      CryptoRepo
	Feed      PriceFeed
	Accounts  AccountClient
	Converter Converter
	Publisher Publisher
}

func NewCryptoService(repo CryptoRepo, feed PriceFeed, accounts AccountClient, converter Converter, p Publisher) *CryptoService {
	return &CryptoService{
		Repo:      repo,
		Feed:      feed,
		Accounts:  accounts,
		Converter: converter,
		Publisher: p,
	}
}

func (s *CryptoService) ListPrices(_ context.Context) []dto.Price {
	all := s.Feed.All()
	out := make([]dto.Price, 0, len(all))
	for symbol, price := range all {
		out = append(out, dto.Price{Symbol: symbol, Price: price, Currency: s.Feed.Currency()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

func (s *CryptoService) Wallets(ctx context.Context, caller identity.Principal) ([]models.CryptoWallet, error) {
	return s.Repo.ListWallets(ctx, caller.UserID)
}

func (s *CryptoService) Transactions(ctx context.Context, caller identity.Principal) ([]models.CryptoTransaction, error) {
	return s.Repo.ListTransactions(ctx, caller.UserID)
}

// Trade buys or sells quantity of a symbol at the current quote. The cash leg
// is booked on the caller's primary account, converted from the quote
// currency when the account uses another one. A cash leg that succeeded is
// reversed when the wallet update fails.
func (s *CryptoService) Trade(ctx context.Context, caller identity.Principal, req *dto.Trade) (*models.CryptoTransaction, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !models.ValidSymbol(req.Symbol) {
		return nil, models.ErrUnsupportedSymbol
	}
	tradeType := models.TradeType(req.Type)
	if tradeType != models.TradeBuy && tradeType != models.TradeSell {
		return nil, models.ErrInvalidTradeType
	}
	if !req.Quantity.IsPositive() {
		return nil, models.ErrInvalidQuantity
	}

	price, ok := s.Feed.Price(req.Symbol)
	if !ok {
		return nil, models.ErrPriceUnavailable
	}

	account, err := s.Accounts.PrimaryAccount(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	total := price.Mul(req.Quantity).Round(4)
	if account.Currency != s.Feed.Currency() {
		total, _, err = s.Converter.Convert(ctx, total, s.Feed.Currency(), account.Currency)
		if err != nil {
			return nil, err
		}
	}

	t := &models.CryptoTransaction{
		UserID:      caller.UserID,
		Symbol:      req.Symbol,
		Type:        tradeType,
		Quantity:    req.Quantity,
		PriceAtTime: price,
		Total:       total,
		Currency:    account.Currency,
		AccountRef:  account.ExternalRef,
	}

	settled := false
	_, err = s.Repo.ApplyTrade(ctx, t, func(_ *models.CryptoWallet) error {
		if err := s.settle(ctx, account, t); err != nil {
			return err
		}
		settled = true
		return nil
	})
	action := "CRYPTO_" + string(tradeType)
	description := fmt.Sprintf("%s %s %s for %s %s", tradeType, t.Quantity, t.Symbol, t.Total, t.Currency)
	if err != nil {
		if settled {
			s.reverse(ctx, account, t)
		}
		s.audit(ctx, caller.UserID, action, description, err)
		return nil, err
	}
	s.audit(ctx, caller.UserID, action, description, nil)
	return t, nil
}

func (s *CryptoService) settle(ctx context.Context, account *client.Account, t *models.CryptoTransaction) error {
	if t.Type == models.TradeSell {
		_, err := s.Accounts.Credit(ctx, account.ExternalRef, t.Total)
		return err
	}
	if account.Balance.LessThan(t.Total) {
		return models.ErrInsufficientFunds
	}
	_, err := s.Accounts.Debit(ctx, account.ExternalRef, t.Total)
	return err
}

func (s *CryptoService) reverse(ctx context.Context, account *client.Account, t *models.CryptoTransaction) {
	var err error
	if t.Type == models.TradeSell {
		_, err = s.Accounts.Debit(ctx, account.ExternalRef, t.Total)
	} else {
		_, err = s.Accounts.Credit(ctx, account.ExternalRef, t.Total)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_ref": account.ExternalRef,
			"symbol":      t.Symbol,
		}).Errorf("reversing cash leg of %s failed: %v", t.Type, err)
	}
}

func (s *CryptoService) audit(ctx context.Context, userID, action, description string, cause error) {
	evt := events.NewAuditEvent(ctx, ServiceName, userID, action, description, cause)
	if err := s.Publisher.PublishWithKey(ctx, events.TopicAuditEvents, evt.CorrelationID, evt); err != nil {
		logrus.WithField("action", action).Warnf("audit event not published: %v", err)
	}
}
