package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/portfolio/dto"
	"github.com/jeffleon2/ebanking/internal/portfolio/models"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/shopspring/decimal"
)

type GatewayRepo interface {
	Open(ctx context.Context, a *models.BankAccount) error
	GetByNumber(ctx context.Context, number string) (*models.BankAccount, error)
	ForUser(ctx context.Context, userID string) (*models.BankAccount, error)
	Assign(ctx context.Context, a *models.BankAccount, userID string) error
	Fund(ctx context.Context, f *models.Funding, p *models.Portfolio) error
}

// GatewayService is the interbank gateway (CMI). It moves money from a
// user's bank account into portfolios, converting between currencies.
type GatewayService struct {
	Accounts   GatewayRepo
	Portfolios PortfolioRepo
	Converter  Converter
	Publisher  Publisher
	Now        func() time.Time
}

func NewGatewayService(accounts GatewayRepo, portfolios PortfolioRepo, converter Converter, p Publisher) *GatewayService {
	return &GatewayService{
		Accounts:   accounts,
		Portfolios: portfolios,
		Converter:  converter,
		Publisher:  p,
		Now:        time.Now,
	}
}

func (s *GatewayService) OpenAccount(ctx context.Context, caller identity.Principal, req *dto.OpenBankAccount) (*models.BankAccount, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Balance.IsNegative() {
		return nil, models.ErrInvalidAmount
	}
	a := &models.BankAccount{AccountNumber: req.AccountNumber, Currency: req.Currency, Balance: req.Balance}
	if err := s.Accounts.Open(ctx, a); err != nil {
		return nil, err
	}
	audit(ctx, s.Publisher, caller.UserID, "CMI_ACCOUNT_OPENED", fmt.Sprintf("bank account %s opened in %s", a.AccountNumber, a.Currency), nil)
	return a, nil
}

func (s *GatewayService) MyAccount(ctx context.Context, caller identity.Principal) (*models.BankAccount, error) {
	return s.Accounts.ForUser(ctx, caller.UserID)
}

// AssignUser hands the bank account with the given number to userID.
func (s *GatewayService) AssignUser(ctx context.Context, caller identity.Principal, number, userID string) (bool, error) {
	a, err := s.Accounts.GetByNumber(ctx, number)
	if err != nil {
		return false, err
	}
	if err := s.Accounts.Assign(ctx, a, userID); err != nil {
		return false, err
	}
	audit(ctx, s.Publisher, caller.UserID, "CMI_ACCOUNT_ASSIGNED", fmt.Sprintf("bank account %s assigned to %s", number, userID), nil)
	return true, nil
}

// FundNewPortfolio opens a portfolio funded from the caller's bank account.
// Amount is taken in the bank account currency.
func (s *GatewayService) FundNewPortfolio(ctx context.Context, caller identity.Principal, req *dto.FundNew) (*models.Alert, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	account, err := s.Accounts.ForUser(ctx, caller.UserID)
	if errors.Is(err, models.ErrBankAccountNotFound) {
		return s.refuse("no bank account found for user %s", caller.UserID), nil
	}
	if err != nil {
		return nil, err
	}
	exists, err := s.Portfolios.Exists(ctx, caller.UserID, req.Currency)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.refuse("a portfolio already exists for this user in %s", req.Currency), nil
	}

	p := &models.Portfolio{UserID: caller.UserID, Currency: req.Currency}
	return s.fund(ctx, caller, account, p, req.Amount, "portfolio created")
}

// FundPortfolio tops up one of the caller's portfolios from their bank account.
func (s *GatewayService) FundPortfolio(ctx context.Context, caller identity.Principal, req *dto.FundExisting) (*models.Alert, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	account, err := s.Accounts.ForUser(ctx, caller.UserID)
	if errors.Is(err, models.ErrBankAccountNotFound) {
		return s.refuse("no bank account found for user %s", caller.UserID), nil
	}
	if err != nil {
		return nil, err
	}
	p, err := s.Portfolios.Get(ctx, req.PortfolioID)
	if errors.Is(err, models.ErrPortfolioNotFound) || (err == nil && p.UserID != caller.UserID) {
		return s.refuse("portfolio not found or not owned by this user"), nil
	}
	if err != nil {
		return nil, err
	}
	return s.fund(ctx, caller, account, p, req.Amount, "portfolio funded")
}

func (s *GatewayService) fund(ctx context.Context, caller identity.Principal, account *models.BankAccount, p *models.Portfolio, amount decimal.Decimal, done string) (*models.Alert, error) {
	if account.Balance.LessThan(amount) {
		return s.refuse("insufficient balance on bank account %s", account.AccountNumber), nil
	}
	converted, _, err := s.Converter.Convert(ctx, amount, account.Currency, p.Currency)
	if err != nil {
		return nil, err
	}

	f := &models.Funding{BankAccountID: account.ID, Amount: amount, ConvertedAmount: converted}
	desc := fmt.Sprintf("%s %s from %s to %s portfolio", amount, account.Currency, account.AccountNumber, p.Currency)
	err = s.Accounts.Fund(ctx, f, p)
	switch {
	case errors.Is(err, models.ErrInsufficientFunds):
		audit(ctx, s.Publisher, caller.UserID, "CMI_FUNDING", desc, err)
		return s.refuse("insufficient balance on bank account %s", account.AccountNumber), nil
	case errors.Is(err, models.ErrDuplicatePortfolio):
		return s.refuse("a portfolio already exists for this user in %s", p.Currency), nil
	case err != nil:
		audit(ctx, s.Publisher, caller.UserID, "CMI_FUNDING", desc, err)
		return nil, err
	}

	audit(ctx, s.Publisher, caller.UserID, "CMI_FUNDING", desc, nil)
	return models.NewAlert(s.Now(), true, "%s with %s %s", done, converted, p.Currency), nil
}

func (s *GatewayService) refuse(format string, args ...interface{}) *models.Alert {
	return models.NewAlert(s.Now(), false, format, args...)
}
